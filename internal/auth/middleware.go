package auth

import (
	"net/http"
	"strings"

	apperrors "workforce-scheduler-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys populated by the middleware
const (
	ContextManagerID = "manager_id"
	ContextStoreID   = "store_id"
	ContextRole      = "role"
)

// Claims are minted by the external identity provider; this service only
// verifies the signature and lifts the scheduling-relevant claims into the
// request context. Role resolution and account management live elsewhere.
type Claims struct {
	ManagerID string `json:"manager_id"`
	StoreID   string `json:"store_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Middleware validates the bearer token on protected routes
type Middleware struct {
	secret []byte
}

// NewMiddleware creates auth middleware with the shared signing secret
func NewMiddleware(secret string) *Middleware {
	return &Middleware{secret: []byte(secret)}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's identity claims in the gin context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, apperrors.NewAuthenticationError("unexpected signing method")
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextManagerID, claims.ManagerID)
		c.Set(ContextStoreID, claims.StoreID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// ManagerID returns the authenticated manager id from the gin context
func ManagerID(c *gin.Context) string {
	return c.GetString(ContextManagerID)
}

// StoreID returns the authenticated store id from the gin context
func StoreID(c *gin.Context) string {
	return c.GetString(ContextStoreID)
}
