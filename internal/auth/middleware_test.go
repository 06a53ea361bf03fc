package auth_test

import (
	"net/http"
	"testing"
	"time"

	"workforce-scheduler-backend/internal/auth"
	"workforce-scheduler-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

// signToken mints an HMAC token the way the external identity provider does
func signToken(t *testing.T, secret string, claims auth.Claims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedRouter() *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()

	middleware := auth.NewMiddleware(testSecret)
	httpSuite.Router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"manager_id": auth.ManagerID(c), "store_id": auth.StoreID(c)})
	})

	return httpSuite
}

func TestRequireAuthMissingHeader(t *testing.T) {
	httpSuite := protectedRouter()

	recorder := httpSuite.MakeRequest("GET", "/protected", nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "missing bearer token")
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	httpSuite := protectedRouter()

	recorder := httpSuite.MakeRequestWithHeaders("GET", "/protected", nil, map[string]string{
		"Authorization": "Basic dXNlcjpwYXNz",
	})

	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "missing bearer token")
}

func TestRequireAuthInvalidSignature(t *testing.T) {
	httpSuite := protectedRouter()

	token := signToken(t, "some-other-secret", auth.Claims{
		ManagerID: "mgr-001",
		StoreID:   "store-001",
	})

	recorder := httpSuite.MakeRequestWithHeaders("GET", "/protected", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "invalid token")
}

func TestRequireAuthExpiredToken(t *testing.T) {
	httpSuite := protectedRouter()

	token := signToken(t, testSecret, auth.Claims{
		ManagerID: "mgr-001",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	recorder := httpSuite.MakeRequestWithHeaders("GET", "/protected", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "invalid token")
}

func TestRequireAuthValidToken(t *testing.T) {
	httpSuite := protectedRouter()

	token := signToken(t, testSecret, auth.Claims{
		ManagerID: "mgr-001",
		StoreID:   "store-001",
		Role:      "shift-manager",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	recorder := httpSuite.MakeRequestWithHeaders("GET", "/protected", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]string
	testutils.ParseJSONResponse(t, recorder, &response)
	assert.Equal(t, "mgr-001", response["manager_id"])
	assert.Equal(t, "store-001", response["store_id"])
}
