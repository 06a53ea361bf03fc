package handlers

import (
	"net/http"
	"time"

	apperrors "workforce-scheduler-backend/internal/errors"
	"workforce-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EngineHandler exposes manual triggers for the scheduling engine
type EngineHandler struct {
	engine service.EngineInterface
}

// NewEngineHandler creates a new engine handler
func NewEngineHandler(engine service.EngineInterface) *EngineHandler {
	return &EngineHandler{
		engine: engine,
	}
}

// Materialize handles POST /engine/materialize
// @Summary Run materialization for a date
// @Description Generate task instances for the given date from all active event definitions. Safe to repeat: existing occurrences are reconciled, not duplicated.
// @Tags engine
// @Accept json
// @Produce json
// @Param date query string false "Target date (YYYY-MM-DD), defaults to today"
// @Param store_id query string false "Limit materialization to one store"
// @Success 200 {object} service.MaterializationSummary "Materialization summary"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /engine/materialize [post]
func (h *EngineHandler) Materialize(c *gin.Context) {
	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidDateFormat.Error()})
			return
		}
		date = parsed
	}

	summary, err := h.engine.GenerateForDate(c.Request.Context(), date, c.Query("store_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Evaluate handles POST /engine/evaluate
// @Summary Run a delay evaluation pass
// @Description Evaluate all incomplete tasks for today and raise delay alerts where thresholds are exceeded
// @Tags engine
// @Accept json
// @Produce json
// @Success 202 {object} map[string]interface{} "Evaluation completed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /engine/evaluate [post]
func (h *EngineHandler) Evaluate(c *gin.Context) {
	if err := h.engine.EvaluateNow(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "evaluation completed"})
}
