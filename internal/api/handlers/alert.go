package handlers

import (
	"errors"
	"net/http"

	"workforce-scheduler-backend/internal/auth"
	apperrors "workforce-scheduler-backend/internal/errors"
	"workforce-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AlertHandler handles HTTP requests for delay alert operations
type AlertHandler struct {
	alertService service.AlertServiceInterface
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertService service.AlertServiceInterface) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
	}
}

// ListOpenAlerts handles GET /alerts
// @Summary List open delay alerts
// @Description Get all unacknowledged delay alerts with pagination
// @Tags alerts
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AlertListResponse "Successfully retrieved alerts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /alerts [get]
func (h *AlertHandler) ListOpenAlerts(c *gin.Context) {
	page, pageSize := pagination(c)

	alerts, err := h.alertService.ListOpen(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// ListTaskAlerts handles GET /tasks/:id/alerts
// @Summary List alerts for a task
// @Description Get all delay alerts raised for a task instance, open and acknowledged
// @Tags alerts
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {array} service.AlertResponse "Successfully retrieved alerts"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/alerts [get]
func (h *AlertHandler) ListTaskAlerts(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID"})
		return
	}

	alerts, err := h.alertService.ListByTask(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// AcknowledgeAlert handles POST /alerts/:id/acknowledge
// @Summary Acknowledge a delay alert
// @Description Acknowledge an open delay alert. An acknowledged alert never reopens; only a later escalation raises a new one.
// @Tags alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID (UUID)"
// @Success 200 {object} service.AlertResponse "Successfully acknowledged alert"
// @Failure 400 {object} map[string]interface{} "Invalid alert ID"
// @Failure 404 {object} map[string]interface{} "Alert not found"
// @Failure 409 {object} map[string]interface{} "Alert already acknowledged"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /alerts/{id}/acknowledge [post]
func (h *AlertHandler) AcknowledgeAlert(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}

	alert, err := h.alertService.Acknowledge(id, auth.ManagerID(c))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrAlertAcknowledged) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alert)
}
