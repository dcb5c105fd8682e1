// internal/handlers/alert.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pricetrack/pricetrack-backend/internal/services"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

// AlertHandler exposes price alerts read-only.
type AlertHandler struct {
	alertService *services.AlertService
}

func NewAlertHandler(alertService *services.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// GET /alerts
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	alerts, total, err := h.alertService.ListAlerts(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SetPaginationHeaders(c, total, params)
	utils.SuccessResponse(c, alerts)
}

// GET /alerts/:id
func (h *AlertHandler) GetAlert(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	alert, err := h.alertService.GetAlert(id)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.SuccessResponse(c, alert)
}
