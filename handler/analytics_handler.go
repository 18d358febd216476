package handler

import (
	"taskpulse/usecase"
	"taskpulse/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	service *usecase.AnalyticsService
}

func NewAnalyticsHandler(service *usecase.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Dashboard serves GET /api/analytics/dashboard?days=N
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.service.Dashboard(c.Request.Context(), userID, c.Query("days"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dashboard)
}

// Streak serves GET /api/analytics/streak?days=N
func (h *AnalyticsHandler) Streak(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	report, err := h.service.Streak(c.Request.Context(), userID, c.Query("days"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, report)
}
