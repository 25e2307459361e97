package handlers

import (
	"lpaflow/internal/models"
	"lpaflow/internal/services/dashboard"
	"lpaflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the operator stats endpoint.
type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetAdminDashboard returns application counts, revenue and recent activity.
// Step-up (MFA) enforcement lives with the hosted auth provider; only the
// admin role claim is checked here.
func (h *DashboardHandler) GetAdminDashboard(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.AuthClaims)
	if !ok || claims.Role != "admin" {
		return response.Error(c, fiber.StatusForbidden, "Admin access required")
	}

	stats, err := h.dashboardService.GetAdminDashboard(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to get dashboard data")
	}

	return c.JSON(stats)
}
