package handler

import (
	"pharma-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardSummary returns the production, sales, financial and inventory KPIs
// GET /api/dashboard
func (h *DashboardHandler) GetDashboardSummary(c *fiber.Ctx) error {
	summary, err := h.service.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err, "", "Failed to fetch dashboard summary")
	}
	return c.JSON(summary)
}
