package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postdeck/postdeck/internal/service"
)

type DashboardHandler struct {
	s service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{s: service}
}

func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.s.Summary())
}
