package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postdeck/postdeck/internal/service"
	"github.com/postdeck/postdeck/internal/transfer"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: service}
}

// GetAnalytics narrows by date range when both bounds are given, else by
// platform, else returns everything.
func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	platform := c.Query("platform")

	switch {
	case startDate != "" && endDate != "":
		return c.JSON(h.s.ListByDateRange(startDate, endDate))
	case platform != "":
		return c.JSON(h.s.ListByPlatform(platform))
	default:
		return c.JSON(h.s.List())
	}
}

func (h *AnalyticsHandler) CreateAnalytics(c *fiber.Ctx) error {
	var ac transfer.AnalyticsCreation
	if err := c.BodyParser(&ac); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unable to parse json",
		})
	}

	entry, err := h.s.Create(&ac)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid analytics data",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}
