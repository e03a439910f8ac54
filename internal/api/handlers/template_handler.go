package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postdeck/postdeck/internal/service"
	"github.com/postdeck/postdeck/internal/transfer"
)

type TemplateHandler struct {
	s service.TemplateService
}

func NewTemplateHandler(service service.TemplateService) *TemplateHandler {
	return &TemplateHandler{s: service}
}

func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(h.s.List())
}

func (h *TemplateHandler) GetTemplate(c *fiber.Ctx) error {
	template, ok := h.s.Info(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Template not found",
		})
	}
	return c.JSON(template)
}

func (h *TemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	var tc transfer.TemplateCreation
	if err := c.BodyParser(&tc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unable to parse json",
		})
	}

	template, err := h.s.Create(&tc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid template data",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(template)
}

func (h *TemplateHandler) ListTemplatesByCategory(c *fiber.Ctx) error {
	return c.JSON(h.s.ListByCategory(c.Params("category")))
}
