package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postdeck/postdeck/internal/service"
)

type MediaHandler struct {
	s service.MediaService
}

func NewMediaHandler(service service.MediaService) *MediaHandler {
	return &MediaHandler{s: service}
}

func (h *MediaHandler) ListMedia(c *fiber.Ctx) error {
	return c.JSON(h.s.List())
}

// UploadMedia accepts a single multipart file under the "file" field.
// Type and size rejections come back from the service before any record
// or blob exists.
func (h *MediaHandler) UploadMedia(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No file uploaded",
		})
	}

	item, err := h.s.Upload(c.Context(), fh)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to upload file",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *MediaHandler) DeleteMedia(c *fiber.Ctx) error {
	if !h.s.Remove(c.Context(), c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Media item not found",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
