package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postdeck/postdeck/internal/service"
	"github.com/postdeck/postdeck/internal/transfer"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{s: service}
}

// ListPosts returns every post newest first, or only those created inside
// the startDate/endDate window when both query params are present.
func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	if startDate != "" && endDate != "" {
		posts, err := h.s.ListByDateRange(startDate, endDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid date range",
				"error":   err.Error(),
			})
		}
		return c.JSON(posts)
	}

	return c.JSON(h.s.List())
}

func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	post, ok := h.s.Info(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found",
		})
	}
	return c.JSON(post)
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var pc transfer.PostCreation
	if err := c.BodyParser(&pc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unable to parse json",
		})
	}

	post, err := h.s.Create(&pc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post data",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	var patch transfer.PostUpdate
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unable to parse json",
		})
	}

	post, ok, err := h.s.Update(c.Params("id"), &patch)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post data",
			"error":   err.Error(),
		})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found",
		})
	}

	return c.JSON(post)
}

func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	if !h.s.Remove(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PostHandler) ListPostsByStatus(c *fiber.Ctx) error {
	return c.JSON(h.s.ListByStatus(c.Params("status")))
}
