package handler

import (
	"go-platform-admin-ws/internal/service"
	"go-platform-admin-ws/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TemplateHandler struct {
	templateService service.TemplateService
}

func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// GetTemplates lists the platform's shared flow templates
// GET /api/v1/templates
func (h *TemplateHandler) GetTemplates(c *fiber.Ctx) error {
	platformID, err := principalPlatform(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Missing platform context"})
	}

	templates, err := h.templateService.List(platformID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch templates"})
	}
	return c.JSON(templates)
}

// GetTemplate fetches one template by id
// GET /api/v1/templates/:id
func (h *TemplateHandler) GetTemplate(c *fiber.Ctx) error {
	platformID, err := principalPlatform(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Missing platform context"})
	}

	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	template, err := h.templateService.Get(platformID, templateID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(template)
}

// ShareTemplate publishes a flow template to the platform
// POST /api/v1/templates
func (h *TemplateHandler) ShareTemplate(c *fiber.Ctx) error {
	platformID, err := principalPlatform(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Missing platform context"})
	}

	var req service.ShareTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	template, err := h.templateService.Share(platformID, &req, principalUser(c))
	if err != nil {
		return mapServiceError(c, err)
	}

	metrics.TemplateShareCounter.Inc()
	return c.Status(201).JSON(template)
}

// DeleteTemplate removes a shared template
// DELETE /api/v1/templates/:id
func (h *TemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	platformID, err := principalPlatform(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Missing platform context"})
	}

	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	if err := h.templateService.Delete(platformID, templateID); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(204)
}
