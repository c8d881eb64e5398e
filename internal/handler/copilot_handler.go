package handler

import (
	"go-platform-admin-ws/internal/copilot"

	"github.com/gofiber/fiber/v2"
)

type CopilotHandler struct{}

func NewCopilotHandler() *CopilotHandler {
	return &CopilotHandler{}
}

// GetScenarios returns the static example-automation catalog
// GET /api/v1/copilot/scenarios
func (h *CopilotHandler) GetScenarios(c *fiber.Ctx) error {
	return c.JSON(copilot.Catalog())
}
