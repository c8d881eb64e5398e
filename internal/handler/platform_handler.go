package handler

import (
	"go-platform-admin-ws/internal/service"
	"go-platform-admin-ws/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PlatformHandler struct {
	platformService service.PlatformService
}

func NewPlatformHandler(platformService service.PlatformService) *PlatformHandler {
	return &PlatformHandler{platformService: platformService}
}

// GetPlatform returns the tenant's settings with secrets masked
// GET /api/v1/platforms/:id
func (h *PlatformHandler) GetPlatform(c *fiber.Ctx) error {
	platformID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid platform ID"})
	}

	platform, err := h.platformService.Get(platformID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(platform)
}

// UpdateSmtp replaces the platform's mail server settings wholesale
// POST /api/v1/platforms/:id
func (h *PlatformHandler) UpdateSmtp(c *fiber.Ctx) error {
	platformID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid platform ID"})
	}

	var req service.UpdateSmtpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	platform, err := h.platformService.UpdateSmtp(platformID, &req, principalUser(c))
	if err != nil {
		return mapServiceError(c, err)
	}

	metrics.PlatformUpdateCounter.Inc()
	return c.JSON(platform)
}

// VerifyLicenseKey activates a license key for the principal's platform
// POST /api/v1/license-keys/verify
func (h *PlatformHandler) VerifyLicenseKey(c *fiber.Ctx) error {
	platformID, err := principalPlatform(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Missing platform context"})
	}

	var req struct {
		LicenseKey string `json:"license_key"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	status, err := h.platformService.VerifyLicenseKey(c.Context(), platformID, req.LicenseKey)
	if err != nil {
		return mapServiceError(c, err)
	}

	metrics.LicenseVerifyCounter.Inc()
	return c.JSON(status)
}

// GetLicenseStatus returns license metadata including the expiry warning
// GET /api/v1/license-keys/status
func (h *PlatformHandler) GetLicenseStatus(c *fiber.Ctx) error {
	platformID, err := principalPlatform(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Missing platform context"})
	}

	status, err := h.platformService.LicenseStatus(c.Context(), platformID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(status)
}
