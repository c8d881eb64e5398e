package handler

import (
	"errors"

	"go-platform-admin-ws/internal/middleware"
	"go-platform-admin-ws/internal/service"
	"go-platform-admin-ws/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// GetRoles lists the principal platform's project roles
// GET /api/v1/project-roles
func (h *RoleHandler) GetRoles(c *fiber.Ctx) error {
	platformID, err := principalPlatform(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Missing platform context"})
	}

	roles, err := h.roleService.List(platformID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch project roles"})
	}
	return c.JSON(roles)
}

// CreateRole creates a role in the principal's platform
// POST /api/v1/project-roles
func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	platformID, err := principalPlatform(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Missing platform context"})
	}

	var req service.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	role, err := h.roleService.Create(platformID, &req, principalUser(c))
	if err != nil {
		return mapServiceError(c, err)
	}

	metrics.RoleCreateCounter.Inc()
	return c.Status(201).JSON(role)
}

// UpdateRole patches a role by id
// POST /api/v1/project-roles/:id
func (h *RoleHandler) UpdateRole(c *fiber.Ctx) error {
	platformID, err := principalPlatform(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Missing platform context"})
	}

	roleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role ID"})
	}

	var req service.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	role, err := h.roleService.Update(platformID, roleID, &req, principalUser(c))
	if err != nil {
		return mapServiceError(c, err)
	}

	metrics.RoleUpdateCounter.Inc()
	return c.JSON(role)
}

// DeleteRole removes a role by id
// DELETE /api/v1/project-roles/:id
func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	platformID, err := principalPlatform(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Missing platform context"})
	}

	roleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role ID"})
	}

	if err := h.roleService.Delete(platformID, roleID); err != nil {
		return mapServiceError(c, err)
	}

	metrics.RoleDeleteCounter.Inc()
	return c.SendStatus(204)
}

// principalPlatform reads the platform id attached by the auth middleware.
func principalPlatform(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(middleware.LocalPlatformID).(string)
	if !ok {
		return uuid.Nil, errors.New("missing platform context")
	}
	return uuid.Parse(raw)
}

func principalUser(c *fiber.Ctx) string {
	if userID, ok := c.Locals(middleware.LocalUserID).(string); ok {
		return userID
	}
	return "system"
}

// mapServiceError translates service sentinel errors to HTTP statuses.
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidLicenseKey):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrRoleNotFound),
		errors.Is(err, service.ErrTemplateNotFound),
		errors.Is(err, service.ErrPlatformNotFound),
		errors.Is(err, service.ErrNoLicenseActivated):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}
