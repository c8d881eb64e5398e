package service

import (
	"errors"
	"fmt"

	"go-platform-admin-ws/internal/model"
	"go-platform-admin-ws/internal/repository"
	"go-platform-admin-ws/internal/ws"
	"go-platform-admin-ws/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRoleNotFound = errors.New("project role not found")
	ErrValidation   = errors.New("validation failed")
)

type RoleService interface {
	List(platformID uuid.UUID) ([]model.ProjectRole, error)
	Create(platformID uuid.UUID, req *CreateRoleRequest, creatorID string) (*model.ProjectRole, error)
	Update(platformID, roleID uuid.UUID, req *UpdateRoleRequest, updaterID string) (*model.ProjectRole, error)
	Delete(platformID, roleID uuid.UUID) error
}

type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Permissions []string `json:"permissions" validate:"required"`
}

// UpdateRoleRequest patches at field granularity: absent fields keep their
// prior values. A present permissions field replaces the whole set.
type UpdateRoleRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Permissions *[]string `json:"permissions,omitempty"`
}

type roleService struct {
	roleRepo repository.RoleRepository
	hub      *ws.Hub
}

func NewRoleService(roleRepo repository.RoleRepository, hub *ws.Hub) RoleService {
	return &roleService{roleRepo: roleRepo, hub: hub}
}

func (s *roleService) List(platformID uuid.UUID) ([]model.ProjectRole, error) {
	roles, err := s.roleRepo.FindAllByPlatform(platformID)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []model.ProjectRole{}
	}
	return roles, nil
}

func (s *roleService) Create(platformID uuid.UUID, req *CreateRoleRequest, creatorID string) (*model.ProjectRole, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	role := &model.ProjectRole{
		PlatformID:  platformID,
		Name:        req.Name,
		Permissions: req.Permissions,
	}
	role.CreatedBy = creatorID
	role.UpdatedBy = creatorID

	if err := s.roleRepo.Create(role); err != nil {
		return nil, err
	}

	s.hub.PublishEvent(ws.EventRoleCreated, role)
	return role, nil
}

func (s *roleService) Update(platformID, roleID uuid.UUID, req *UpdateRoleRequest, updaterID string) (*model.ProjectRole, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	role, err := s.roleRepo.FindByID(platformID, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Permissions != nil {
		role.Permissions = *req.Permissions
	}
	role.UpdatedBy = updaterID

	if err := s.roleRepo.Update(role); err != nil {
		return nil, err
	}

	s.hub.PublishEvent(ws.EventRoleUpdated, role)
	return role, nil
}

// Delete removes the role within the platform scope. Deleting an id that
// does not exist (or belongs to another platform) returns ErrRoleNotFound,
// so repeated deletes fail consistently.
func (s *roleService) Delete(platformID, roleID uuid.UUID) error {
	affected, err := s.roleRepo.Delete(platformID, roleID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRoleNotFound
	}

	s.hub.PublishEvent(ws.EventRoleDeleted, map[string]string{"id": roleID.String()})
	return nil
}
