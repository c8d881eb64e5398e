package repository

import (
	"go-platform-admin-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleRepository interface {
	FindAllByPlatform(platformID uuid.UUID) ([]model.ProjectRole, error)
	FindByID(platformID, id uuid.UUID) (*model.ProjectRole, error)
	Create(role *model.ProjectRole) error
	Update(role *model.ProjectRole) error
	Delete(platformID, id uuid.UUID) (int64, error)
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) FindAllByPlatform(platformID uuid.UUID) ([]model.ProjectRole, error) {
	var roles []model.ProjectRole
	err := r.db.Where("platform_id = ?", platformID).Order("name asc").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) FindByID(platformID, id uuid.UUID) (*model.ProjectRole, error) {
	var role model.ProjectRole
	err := r.db.Where("platform_id = ?", platformID).First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) Create(role *model.ProjectRole) error {
	return r.db.Create(role).Error
}

func (r *roleRepo) Update(role *model.ProjectRole) error {
	return r.db.Save(role).Error
}

// Delete returns the number of rows removed so callers can distinguish
// a missing or foreign id from a successful delete.
func (r *roleRepo) Delete(platformID, id uuid.UUID) (int64, error) {
	result := r.db.Where("platform_id = ? AND id = ?", platformID, id).Delete(&model.ProjectRole{})
	return result.RowsAffected, result.Error
}
