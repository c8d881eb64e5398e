package repository

import (
	"go-platform-admin-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TemplateRepository interface {
	FindAllByPlatform(platformID uuid.UUID) ([]model.FlowTemplate, error)
	FindByID(platformID, id uuid.UUID) (*model.FlowTemplate, error)
	Create(template *model.FlowTemplate) error
	Delete(platformID, id uuid.UUID) (int64, error)
}

type templateRepo struct {
	db *gorm.DB
}

func NewTemplateRepo(db *gorm.DB) TemplateRepository {
	return &templateRepo{db: db}
}

func (r *templateRepo) FindAllByPlatform(platformID uuid.UUID) ([]model.FlowTemplate, error) {
	var templates []model.FlowTemplate
	err := r.db.Where("platform_id = ?", platformID).Order("created_at desc").Find(&templates).Error
	return templates, err
}

func (r *templateRepo) FindByID(platformID, id uuid.UUID) (*model.FlowTemplate, error) {
	var template model.FlowTemplate
	err := r.db.Where("platform_id = ?", platformID).First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *templateRepo) Create(template *model.FlowTemplate) error {
	return r.db.Create(template).Error
}

func (r *templateRepo) Delete(platformID, id uuid.UUID) (int64, error) {
	result := r.db.Where("platform_id = ? AND id = ?", platformID, id).Delete(&model.FlowTemplate{})
	return result.RowsAffected, result.Error
}
