package repository

import (
	"go-platform-admin-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlatformRepository interface {
	FindByID(id uuid.UUID) (*model.Platform, error)
	Create(platform *model.Platform) error
	Update(platform *model.Platform) error
	Count() (int64, error)
}

type platformRepo struct {
	db *gorm.DB
}

func NewPlatformRepo(db *gorm.DB) PlatformRepository {
	return &platformRepo{db: db}
}

func (r *platformRepo) FindByID(id uuid.UUID) (*model.Platform, error) {
	var platform model.Platform
	if err := r.db.First(&platform, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &platform, nil
}

func (r *platformRepo) Create(platform *model.Platform) error {
	return r.db.Create(platform).Error
}

func (r *platformRepo) Update(platform *model.Platform) error {
	return r.db.Save(platform).Error
}

func (r *platformRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Platform{}).Count(&count).Error
	return count, err
}
