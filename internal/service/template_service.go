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

var ErrTemplateNotFound = errors.New("flow template not found")

type TemplateService interface {
	Share(platformID uuid.UUID, req *ShareTemplateRequest, creatorID string) (*model.FlowTemplate, error)
	List(platformID uuid.UUID) ([]model.FlowTemplate, error)
	Get(platformID, templateID uuid.UUID) (*model.FlowTemplate, error)
	Delete(platformID, templateID uuid.UUID) error
}

type ShareTemplateRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Flow        string   `json:"flow" validate:"required,json"`
}

type templateService struct {
	templateRepo repository.TemplateRepository
	hub          *ws.Hub
}

func NewTemplateService(templateRepo repository.TemplateRepository, hub *ws.Hub) TemplateService {
	return &templateService{templateRepo: templateRepo, hub: hub}
}

func (s *templateService) Share(platformID uuid.UUID, req *ShareTemplateRequest, creatorID string) (*model.FlowTemplate, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	template := &model.FlowTemplate{
		PlatformID:  platformID,
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		Flow:        req.Flow,
	}
	template.CreatedBy = creatorID
	template.UpdatedBy = creatorID

	if err := s.templateRepo.Create(template); err != nil {
		return nil, err
	}

	s.hub.PublishEvent(ws.EventTemplateShared, template)
	return template, nil
}

func (s *templateService) List(platformID uuid.UUID) ([]model.FlowTemplate, error) {
	templates, err := s.templateRepo.FindAllByPlatform(platformID)
	if err != nil {
		return nil, err
	}
	if templates == nil {
		templates = []model.FlowTemplate{}
	}
	return templates, nil
}

func (s *templateService) Get(platformID, templateID uuid.UUID) (*model.FlowTemplate, error) {
	template, err := s.templateRepo.FindByID(platformID, templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

func (s *templateService) Delete(platformID, templateID uuid.UUID) error {
	affected, err := s.templateRepo.Delete(platformID, templateID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTemplateNotFound
	}

	s.hub.PublishEvent(ws.EventTemplateDeleted, map[string]string{"id": templateID.String()})
	return nil
}
