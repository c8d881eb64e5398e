package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-platform-admin-ws/internal/license"
	"go-platform-admin-ws/internal/model"
	"go-platform-admin-ws/internal/repository"
	"go-platform-admin-ws/internal/ws"
	"go-platform-admin-ws/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPlatformNotFound   = errors.New("platform not found")
	ErrInvalidLicenseKey  = errors.New("invalid license key")
	ErrNoLicenseActivated = errors.New("no license key activated")
)

// expiresSoonWindow is the lookahead used for the expiry warning.
const expiresSoonWindow = 7 * 24 * time.Hour

type PlatformService interface {
	Get(platformID uuid.UUID) (*model.PlatformResponse, error)
	UpdateSmtp(platformID uuid.UUID, req *UpdateSmtpRequest, updaterID string) (*model.PlatformResponse, error)
	VerifyLicenseKey(ctx context.Context, platformID uuid.UUID, key string) (*LicenseStatus, error)
	LicenseStatus(ctx context.Context, platformID uuid.UUID) (*LicenseStatus, error)
}

// UpdateSmtpRequest replaces the platform's mail server settings wholesale.
type UpdateSmtpRequest struct {
	SmtpHost        string `json:"smtp_host" validate:"required"`
	SmtpPort        int    `json:"smtp_port" validate:"required,min=1,max=65535"`
	SmtpUser        string `json:"smtp_user" validate:"required"`
	SmtpPassword    string `json:"smtp_password" validate:"required"`
	SmtpSenderEmail string `json:"smtp_sender_email" validate:"required,email"`
	SmtpUseSSL      bool   `json:"smtp_use_ssl"`
}

// LicenseStatus is the license view returned to the settings screen.
type LicenseStatus struct {
	MaskedKey   string     `json:"license_key"`
	ExpiresAt   *time.Time `json:"expires_at"`
	ExpiresSoon bool       `json:"expires_soon"`

	SsoEnabled              bool `json:"sso_enabled"`
	AuditLogEnabled         bool `json:"audit_log_enabled"`
	CustomDomainsEnabled    bool `json:"custom_domains_enabled"`
	EmbeddingEnabled        bool `json:"embedding_enabled"`
	AnalyticsEnabled        bool `json:"analytics_enabled"`
	ApiKeysEnabled          bool `json:"api_keys_enabled"`
	ManageTemplatesEnabled  bool `json:"manage_templates_enabled"`
	CustomAppearanceEnabled bool `json:"custom_appearance_enabled"`
}

type platformService struct {
	platformRepo  repository.PlatformRepository
	licenseClient license.Client
	hub           *ws.Hub
	now           func() time.Time
}

func NewPlatformService(platformRepo repository.PlatformRepository, licenseClient license.Client, hub *ws.Hub) PlatformService {
	return &platformService{
		platformRepo:  platformRepo,
		licenseClient: licenseClient,
		hub:           hub,
		now:           time.Now,
	}
}

func (s *platformService) Get(platformID uuid.UUID) (*model.PlatformResponse, error) {
	platform, err := s.findPlatform(platformID)
	if err != nil {
		return nil, err
	}
	response := platform.ToResponse()
	return &response, nil
}

func (s *platformService) UpdateSmtp(platformID uuid.UUID, req *UpdateSmtpRequest, updaterID string) (*model.PlatformResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	platform, err := s.findPlatform(platformID)
	if err != nil {
		return nil, err
	}

	platform.SmtpHost = req.SmtpHost
	platform.SmtpPort = req.SmtpPort
	platform.SmtpUser = req.SmtpUser
	platform.SmtpPassword = req.SmtpPassword
	platform.SmtpSenderEmail = req.SmtpSenderEmail
	platform.SmtpUseSSL = req.SmtpUseSSL
	platform.UpdatedBy = updaterID

	if err := s.platformRepo.Update(platform); err != nil {
		return nil, err
	}

	response := platform.ToResponse()
	s.hub.PublishEvent(ws.EventPlatformUpdated, response)
	return &response, nil
}

// VerifyLicenseKey activates a key for the platform: the external service
// validates it, and the returned expiry and feature flags are persisted on
// the platform record. Flags are never settable any other way.
func (s *platformService) VerifyLicenseKey(ctx context.Context, platformID uuid.UUID, key string) (*LicenseStatus, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: field 'license_key' failed on tag 'required'", ErrValidation)
	}

	platform, err := s.findPlatform(platformID)
	if err != nil {
		return nil, err
	}

	metadata, err := s.licenseClient.Verify(ctx, key)
	if err != nil {
		if errors.Is(err, license.ErrKeyRejected) {
			return nil, ErrInvalidLicenseKey
		}
		return nil, err
	}

	platform.LicenseKey = key
	platform.LicenseExpiresAt = metadata.ExpiresAt
	applyFeatureFlags(platform, metadata)

	if err := s.platformRepo.Update(platform); err != nil {
		return nil, err
	}

	status := s.statusFromPlatform(platform)
	s.hub.PublishEvent(ws.EventPlatformUpdated, platform.ToResponse())
	return status, nil
}

func (s *platformService) LicenseStatus(ctx context.Context, platformID uuid.UUID) (*LicenseStatus, error) {
	platform, err := s.findPlatform(platformID)
	if err != nil {
		return nil, err
	}
	if platform.LicenseKey == "" {
		return nil, ErrNoLicenseActivated
	}

	// Refresh expiry and flags from the license backend when reachable;
	// fall back to the stored state otherwise.
	if metadata, err := s.licenseClient.GetKey(ctx, platform.LicenseKey); err == nil {
		platform.LicenseExpiresAt = metadata.ExpiresAt
		applyFeatureFlags(platform, metadata)
	}

	return s.statusFromPlatform(platform), nil
}

func (s *platformService) findPlatform(platformID uuid.UUID) (*model.Platform, error) {
	platform, err := s.platformRepo.FindByID(platformID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlatformNotFound
		}
		return nil, err
	}
	return platform, nil
}

func (s *platformService) statusFromPlatform(platform *model.Platform) *LicenseStatus {
	expiresSoon := false
	if platform.LicenseExpiresAt != nil {
		expiresSoon = platform.LicenseExpiresAt.Before(s.now().Add(expiresSoonWindow))
	}
	return &LicenseStatus{
		MaskedKey:               model.MaskSecret(platform.LicenseKey),
		ExpiresAt:               platform.LicenseExpiresAt,
		ExpiresSoon:             expiresSoon,
		SsoEnabled:              platform.SsoEnabled,
		AuditLogEnabled:         platform.AuditLogEnabled,
		CustomDomainsEnabled:    platform.CustomDomainsEnabled,
		EmbeddingEnabled:        platform.EmbeddingEnabled,
		AnalyticsEnabled:        platform.AnalyticsEnabled,
		ApiKeysEnabled:          platform.ApiKeysEnabled,
		ManageTemplatesEnabled:  platform.ManageTemplatesEnabled,
		CustomAppearanceEnabled: platform.CustomAppearanceEnabled,
	}
}

func applyFeatureFlags(platform *model.Platform, metadata *license.KeyMetadata) {
	platform.SsoEnabled = metadata.SsoEnabled
	platform.AuditLogEnabled = metadata.AuditLogEnabled
	platform.CustomDomainsEnabled = metadata.CustomDomainsEnabled
	platform.EmbeddingEnabled = metadata.EmbeddingEnabled
	platform.AnalyticsEnabled = metadata.AnalyticsEnabled
	platform.ApiKeysEnabled = metadata.ApiKeysEnabled
	platform.ManageTemplatesEnabled = metadata.ManageTemplatesEnabled
	platform.CustomAppearanceEnabled = metadata.CustomAppearanceEnabled
}
