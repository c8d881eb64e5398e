package model

import "time"

// Platform is the per-tenant configuration record: mail server settings,
// the activated license key and the feature flags it unlocks.
type Platform struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	// Mail server settings, replaced wholesale on update
	SmtpHost        string `gorm:"type:varchar(255)" json:"smtp_host"`
	SmtpPort        int    `json:"smtp_port"`
	SmtpUser        string `gorm:"type:varchar(255)" json:"smtp_user"`
	SmtpPassword    string `gorm:"type:varchar(255)" json:"-"`
	SmtpSenderEmail string `gorm:"type:varchar(255)" json:"smtp_sender_email"`
	SmtpUseSSL      bool   `json:"smtp_use_ssl"`

	// License state. Flags are outputs of license verification and are
	// never writable through the settings endpoint.
	LicenseKey       string     `gorm:"type:varchar(255)" json:"-"`
	LicenseExpiresAt *time.Time `json:"license_expires_at"`

	SsoEnabled              bool `json:"sso_enabled"`
	AuditLogEnabled         bool `json:"audit_log_enabled"`
	CustomDomainsEnabled    bool `json:"custom_domains_enabled"`
	EmbeddingEnabled        bool `json:"embedding_enabled"`
	AnalyticsEnabled        bool `json:"analytics_enabled"`
	ApiKeysEnabled          bool `json:"api_keys_enabled"`
	ManageTemplatesEnabled  bool `json:"manage_templates_enabled"`
	CustomAppearanceEnabled bool `json:"custom_appearance_enabled"`
}

// PlatformResponse is the API shape of a platform. Secrets are masked:
// the SMTP password never leaves the server and the license key keeps
// only its last four characters.
type PlatformResponse struct {
	Platform
	SmtpPasswordSet  bool   `json:"smtp_password_set"`
	MaskedLicenseKey string `json:"license_key"`
}

func (p *Platform) ToResponse() PlatformResponse {
	return PlatformResponse{
		Platform:         *p,
		SmtpPasswordSet:  p.SmtpPassword != "",
		MaskedLicenseKey: MaskSecret(p.LicenseKey),
	}
}

// MaskSecret hides all but the last four characters of a secret
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	masked := make([]byte, len(s))
	for i := range masked {
		masked[i] = '*'
	}
	copy(masked[len(s)-4:], s[len(s)-4:])
	return string(masked)
}
