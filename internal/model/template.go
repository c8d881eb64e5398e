package model

import "github.com/google/uuid"

// FlowTemplate is a flow snapshot shared within a platform so other
// projects can start from it. The flow definition is stored as raw JSON
// and never interpreted by this service.
type FlowTemplate struct {
	BaseModel
	PlatformID  uuid.UUID `gorm:"type:uuid;index;not null" json:"platform_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	Flow        string    `gorm:"type:text;not null" json:"flow"`
}
