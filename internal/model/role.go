package model

import "github.com/google/uuid"

// ProjectRole is a named permission bundle scoped to a single platform.
// Permissions are stored as a JSON array; a role's permission set is an
// opaque value here, individual grants are interpreted by the API gateway.
type ProjectRole struct {
	BaseModel
	PlatformID  uuid.UUID `gorm:"type:uuid;index;not null" json:"platform_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Permissions []string  `gorm:"serializer:json" json:"permissions"`
}

// Well-known permission codes
const (
	PermissionReadFlow        = "flow:read"
	PermissionWriteFlow       = "flow:write"
	PermissionReadRun         = "run:read"
	PermissionRetryRun        = "run:retry"
	PermissionReadIssue       = "issue:read"
	PermissionWriteIssue      = "issue:write"
	PermissionReadConnection  = "connection:read"
	PermissionWriteConnection = "connection:write"
)

// DefaultRoles are created for every new platform
var DefaultRoles = []ProjectRole{
	{
		Name: "Admin",
		Permissions: []string{
			PermissionReadFlow, PermissionWriteFlow,
			PermissionReadRun, PermissionRetryRun,
			PermissionReadIssue, PermissionWriteIssue,
			PermissionReadConnection, PermissionWriteConnection,
		},
	},
	{
		Name: "Editor",
		Permissions: []string{
			PermissionReadFlow, PermissionWriteFlow,
			PermissionReadRun, PermissionRetryRun,
			PermissionReadConnection, PermissionWriteConnection,
		},
	},
	{
		Name: "Viewer",
		Permissions: []string{
			PermissionReadFlow, PermissionReadRun, PermissionReadConnection,
		},
	},
}
