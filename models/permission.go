package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Permission struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"unique"`
	Description string         `json:"description"`
	Resource    string         `json:"resource"` // e.g., "appointments", "schedule", "services"
	Action      string         `json:"action"`   // e.g., "create", "read", "update", "delete"
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
	Roles       []Role         `json:"roles,omitempty" gorm:"many2many:role_permissions;foreignKey:ID;joinForeignKey:PermissionID;references:ID;joinReferences:RoleID"`
}

// clinicPermissionMatrix is the fixed set of resource/action pairs the route
// guards check. Permissions outside this matrix are never consulted, so
// creating them is rejected.
var clinicPermissionMatrix = []struct {
	Resource string
	Actions  []string
}{
	{"appointments", []string{"read", "update", "delete"}},
	{"services", []string{"create", "update", "delete"}},
	{"schedule", []string{"create", "update", "delete"}},
	{"contact", []string{"read", "update"}},
	{"roles", []string{"read"}},
	{"permissions", []string{"read"}},
}

// ValidPermission reports whether resource/action is part of the clinic's
// permission matrix.
func ValidPermission(resource, action string) bool {
	for _, entry := range clinicPermissionMatrix {
		if entry.Resource != resource {
			continue
		}
		for _, a := range entry.Actions {
			if a == action {
				return true
			}
		}
	}
	return false
}

// PermissionName builds the canonical action_resource name, e.g.
// "read_appointments".
func PermissionName(resource, action string) string {
	return fmt.Sprintf("%s_%s", action, resource)
}

// ClinicPermissions returns the full permission matrix in seed order.
func ClinicPermissions() []Permission {
	var perms []Permission
	for _, entry := range clinicPermissionMatrix {
		for _, action := range entry.Actions {
			perms = append(perms, Permission{
				Name:        PermissionName(entry.Resource, action),
				Description: fmt.Sprintf("Allows %s on %s", action, entry.Resource),
				Resource:    entry.Resource,
				Action:      action,
			})
		}
	}
	return perms
}
