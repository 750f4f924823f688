package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPermission(t *testing.T) {
	tests := []struct {
		resource string
		action   string
		want     bool
	}{
		{"appointments", "read", true},
		{"appointments", "update", true},
		{"schedule", "create", true},
		{"contact", "update", true},
		{"roles", "read", true},
		{"appointments", "create", false}, // bookings go through the patient route
		{"schedule", "read", false},       // public availability needs no permission
		{"invoices", "read", false},
		{"", "", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPermission(tt.resource, tt.action), "%s/%s", tt.resource, tt.action)
	}
}

func TestClinicPermissionsMatchMatrix(t *testing.T) {
	perms := ClinicPermissions()
	require.NotEmpty(t, perms)

	seen := make(map[string]bool, len(perms))
	for _, p := range perms {
		assert.True(t, ValidPermission(p.Resource, p.Action), "seeded pair %s/%s must validate", p.Resource, p.Action)
		assert.Equal(t, PermissionName(p.Resource, p.Action), p.Name)
		assert.False(t, seen[p.Name], "duplicate permission name %s", p.Name)
		seen[p.Name] = true
	}

	// Every pair the route guards check must be seeded.
	for _, name := range []string{
		"read_appointments", "update_appointments", "delete_appointments",
		"create_services", "update_services", "delete_services",
		"create_schedule", "update_schedule", "delete_schedule",
		"read_contact", "update_contact",
		"read_roles", "read_permissions",
	} {
		assert.True(t, seen[name], "missing seeded permission %s", name)
	}
}
