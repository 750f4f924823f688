package db

import (
	"fmt"
	"log"

	"github.com/brightsmile/clinic-booking/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Service{},
		&models.AvailabilityRule{},
		&models.BlackoutDate{},
		&models.Appointment{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedRoles()
	seedPermissions()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedRoles creates the clinic roles if they do not exist yet.
func seedRoles() {
	roles := []models.Role{
		{Name: "admin", Description: "Clinic administrator with full access"},
		{Name: "dentist", Description: "Practitioner who can manage the schedule"},
		{Name: "patient", Description: "Patient who can book appointments"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}
}

// dentistPermissions are the matrix entries granted to the dentist role.
// Admin gets the full matrix; patients act through their own JWT-scoped
// routes and hold no matrix permissions.
var dentistPermissions = []string{
	"read_appointments",
	"update_appointments",
	"create_schedule",
	"update_schedule",
	"delete_schedule",
	"read_contact",
	"update_contact",
}

// seedPermissions creates the clinic permission matrix and wires it to the
// roles. Re-running is safe: existing rows and grants are left alone.
func seedPermissions() {
	for _, perm := range models.ClinicPermissions() {
		var existing models.Permission
		if DB.Where("name = ?", perm.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&perm)
		}
	}

	grantPermissions("admin", allPermissionNames())
	grantPermissions("dentist", dentistPermissions)
}

func allPermissionNames() []string {
	var names []string
	for _, perm := range models.ClinicPermissions() {
		names = append(names, perm.Name)
	}
	return names
}

func grantPermissions(roleName string, permissionNames []string) {
	var role models.Role
	if err := DB.Preload("Permissions").Where("name = ?", roleName).First(&role).Error; err != nil {
		log.Printf("Skipping grants for missing role %s: %v", roleName, err)
		return
	}

	granted := make(map[string]bool, len(role.Permissions))
	for _, p := range role.Permissions {
		granted[p.Name] = true
	}

	for _, name := range permissionNames {
		if granted[name] {
			continue
		}
		var perm models.Permission
		if err := DB.Where("name = ?", name).First(&perm).Error; err != nil {
			log.Printf("Skipping grant of missing permission %s: %v", name, err)
			continue
		}
		if err := DB.Model(&role).Association("Permissions").Append(&perm); err != nil {
			log.Printf("Failed to grant %s to %s: %v", name, roleName, err)
		}
	}
}
