package routes

import (
	"github.com/brightsmile/clinic-booking/controllers"
	"github.com/brightsmile/clinic-booking/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupRBACRoutes configures all RBAC related routes. Roles and the
// permission matrix are seeded at migration time, so the write surface is
// limited to assigning roles and restoring permission rows.
func SetupRBACRoutes(app *fiber.App) {
	rbac := app.Group("/rbac", middleware.Protected())

	rbac.Get("/roles", middleware.RequirePermission("roles", "read"), controllers.GetRoles)

	rbac.Post("/permissions", middleware.RequireRole("admin"), controllers.CreatePermission)
	rbac.Get("/permissions", middleware.RequirePermission("permissions", "read"), controllers.GetPermissions)

	rbac.Post("/users/role", middleware.RequireRole("admin"), controllers.AssignRoleToUser)
}
