package routes

import (
	"github.com/brightsmile/clinic-booking/controllers"
	"github.com/brightsmile/clinic-booking/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupAppointmentRoutes configures appointment management and the admin
// dashboard
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments", middleware.Protected())
	appointment.Get("/", middleware.RequirePermission("appointments", "read"), controllers.GetAllAppointments)
	appointment.Get("/:id", middleware.RequirePermission("appointments", "read"), controllers.GetAppointment)
	appointment.Patch("/:id/status", middleware.RequirePermission("appointments", "update"), controllers.UpdateAppointmentStatus)
	appointment.Delete("/:id", middleware.RequirePermission("appointments", "delete"), controllers.DeleteAppointment)

	app.Get("/dashboard", middleware.Protected(), middleware.RequirePermission("appointments", "read"), controllers.GetDashboardOverview)
}
