package routes

import (
	"github.com/brightsmile/clinic-booking/controllers"
	"github.com/brightsmile/clinic-booking/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupBookingRoutes configures the public booking surface
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/booking")
	booking.Get("/availability", controllers.GetAvailability)
	booking.Post("/appointments", middleware.Protected(), controllers.BookAppointment)
	booking.Get("/appointments", middleware.Protected(), controllers.GetMyAppointments)
	booking.Patch("/appointments/:id/cancel", middleware.Protected(), controllers.CancelMyAppointment)
}
