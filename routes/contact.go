package routes

import (
	"github.com/brightsmile/clinic-booking/controllers"
	"github.com/brightsmile/clinic-booking/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupContactRoutes configures the contact form routes
func SetupContactRoutes(app *fiber.App) {
	app.Post("/contact", controllers.CreateContactMessage)

	messages := app.Group("/contact-messages", middleware.Protected())
	messages.Get("/", middleware.RequirePermission("contact", "read"), controllers.GetContactMessages)
	messages.Patch("/:id/handled", middleware.RequirePermission("contact", "update"), controllers.MarkContactMessageHandled)
}
