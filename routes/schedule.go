package routes

import (
	"github.com/brightsmile/clinic-booking/controllers"
	"github.com/brightsmile/clinic-booking/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupScheduleRoutes configures availability rule and blackout date routes
func SetupScheduleRoutes(app *fiber.App) {
	rules := app.Group("/availability-rules")
	rules.Get("/", controllers.GetAllAvailabilityRules)
	rules.Get("/:id", controllers.GetAvailabilityRule)
	rules.Post("/", middleware.Protected(), middleware.RequirePermission("schedule", "create"), controllers.CreateAvailabilityRule)
	rules.Patch("/:id", middleware.Protected(), middleware.RequirePermission("schedule", "update"), controllers.UpdateAvailabilityRule)
	rules.Delete("/:id", middleware.Protected(), middleware.RequirePermission("schedule", "delete"), controllers.DeleteAvailabilityRule)

	blackouts := app.Group("/blackout-dates")
	blackouts.Get("/", controllers.GetAllBlackoutDates)
	blackouts.Post("/", middleware.Protected(), middleware.RequirePermission("schedule", "create"), controllers.CreateBlackoutDate)
	blackouts.Delete("/:id", middleware.Protected(), middleware.RequirePermission("schedule", "delete"), controllers.DeleteBlackoutDate)
}
