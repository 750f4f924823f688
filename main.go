package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/brightsmile/clinic-booking/cron"
	"github.com/brightsmile/clinic-booking/db"
	"github.com/brightsmile/clinic-booking/redis"
	"github.com/brightsmile/clinic-booking/routes"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		db.Migrate()
		return
	}

	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("BrightSmile booking API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupRBACRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupScheduleRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupContactRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
