package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/gislain231/greenshare/controllers"
	"github.com/gislain231/greenshare/cron"
	"github.com/gislain231/greenshare/db"
	"github.com/gislain231/greenshare/fleet"
	"github.com/gislain231/greenshare/routes"

	greenredis "github.com/gislain231/greenshare/redis"
)

func main() {
	app := fiber.New()

	db.Migrate()
	db.Seed()
	greenredis.InitRedis()

	controllers.Fleet = fleet.NewClient(greenredis.Client)

	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("GreenShare API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupCatalogRoutes(app)
	routes.SetupProviderRoutes(app)

	if err := app.Listen(":8000"); err != nil {
		log.Fatal(err)
	}
}
