package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gislain231/greenshare/controllers"
)

// SetupCatalogRoutes configures the read-only catalog routes
func SetupCatalogRoutes(app *fiber.App) {
	app.Get("/vehicles", controllers.GetVehicles)
	app.Get("/detailing/services", controllers.GetDetailingServices)
	app.Post("/contact", controllers.Contact)
}
