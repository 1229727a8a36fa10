package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gislain231/greenshare/controllers"
	"github.com/gislain231/greenshare/middleware"
	"github.com/gislain231/greenshare/models"
)

// SetupProviderRoutes configures the provider business routes
func SetupProviderRoutes(app *fiber.App) {
	provider := app.Group("/provider", middleware.Protected(), middleware.RequireRole(models.RoleProvider))
	provider.Get("/business", controllers.GetBusinessProfile)
	provider.Patch("/business", controllers.UpdateBusinessProfile)
	provider.Post("/business/logo", controllers.UploadBusinessLogo)
	provider.Get("/bookings", controllers.GetProviderBookings)
}
