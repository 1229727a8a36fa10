package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gislain231/greenshare/controllers"
	"github.com/gislain231/greenshare/middleware"
)

// SetupBookingRoutes configures the booking wizard and booking records
func SetupBookingRoutes(app *fiber.App) {
	bookings := app.Group("/bookings")

	// Wizard sessions. Confirm handles authentication itself: anonymous
	// callers get the register redirect instead of a bare 401.
	drafts := bookings.Group("/drafts")
	drafts.Post("/", controllers.CreateDraft)
	drafts.Get("/:id", controllers.GetDraft)
	drafts.Post("/:id/next", controllers.NextStep)
	drafts.Post("/:id/back", controllers.PrevStep)
	drafts.Post("/:id/confirm", controllers.ConfirmBooking)
	drafts.Delete("/:id", controllers.CloseDraft)

	// Finalized records (append-only, no update or delete)
	bookings.Get("/", middleware.Protected(), controllers.ListBookings)
}
