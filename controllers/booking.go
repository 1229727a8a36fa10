package controllers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gislain231/greenshare/db"
	"github.com/gislain231/greenshare/middleware"
	"github.com/gislain231/greenshare/models"
	"github.com/gislain231/greenshare/payments"
	"github.com/gislain231/greenshare/redis"
	"github.com/gislain231/greenshare/utils"
)

// PaymentProcessor settles confirmed bookings. main wires the simulated
// processor; tests swap in their own.
var PaymentProcessor payments.Processor = payments.NewSimulated()

type CreateDraftInput struct {
	Provider string  `json:"provider"`
	Service  string  `json:"service"`
	Price    float64 `json:"price"`
}

// CreateDraft opens a wizard session for the selected provider offer.
// The draft starts at the details step.
func CreateDraft(c *fiber.Ctx) error {
	input := new(CreateDraftInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	// A booking must reference a provider, service and price from the
	// moment the draft exists.
	if strings.TrimSpace(input.Provider) == "" || strings.TrimSpace(input.Service) == "" || input.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Provider, service and price are required",
		})
	}

	draft := models.NewBookingDraft(uuid.New().String(), input.Provider, input.Service, input.Price)
	if err := redis.SaveDraft(draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save booking draft",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(draft)
}

// GetDraft returns the current wizard state.
func GetDraft(c *fiber.Ctx) error {
	draft, err := redis.GetDraft(c.Params("id"))
	if err != nil {
		return draftError(c, err)
	}
	return c.JSON(draft)
}

type StepInput struct {
	Step          int                     `json:"step"`
	Details       *models.CustomerDetails `json:"details,omitempty"`
	PaymentMethod *models.PaymentMethod   `json:"payment_method,omitempty"`
	Card          *models.CardDetails     `json:"card,omitempty"`
}

// NextStep applies the submitted form fields, validates the current
// step and advances on success. Entering the confirm step also returns
// the synthesized booking summary.
func NextStep(c *fiber.Ctx) error {
	draft, err := redis.GetDraft(c.Params("id"))
	if err != nil {
		return draftError(c, err)
	}

	input := new(StepInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	applyStepInput(draft, input)

	if err := draft.Advance(input.Step); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Cannot advance booking",
			Error:   err.Error(),
		})
	}

	if err := redis.SaveDraft(draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save booking draft",
			Error:   err.Error(),
		})
	}

	resp := fiber.Map{"draft": draft}
	if draft.Step == models.StepConfirm {
		resp["summary"] = draft.Summary()
	}
	return c.JSON(resp)
}

// PrevStep moves the wizard backward. No validation going back.
func PrevStep(c *fiber.Ctx) error {
	draft, err := redis.GetDraft(c.Params("id"))
	if err != nil {
		return draftError(c, err)
	}

	input := new(StepInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := draft.Back(input.Step); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Cannot move booking backward",
			Error:   err.Error(),
		})
	}

	if err := redis.SaveDraft(draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save booking draft",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"draft": draft})
}

// CloseDraft discards the draft, resetting the wizard session.
func CloseDraft(c *fiber.Ctx) error {
	if err := redis.DeleteDraft(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to discard booking draft",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ConfirmBooking settles payment and persists the booking record. Only
// registered customers may confirm: anonymous callers are pointed at
// registration and their draft is discarded.
func ConfirmBooking(c *fiber.Ctx) error {
	draft, err := redis.GetDraft(c.Params("id"))
	if err != nil {
		return draftError(c, err)
	}

	if draft.Step != models.StepConfirm {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Booking is not ready to confirm",
		})
	}

	userID, registered := middleware.UserIDFromRequest(c)
	if !registered {
		if err := redis.DeleteDraft(draft.ID); err != nil {
			log.Printf("Failed to discard draft %s: %v", draft.ID, err)
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":    "Please register to complete your booking.",
			"redirect": "/auth/register",
		})
	}

	receipt, err := PaymentProcessor.Process(c.UserContext(), payments.Request{
		BookingID:   draft.ID,
		CustomerID:  userID,
		Amount:      draft.Price,
		Method:      draft.PaymentMethod,
		Description: draft.Service + " with " + draft.Provider,
	})
	if err != nil {
		return c.Status(fiber.StatusPaymentRequired).JSON(utils.ErrorResponse{
			Message: "Payment processing failed",
			Error:   err.Error(),
		})
	}

	booking := models.Booking{
		BookingID:       utils.GenerateBookingID(),
		Provider:        draft.Provider,
		Service:         draft.Service,
		Price:           draft.Price,
		PaymentMethod:   draft.PaymentMethod,
		PaymentRef:      receipt.Reference,
		FullName:        draft.Details.FullName,
		Email:           draft.Details.Email,
		Phone:           draft.Details.Phone,
		Address:         draft.Details.Address,
		ServiceDate:     draft.Details.ServiceDate,
		SpecialRequests: draft.Details.SpecialRequests,
		Status:          models.BookingConfirmed,
		CustomerID:      userID,
	}
	if err := db.DB.Create(&booking).Error; err != nil {
		log.Printf("Error creating booking: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	if err := sendMail(booking.Email, "Booking Confirmation - GreenShare", confirmationEmailBody(&booking)); err != nil {
		log.Printf("Failed to send confirmation email for booking %s: %v", booking.BookingID, err)
	}

	if err := redis.DeleteDraft(draft.ID); err != nil {
		log.Printf("Failed to discard draft %s: %v", draft.ID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking Confirmed!",
		"booking": booking,
	})
}

// ListBookings returns the caller's booking records, oldest first.
func ListBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var bookings []models.Booking
	if err := db.DB.Where("customer_id = ?", userID).Order("created_at").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

func applyStepInput(draft *models.BookingDraft, input *StepInput) {
	if input.Details != nil {
		draft.Details = *input.Details
	}
	if input.PaymentMethod != nil {
		draft.PaymentMethod = *input.PaymentMethod
	}
	if input.Card != nil {
		draft.Card = *input.Card
	}
}

func draftError(c *fiber.Ctx, err error) error {
	if err == redis.ErrDraftNotFound {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking draft not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
		Message: "Failed to load booking draft",
		Error:   err.Error(),
	})
}

func confirmationEmailBody(b *models.Booking) string {
	return `
		<p>Dear ` + b.FullName + `,</p>
		<p>Thank you for choosing GreenShare! Your booking has been confirmed.</p>
		<p><strong>Booking Details:</strong></p>
		<ul>
			<li><strong>Booking ID:</strong> ` + b.BookingID + `</li>
			<li><strong>Provider:</strong> ` + b.Provider + `</li>
			<li><strong>Service:</strong> ` + b.Service + `</li>
			<li><strong>Date:</strong> ` + b.ServiceDate + `</li>
			<li><strong>Payment Method:</strong> ` + models.PaymentMethodDisplay(b.PaymentMethod) + `</li>
			<li><strong>Total:</strong> $` + strconv.FormatFloat(b.Price, 'f', 2, 64) + `</li>
		</ul>
		<p>We will contact you soon with further details.</p>
		<p>Best regards,</p>
		<p>The GreenShare Team</p>
	`
}
