package payments

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/gislain231/greenshare/models"
)

// Request describes a charge for one booking.
type Request struct {
	BookingID   string
	CustomerID  uint
	Amount      float64
	Method      models.PaymentMethod
	Description string
}

// Receipt is the processor's answer for a settled charge.
type Receipt struct {
	Reference   string    `json:"reference"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Processor settles a charge with an external payment service.
type Processor interface {
	Process(ctx context.Context, req Request) (*Receipt, error)
}

// Simulated is the development processor: it waits out a configured
// processing delay and settles every valid charge.
type Simulated struct {
	Delay time.Duration
}

// NewSimulated builds a Simulated processor. The delay comes from
// PAYMENT_PROCESSING_DELAY (Go duration syntax) and defaults to 3s.
func NewSimulated() *Simulated {
	delay := 3 * time.Second
	if v := os.Getenv("PAYMENT_PROCESSING_DELAY"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			delay = parsed
		}
	}
	return &Simulated{Delay: delay}
}

func (p *Simulated) Process(ctx context.Context, req Request) (*Receipt, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	select {
	case <-time.After(p.Delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &Receipt{
		Reference:   "pi_" + uuid.New().String(),
		Amount:      req.Amount,
		Method:      string(req.Method),
		Status:      "paid",
		ProcessedAt: time.Now(),
	}, nil
}

func validateRequest(req Request) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.CustomerID == 0 {
		return errors.New("missing customer ID")
	}
	switch req.Method {
	case models.PaymentCard, models.PaymentPayPal, models.PaymentMobile:
		return nil
	}
	return errors.New("unsupported method")
}
