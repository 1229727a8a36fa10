package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDetails() CustomerDetails {
	return CustomerDetails{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "555-0100",
		ServiceDate: "2026-09-15",
	}
}

func TestNewBookingDraftStartsAtDetails(t *testing.T) {
	d := NewBookingDraft("d1", "EcoWash", "Full Detailing", 120)
	assert.Equal(t, StepDetails, d.Step)
	assert.Equal(t, "EcoWash", d.Provider)
	assert.Empty(t, d.PaymentMethod)
}

func TestAdvanceFromDetailsRequiresAllFields(t *testing.T) {
	required := []struct {
		name   string
		mutate func(*CustomerDetails)
	}{
		{"full_name", func(cd *CustomerDetails) { cd.FullName = "" }},
		{"email", func(cd *CustomerDetails) { cd.Email = "" }},
		{"phone", func(cd *CustomerDetails) { cd.Phone = "  " }},
		{"service_date", func(cd *CustomerDetails) { cd.ServiceDate = "" }},
	}

	for _, tc := range required {
		t.Run(tc.name, func(t *testing.T) {
			d := NewBookingDraft("d1", "EcoWash", "Full Detailing", 120)
			details := completeDetails()
			tc.mutate(&details)
			d.Details = details

			err := d.Advance(StepPayment)
			require.Error(t, err)
			assert.Equal(t, StepDetails, d.Step)
		})
	}

	d := NewBookingDraft("d1", "EcoWash", "Full Detailing", 120)
	d.Details = completeDetails()
	require.NoError(t, d.Advance(StepPayment))
	assert.Equal(t, StepPayment, d.Step)
}

func TestAdvanceFromPaymentRequiresMethod(t *testing.T) {
	d := NewBookingDraft("d1", "EcoWash", "Full Detailing", 120)
	d.Details = completeDetails()
	require.NoError(t, d.Advance(StepPayment))

	err := d.Advance(StepConfirm)
	require.Error(t, err)
	assert.Equal(t, StepPayment, d.Step)

	d.PaymentMethod = PaymentPayPal
	require.NoError(t, d.Advance(StepConfirm))
	assert.Equal(t, StepConfirm, d.Step)
}

func TestAdvanceCardRequiresCardDetails(t *testing.T) {
	d := NewBookingDraft("d1", "EcoWash", "Full Detailing", 120)
	d.Details = completeDetails()
	require.NoError(t, d.Advance(StepPayment))
	d.PaymentMethod = PaymentCard

	cases := []struct {
		name string
		card CardDetails
		ok   bool
	}{
		{"missing number", CardDetails{Expiry: "12/27", CVV: "123"}, false},
		{"missing expiry", CardDetails{Number: "4242424242424242", CVV: "123"}, false},
		{"missing cvv", CardDetails{Number: "4242424242424242", Expiry: "12/27"}, false},
		{"complete", CardDetails{Number: "4242424242424242", Expiry: "12/27", CVV: "123"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := *d
			draft.Card = tc.card
			err := draft.Advance(StepConfirm)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, StepConfirm, draft.Step)
			} else {
				require.Error(t, err)
				assert.Equal(t, StepPayment, draft.Step)
			}
		})
	}
}

func TestAdvanceRejectsNonForwardTransitions(t *testing.T) {
	d := NewBookingDraft("d1", "EcoWash", "Full Detailing", 120)
	d.Details = completeDetails()

	require.Error(t, d.Advance(StepDetails))
	require.Error(t, d.Advance(4))
	assert.Equal(t, StepDetails, d.Step)
}

func TestBackIsUnconditional(t *testing.T) {
	d := NewBookingDraft("d1", "EcoWash", "Full Detailing", 120)
	d.Details = completeDetails()
	d.PaymentMethod = PaymentMobile
	require.NoError(t, d.Advance(StepPayment))
	require.NoError(t, d.Advance(StepConfirm))

	// Going back never validates, even after clearing the form.
	d.Details = CustomerDetails{}
	require.NoError(t, d.Back(StepDetails))
	assert.Equal(t, StepDetails, d.Step)

	require.Error(t, d.Back(StepDetails))
	require.Error(t, d.Back(0))
}

func TestSummaryMirrorsDraft(t *testing.T) {
	d := NewBookingDraft("d1", "EcoWash", "Full Detailing", 120)
	d.Details = completeDetails()
	d.Details.SpecialRequests = "please use unscented products"
	d.PaymentMethod = PaymentCard

	s := d.Summary()
	assert.Equal(t, "EcoWash", s.Provider)
	assert.Equal(t, "Full Detailing", s.Service)
	assert.Equal(t, "2026-09-15", s.Date)
	assert.Equal(t, 120.0, s.Price)
	assert.Equal(t, "Jane Doe", s.FullName)
	assert.Equal(t, "Credit/Debit Card", s.PaymentMethod)
	assert.Equal(t, "please use unscented products", s.SpecialRequests)
}

func TestPaymentMethodDisplay(t *testing.T) {
	assert.Equal(t, "Credit/Debit Card", PaymentMethodDisplay(PaymentCard))
	assert.Equal(t, "PayPal", PaymentMethodDisplay(PaymentPayPal))
	assert.Equal(t, "Mobile Money", PaymentMethodDisplay(PaymentMobile))
	assert.Equal(t, "Not selected", PaymentMethodDisplay(""))
}
