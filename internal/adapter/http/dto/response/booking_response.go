package response

import (
	"time"

	"reservas_xpto/internal/domain/entities"
)

type BookingResponse struct {
	BookingID  string    `json:"booking_id"`
	CustomerID string    `json:"customer_id"`
	ResourceID string    `json:"resource_id"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	CreatedAt  time.Time `json:"created_at"`

	DepositStatus      string `json:"deposit_status"`
	DepositAmountCents int64  `json:"deposit_amount_cents,omitempty"`
	DepositCurrency    string `json:"deposit_currency,omitempty"`
	CheckoutSessionID  string `json:"checkout_session_id,omitempty"`
	PaymentIntentID    string `json:"payment_intent_id,omitempty"`
	CheckoutURL        string `json:"checkout_url,omitempty"`
}

// FromBooking maps a booking to its response shape. checkoutURL is only
// known to the create flow (it lives on the provider-side session, not the
// row) and is empty on plain reads.
func FromBooking(b entities.Booking, checkoutURL string) BookingResponse {
	return BookingResponse{
		BookingID:          b.ID,
		CustomerID:         b.CustomerID,
		ResourceID:         b.ResourceID,
		StartsAt:           b.StartsAt,
		EndsAt:             b.EndsAt,
		CreatedAt:          b.CreatedAt,
		DepositStatus:      string(b.DepositStatus),
		DepositAmountCents: b.DepositAmountCents,
		DepositCurrency:    b.DepositCurrency,
		CheckoutSessionID:  b.CheckoutSessionID,
		PaymentIntentID:    b.PaymentIntentID,
		CheckoutURL:        checkoutURL,
	}
}

func FromBookings(bs []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBooking(b, ""))
	}
	return out
}
