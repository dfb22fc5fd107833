package entities

import (
	"errors"
	"time"
)

// DepositStatus tracks the lifecycle of a booking's deposit charge.
//
// A booking may be created without any deposit at all (none), with an open
// checkout session awaiting payment (pending), settled (paid), or with a
// payment attempt that ended badly (failed).
type DepositStatus string

const (
	DepositStatusNone    DepositStatus = "none"
	DepositStatusPending DepositStatus = "pending"
	DepositStatusPaid    DepositStatus = "paid"
	DepositStatusFailed  DepositStatus = "failed"
)

// SessionStatus mirrors the checkout-session states reported by the payment
// provider.
type SessionStatus string

const (
	SessionStatusOpen     SessionStatus = "open"
	SessionStatusComplete SessionStatus = "complete"
	SessionStatusExpired  SessionStatus = "expired"
)

// ErrInconsistentDeposit flags a booking whose deposit_status does not match
// its checkout-session linkage.
var ErrInconsistentDeposit = errors.New("booking deposit status inconsistent with checkout session linkage")

// CheckoutSession is the provider-side view of a deposit checkout. It is
// created and mutated only by the provider; locally we hold it by reference.
//
// BookingID ties the session back to the booking it was opened for, via the
// session metadata, so the two can be matched even when the local write never
// completed.
type CheckoutSession struct {
	ID              string        `json:"id"`
	URL             string        `json:"url"`
	Status          SessionStatus `json:"status"`
	PaymentIntentID string        `json:"payment_intent_id,omitempty"`
	BookingID       string        `json:"booking_id,omitempty"`
}

// Booking is the booking entity persisted by the platform.
//
// Storage model (DynamoDB):
//   - PK: id (the correlation id minted at request start)
//   - GSI1 (customer_id-index): customer_id
//
// Deposit linkage:
//   - CheckoutSessionID/PaymentIntentID reference the provider-side session;
//     they are set in the same write that creates the row, never after.
type Booking struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	ResourceID string    `json:"resource_id"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	CreatedAt  time.Time `json:"created_at"`

	DepositStatus      DepositStatus `json:"deposit_status"`
	DepositAmountCents int64         `json:"deposit_amount_cents,omitempty"`
	DepositCurrency    string        `json:"deposit_currency,omitempty"`
	CheckoutSessionID  string        `json:"checkout_session_id,omitempty"`
	PaymentIntentID    string        `json:"payment_intent_id,omitempty"`
}

// ValidateDepositLink enforces the deposit invariant: a booking holding a
// checkout session id must be pending or paid, and a booking with
// deposit_status none must hold no session id.
func (b Booking) ValidateDepositLink() error {
	if b.CheckoutSessionID != "" {
		if b.DepositStatus != DepositStatusPending && b.DepositStatus != DepositStatusPaid {
			return ErrInconsistentDeposit
		}
	}
	if b.DepositStatus == DepositStatusNone && b.CheckoutSessionID != "" {
		return ErrInconsistentDeposit
	}
	return nil
}
