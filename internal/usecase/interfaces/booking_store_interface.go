package interfaces

import (
	"context"
	"errors"
	"time"

	"reservas_xpto/internal/domain/entities"
)

var (
	ErrBookingAlreadyExists = errors.New("booking already exists")
	ErrSlotUnavailable      = errors.New("slot unavailable")
)

// BookingTx stages writes inside a WithTransaction scope. Staging performs
// no I/O; everything staged commits atomically when the closure returns nil
// and is discarded otherwise.
type BookingTx interface {
	Insert(b entities.Booking) error
	ClaimSlot(resourceID string, startsAt time.Time) error
}

// IBookingStore abstracts durable booking persistence.
//
// WithTransaction scopes a single short transaction around fn. The scope
// must stay free of external I/O; the orchestrator only talks to the payment
// provider strictly before the call and after it returns.
type IBookingStore interface {
	WithTransaction(ctx context.Context, fn func(tx BookingTx) error) error
	FindByCorrelationID(ctx context.Context, id string) (entities.Booking, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Booking, error)
}
