package interfaces

import (
	"context"
	"errors"

	"reservas_xpto/internal/domain/entities"
)

// ErrSessionNotFound is returned by RetrieveSession when the provider no
// longer knows the session (gone or expired beyond retrieval).
var ErrSessionNotFound = errors.New("checkout session not found")

// CreateSessionInput carries everything the provider needs to open a deposit
// checkout session. BookingID travels in the session metadata so provider
// and local records can be matched even if the local write never commits;
// IdempotencyKey is passed through so a retried call returns the original
// session instead of creating a second one.
type CreateSessionInput struct {
	AmountCents    int64
	Currency       string
	BookingID      string
	IdempotencyKey string
}

// ICheckoutGateway abstracts the external payment provider's checkout-session
// operations (e.g. Mercado Pago Checkout Pro).
//
// Each operation is a single network round trip. Implementations hold no
// state and must never be invoked while a storage transaction is open.
// ExpireSession is idempotent: a session already in a terminal state on the
// provider side is reported as success, since there is nothing left to
// compensate.
type ICheckoutGateway interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (entities.CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error)
	ExpireSession(ctx context.Context, sessionID string) error
}
