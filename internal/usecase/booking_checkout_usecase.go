package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"reservas_xpto/internal/domain/entities"
	"reservas_xpto/internal/idempotency"
	"reservas_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrInvalidBookingID      = errors.New("invalid booking id")
	ErrInvalidCustomerID     = errors.New("invalid customer_id")
	ErrInvalidResourceID     = errors.New("invalid resource_id")
	ErrInvalidBookingWindow  = errors.New("booking end must be after start")
	ErrDepositAmountTooLarge = errors.New("deposit amount exceeds configured maximum")
	ErrBookingStoreNotSet    = errors.New("booking store not configured")
)

// Outcome classifies how a create request ended, so callers can branch on
// the protocol result without depending on error identity.
type Outcome string

const (
	OutcomeCommitted                Outcome = "committed"
	OutcomeFailedCompensated        Outcome = "failed_compensated"
	OutcomeFailedCompensationFailed Outcome = "failed_compensation_failed"
)

// DepositConfig carries the deposit policy the orchestrator applies. It is
// passed in explicitly at construction; the usecase reads no environment.
type DepositConfig struct {
	AmountCents    int64
	Currency       string
	MaxAmountCents int64
	Purpose        string
}

type CreateBookingInput struct {
	CustomerID string
	ResourceID string
	StartsAt   time.Time
	EndsAt     time.Time

	// CollectDeposit asks for a deposit checkout session. Whether one is
	// actually opened also depends on the configured amount and on the
	// provider being reachable; provider trouble downgrades the deposit
	// instead of failing the booking.
	CollectDeposit bool

	// PriorBookingID references the booking a previous attempt of this same
	// logical request created, e.g. a browser retry. When it still holds an
	// open session the request collapses onto it instead of opening another.
	PriorBookingID string
}

// CreateBookingResult reports the protocol outcome alongside the booking.
// Cause and CompensationErr are observability fields; the original failure
// is also returned unchanged as the error value of CreateBooking.
type CreateBookingResult struct {
	Booking           entities.Booking
	CheckoutURL       string
	Outcome           Outcome
	Cause             error
	CompensationErr   error
	DepositDowngraded bool
	ReusedSession     bool
}

// IBookingCheckoutUseCase creates bookings, collecting a deposit through the
// checkout gateway when required.
type IBookingCheckoutUseCase interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (CreateBookingResult, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Booking, error)
}

// BookingCheckoutUseCase drives the two-phase create protocol:
//
//	phase 1 (no storage transaction): mint a correlation id, run the
//	idempotent-retry guard, then create the checkout session when required.
//	phase 2 (single short transaction, no external I/O): claim the slot and
//	insert the booking row.
//
// If phase 2 fails after a session was obtained, the session is expired
// best-effort and the original phase-2 error is returned unchanged.
//
// The struct holds no cross-request mutable state; concurrency safety comes
// from the provider-side idempotency key and the retry guard, not from
// locking.
type BookingCheckoutUseCase struct {
	store   interfaces.IBookingStore
	gateway interfaces.ICheckoutGateway
	cfg     DepositConfig
}

var _ IBookingCheckoutUseCase = (*BookingCheckoutUseCase)(nil)

func NewBookingCheckoutUseCase(store interfaces.IBookingStore, gateway interfaces.ICheckoutGateway, cfg DepositConfig) *BookingCheckoutUseCase {
	if cfg.Purpose == "" {
		cfg.Purpose = idempotency.PurposeDepositCheckout
	}
	cfg.Currency = strings.ToLower(strings.TrimSpace(cfg.Currency))
	return &BookingCheckoutUseCase{store: store, gateway: gateway, cfg: cfg}
}

func (u *BookingCheckoutUseCase) CreateBooking(ctx context.Context, in CreateBookingInput) (CreateBookingResult, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.ResourceID = strings.TrimSpace(in.ResourceID)
	in.PriorBookingID = strings.TrimSpace(in.PriorBookingID)
	if err := u.validate(in); err != nil {
		return CreateBookingResult{}, err
	}

	collect := in.CollectDeposit && u.cfg.AmountCents > 0

	// Idempotent-retry guard: a repeat of the same logical request collapses
	// onto the prior booking's still-open session instead of opening a new
	// one. A dead session falls through to a fresh create.
	if collect && u.gateway != nil && in.PriorBookingID != "" {
		if res, ok := u.reuseExistingSession(ctx, in.PriorBookingID); ok {
			return res, nil
		}
	}

	correlationID := uuid.NewString()
	log.Printf("[booking][usecase] create start booking_id=%s customer_id=%s resource_id=%s collect_deposit=%t", correlationID, in.CustomerID, in.ResourceID, collect)

	booking := entities.Booking{
		ID:            correlationID,
		CustomerID:    in.CustomerID,
		ResourceID:    in.ResourceID,
		StartsAt:      in.StartsAt.UTC(),
		EndsAt:        in.EndsAt.UTC(),
		CreatedAt:     time.Now().UTC(),
		DepositStatus: entities.DepositStatusNone,
	}

	// Phase 1: all external I/O happens here, before any storage
	// transaction is opened.
	session, haveSession, downgraded := u.obtainSession(ctx, correlationID, collect)
	if haveSession {
		booking.DepositStatus = entities.DepositStatusPending
		booking.DepositAmountCents = u.cfg.AmountCents
		booking.DepositCurrency = u.cfg.Currency
		booking.CheckoutSessionID = session.ID
		booking.PaymentIntentID = session.PaymentIntentID
	}

	// Phase 2: one short transaction, staging only, no network calls.
	err := u.store.WithTransaction(ctx, func(tx interfaces.BookingTx) error {
		if err := tx.ClaimSlot(booking.ResourceID, booking.StartsAt); err != nil {
			return err
		}
		return tx.Insert(booking)
	})
	if err != nil {
		log.Printf("[booking][usecase] persist failed booking_id=%s err=%v", correlationID, err)
		return u.compensate(ctx, correlationID, session, haveSession, err)
	}

	res := CreateBookingResult{
		Booking:           booking,
		Outcome:           OutcomeCommitted,
		DepositDowngraded: downgraded,
	}
	if haveSession {
		res.CheckoutURL = session.URL
	}
	log.Printf("[booking][usecase] create success booking_id=%s deposit_status=%s session_id=%s", correlationID, booking.DepositStatus, booking.CheckoutSessionID)
	return res, nil
}

func (u *BookingCheckoutUseCase) validate(in CreateBookingInput) error {
	if u.store == nil {
		return ErrBookingStoreNotSet
	}
	if in.CustomerID == "" {
		return ErrInvalidCustomerID
	}
	if in.ResourceID == "" {
		return ErrInvalidResourceID
	}
	if in.StartsAt.IsZero() || in.EndsAt.IsZero() || !in.EndsAt.After(in.StartsAt) {
		return ErrInvalidBookingWindow
	}
	if in.CollectDeposit && u.cfg.MaxAmountCents > 0 && u.cfg.AmountCents > u.cfg.MaxAmountCents {
		return ErrDepositAmountTooLarge
	}
	return nil
}

// obtainSession creates the deposit checkout session for a new booking.
// Provider failures never fail the booking: the deposit requirement is
// downgraded and the reason kept for observability only.
func (u *BookingCheckoutUseCase) obtainSession(ctx context.Context, correlationID string, collect bool) (session entities.CheckoutSession, haveSession, downgraded bool) {
	if !collect {
		return entities.CheckoutSession{}, false, false
	}
	if u.gateway == nil {
		log.Printf("[booking][usecase] event=deposit_downgraded booking_id=%s reason=gateway_not_configured", correlationID)
		return entities.CheckoutSession{}, false, true
	}

	key := idempotency.Derive(u.cfg.Purpose, []idempotency.Field{
		idempotency.Booking(correlationID),
		idempotency.Amount(u.cfg.AmountCents),
		idempotency.Currency(u.cfg.Currency),
	})
	s, err := u.gateway.CreateSession(ctx, interfaces.CreateSessionInput{
		AmountCents:    u.cfg.AmountCents,
		Currency:       u.cfg.Currency,
		BookingID:      correlationID,
		IdempotencyKey: key,
	})
	if err != nil {
		log.Printf("[booking][usecase] event=deposit_downgraded booking_id=%s reason=%v", correlationID, err)
		return entities.CheckoutSession{}, false, true
	}
	log.Printf("[booking][usecase] session obtained booking_id=%s session_id=%s", correlationID, s.ID)
	return s, true, false
}

// reuseExistingSession implements the retry guard. It only short-circuits
// when the prior booking still references a retrievable session; every other
// path reports false and lets the caller run the full protocol.
func (u *BookingCheckoutUseCase) reuseExistingSession(ctx context.Context, priorID string) (CreateBookingResult, bool) {
	prior, err := u.store.FindByCorrelationID(ctx, priorID)
	if err != nil || prior.ID == "" {
		return CreateBookingResult{}, false
	}
	if prior.CheckoutSessionID == "" {
		return CreateBookingResult{}, false
	}
	if prior.DepositStatus != entities.DepositStatusPending && prior.DepositStatus != entities.DepositStatusPaid {
		return CreateBookingResult{}, false
	}

	session, err := u.gateway.RetrieveSession(ctx, prior.CheckoutSessionID)
	if err != nil {
		// Session is gone or expired on the provider side; fall through to a
		// fresh create rather than failing the retry.
		log.Printf("[booking][usecase] retry-guard retrieve failed booking_id=%s session_id=%s err=%v", prior.ID, prior.CheckoutSessionID, err)
		return CreateBookingResult{}, false
	}

	log.Printf("[booking][usecase] retry collapsed onto existing session booking_id=%s session_id=%s", prior.ID, session.ID)
	return CreateBookingResult{
		Booking:       prior,
		CheckoutURL:   session.URL,
		Outcome:       OutcomeCommitted,
		ReusedSession: true,
	}, true
}

// compensate expires the session obtained in phase 1, best-effort, and
// re-raises the original phase-2 error unchanged. An expire failure is
// recorded for alerting but never masks the real cause and is never retried
// synchronously. When no session was obtained there is nothing external to
// undo and the failure still reports failed_compensated: compensation is
// vacuously done.
func (u *BookingCheckoutUseCase) compensate(ctx context.Context, correlationID string, session entities.CheckoutSession, haveSession bool, cause error) (CreateBookingResult, error) {
	res := CreateBookingResult{Outcome: OutcomeFailedCompensated, Cause: cause}
	if haveSession {
		if expErr := u.gateway.ExpireSession(ctx, session.ID); expErr != nil {
			log.Printf("[booking][usecase] event=session_cancel_failed booking_id=%s session_id=%s reason=%v", correlationID, session.ID, expErr)
			res.Outcome = OutcomeFailedCompensationFailed
			res.CompensationErr = expErr
		} else {
			log.Printf("[booking][usecase] session expired after persist failure booking_id=%s session_id=%s", correlationID, session.ID)
		}
	}
	return res, cause
}

func (u *BookingCheckoutUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.store.FindByCorrelationID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingCheckoutUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Booking, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.store.ListByCustomerID(ctx, customerID)
}
