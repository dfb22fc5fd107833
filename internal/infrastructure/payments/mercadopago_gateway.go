package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"reservas_xpto/internal/domain/entities"
	"reservas_xpto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const depositItemTitle = "Booking deposit"

// terminalExpireReasons enumerates the provider responses that mean the
// session is already settled or already expired: expiring it again is a
// no-op, not a compensation failure. Matching is deliberately restricted to
// these reasons; any other provider error surfaces as a real failure so
// genuine compensation problems are never swallowed.
var terminalExpireReasons = []string{
	"preference already expired",
	"expired preference",
	"preference already closed",
	"payment already approved",
	"\"status\":404",
	"not found",
}

// settledSessionReasons are the provider responses on retrieval that mean the
// session's payment already went through. A settled session is reported as
// complete, not as an error.
var settledSessionReasons = []string{
	"payment already approved",
	"preference already closed",
}

// MercadoPagoGateway implements the checkout gateway over Mercado Pago
// Checkout Pro preferences. A preference is the provider's checkout session:
// created with an init-point URL, retrievable by id, and expired by shifting
// its expiration window into the past.
//
// The gateway holds no state; in mock mode responses are derived
// deterministically from the inputs so retried calls still collapse.
type MercadoPagoGateway struct {
	prefs    preference.Client
	mockMode bool
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[checkout][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[checkout][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[checkout][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[checkout][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{prefs: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateSession(ctx context.Context, in interfaces.CreateSessionInput) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		s := mockSession(in.IdempotencyKey, in.BookingID)
		log.Printf("[checkout][gateway] mock create success session_id=%s booking_id=%s", s.ID, in.BookingID)
		return s, nil
	}
	if g == nil || g.prefs == nil {
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[checkout][gateway] create start booking_id=%s amount_cents=%d currency=%s", in.BookingID, in.AmountCents, in.Currency)
	req := preference.Request{
		Items: []preference.ItemRequest{{
			ID:         in.BookingID,
			Title:      depositItemTitle,
			Quantity:   1,
			CurrencyID: strings.ToUpper(strings.TrimSpace(in.Currency)),
			UnitPrice:  float64(in.AmountCents) / 100,
		}},
		ExternalReference: in.BookingID,
		Metadata: map[string]any{
			"booking_id":      in.BookingID,
			"idempotency_key": in.IdempotencyKey,
		},
	}

	resp, err := g.prefs.Create(ctx, req)
	if err != nil {
		log.Printf("[checkout][gateway] create failed booking_id=%s err=%v", in.BookingID, err)
		return entities.CheckoutSession{}, err
	}
	log.Printf("[checkout][gateway] create success booking_id=%s session_id=%s", in.BookingID, resp.ID)

	return sessionFromPreference(resp), nil
}

func (g *MercadoPagoGateway) RetrieveSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		return entities.CheckoutSession{
			ID:     sessionID,
			URL:    "https://sandbox.mercadopago.local/checkout/" + sessionID,
			Status: entities.SessionStatusOpen,
		}, nil
	}
	if g == nil || g.prefs == nil {
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.prefs.Get(ctx, sessionID)
	if err != nil {
		if isSessionSettled(err) {
			log.Printf("[checkout][gateway] retrieve settled session_id=%s", sessionID)
			return entities.CheckoutSession{ID: sessionID, Status: entities.SessionStatusComplete}, nil
		}
		if isSessionNotFound(err) {
			log.Printf("[checkout][gateway] retrieve not-found session_id=%s", sessionID)
			return entities.CheckoutSession{}, interfaces.ErrSessionNotFound
		}
		log.Printf("[checkout][gateway] retrieve failed session_id=%s err=%v", sessionID, err)
		return entities.CheckoutSession{}, err
	}
	return sessionFromPreference(resp), nil
}

func (g *MercadoPagoGateway) ExpireSession(ctx context.Context, sessionID string) error {
	if g != nil && g.mockMode {
		log.Printf("[checkout][gateway] mock expire success session_id=%s", sessionID)
		return nil
	}
	if g == nil || g.prefs == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	now := time.Now().UTC()
	_, err := g.prefs.Update(ctx, sessionID, preference.Request{
		Expires:          true,
		ExpirationDateTo: &now,
	})
	if err != nil {
		if isTerminalExpireReason(err) {
			log.Printf("[checkout][gateway] expire no-op, session already terminal session_id=%s reason=%v", sessionID, err)
			return nil
		}
		log.Printf("[checkout][gateway] expire failed session_id=%s err=%v", sessionID, err)
		return err
	}
	log.Printf("[checkout][gateway] expire success session_id=%s", sessionID)
	return nil
}

func sessionFromPreference(resp *preference.Response) entities.CheckoutSession {
	s := entities.CheckoutSession{
		ID:        resp.ID,
		URL:       resp.InitPoint,
		Status:    entities.SessionStatusOpen,
		BookingID: resp.ExternalReference,
	}
	if !resp.ExpirationDateTo.IsZero() && resp.ExpirationDateTo.Before(time.Now()) {
		s.Status = entities.SessionStatusExpired
	}
	return s
}

// mockSession derives a stable session from the idempotency key so repeated
// mock calls behave like provider-side dedup.
func mockSession(idempotencyKey, bookingID string) entities.CheckoutSession {
	id := "mock-" + idempotencyKey
	return entities.CheckoutSession{
		ID:        id,
		URL:       "https://sandbox.mercadopago.local/checkout/" + id,
		Status:    entities.SessionStatusOpen,
		BookingID: bookingID,
	}
}

func isSessionNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"status\":404") || strings.Contains(msg, "not found")
}

func isSessionSettled(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, reason := range settledSessionReasons {
		if strings.Contains(msg, reason) {
			return true
		}
	}
	return false
}

func isTerminalExpireReason(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, reason := range terminalExpireReasons {
		if strings.Contains(msg, reason) {
			return true
		}
	}
	return false
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
