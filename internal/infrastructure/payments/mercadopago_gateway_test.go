package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"reservas_xpto/internal/domain/entities"
	"reservas_xpto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/preference"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	_, err := NewMercadoPagoGateway("")
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMockModeSessionsAreDeterministic(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := interfaces.CreateSessionInput{AmountCents: 5000, Currency: "cad", BookingID: "b-1", IdempotencyKey: "deposit-abc"}
	first, err := g.CreateSession(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := g.CreateSession(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != second.ID || first.URL != second.URL {
		t.Fatalf("retried mock create must collapse: %+v vs %+v", first, second)
	}
	if first.Status != entities.SessionStatusOpen || first.BookingID != "b-1" {
		t.Fatalf("unexpected mock session: %+v", first)
	}

	if err := g.ExpireSession(context.Background(), first.ID); err != nil {
		t.Fatalf("mock expire should succeed, got %v", err)
	}
}

func TestSessionFromPreference(t *testing.T) {
	t.Run("live preference maps to open", func(t *testing.T) {
		s := sessionFromPreference(&preference.Response{
			ID:                "pref-1",
			InitPoint:         "https://pay.example/pref-1",
			ExternalReference: "b-1",
		})
		if s.ID != "pref-1" || s.URL != "https://pay.example/pref-1" || s.BookingID != "b-1" {
			t.Fatalf("fields not mapped: %+v", s)
		}
		if s.Status != entities.SessionStatusOpen {
			t.Fatalf("zero expiration must read as open, got %s", s.Status)
		}
	})

	t.Run("future expiration stays open", func(t *testing.T) {
		s := sessionFromPreference(&preference.Response{
			ID:               "pref-1",
			ExpirationDateTo: time.Now().Add(time.Hour),
		})
		if s.Status != entities.SessionStatusOpen {
			t.Fatalf("expected open, got %s", s.Status)
		}
	})

	t.Run("past expiration maps to expired", func(t *testing.T) {
		s := sessionFromPreference(&preference.Response{
			ID:               "pref-1",
			ExpirationDateTo: time.Now().Add(-time.Hour),
		})
		if s.Status != entities.SessionStatusExpired {
			t.Fatalf("expected expired, got %s", s.Status)
		}
	})
}

func TestIsSessionSettled(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "payment approved", err: errors.New(`{"message":"Payment already approved","status":400}`), want: true},
		{name: "preference closed", err: errors.New(`{"message":"preference already closed"}`), want: true},
		{name: "not found is not settled", err: errors.New(`{"status":404,"error":"not_found"}`), want: false},
		{name: "network error", err: errors.New("dial tcp: i/o timeout"), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isSessionSettled(tc.err); got != tc.want {
				t.Fatalf("expected %t, got %t", tc.want, got)
			}
		})
	}
}

func TestIsTerminalExpireReason(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "already expired", err: errors.New(`{"message":"Preference already expired"}`), want: true},
		{name: "already approved", err: errors.New(`{"message":"payment already approved","status":400}`), want: true},
		{name: "gone", err: errors.New(`{"status":404,"error":"not_found"}`), want: true},
		{name: "unauthorized stays fatal", err: errors.New(`{"status":401,"error":"unauthorized"}`), want: false},
		{name: "network error stays fatal", err: errors.New("dial tcp: i/o timeout"), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isTerminalExpireReason(tc.err); got != tc.want {
				t.Fatalf("expected %t, got %t", tc.want, got)
			}
		})
	}
}

func TestIsSessionNotFound(t *testing.T) {
	if isSessionNotFound(nil) {
		t.Fatalf("nil is not not-found")
	}
	if !isSessionNotFound(errors.New(`{"status":404}`)) {
		t.Fatalf("404 should classify as not-found")
	}
	if isSessionNotFound(errors.New(`{"status":500}`)) {
		t.Fatalf("500 should not classify as not-found")
	}
}
