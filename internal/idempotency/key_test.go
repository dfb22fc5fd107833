package idempotency

import (
	"strings"
	"testing"
)

func TestDeriveDeterminism(t *testing.T) {
	fields := []Field{Booking("B1"), Amount(5000), Currency("cad")}

	first := Derive(PurposeDepositCheckout, fields)
	second := Derive(PurposeDepositCheckout, fields)
	if first != second {
		t.Fatalf("expected identical keys, got %q and %q", first, second)
	}
	if len(first) > 255 {
		t.Fatalf("key exceeds 255 chars: %d", len(first))
	}
	if !strings.HasPrefix(first, "deposit-") {
		t.Fatalf("expected purpose prefix with underscores hyphenated, got %q", first)
	}
}

func TestDepositCheckoutKeyReproducible(t *testing.T) {
	first := DepositCheckoutKey("B1", 5000, "cad")
	second := DepositCheckoutKey("B1", 5000, "cad")
	if first != second {
		t.Fatalf("expected byte-identical keys, got %q and %q", first, second)
	}
	if len(first) > 255 {
		t.Fatalf("key exceeds 255 chars: %d", len(first))
	}
}

func TestDeriveDistinguishesInputs(t *testing.T) {
	base := DepositCheckoutKey("B1", 5000, "cad")
	cases := []struct {
		name string
		key  string
	}{
		{name: "different booking", key: DepositCheckoutKey("B2", 5000, "cad")},
		{name: "different amount", key: DepositCheckoutKey("B1", 5001, "cad")},
		{name: "different currency", key: DepositCheckoutKey("B1", 5000, "usd")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.key == base {
				t.Fatalf("expected distinct key for %s", tc.name)
			}
		})
	}
}

func TestDeriveCurrencyCaseInsensitive(t *testing.T) {
	if DepositCheckoutKey("B1", 5000, "CAD") != DepositCheckoutKey("B1", 5000, "cad") {
		t.Fatalf("currency should be lower-cased before hashing")
	}
}

func TestDeriveOmitsAbsentFields(t *testing.T) {
	// An absent field must be omitted entirely, not rendered as an empty
	// token, so dropping it changes the digest while re-deriving without it
	// stays stable.
	withOrg := Derive("purpose", []Field{Booking("B1"), Org("acme")})
	withoutOrg := Derive("purpose", []Field{Booking("B1")})
	emptyOrg := Derive("purpose", []Field{Booking("B1"), Org("")})

	if withOrg == withoutOrg {
		t.Fatalf("org field should contribute to the digest")
	}
	if emptyOrg != withoutOrg {
		t.Fatalf("empty org should derive identically to an absent org")
	}
}

func TestDeriveExtrasSortedByKey(t *testing.T) {
	a := Derive("p", Extras(map[string]string{"zeta": "1", "alpha": "2"}))
	b := Derive("p", Extras(map[string]string{"alpha": "2", "zeta": "1"}))
	if a != b {
		t.Fatalf("extras must be order-independent, got %q and %q", a, b)
	}
}

func TestDeriveShortPurpose(t *testing.T) {
	key := Derive("pay", []Field{Booking("B1")})
	if !strings.HasPrefix(key, "pay-") {
		t.Fatalf("short purposes are used whole, got %q", key)
	}
	if len(key) > 255 {
		t.Fatalf("key exceeds 255 chars: %d", len(key))
	}
}
