// Package idempotency derives deterministic idempotency keys for calls to
// the payment provider.
//
// The provider deduplicates on the key we send, so a retried request for the
// same logical operation must produce a byte-identical key across processes
// and restarts. Keys therefore never include timestamps, counters, or random
// values; they are a pure function of the operation's identifying fields.
package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// PurposeDepositCheckout labels keys protecting the deposit checkout-session
// creation path.
const PurposeDepositCheckout = "deposit_checkout"

const (
	purposePrefixLen = 8
	digestHexLen     = 32
	tokenSeparator   = "|"
)

// Field is one tag:value token of the canonical input. Fields with an empty
// value are omitted entirely, never rendered as empty tokens, so the
// canonical form stays minimal and stable.
type Field struct {
	Tag   string
	Value string
}

// Booking tags a booking reference (the correlation id).
func Booking(id string) Field {
	return Field{Tag: "b", Value: strings.TrimSpace(id)}
}

// Amount tags an amount in minor units. Non-positive amounts are treated as
// absent.
func Amount(cents int64) Field {
	if cents <= 0 {
		return Field{Tag: "a"}
	}
	return Field{Tag: "a", Value: strconv.FormatInt(cents, 10)}
}

// Currency tags a lower-cased ISO currency code.
func Currency(code string) Field {
	return Field{Tag: "c", Value: strings.ToLower(strings.TrimSpace(code))}
}

// Org tags the owning organization.
func Org(id string) Field {
	return Field{Tag: "o", Value: strings.TrimSpace(id)}
}

// Extras renders free-form key/value pairs as x:key:value tokens, sorted by
// key so map iteration order never leaks into the derived key.
func Extras(kv map[string]string) []Field {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, Field{Tag: "x:" + k, Value: kv[k]})
	}
	return fields
}

// Derive builds the idempotency key for purpose over the given fields,
// rendered in caller order. The output is
// <first 8 chars of purpose, underscores as hyphens>-<first 32 hex chars of
// sha256 over the canonical input> and never exceeds 255 characters.
func Derive(purpose string, fields []Field) string {
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		tokens = append(tokens, f.Tag+":"+f.Value)
	}
	canonical := strings.Join(tokens, tokenSeparator)

	sum := sha256.Sum256([]byte(canonical))
	digest := hex.EncodeToString(sum[:])[:digestHexLen]

	prefix := purpose
	if len(prefix) > purposePrefixLen {
		prefix = prefix[:purposePrefixLen]
	}
	prefix = strings.ReplaceAll(prefix, "_", "-")

	return prefix + "-" + digest
}

// DepositCheckoutKey derives the key for creating a deposit checkout session
// for the given booking.
func DepositCheckoutKey(bookingID string, amountCents int64, currency string) string {
	return Derive(PurposeDepositCheckout, []Field{
		Booking(bookingID),
		Amount(amountCents),
		Currency(currency),
	})
}
