package entities

import "testing"

func TestBookingValidateDepositLink(t *testing.T) {
	cases := []struct {
		name    string
		booking Booking
		wantErr bool
	}{
		{name: "no deposit no session", booking: Booking{DepositStatus: DepositStatusNone}},
		{name: "pending with session", booking: Booking{DepositStatus: DepositStatusPending, CheckoutSessionID: "pref-1"}},
		{name: "paid with session", booking: Booking{DepositStatus: DepositStatusPaid, CheckoutSessionID: "pref-1"}},
		{name: "pending without session", booking: Booking{DepositStatus: DepositStatusPending}},
		{name: "none with session", booking: Booking{DepositStatus: DepositStatusNone, CheckoutSessionID: "pref-1"}, wantErr: true},
		{name: "failed with session", booking: Booking{DepositStatus: DepositStatusFailed, CheckoutSessionID: "pref-1"}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.booking.ValidateDepositLink()
			if tc.wantErr && err == nil {
				t.Fatalf("expected ErrInconsistentDeposit, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
