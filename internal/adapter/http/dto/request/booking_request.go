package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidBookingWindow = errors.New("ends_at must be after starts_at")
)

// CreateBookingRequest is the payload accepted by POST /v1/bookings.
//
// prior_booking_id lets a retrying client reference the booking a previous
// attempt created, so the request collapses onto the existing checkout
// session instead of opening another.
type CreateBookingRequest struct {
	CustomerID     string    `json:"customer_id" binding:"required"`
	ResourceID     string    `json:"resource_id" binding:"required"`
	StartsAt       time.Time `json:"starts_at" binding:"required"`
	EndsAt         time.Time `json:"ends_at" binding:"required"`
	CollectDeposit bool      `json:"collect_deposit"`
	PriorBookingID string    `json:"prior_booking_id"`
}

func (r CreateBookingRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}

func (r CreateBookingRequest) ResolveResourceID() string {
	return strings.TrimSpace(r.ResourceID)
}

func (r CreateBookingRequest) ResolveWindow() (time.Time, time.Time, error) {
	if r.StartsAt.IsZero() || r.EndsAt.IsZero() || !r.EndsAt.After(r.StartsAt) {
		return time.Time{}, time.Time{}, ErrInvalidBookingWindow
	}
	return r.StartsAt.UTC(), r.EndsAt.UTC(), nil
}
