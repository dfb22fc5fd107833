package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reservas_xpto/internal/domain/entities"
	"reservas_xpto/internal/usecase"
	"reservas_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

type fakeBookingUseCase struct {
	createRes usecase.CreateBookingResult
	createErr error
	getRes    entities.Booking
	getErr    error
	listRes   []entities.Booking
	listErr   error

	gotInput usecase.CreateBookingInput
}

func (f *fakeBookingUseCase) CreateBooking(_ context.Context, in usecase.CreateBookingInput) (usecase.CreateBookingResult, error) {
	f.gotInput = in
	return f.createRes, f.createErr
}

func (f *fakeBookingUseCase) GetByID(context.Context, string) (entities.Booking, error) {
	return f.getRes, f.getErr
}

func (f *fakeBookingUseCase) ListByCustomerID(context.Context, string) ([]entities.Booking, error) {
	return f.listRes, f.listErr
}

func setupRouter(uc usecase.IBookingCheckoutUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(uc)
	r.POST("/v1/bookings", h.CreateBooking)
	r.GET("/v1/bookings/:booking_id", h.GetBooking)
	r.GET("/v1/bookings", h.ListBookings)
	return r
}

const validCreateBody = `{
	"customer_id": "cust-1",
	"resource_id": "court-7",
	"starts_at": "2026-03-14T10:00:00Z",
	"ends_at": "2026-03-14T11:00:00Z",
	"collect_deposit": true
}`

func TestCreateBookingHandler(t *testing.T) {
	t.Run("success with checkout url", func(t *testing.T) {
		fake := &fakeBookingUseCase{createRes: usecase.CreateBookingResult{
			Booking:     entities.Booking{ID: "b-1", DepositStatus: entities.DepositStatusPending, CheckoutSessionID: "pref-1"},
			CheckoutURL: "https://pay.example/pref-1",
			Outcome:     usecase.OutcomeCommitted,
		}}
		r := setupRouter(fake)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(validCreateBody))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["booking_id"] != "b-1" || body["checkout_url"] != "https://pay.example/pref-1" {
			t.Fatalf("unexpected body: %v", body)
		}
		if !fake.gotInput.CollectDeposit || fake.gotInput.CustomerID != "cust-1" {
			t.Fatalf("unexpected usecase input: %+v", fake.gotInput)
		}
	})

	t.Run("reused session returns 200", func(t *testing.T) {
		fake := &fakeBookingUseCase{createRes: usecase.CreateBookingResult{
			Booking:       entities.Booking{ID: "b-1", DepositStatus: entities.DepositStatusPending, CheckoutSessionID: "pref-1"},
			CheckoutURL:   "https://pay.example/pref-1",
			Outcome:       usecase.OutcomeCommitted,
			ReusedSession: true,
		}}
		r := setupRouter(fake)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(validCreateBody))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for retry collapse, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r := setupRouter(&fakeBookingUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(`{`))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("inverted window", func(t *testing.T) {
		r := setupRouter(&fakeBookingUseCase{})

		body := `{"customer_id":"c","resource_id":"r","starts_at":"2026-03-14T11:00:00Z","ends_at":"2026-03-14T10:00:00Z"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("slot conflict maps to 409 with original code", func(t *testing.T) {
		fake := &fakeBookingUseCase{
			createRes: usecase.CreateBookingResult{Outcome: usecase.OutcomeFailedCompensated, Cause: interfaces.ErrSlotUnavailable},
			createErr: interfaces.ErrSlotUnavailable,
		}
		r := setupRouter(fake)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(validCreateBody))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "SLOT_UNAVAILABLE" {
			t.Fatalf("caller must see the domain conflict, got %v", body)
		}
	})
}

func TestGetBookingHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fake := &fakeBookingUseCase{getRes: entities.Booking{ID: "b-1", DepositStatus: entities.DepositStatusNone}}
		r := setupRouter(fake)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/b-1", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		fake := &fakeBookingUseCase{getErr: usecase.ErrBookingNotFound}
		r := setupRouter(fake)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/missing", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestListBookingsHandler(t *testing.T) {
	t.Run("missing customer_id", func(t *testing.T) {
		fake := &fakeBookingUseCase{listErr: usecase.ErrInvalidCustomerID}
		r := setupRouter(fake)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		fake := &fakeBookingUseCase{listRes: []entities.Booking{{ID: "b-1"}, {ID: "b-2"}}}
		r := setupRouter(fake)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/bookings?customer_id=cust-1", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
			t.Fatalf("expected 2 bookings, got %s", w.Body.String())
		}
	})
}
