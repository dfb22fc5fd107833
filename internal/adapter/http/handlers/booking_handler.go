package handlers

import (
	"errors"
	"log"
	"net/http"

	request "reservas_xpto/internal/adapter/http/dto/request"
	response "reservas_xpto/internal/adapter/http/dto/response"
	"reservas_xpto/internal/usecase"
	"reservas_xpto/internal/usecase/interfaces"
	"reservas_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	usecase usecase.IBookingCheckoutUseCase
}

func NewBookingHandler(uc usecase.IBookingCheckoutUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking creates a booking, opening a deposit checkout session when
// requested. Payment-provider trouble alone never fails the request; the
// booking comes back without a checkout_url instead.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      request.CreateBookingRequest  true  "Booking to create"
// @Success      201      {object}  response.BookingResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	startsAt, endsAt, err := payload.ResolveWindow()
	if err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	in := usecase.CreateBookingInput{
		CustomerID:     payload.ResolveCustomerID(),
		ResourceID:     payload.ResolveResourceID(),
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		CollectDeposit: payload.CollectDeposit,
		PriorBookingID: payload.PriorBookingID,
	}
	log.Printf("[booking][handler] create start customer_id=%s resource_id=%s collect_deposit=%t", in.CustomerID, in.ResourceID, in.CollectDeposit)

	res, err := h.usecase.CreateBooking(c.Request.Context(), in)
	if err != nil {
		log.Printf("[booking][handler] create failed outcome=%s err=%v", res.Outcome, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] create success booking_id=%s deposit_status=%s reused_session=%t", res.Booking.ID, res.Booking.DepositStatus, res.ReusedSession)

	status := http.StatusCreated
	if res.ReusedSession {
		status = http.StatusOK
	}
	c.JSON(status, response.FromBooking(res.Booking, res.CheckoutURL))
}

// GetBooking returns one booking by id.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        booking_id  path      string  true  "Booking id"
// @Success      200         {object}  response.BookingResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")

	b, err := h.usecase.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		log.Printf("[booking][handler] get failed booking_id=%s err=%v", bookingID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(b, ""))
}

// ListBookings returns the bookings of one customer.
//
// @Summary      List bookings by customer
// @Tags         bookings
// @Produce      json
// @Param        customer_id  query     string  true  "Customer id"
// @Success      200          {array}   response.BookingResponse
// @Failure      400          {object}  pkg.HTTPError
// @Router       /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	customerID := c.Query("customer_id")

	bookings, err := h.usecase.ListByCustomerID(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("[booking][handler] list failed customer_id=%s err=%v", customerID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidResourceID),
		errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidBookingWindow),
		errors.Is(err, usecase.ErrDepositAmountTooLarge):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrSlotUnavailable):
		return pkg.NewDomainErrorSimple("SLOT_UNAVAILABLE", "Requested slot is no longer available", http.StatusConflict)
	case errors.Is(err, interfaces.ErrBookingAlreadyExists):
		return pkg.NewDomainErrorSimple("BOOKING_EXISTS", "Booking already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
