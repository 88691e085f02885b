package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	h "coursebooking/internal/delivery/http/helpers"
	"coursebooking/internal/domain"
)

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// AttendeeInput is one attendee in a quote or order line.
type AttendeeInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// QuoteRequest is the request body for POST /products/{productID}/quote.
type QuoteRequest struct {
	SlotID         string          `json:"slot_id"`
	RequestedCount int             `json:"requested_count"`
	Attendees      []AttendeeInput `json:"attendees"`
	DeliveryMode   string          `json:"delivery_mode"`
}

// Validate implements Validator.
func (q *QuoteRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(q.SlotID) == "" {
		errs = append(errs, "slot_id is required")
	} else if !uuidRegex.MatchString(q.SlotID) {
		errs = append(errs, "slot_id must be a UUID")
	}
	if q.RequestedCount < 1 {
		errs = append(errs, "requested_count must be at least 1")
	}
	if q.DeliveryMode == "" {
		errs = append(errs, "delivery_mode is required")
	} else if !domain.DeliveryMode(q.DeliveryMode).Valid() {
		errs = append(errs, `delivery_mode must be "purchaser" or "all"`)
	}
	for i, a := range q.Attendees {
		if strings.TrimSpace(a.Name) == "" {
			errs = append(errs, fmt.Sprintf("attendees[%d].name is required", i))
		}
		if strings.TrimSpace(a.Email) == "" {
			errs = append(errs, fmt.Sprintf("attendees[%d].email is required", i))
		}
	}
	return errs
}

func (q *QuoteRequest) toBookingRequest(productID string) *domain.BookingRequest {
	attendees := make([]domain.AttendeeEntry, 0, len(q.Attendees))
	for _, a := range q.Attendees {
		attendees = append(attendees, domain.AttendeeEntry{
			Name:  strings.TrimSpace(a.Name),
			Email: strings.TrimSpace(a.Email),
		})
	}
	return &domain.BookingRequest{
		ProductID:      productID,
		SlotID:         q.SlotID,
		RequestedCount: q.RequestedCount,
		Attendees:      attendees,
		DeliveryMode:   domain.DeliveryMode(q.DeliveryMode),
	}
}

// QuoteSuccessResponse is the success response envelope for POST /products/{productID}/quote (200).
type QuoteSuccessResponse struct {
	Data  *domain.SlotAvailability `json:"data"`
	Error *h.APIError              `json:"error"`
}

// Quote godoc
// @Summary Validate a booking request against current availability
// @Description Checks that the slot belongs to the product, that the attendee list is complete, and that the slot can still hold the requested seats. Nothing is reserved; the response reflects availability at the moment of the call.
// @Tags booking
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param body body controllers.QuoteRequest true "Requested slot, seat count, and attendees"
// @Success 200 {object} controllers.QuoteSuccessResponse "data contains the slot's current availability"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not enough seats remaining)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /products/{productID}/quote [post]
func (c *BookingController) Quote(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productID")
	if productID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing productID")
		return
	}

	var req QuoteRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}

	availability, err := c.Service.Quote(r.Context(), req.toBookingRequest(productID))
	if err != nil {
		writeBookingError(c.Logger, w, r, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, availability)
}

// writeBookingError maps booking lifecycle sentinels onto the response
// envelope shared by the quote and order endpoints.
func writeBookingError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientCapacity):
		h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCount),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrReservedCharacter):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}
