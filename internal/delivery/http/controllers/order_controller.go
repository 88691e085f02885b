package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	h "coursebooking/internal/delivery/http/helpers"
	"coursebooking/internal/domain"
)

type OrderController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewOrderController(logger *slog.Logger, svc domain.BookingService) *OrderController {
	return &OrderController{
		Logger:  logger,
		Service: svc,
	}
}

// OrderLineInput is one line of the request body for POST /orders.
type OrderLineInput struct {
	ProductID      string          `json:"product_id"`
	SlotID         string          `json:"slot_id"`
	RequestedCount int             `json:"requested_count"`
	Attendees      []AttendeeInput `json:"attendees"`
	DeliveryMode   string          `json:"delivery_mode"`
}

// PlaceOrderRequest is the request body for POST /orders.
type PlaceOrderRequest struct {
	PurchaserEmail string           `json:"purchaser_email"`
	Lines          []OrderLineInput `json:"lines"`
}

// Validate implements Validator.
func (p *PlaceOrderRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.PurchaserEmail) == "" {
		errs = append(errs, "purchaser_email is required")
	}
	if len(p.Lines) == 0 {
		errs = append(errs, "at least one line is required")
	}
	for i, l := range p.Lines {
		if strings.TrimSpace(l.ProductID) == "" {
			errs = append(errs, fmt.Sprintf("lines[%d].product_id is required", i))
		}
		if strings.TrimSpace(l.SlotID) == "" {
			errs = append(errs, fmt.Sprintf("lines[%d].slot_id is required", i))
		} else if !uuidRegex.MatchString(l.SlotID) {
			errs = append(errs, fmt.Sprintf("lines[%d].slot_id must be a UUID", i))
		}
		if l.RequestedCount < 1 {
			errs = append(errs, fmt.Sprintf("lines[%d].requested_count must be at least 1", i))
		}
		if l.DeliveryMode == "" {
			errs = append(errs, fmt.Sprintf("lines[%d].delivery_mode is required", i))
		} else if !domain.DeliveryMode(l.DeliveryMode).Valid() {
			errs = append(errs, fmt.Sprintf(`lines[%d].delivery_mode must be "purchaser" or "all"`, i))
		}
	}
	return errs
}

// PlaceOrderSuccessResponse is the success response envelope for POST /orders (201).
type PlaceOrderSuccessResponse struct {
	Data  *domain.Order `json:"data"`
	Error *h.APIError   `json:"error"`
}

// PlaceOrder godoc
// @Summary Place an order for one or more slot bookings
// @Description Validates every line against current availability, snapshots the selected session labels and join links onto bookings, and persists the order. Capacity is not applied until the order is completed.
// @Tags orders
// @Accept json
// @Produce json
// @Param body body controllers.PlaceOrderRequest true "Purchaser email and booking lines"
// @Success 201 {object} controllers.PlaceOrderSuccessResponse "data contains the placed order"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not enough seats remaining)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orders [post]
func (c *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}

	lines := make([]*domain.BookingRequest, 0, len(req.Lines))
	for _, l := range req.Lines {
		attendees := make([]domain.AttendeeEntry, 0, len(l.Attendees))
		for _, a := range l.Attendees {
			attendees = append(attendees, domain.AttendeeEntry{
				Name:  strings.TrimSpace(a.Name),
				Email: strings.TrimSpace(a.Email),
			})
		}
		lines = append(lines, &domain.BookingRequest{
			ProductID:      strings.TrimSpace(l.ProductID),
			SlotID:         l.SlotID,
			RequestedCount: l.RequestedCount,
			Attendees:      attendees,
			DeliveryMode:   domain.DeliveryMode(l.DeliveryMode),
		})
	}

	order, err := c.Service.PlaceOrder(r.Context(), strings.TrimSpace(req.PurchaserEmail), lines)
	if err != nil {
		writeBookingError(c.Logger, w, r, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusCreated, order)
}

// CompleteOrderSuccessResponse is the success response envelope for POST /orders/{orderID}/complete (200).
type CompleteOrderSuccessResponse struct {
	Data  *domain.Order `json:"data"`
	Error *h.APIError   `json:"error"`
}

// CompleteOrder godoc
// @Summary Mark an order as paid and commit its seats
// @Description Applies capacity for each of the order's bookings exactly once and dispatches joining instructions. Calling it again for an already completed order changes nothing.
// @Tags orders
// @Produce json
// @Param orderID path string true "Order ID (UUID)"
// @Success 200 {object} controllers.CompleteOrderSuccessResponse "data contains the order with updated booking statuses"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slot filled up since placement)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orders/{orderID}/complete [post]
func (c *OrderController) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderID")
	if orderID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing orderID")
		return
	}
	if !uuidRegex.MatchString(orderID) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid orderID")
		return
	}

	order, err := c.Service.CompleteOrder(r.Context(), orderID)
	if err != nil {
		writeBookingError(c.Logger, w, r, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, order)
}

// ResendResponse is the response body for POST /admin/orders/{orderID}/resend.
type ResendResponse struct {
	Sent bool `json:"sent"`
}

// ResendNotifications godoc
// @Summary Re-send joining instructions for an order
// @Description Re-sends the joining instructions email for every completed booking on the order. Capacity is untouched; the operation is safe to repeat.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderID path string true "Order ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains sent: true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (order has no completed bookings)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/orders/{orderID}/resend [post]
func (c *OrderController) ResendNotifications(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderID")
	if orderID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing orderID")
		return
	}
	if !uuidRegex.MatchString(orderID) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid orderID")
		return
	}

	if err := c.Service.ResendNotifications(r.Context(), orderID); err != nil {
		writeBookingError(c.Logger, w, r, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, ResendResponse{Sent: true})
}
