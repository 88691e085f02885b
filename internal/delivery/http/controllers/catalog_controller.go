package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	h "coursebooking/internal/delivery/http/helpers"
	"coursebooking/internal/domain"
)

// uuidRegex matches a canonical UUID string (8-4-4-4-12 hex). Slot, order,
// and booking IDs are UUIDs; product IDs come from the shop and are not.
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

// ListOpenSlotsSuccessResponse is the success response envelope for GET /products/{productID}/slots (200).
type ListOpenSlotsSuccessResponse struct {
	Data  []*domain.SlotAvailability `json:"data"`
	Error *h.APIError                `json:"error"`
}

// ListOpenSlots godoc
// @Summary List a product's open slots
// @Description Returns the product's slots that still have remaining seats, ordered by date then time. Full slots are omitted. Booked totals are not exposed.
// @Tags catalog
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} controllers.ListOpenSlotsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /products/{productID}/slots [get]
func (c *CatalogController) ListOpenSlots(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productID")
	if productID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing productID")
		return
	}

	slots, err := c.Service.ListOpenSlots(r.Context(), productID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	if slots == nil {
		slots = []*domain.SlotAvailability{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, slots)
}

// SlotInput is one slot row in the request body for PUT /admin/products/{productID}/slots.
type SlotInput struct {
	ID              string `json:"id"` // empty for a new slot
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Capacity        int    `json:"capacity"`
	JoinLink        string `json:"join_link"`
}

// ReplaceSlotsRequest is the request body for PUT /admin/products/{productID}/slots.
type ReplaceSlotsRequest struct {
	Slots []SlotInput `json:"slots"`
}

// Validate implements Validator.
func (req *ReplaceSlotsRequest) Validate() []string {
	var errs []string
	for i, s := range req.Slots {
		if strings.TrimSpace(s.Date) == "" {
			errs = append(errs, fmt.Sprintf("slots[%d].date is required", i))
		}
		if strings.TrimSpace(s.Time) == "" {
			errs = append(errs, fmt.Sprintf("slots[%d].time is required", i))
		}
		if s.ID != "" && !uuidRegex.MatchString(s.ID) {
			errs = append(errs, fmt.Sprintf("slots[%d].id must be a UUID", i))
		}
	}
	return errs
}

// ReplaceSlotsSuccessResponse is the success response envelope for PUT /admin/products/{productID}/slots (200).
type ReplaceSlotsSuccessResponse struct {
	Data  []*domain.Slot `json:"data"`
	Error *h.APIError    `json:"error"`
}

// ReplaceSlots godoc
// @Summary Replace a product's slot list
// @Description Replaces the product's whole slot list in one transaction. Rows without an id are created; retained ids keep their booked counters. Removing a slot that still has bookings is rejected.
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productID path string true "Product ID"
// @Param body body controllers.ReplaceSlotsRequest true "Full slot list for the product"
// @Success 200 {object} controllers.ReplaceSlotsSuccessResponse "data contains the stored slot list"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (removed slot still has bookings)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/products/{productID}/slots [put]
func (c *CatalogController) ReplaceSlots(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productID")
	if productID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing productID")
		return
	}

	var req ReplaceSlotsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}

	slots := make([]*domain.Slot, 0, len(req.Slots))
	for _, s := range req.Slots {
		slots = append(slots, &domain.Slot{
			ID:              s.ID,
			Date:            strings.TrimSpace(s.Date),
			Time:            strings.TrimSpace(s.Time),
			DurationMinutes: s.DurationMinutes,
			Capacity:        s.Capacity,
			JoinLink:        strings.TrimSpace(s.JoinLink),
		})
	}

	stored, err := c.Service.ReplaceSlots(r.Context(), productID, slots)
	if err != nil {
		if errors.Is(err, domain.ErrSlotInUse) {
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, err.Error())
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, stored)
}
