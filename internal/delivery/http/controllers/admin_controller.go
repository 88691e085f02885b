package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "coursebooking/internal/delivery/http/helpers"
	"coursebooking/internal/domain"
)

type AdminController struct {
	Logger  *slog.Logger
	Service domain.ReportingService
}

func NewAdminController(logger *slog.Logger, svc domain.ReportingService) *AdminController {
	return &AdminController{
		Logger:  logger,
		Service: svc,
	}
}

// DashboardResponse is the data payload for GET /admin/dashboard.
type DashboardResponse struct {
	Slots      []*domain.SlotOccupancy `json:"slots"`
	Pagination h.PaginationMeta        `json:"pagination"`
}

// Dashboard godoc
// @Summary Slot occupancy across all products
// @Description Returns one row per slot with capacity, booked seats, remaining seats, and the number of bookings referencing it, across every product.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains slots and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/dashboard [get]
func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)

	slots, total, err := c.Service.Dashboard(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	if slots == nil {
		slots = []*domain.SlotOccupancy{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, DashboardResponse{
		Slots:      slots,
		Pagination: h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// SlotRosterSuccessResponse is the success response envelope for GET /admin/slots/{slotID}/roster (200).
type SlotRosterSuccessResponse struct {
	Data  *domain.SlotRoster `json:"data"`
	Error *h.APIError        `json:"error"`
}

// SlotRoster godoc
// @Summary Everyone booked onto a slot
// @Description Returns the slot with one roster row per attendee across all of its bookings. Bookings without structured attendee rows fall back to their attendee metadata; fragments that cannot be parsed are counted in decode_warnings.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param slotID path string true "Slot ID (UUID)"
// @Success 200 {object} controllers.SlotRosterSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/slots/{slotID}/roster [get]
func (c *AdminController) SlotRoster(w http.ResponseWriter, r *http.Request) {
	slotID := r.PathValue("slotID")
	if slotID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing slotID")
		return
	}
	if !uuidRegex.MatchString(slotID) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid slotID")
		return
	}

	roster, err := c.Service.SlotRoster(r.Context(), slotID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "slot not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, roster)
}

// SlotRosterCSV godoc
// @Summary Download a slot's roster as CSV
// @Description Streams the slot's roster as a CSV attachment with columns Name, Email, Order, Status, Product, Date, Time. Rows are written as bookings are read, so large rosters never sit fully in memory.
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Param slotID path string true "Slot ID (UUID)"
// @Success 200 {string} string "CSV roster"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/slots/{slotID}/roster.csv [get]
func (c *AdminController) SlotRosterCSV(w http.ResponseWriter, r *http.Request) {
	slotID := r.PathValue("slotID")
	if slotID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing slotID")
		return
	}
	if !uuidRegex.MatchString(slotID) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid slotID")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="roster-`+slotID+`.csv"`)

	rows, warnings, err := c.Service.WriteRosterCSV(r.Context(), slotID, w)
	if err != nil {
		// The slot lookup runs before the first byte is written, so a
		// missing slot can still get a JSON error response.
		if rows == 0 && errors.Is(err, domain.ErrNotFound) {
			w.Header().Del("Content-Disposition")
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "slot not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "roster export aborted",
			"slot_id", slotID, "rows_written", rows, "err", err)
		return
	}
	if warnings > 0 {
		c.Logger.WarnContext(r.Context(), "roster export skipped malformed attendee entries",
			"slot_id", slotID, "skipped", warnings)
	}
}
