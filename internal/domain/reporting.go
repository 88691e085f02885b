package domain

import (
	"context"
	"io"
)

// SlotOccupancy is one row of the admin dashboard: a slot with its
// derived remaining seats and how many bookings reference it.
// swagger:model SlotOccupancy
type SlotOccupancy struct {
	ProductID    string `json:"product_id"`
	SlotID       string `json:"slot_id"`
	SessionLabel string `json:"session_label"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Capacity     int    `json:"capacity"`
	Booked       int    `json:"booked"`
	Remaining    int    `json:"remaining"`
	Bookings     int    `json:"bookings"`
}

// RosterRow is one attendee line of a slot's roster and CSV export.
// swagger:model RosterRow
type RosterRow struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	ProductID string `json:"product_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// SlotRoster is the admin projection of everyone booked onto a slot.
// DecodeWarnings counts attendee metadata fragments that could not be
// parsed for bookings lacking structured attendee rows.
// swagger:model SlotRoster
type SlotRoster struct {
	Slot           *Slot       `json:"slot"`
	Rows           []RosterRow `json:"rows"`
	DecodeWarnings int         `json:"decode_warnings"`
}

// ReportingService provides the read-only admin projections.
type ReportingService interface {
	Dashboard(ctx context.Context, params PaginationParams) ([]*SlotOccupancy, int, error)
	SlotRoster(ctx context.Context, slotID string) (*SlotRoster, error)
	// WriteRosterCSV streams the slot's roster as CSV rows to w, one row
	// at a time. It returns the number of data rows written and the decode
	// warning count.
	WriteRosterCSV(ctx context.Context, slotID string, w io.Writer) (rows, warnings int, err error)
}
