package domain

import (
	"context"
	"time"
)

// Slot represents one bookable session of a product: a calendar date and
// local start time with a fixed seat capacity.
// swagger:model Slot
type Slot struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	Date            string    `json:"date"` // YYYY-MM-DD
	Time            string    `json:"time"` // HH:MM, local time of the session
	DurationMinutes int       `json:"duration_minutes"`
	Capacity        int       `json:"capacity"`
	Booked          int       `json:"booked"`
	JoinLink        string    `json:"join_link,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewSlot returns a new Slot with a zero booked counter. ID is assigned by
// the catalog service before the slot is first persisted.
func NewSlot(productID, date, timeOfDay string, durationMinutes, capacity int, joinLink string, createdAt, updatedAt time.Time) *Slot {
	return &Slot{
		ProductID:       productID,
		Date:            date,
		Time:            timeOfDay,
		DurationMinutes: durationMinutes,
		Capacity:        capacity,
		JoinLink:        joinLink,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// SessionLabel is the human-readable session identifier shown to shoppers
// and snapshotted onto bookings, e.g. "Mon 2 Mar @ 10:00".
func (s *Slot) SessionLabel() string {
	if t, err := time.Parse("2006-01-02", s.Date); err == nil {
		return t.Format("Mon 2 Jan") + " @ " + s.Time
	}
	return s.Date + " @ " + s.Time
}

// SlotRepository defines storage for per-product slot lists.
type SlotRepository interface {
	// ListByProductID returns the product's slots ordered by date then time.
	ListByProductID(ctx context.Context, productID string) ([]*Slot, error)
	GetByID(ctx context.Context, id string) (*Slot, error)
	// Replace swaps the product's whole slot list in one transaction,
	// preserving booked counters of retained slot IDs. It returns
	// ErrSlotInUse when a removed slot still has bookings.
	Replace(ctx context.Context, productID string, slots []*Slot) error
	// CommitSeats atomically increments the slot's booked counter by count,
	// failing with ErrInsufficientCapacity when the slot cannot hold count
	// more attendees. Concurrent commits against the same slot serialize on
	// this statement; booked never exceeds capacity.
	CommitSeats(ctx context.Context, slotID string, count int) (*Slot, error)
	// ListAll returns every slot across products, for the admin dashboard.
	ListAll(ctx context.Context, params PaginationParams) ([]*Slot, int, error)
}

// CatalogService defines shop-manager operations on a product's slot list.
type CatalogService interface {
	// ListOpenSlots returns the product's slots that still have seats,
	// the projection shown on the product page.
	ListOpenSlots(ctx context.Context, productID string) ([]*SlotAvailability, error)
	// ReplaceSlots replaces the product's slot list. Incoming slots without
	// an ID are treated as new; retained IDs keep their booked counters.
	ReplaceSlots(ctx context.Context, productID string, slots []*Slot) ([]*Slot, error)
}

// SlotAvailability is the shopper-facing projection of a slot with its
// derived remaining seat count. Booked totals are not exposed.
// swagger:model SlotAvailability
type SlotAvailability struct {
	ID              string `json:"id"`
	SessionLabel    string `json:"session_label"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Remaining       int    `json:"remaining"`
}
