package domain

import (
	"context"
	"time"
)

// DeliveryMode controls who receives the joining instructions email.
type DeliveryMode string

const (
	// DeliveryPurchaser sends joining instructions only to the purchaser.
	DeliveryPurchaser DeliveryMode = "purchaser"
	// DeliveryAll sends to the purchaser and to every attendee.
	DeliveryAll DeliveryMode = "all"
)

// Valid reports whether the mode is one of the two supported values.
func (m DeliveryMode) Valid() bool {
	return m == DeliveryPurchaser || m == DeliveryAll
}

// Booking lifecycle statuses. A booking is created as placed; capacity is
// applied exactly once on the placed -> committed transition.
const (
	BookingStatusPlaced    = "placed"
	BookingStatusCommitted = "committed"
	BookingStatusNotified  = "notified"
)

// AttendeeEntry is one person attending a session.
// swagger:model AttendeeEntry
type AttendeeEntry struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingRequest is an in-flight attempt to reserve seats on a slot,
// scoped to one checkout submission. Attendee list length must equal
// RequestedCount.
// swagger:model BookingRequest
type BookingRequest struct {
	ProductID      string          `json:"product_id"`
	SlotID         string          `json:"slot_id"`
	RequestedCount int             `json:"requested_count"`
	Attendees      []AttendeeEntry `json:"attendees"`
	DeliveryMode   DeliveryMode    `json:"delivery_mode"`
}

// Booking is a committed reservation attached to an order line item. The
// session label and join link are snapshots taken at placement: later slot
// edits must not retroactively change what was sold. SlotID is the durable
// slot identifier carried from placement through commit.
// swagger:model Booking
type Booking struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id"`
	ProductID      string          `json:"product_id"`
	SlotID         string          `json:"slot_id"`
	SessionLabel   string          `json:"session_label"`
	JoinLink       string          `json:"join_link,omitempty"`
	RequestedCount int             `json:"requested_count"`
	Attendees      []AttendeeEntry `json:"attendees"`
	AttendeesMeta  string          `json:"attendees_meta,omitempty"`
	DeliveryMode   DeliveryMode    `json:"delivery_mode"`
	PurchaserEmail string          `json:"purchaser_email"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Order groups the bookings placed by one checkout submission.
// swagger:model Order
type Order struct {
	ID             string     `json:"id"`
	PurchaserEmail string     `json:"purchaser_email"`
	Bookings       []*Booking `json:"bookings"`
	CreatedAt      time.Time  `json:"created_at"`
}

// BookingRepository defines storage for orders and their bookings.
type BookingRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrder(ctx context.Context, orderID string) (*Order, error)
	GetBooking(ctx context.Context, bookingID string) (*Booking, error)
	// ListBySlotID returns bookings referencing the slot, any status.
	ListBySlotID(ctx context.Context, slotID string) ([]*Booking, error)
	// StreamBySlotID visits each booking referencing the slot one at a
	// time, so large rosters can be exported without buffering them all.
	StreamBySlotID(ctx context.Context, slotID string, fn func(*Booking) error) error
	// CountBySlotIDs returns how many bookings reference each given slot.
	CountBySlotIDs(ctx context.Context, slotIDs []string) (map[string]int, error)
	// TransitionStatus moves the booking from one status to another with a
	// conditional update. It returns false when the booking was not in the
	// expected status, which makes the capacity commit exactly-once.
	TransitionStatus(ctx context.Context, bookingID, from, to string) (bool, error)
}

// BookingService orchestrates the booking lifecycle across validation,
// order placement, capacity commit, and notification.
type BookingService interface {
	// Quote validates a booking request against current availability
	// without reserving anything (Draft -> Validated).
	Quote(ctx context.Context, req *BookingRequest) (*SlotAvailability, error)
	// PlaceOrder validates every line, snapshots the selected slots onto
	// bookings, and persists the order (Validated -> Reserved -> Placed).
	// Capacity is not applied yet.
	PlaceOrder(ctx context.Context, purchaserEmail string, lines []*BookingRequest) (*Order, error)
	// CompleteOrder applies capacity for each of the order's bookings
	// exactly once and dispatches joining instructions
	// (Placed -> Committed -> Notified).
	CompleteOrder(ctx context.Context, orderID string) (*Order, error)
	// ResendNotifications re-sends joining instructions for a completed
	// order without touching capacity. Safe to call repeatedly.
	ResendNotifications(ctx context.Context, orderID string) error
}
