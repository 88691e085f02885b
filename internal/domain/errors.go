package domain

import "errors"

// Sentinel errors shared across services and controllers.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	// ErrInvalidCount is returned when a reservation requests zero or fewer
	// seats, or when the attendee list length does not match the count.
	ErrInvalidCount = errors.New("invalid seat count")

	// ErrInsufficientCapacity is returned when a reservation or commit asks
	// for more seats than the slot has remaining. It can occur both at
	// validation time and again at commit time, where the check is atomic.
	ErrInsufficientCapacity = errors.New("not enough seats available")

	// ErrSlotInUse is returned when a slot list update would drop a slot
	// that committed or placed bookings still reference.
	ErrSlotInUse = errors.New("slot is referenced by bookings")

	// ErrSlotResolutionFailure is returned when a booking's slot reference
	// no longer resolves to a slot on the product at commit time.
	ErrSlotResolutionFailure = errors.New("booking slot no longer exists")

	// ErrReservedCharacter is returned by the attendee codec when a name or
	// email contains one of the delimiter characters of the encoding.
	ErrReservedCharacter = errors.New("attendee field contains reserved character")
)
