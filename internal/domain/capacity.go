package domain

// Capacity ledger: pure seat arithmetic over a slot. Nothing here touches
// storage; callers persist the results. The authoritative, race-safe
// enforcement of capacity happens in SlotRepository.CommitSeats; these
// functions cover validation-time checks and in-memory projections.

// Remaining returns the slot's free seat count, clamped at zero so a
// corrupted booked counter can never surface a negative availability.
func Remaining(slot *Slot) int {
	if slot == nil {
		return 0
	}
	r := slot.Capacity - slot.Booked
	if r < 0 {
		return 0
	}
	return r
}

// ValidateReservation checks whether requestedCount seats can be reserved
// on the slot. It returns ErrInvalidCount for a non-positive count and
// ErrInsufficientCapacity when the request exceeds the remaining seats.
// Requesting exactly the remaining seats is accepted.
func ValidateReservation(slot *Slot, requestedCount int) error {
	if requestedCount <= 0 {
		return ErrInvalidCount
	}
	if requestedCount > Remaining(slot) {
		return ErrInsufficientCapacity
	}
	return nil
}

// ApplyCommit returns a copy of the slot with committedCount added to its
// booked counter. It is not idempotent: applying it twice for the same
// order double-counts. The booking status gate in the workflow ensures it
// runs at most once per booking.
func ApplyCommit(slot *Slot, committedCount int) *Slot {
	out := *slot
	out.Booked += committedCount
	return &out
}
