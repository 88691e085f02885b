package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"coursebooking/internal/domain"
)

// In-memory fakes shared by the service tests. The slot fake reproduces
// the repository's atomic commit semantics under a mutex so the workflow's
// concurrency behavior can be exercised without a database.

type fakeSlotRepo struct {
	mu            sync.Mutex
	slots         map[string]*domain.Slot
	bookingCounts map[string]int
}

func newFakeSlotRepo(slots ...*domain.Slot) *fakeSlotRepo {
	r := &fakeSlotRepo{slots: map[string]*domain.Slot{}, bookingCounts: map[string]int{}}
	for _, s := range slots {
		cp := *s
		r.slots[s.ID] = &cp
	}
	return r
}

func (r *fakeSlotRepo) ListByProductID(ctx context.Context, productID string) ([]*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Slot
	for _, s := range r.slots {
		if s.ProductID == productID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (r *fakeSlotRepo) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSlotRepo) Replace(ctx context.Context, productID string, slots []*domain.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	keep := map[string]struct{}{}
	for _, s := range slots {
		keep[s.ID] = struct{}{}
	}
	for id, s := range r.slots {
		if s.ProductID != productID {
			continue
		}
		if _, ok := keep[id]; !ok {
			if r.bookingCounts[id] > 0 {
				return domain.ErrSlotInUse
			}
		}
	}
	for id, s := range r.slots {
		if s.ProductID == productID {
			if _, ok := keep[id]; !ok {
				delete(r.slots, id)
			}
		}
	}
	for _, s := range slots {
		cp := *s
		if existing, ok := r.slots[s.ID]; ok {
			cp.Booked = existing.Booked
		}
		r.slots[s.ID] = &cp
	}
	return nil
}

func (r *fakeSlotRepo) CommitSeats(ctx context.Context, slotID string, count int) (*domain.Slot, error) {
	if count <= 0 {
		return nil, domain.ErrInvalidCount
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[slotID]
	if !ok {
		return nil, domain.ErrSlotResolutionFailure
	}
	if s.Booked+count > s.Capacity {
		return nil, domain.ErrInsufficientCapacity
	}
	s.Booked += count
	cp := *s
	return &cp, nil
}

func (r *fakeSlotRepo) ListAll(ctx context.Context, params domain.PaginationParams) ([]*domain.Slot, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Slot
	for _, s := range r.slots {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, len(out), nil
}

func (r *fakeSlotRepo) booked(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slots[id].Booked
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	orders   map[string]*domain.Order
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{orders: map[string]*domain.Order{}, bookings: map[string]*domain.Booking{}}
}

func (r *fakeBookingRepo) CreateOrder(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	cp.Bookings = nil
	for _, b := range order.Bookings {
		bcp := *b
		r.bookings[b.ID] = &bcp
		cp.Bookings = append(cp.Bookings, &bcp)
	}
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *o
	cp.Bookings = nil
	for _, b := range o.Bookings {
		bcp := *b
		cp.Bookings = append(cp.Bookings, &bcp)
	}
	return &cp, nil
}

func (r *fakeBookingRepo) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListBySlotID(ctx context.Context, slotID string) ([]*domain.Booking, error) {
	out := []*domain.Booking{}
	err := r.StreamBySlotID(ctx, slotID, func(b *domain.Booking) error {
		out = append(out, b)
		return nil
	})
	return out, err
}

func (r *fakeBookingRepo) StreamBySlotID(ctx context.Context, slotID string, fn func(*domain.Booking) error) error {
	r.mu.Lock()
	var matched []*domain.Booking
	for _, b := range r.bookings {
		if b.SlotID == slotID {
			cp := *b
			matched = append(matched, &cp)
		}
	}
	r.mu.Unlock()
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return strings.Compare(matched[i].ID, matched[j].ID) < 0
	})
	for _, b := range matched {
		if err := fn(b); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeBookingRepo) CountBySlotIDs(ctx context.Context, slotIDs []string) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int{}
	want := map[string]struct{}{}
	for _, id := range slotIDs {
		want[id] = struct{}{}
	}
	for _, b := range r.bookings {
		if _, ok := want[b.SlotID]; ok {
			counts[b.SlotID]++
		}
	}
	return counts, nil
}

func (r *fakeBookingRepo) TransitionStatus(ctx context.Context, bookingID, from, to string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return false, nil
	}
	if b.Status != from {
		return false, nil
	}
	b.Status = to
	return true, nil
}

func (r *fakeBookingRepo) status(bookingID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bookings[bookingID].Status
}

type fakeNotifier struct {
	mu         sync.Mutex
	dispatched []string // booking IDs in dispatch order
	err        error
	sent       int
}

func (n *fakeNotifier) RecipientsFor(b *domain.Booking) []domain.Recipient {
	return []domain.Recipient{{Email: b.PurchaserEmail, Variant: domain.VariantFull}}
}

func (n *fakeNotifier) Dispatch(ctx context.Context, b *domain.Booking) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dispatched = append(n.dispatched, b.ID)
	if n.err != nil {
		return n.sent, n.err
	}
	return 1, nil
}

func (n *fakeNotifier) dispatchCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.dispatched)
}
