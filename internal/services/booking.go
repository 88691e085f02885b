package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"coursebooking/internal/domain"
)

type bookingService struct {
	logger   *slog.Logger
	slotRepo domain.SlotRepository
	repo     domain.BookingRepository
	notifier domain.NotificationService
}

// NewBookingService creates the booking workflow service.
func NewBookingService(logger *slog.Logger, slotRepo domain.SlotRepository, repo domain.BookingRepository, notifier domain.NotificationService) domain.BookingService {
	return &bookingService{
		logger:   logger,
		slotRepo: slotRepo,
		repo:     repo,
		notifier: notifier,
	}
}

// Quote validates a booking request against the product's current
// availability without reserving anything. The check is inherently a race
// against concurrent checkouts; capacity is enforced again, atomically,
// at commit time.
func (s *bookingService) Quote(ctx context.Context, req *domain.BookingRequest) (*domain.SlotAvailability, error) {
	slot, err := s.validateRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	return &domain.SlotAvailability{
		ID:              slot.ID,
		SessionLabel:    slot.SessionLabel(),
		Date:            slot.Date,
		Time:            slot.Time,
		DurationMinutes: slot.DurationMinutes,
		Remaining:       domain.Remaining(slot),
	}, nil
}

func (s *bookingService) validateRequest(ctx context.Context, req *domain.BookingRequest) (*domain.Slot, error) {
	if req == nil || req.ProductID == "" || req.SlotID == "" {
		return nil, fmt.Errorf("product and slot are required: %w", domain.ErrInvalidInput)
	}
	if !req.DeliveryMode.Valid() {
		return nil, fmt.Errorf("delivery mode must be %q or %q: %w", domain.DeliveryPurchaser, domain.DeliveryAll, domain.ErrInvalidInput)
	}
	if len(req.Attendees) != req.RequestedCount {
		return nil, fmt.Errorf("attendee details must be provided for every seat: %w", domain.ErrInvalidCount)
	}
	for i, a := range req.Attendees {
		if strings.TrimSpace(a.Name) == "" {
			return nil, fmt.Errorf("attendee %d: name is required: %w", i+1, domain.ErrInvalidInput)
		}
		if _, err := mail.ParseAddress(a.Email); err != nil {
			return nil, fmt.Errorf("attendee %d: invalid email: %w", i+1, domain.ErrInvalidInput)
		}
	}

	slot, err := s.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("slot %s: %w", req.SlotID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	if slot.ProductID != req.ProductID {
		return nil, fmt.Errorf("slot %s does not belong to product %s: %w", req.SlotID, req.ProductID, domain.ErrNotFound)
	}

	if err := domain.ValidateReservation(slot, req.RequestedCount); err != nil {
		return nil, err
	}
	return slot, nil
}

// PlaceOrder validates every line and persists the order with its
// bookings. Each booking snapshots the slot's session label and join link
// as sold: later slot edits must not rewrite what the purchaser bought.
// The durable slot ID rides along for the commit step. Line quantity is
// the seat count; there is no separate product quantity.
func (s *bookingService) PlaceOrder(ctx context.Context, purchaserEmail string, lines []*domain.BookingRequest) (*domain.Order, error) {
	if _, err := mail.ParseAddress(purchaserEmail); err != nil {
		return nil, fmt.Errorf("invalid purchaser email: %w", domain.ErrInvalidInput)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("order has no booking lines: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	order := &domain.Order{
		ID:             uuid.New().String(),
		PurchaserEmail: purchaserEmail,
		CreatedAt:      now,
	}

	for i, req := range lines {
		slot, err := s.validateRequest(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		meta, err := domain.EncodeAttendees(req.Attendees)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		order.Bookings = append(order.Bookings, &domain.Booking{
			ID:             uuid.New().String(),
			OrderID:        order.ID,
			ProductID:      slot.ProductID,
			SlotID:         slot.ID,
			SessionLabel:   slot.SessionLabel(),
			JoinLink:       slot.JoinLink,
			RequestedCount: req.RequestedCount,
			Attendees:      req.Attendees,
			AttendeesMeta:  meta,
			DeliveryMode:   req.DeliveryMode,
			PurchaserEmail: purchaserEmail,
			Status:         domain.BookingStatusPlaced,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// CompleteOrder handles the commerce system's order-completed event.
// Per booking: a conditional placed -> committed status transition gates
// the capacity commit so repeated or concurrent completion events apply
// seats at most once; the seat increment itself is a single atomic update
// that re-checks capacity. The stored requested count is authoritative;
// the attendee metadata string is never re-split to derive it.
func (s *bookingService) CompleteOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var firstErr error
	for _, booking := range order.Bookings {
		if err := s.commitBooking(ctx, booking); err != nil {
			// Operational commit failures are logged and surfaced for
			// retry, never swallowed. Remaining bookings still proceed.
			s.logger.ErrorContext(ctx, "capacity commit failed",
				"order_id", orderID, "booking_id", booking.ID, "slot_id", booking.SlotID, "err", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("booking %s: %w", booking.ID, err)
			}
			continue
		}
		s.notify(ctx, booking)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return s.repo.GetOrder(ctx, orderID)
}

func (s *bookingService) commitBooking(ctx context.Context, booking *domain.Booking) error {
	committed, err := s.repo.TransitionStatus(ctx, booking.ID, domain.BookingStatusPlaced, domain.BookingStatusCommitted)
	if err != nil {
		return fmt.Errorf("transition to committed: %w", err)
	}
	if !committed {
		// Already committed (or further along): completion is idempotent.
		return nil
	}

	if _, err := s.slotRepo.CommitSeats(ctx, booking.SlotID, booking.RequestedCount); err != nil {
		// Undo the gate so a later retry can attempt the commit again.
		if _, revertErr := s.repo.TransitionStatus(ctx, booking.ID, domain.BookingStatusCommitted, domain.BookingStatusPlaced); revertErr != nil {
			return errors.Join(err, fmt.Errorf("revert status: %w", revertErr))
		}
		return err
	}
	booking.Status = domain.BookingStatusCommitted
	return nil
}

func (s *bookingService) notify(ctx context.Context, booking *domain.Booking) {
	sent, err := s.notifier.Dispatch(ctx, booking)
	if err != nil {
		// Partial delivery is not a commit failure; capacity stays applied
		// and the booking can be resent from the admin screen.
		s.logger.WarnContext(ctx, "joining instructions partially sent",
			"booking_id", booking.ID, "sent", sent, "err", err)
	}
	if sent > 0 {
		if _, err := s.repo.TransitionStatus(ctx, booking.ID, domain.BookingStatusCommitted, domain.BookingStatusNotified); err != nil {
			s.logger.ErrorContext(ctx, "mark notified failed", "booking_id", booking.ID, "err", err)
		} else {
			booking.Status = domain.BookingStatusNotified
		}
	}
}

// ResendNotifications re-dispatches joining instructions for every
// committed or notified booking on the order. It never touches capacity,
// so operators can trigger it as often as needed.
func (s *bookingService) ResendNotifications(ctx context.Context, orderID string) error {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	var resent int
	var firstErr error
	for _, booking := range order.Bookings {
		if booking.Status != domain.BookingStatusCommitted && booking.Status != domain.BookingStatusNotified {
			continue
		}
		sent, err := s.notifier.Dispatch(ctx, booking)
		if err != nil {
			s.logger.WarnContext(ctx, "resend partially sent",
				"booking_id", booking.ID, "sent", sent, "err", err)
			if firstErr == nil {
				firstErr = err
			}
		}
		resent += sent
		if booking.Status == domain.BookingStatusCommitted && sent > 0 {
			if _, err := s.repo.TransitionStatus(ctx, booking.ID, domain.BookingStatusCommitted, domain.BookingStatusNotified); err != nil {
				s.logger.ErrorContext(ctx, "mark notified failed", "booking_id", booking.ID, "err", err)
			}
		}
	}
	if resent == 0 && firstErr == nil {
		return fmt.Errorf("order %s has no completed bookings to resend: %w", orderID, domain.ErrInvalidInput)
	}
	return firstErr
}
