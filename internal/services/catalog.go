package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"coursebooking/internal/domain"
)

type catalogService struct {
	slotRepo domain.SlotRepository
}

// NewCatalogService creates a CatalogService with the given slot repository.
func NewCatalogService(slotRepo domain.SlotRepository) domain.CatalogService {
	return &catalogService{slotRepo: slotRepo}
}

// ListOpenSlots returns the product's slots that still have seats, ordered
// by date and time. Fully booked slots are filtered out, the same way the
// product page hides them.
func (s *catalogService) ListOpenSlots(ctx context.Context, productID string) ([]*domain.SlotAvailability, error) {
	slots, err := s.slotRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	open := []*domain.SlotAvailability{}
	for _, slot := range slots {
		remaining := domain.Remaining(slot)
		if remaining == 0 {
			continue
		}
		open = append(open, &domain.SlotAvailability{
			ID:              slot.ID,
			SessionLabel:    slot.SessionLabel(),
			Date:            slot.Date,
			Time:            slot.Time,
			DurationMinutes: slot.DurationMinutes,
			Remaining:       remaining,
		})
	}
	return open, nil
}

// ReplaceSlots validates and persists the product's new slot list. Slots
// without an ID get a fresh UUID; retained IDs keep their booked counters
// in storage. A slot that existing bookings reference cannot be removed.
func (s *catalogService) ReplaceSlots(ctx context.Context, productID string, slots []*domain.Slot) ([]*domain.Slot, error) {
	now := time.Now()
	seen := make(map[string]struct{}, len(slots))
	for i, slot := range slots {
		if err := validateSlot(slot); err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		if slot.ID == "" {
			slot.ID = uuid.New().String()
			slot.CreatedAt = now
		}
		if _, dup := seen[slot.ID]; dup {
			return nil, fmt.Errorf("slot %d: duplicate id %s: %w", i, slot.ID, domain.ErrInvalidInput)
		}
		seen[slot.ID] = struct{}{}
		slot.ProductID = productID
		slot.UpdatedAt = now
	}

	if err := s.slotRepo.Replace(ctx, productID, slots); err != nil {
		return nil, err
	}

	// Read back so callers see carried-forward booked counters.
	stored, err := s.slotRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list slots after replace: %w", err)
	}
	return stored, nil
}

func validateSlot(slot *domain.Slot) error {
	if slot == nil {
		return domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", slot.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", domain.ErrInvalidInput)
	}
	if _, err := time.Parse("15:04", slot.Time); err != nil {
		return fmt.Errorf("time must be HH:MM: %w", domain.ErrInvalidInput)
	}
	if slot.DurationMinutes < 1 {
		return fmt.Errorf("duration must be at least one minute: %w", domain.ErrInvalidInput)
	}
	if slot.Capacity < 1 {
		return fmt.Errorf("capacity must be at least one: %w", domain.ErrInvalidInput)
	}
	if link := strings.TrimSpace(slot.JoinLink); link != "" && !strings.HasPrefix(link, "https://") && !strings.HasPrefix(link, "http://") {
		return fmt.Errorf("join link must be a URL: %w", domain.ErrInvalidInput)
	}
	return nil
}
