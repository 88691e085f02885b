package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"coursebooking/internal/domain"
)

type reportingService struct {
	logger   *slog.Logger
	slotRepo domain.SlotRepository
	bookings domain.BookingRepository
}

// NewReportingService creates the admin reporting service.
func NewReportingService(logger *slog.Logger, slotRepo domain.SlotRepository, bookings domain.BookingRepository) domain.ReportingService {
	return &reportingService{logger: logger, slotRepo: slotRepo, bookings: bookings}
}

// Dashboard returns one occupancy row per slot across all products.
func (s *reportingService) Dashboard(ctx context.Context, params domain.PaginationParams) ([]*domain.SlotOccupancy, int, error) {
	slots, total, err := s.slotRepo.ListAll(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list slots: %w", err)
	}

	ids := make([]string, 0, len(slots))
	for _, slot := range slots {
		ids = append(ids, slot.ID)
	}
	counts, err := s.bookings.CountBySlotIDs(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	occupancy := make([]*domain.SlotOccupancy, 0, len(slots))
	for _, slot := range slots {
		occupancy = append(occupancy, &domain.SlotOccupancy{
			ProductID:    slot.ProductID,
			SlotID:       slot.ID,
			SessionLabel: slot.SessionLabel(),
			Date:         slot.Date,
			Time:         slot.Time,
			Capacity:     slot.Capacity,
			Booked:       slot.Booked,
			Remaining:    domain.Remaining(slot),
			Bookings:     counts[slot.ID],
		})
	}
	return occupancy, total, nil
}

// bookingRosterRows expands one booking into roster rows. Structured
// attendee rows are preferred; bookings that predate them fall back to
// decoding the attendee metadata string, and any malformed fragment is
// counted as a warning instead of being silently lost.
func bookingRosterRows(slot *domain.Slot, booking *domain.Booking) (rows []domain.RosterRow, warnings int) {
	attendees := booking.Attendees
	if len(attendees) == 0 && booking.AttendeesMeta != "" {
		decoded := domain.DecodeAttendees(booking.AttendeesMeta)
		attendees = decoded.Entries
		warnings = decoded.Skipped
	}
	for _, a := range attendees {
		rows = append(rows, domain.RosterRow{
			Name:      a.Name,
			Email:     a.Email,
			OrderID:   booking.OrderID,
			Status:    booking.Status,
			ProductID: slot.ProductID,
			Date:      slot.Date,
			Time:      slot.Time,
		})
	}
	return rows, warnings
}

func (s *reportingService) SlotRoster(ctx context.Context, slotID string) (*domain.SlotRoster, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}

	roster := &domain.SlotRoster{Slot: slot, Rows: []domain.RosterRow{}}
	err = s.bookings.StreamBySlotID(ctx, slotID, func(b *domain.Booking) error {
		rows, warnings := bookingRosterRows(slot, b)
		roster.Rows = append(roster.Rows, rows...)
		roster.DecodeWarnings += warnings
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("stream bookings: %w", err)
	}
	if roster.DecodeWarnings > 0 {
		s.logger.WarnContext(ctx, "attendee metadata entries skipped",
			"slot_id", slotID, "skipped", roster.DecodeWarnings)
	}
	return roster, nil
}

var rosterCSVHeader = []string{"Name", "Email", "Order", "Status", "Product", "Date", "Time"}

// WriteRosterCSV streams the slot's roster to w row by row, flushing per
// booking so large rosters never sit fully in memory.
func (s *reportingService) WriteRosterCSV(ctx context.Context, slotID string, w io.Writer) (int, int, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return 0, 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(rosterCSVHeader); err != nil {
		return 0, 0, err
	}

	var written, warnings int
	err = s.bookings.StreamBySlotID(ctx, slotID, func(b *domain.Booking) error {
		rows, skipped := bookingRosterRows(slot, b)
		warnings += skipped
		for _, row := range rows {
			if err := cw.Write([]string{row.Name, row.Email, row.OrderID, row.Status, row.ProductID, row.Date, row.Time}); err != nil {
				return err
			}
			written++
		}
		cw.Flush()
		return cw.Error()
	})
	if err != nil {
		return written, warnings, fmt.Errorf("stream bookings: %w", err)
	}
	cw.Flush()
	return written, warnings, cw.Error()
}
