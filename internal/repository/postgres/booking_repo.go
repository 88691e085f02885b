package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"coursebooking/internal/domain"
)

type bookingRepository struct {
	DB *sql.DB
}

// NewBookingRepository returns a BookingRepository backed by Postgres.
func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{DB: db}
}

const bookingColumns = `id, order_id, product_id, slot_id, session_label, join_link, requested_count, attendees_meta, delivery_mode, purchaser_email, status, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	var mode string
	err := row.Scan(&b.ID, &b.OrderID, &b.ProductID, &b.SlotID, &b.SessionLabel, &b.JoinLink,
		&b.RequestedCount, &b.AttendeesMeta, &mode, &b.PurchaserEmail, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.DeliveryMode = domain.DeliveryMode(mode)
	return b, nil
}

func (r *bookingRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, purchaser_email, created_at)
		VALUES ($1, $2, $3)
	`, order.ID, order.PurchaserEmail, order.CreatedAt); err != nil {
		return err
	}

	for _, b := range order.Bookings {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO bookings (id, order_id, product_id, slot_id, session_label, join_link, requested_count, attendees_meta, delivery_mode, purchaser_email, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`, b.ID, order.ID, b.ProductID, b.SlotID, b.SessionLabel, b.JoinLink,
			b.RequestedCount, b.AttendeesMeta, string(b.DeliveryMode), b.PurchaserEmail, b.Status, b.CreatedAt, b.UpdatedAt); err != nil {
			return err
		}
		for i, a := range b.Attendees {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO booking_attendees (booking_id, position, name, email)
				VALUES ($1, $2, $3, $4)
			`, b.ID, i, a.Name, a.Email); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (r *bookingRepository) loadAttendees(ctx context.Context, bookingID string) ([]domain.AttendeeEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT name, email
		FROM booking_attendees
		WHERE booking_id = $1
		ORDER BY position
	`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendees []domain.AttendeeEntry
	for rows.Next() {
		var a domain.AttendeeEntry
		if err := rows.Scan(&a.Name, &a.Email); err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

func (r *bookingRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order := &domain.Order{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, purchaser_email, created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&order.ID, &order.PurchaserEmail, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE order_id = $1
		ORDER BY created_at, id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		order.Bookings = append(order.Bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, b := range order.Bookings {
		if b.Attendees, err = r.loadAttendees(ctx, b.ID); err != nil {
			return nil, err
		}
	}
	if order.Bookings == nil {
		order.Bookings = []*domain.Booking{}
	}
	return order, nil
}

func (r *bookingRepository) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, err := scanBooking(r.DB.QueryRowContext(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = $1
	`, bookingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if b.Attendees, err = r.loadAttendees(ctx, b.ID); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListBySlotID(ctx context.Context, slotID string) ([]*domain.Booking, error) {
	bookings := []*domain.Booking{}
	err := r.StreamBySlotID(ctx, slotID, func(b *domain.Booking) error {
		bookings = append(bookings, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// StreamBySlotID visits bookings one at a time so callers can export large
// rosters without holding them all in memory. Attendees are fetched per
// booking; rosters are small per booking even when slots are large.
func (r *bookingRepository) StreamBySlotID(ctx context.Context, slotID string, fn func(*domain.Booking) error) error {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE slot_id = $1
		ORDER BY created_at, id
	`, slotID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return err
		}
		if b.Attendees, err = r.loadAttendees(ctx, b.ID); err != nil {
			return err
		}
		if err := fn(b); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *bookingRepository) CountBySlotIDs(ctx context.Context, slotIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(slotIDs))
	if len(slotIDs) == 0 {
		return counts, nil
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT slot_id, COUNT(*)
		FROM bookings
		WHERE slot_id = ANY($1)
		GROUP BY slot_id
	`, pq.Array(slotIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

// TransitionStatus performs the conditional status update that gates the
// capacity commit. Returns false when the booking was not in the expected
// status, so a concurrent or repeated completion becomes a no-op.
func (r *bookingRepository) TransitionStatus(ctx context.Context, bookingID, from, to string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE bookings
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`, bookingID, from, to)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
