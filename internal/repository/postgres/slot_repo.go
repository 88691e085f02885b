package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"coursebooking/internal/domain"
)

type slotRepository struct {
	DB *sql.DB
}

// NewSlotRepository returns a SlotRepository backed by Postgres.
func NewSlotRepository(db *sql.DB) domain.SlotRepository {
	return &slotRepository{DB: db}
}

const slotColumns = `id, product_id, date, time, duration_minutes, capacity, booked, join_link, created_at, updated_at`

func scanSlot(row interface{ Scan(...any) error }) (*domain.Slot, error) {
	s := &domain.Slot{}
	err := row.Scan(&s.ID, &s.ProductID, &s.Date, &s.Time, &s.DurationMinutes, &s.Capacity, &s.Booked, &s.JoinLink, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *slotRepository) ListByProductID(ctx context.Context, productID string) ([]*domain.Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		WHERE product_id = $1
		ORDER BY date, time
	`
	rows, err := r.DB.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []*domain.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []*domain.Slot{}
	}
	return slots, nil
}

func (r *slotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		WHERE id = $1
	`
	s, err := scanSlot(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Replace swaps the product's slot list inside one transaction. Retained
// slot IDs keep their booked counters via the upsert; removed slots are
// deleted only when no booking references them.
func (r *slotRepository) Replace(ctx context.Context, productID string, slots []*domain.Slot) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	keep := make([]string, 0, len(slots))
	for _, s := range slots {
		keep = append(keep, s.ID)
	}

	var inUse int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM slots s
		WHERE s.product_id = $1
		  AND s.id <> ALL($2)
		  AND EXISTS (SELECT 1 FROM bookings b WHERE b.slot_id = s.id)
	`, productID, pq.Array(keep)).Scan(&inUse)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return domain.ErrSlotInUse
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM slots WHERE product_id = $1 AND id <> ALL($2)`, productID, pq.Array(keep)); err != nil {
		return err
	}

	for _, s := range slots {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO slots (id, product_id, date, time, duration_minutes, capacity, booked, join_link, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9)
			ON CONFLICT (id) DO UPDATE
			SET date = EXCLUDED.date, time = EXCLUDED.time, duration_minutes = EXCLUDED.duration_minutes,
			    capacity = EXCLUDED.capacity, join_link = EXCLUDED.join_link, updated_at = EXCLUDED.updated_at
		`, s.ID, productID, s.Date, s.Time, s.DurationMinutes, s.Capacity, s.JoinLink, s.CreatedAt, s.UpdatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// CommitSeats is the single place where the booked counter grows. The
// conditional UPDATE makes concurrent commits serialize on the row and
// rejects any increment that would push booked past capacity.
func (r *slotRepository) CommitSeats(ctx context.Context, slotID string, count int) (*domain.Slot, error) {
	if count <= 0 {
		return nil, domain.ErrInvalidCount
	}
	query := `
		UPDATE slots
		SET booked = booked + $2, updated_at = NOW()
		WHERE id = $1 AND booked + $2 <= capacity
		RETURNING ` + slotColumns + `
	`
	s, err := scanSlot(r.DB.QueryRowContext(ctx, query, slotID, count))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// No row updated: either the slot is gone or it cannot hold the seats.
	var exists bool
	if err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM slots WHERE id = $1)`, slotID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("commit seats existence check: %w", err)
	}
	if !exists {
		return nil, domain.ErrSlotResolutionFailure
	}
	return nil, domain.ErrInsufficientCapacity
}

func (r *slotRepository) ListAll(ctx context.Context, params domain.PaginationParams) ([]*domain.Slot, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM slots`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + slotColumns + `
		FROM slots
		ORDER BY product_id, date, time
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var slots []*domain.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, 0, err
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if slots == nil {
		slots = []*domain.Slot{}
	}
	return slots, total, nil
}
