package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexx9363/tennis-courts-v1/internal/schedule"
)

type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	GetByID(ctx context.Context, id int64) (*Reservation, error)
	Update(ctx context.Context, r *Reservation) error
	FindAllPast(ctx context.Context, now time.Time) ([]*Reservation, error)

	// SaveReschedule persists the terminal previous reservation and the
	// fresh replacement as one transaction.
	SaveReschedule(ctx context.Context, prev, next *Reservation) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var reservationColumns = []string{
	"r.id", "r.guest_id", "g.name",
	"r.schedule_id", "s.tennis_court_id", "s.start_date_time", "s.end_date_time",
	"r.value", "r.refund_value", "r.status", "r.previous_reservation_id",
	"r.created_at", "r.updated_at",
}

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) error {
	query, args, err := insertReservation(res).ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return mapCreateError(err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns...).
		From("public.reservations r").
		Join("public.guests g ON r.guest_id = g.id").
		Join("public.schedules s ON r.schedule_id = s.id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	var res Reservation
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&res.ID, &res.GuestID, &res.GuestName,
		&res.ScheduleID, &res.ScheduleCourtID, &res.ScheduleStart, &res.ScheduleEnd,
		&res.Value, &res.RefundValue, &res.Status, &res.PreviousReservationID,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) Update(ctx context.Context, res *Reservation) error {
	query, args, err := updateReservation(res).ToSql()
	if err != nil {
		return fmt.Errorf("build update reservation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) FindAllPast(ctx context.Context, now time.Time) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns...).
		From("public.reservations r").
		Join("public.guests g ON r.guest_id = g.id").
		Join("public.schedules s ON r.schedule_id = s.id").
		Where(squirrel.LtOrEq{"s.start_date_time": now}).
		OrderBy("s.start_date_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build past reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list past reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	for rows.Next() {
		var res Reservation
		if err := rows.Scan(
			&res.ID, &res.GuestID, &res.GuestName,
			&res.ScheduleID, &res.ScheduleCourtID, &res.ScheduleStart, &res.ScheduleEnd,
			&res.Value, &res.RefundValue, &res.Status, &res.PreviousReservationID,
			&res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, &res)
	}
	return reservations, nil
}

func (r *pgxRepository) SaveReschedule(ctx context.Context, prev, next *Reservation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reschedule tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	query, args, err := updateReservation(prev).ToSql()
	if err != nil {
		return fmt.Errorf("build update reservation query failed: %w", err)
	}
	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update rescheduled reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	query, args, err = insertReservation(next).ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}
	err = tx.QueryRow(ctx, query, args...).
		Scan(&next.ID, &next.CreatedAt, &next.UpdatedAt)
	if err != nil {
		return mapCreateError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reschedule tx failed: %w", err)
	}
	return nil
}

func insertReservation(res *Reservation) squirrel.InsertBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Insert("public.reservations").
		Columns("guest_id", "schedule_id", "value", "refund_value", "status", "previous_reservation_id").
		Values(res.GuestID, res.ScheduleID, res.Value, res.RefundValue, res.Status, res.PreviousReservationID).
		Suffix("RETURNING id, created_at, updated_at")
}

func updateReservation(res *Reservation) squirrel.UpdateBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Update("public.reservations").
		Set("value", res.Value).
		Set("refund_value", res.RefundValue).
		Set("status", res.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": res.ID})
}

// mapCreateError translates the partial unique index guarding one
// READY_TO_PLAY reservation per slot into the booking conflict. The index
// is the storage-level guarantee behind the availability check, closing
// the read-then-write window between concurrent bookings.
func mapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return schedule.ErrAlreadyReserved
	}
	return fmt.Errorf("create reservation failed: %w", err)
}
