package schedule

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
)

type Repository interface {
	Create(ctx context.Context, s *Schedule) error
	GetByID(ctx context.Context, id int64) (*Schedule, error)
	FindByCourtOrderByStart(ctx context.Context, courtID int64) ([]*Schedule, error)
	FindInRange(ctx context.Context, start, end time.Time) ([]*Schedule, error)
	ExistsByCourtAndStart(ctx context.Context, courtID int64, start time.Time) (bool, error)

	// HasReadyReservation reports whether any reservation referencing the
	// slot is currently in READY_TO_PLAY status.
	HasReadyReservation(ctx context.Context, scheduleID int64) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const scheduleColumns = "s.id, s.tennis_court_id, tc.name, s.start_date_time, s.end_date_time, s.created_at"

func (r *pgxRepository) Create(ctx context.Context, s *Schedule) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.schedules").
		Columns("tennis_court_id", "start_date_time", "end_date_time").
		Values(s.TennisCourtID, s.StartDateTime, s.EndDateTime).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create schedule query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("create schedule failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Schedule, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(scheduleColumns).
		From("public.schedules s").
		Join("public.tennis_courts tc ON s.tennis_court_id = tc.id").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get schedule query failed: %w", err)
	}

	var s Schedule
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.TennisCourtID, &s.TennisCourtName, &s.StartDateTime, &s.EndDateTime, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get schedule failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) FindByCourtOrderByStart(ctx context.Context, courtID int64) ([]*Schedule, error) {
	return r.query(ctx, squirrel.Eq{"s.tennis_court_id": courtID})
}

func (r *pgxRepository) FindInRange(ctx context.Context, start, end time.Time) ([]*Schedule, error) {
	return r.query(ctx, squirrel.And{
		squirrel.GtOrEq{"s.start_date_time": start},
		squirrel.LtOrEq{"s.end_date_time": end},
	})
}

func (r *pgxRepository) query(ctx context.Context, pred any) ([]*Schedule, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(scheduleColumns).
		From("public.schedules s").
		Join("public.tennis_courts tc ON s.tennis_court_id = tc.id").
		Where(pred).
		OrderBy("s.start_date_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list schedules query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules failed: %w", err)
	}
	defer rows.Close()

	var schedules []*Schedule
	for rows.Next() {
		var s Schedule
		if err := rows.Scan(
			&s.ID, &s.TennisCourtID, &s.TennisCourtName, &s.StartDateTime, &s.EndDateTime, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan schedule failed: %w", err)
		}
		schedules = append(schedules, &s)
	}
	return schedules, nil
}

func (r *pgxRepository) ExistsByCourtAndStart(ctx context.Context, courtID int64, start time.Time) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("1").
		From("public.schedules").
		Where(squirrel.Eq{"tennis_court_id": courtID}).
		Where(squirrel.Eq{"start_date_time": start}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build schedule exists query failed: %w", err)
	}

	var exists bool
	err = r.pool.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check schedule exists failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) HasReadyReservation(ctx context.Context, scheduleID int64) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("1").
		From("public.reservations").
		Where(squirrel.Eq{"schedule_id": scheduleID}).
		Where(squirrel.Eq{"status": "READY_TO_PLAY"}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build ready reservation query failed: %w", err)
	}

	var exists bool
	err = r.pool.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check ready reservation failed: %w", err)
	}
	return exists, nil
}
