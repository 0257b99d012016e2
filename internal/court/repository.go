package court

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, tc *TennisCourt) error
	GetByID(ctx context.Context, id int64) (*TennisCourt, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, tc *TennisCourt) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.tennis_courts").
		Columns("name").
		Values(tc.Name).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create tennis court query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&tc.ID, &tc.CreatedAt)
	if err != nil {
		return fmt.Errorf("create tennis court failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*TennisCourt, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "created_at").
		From("public.tennis_courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get tennis court query failed: %w", err)
	}

	var tc TennisCourt
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&tc.ID, &tc.Name, &tc.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tennis court failed: %w", err)
	}
	return &tc, nil
}
