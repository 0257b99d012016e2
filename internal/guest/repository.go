package guest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, g *Guest) error
	GetByID(ctx context.Context, id int64) (*Guest, error)
	List(ctx context.Context) ([]*Guest, error)
	FindByName(ctx context.Context, name string) ([]*Guest, error)
	FindByPartialName(ctx context.Context, partial string) ([]*Guest, error)
	Update(ctx context.Context, g *Guest) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, g *Guest) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.guests").
		Columns("name").
		Values(g.Name).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create guest query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("create guest failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Guest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "created_at").
		From("public.guests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get guest query failed: %w", err)
	}

	var g Guest
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get guest failed: %w", err)
	}
	return &g, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Guest, error) {
	return r.query(ctx, nil)
}

func (r *pgxRepository) FindByName(ctx context.Context, name string) ([]*Guest, error) {
	return r.query(ctx, squirrel.Eq{"name": name})
}

func (r *pgxRepository) FindByPartialName(ctx context.Context, partial string) ([]*Guest, error) {
	return r.query(ctx, squirrel.ILike{"name": "%" + partial + "%"})
}

func (r *pgxRepository) query(ctx context.Context, pred any) ([]*Guest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select("id", "name", "created_at").
		From("public.guests").
		OrderBy("id ASC")

	if pred != nil {
		queryBuilder = queryBuilder.Where(pred)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list guests query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list guests failed: %w", err)
	}
	defer rows.Close()

	var guests []*Guest
	for rows.Next() {
		var g Guest
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan guest failed: %w", err)
		}
		guests = append(guests, &g)
	}
	return guests, nil
}

func (r *pgxRepository) Update(ctx context.Context, g *Guest) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.guests").
		Set("name", g.Name).
		Where(squirrel.Eq{"id": g.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update guest query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update guest failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.guests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete guest query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete guest failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
