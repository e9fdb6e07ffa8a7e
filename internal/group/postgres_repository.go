package group

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new development group record. Group names are not unique;
// two groups may share a name.
func (r *PostgresRepository) Create(ctx context.Context, g *Group) error {
	query := `
		INSERT INTO development_groups (name)
		VALUES ($1)
		RETURNING id`

	if err := r.pool.QueryRow(ctx, query, g.Name).Scan(&g.ID); err != nil {
		return fmt.Errorf("inserting development group: %w", err)
	}

	return nil
}

// List retrieves all development groups in insertion order.
func (r *PostgresRepository) List(ctx context.Context) ([]Group, error) {
	query := `
		SELECT id, name
		FROM development_groups
		ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing development groups: %w", err)
	}
	defer rows.Close()

	var groups []Group
	for rows.Next() {
		var g Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scanning development group row: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating development group rows: %w", err)
	}

	if groups == nil {
		groups = []Group{}
	}

	return groups, nil
}

// Exists reports whether a development group with the given id is present.
func (r *PostgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM development_groups WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking development group existence: %w", err)
	}

	return exists, nil
}
