package meeting

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
//
// Create and Update run their existence check, overlap scan, and write inside
// a single transaction. The overlap scan produces the friendly ErrOverlap; the
// meetings_no_group_overlap exclusion constraint guarantees that two
// concurrent writers cannot both slip past the scan, so exactly one of two
// racing requests commits.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// ListByGroup retrieves all meetings of a development group ordered by start
// time ascending.
func (r *PostgresRepository) ListByGroup(ctx context.Context, groupID int64) ([]Meeting, error) {
	query := `
		SELECT id, development_group_id, description, start_time, end_time, room
		FROM meetings
		WHERE development_group_id = $1
		ORDER BY start_time ASC`

	rows, err := r.pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing meetings: %w", err)
	}
	defer rows.Close()

	var meetings []Meeting
	for rows.Next() {
		var m Meeting
		err := rows.Scan(&m.ID, &m.GroupID, &m.Description, &m.Start, &m.End, &m.Room)
		if err != nil {
			return nil, fmt.Errorf("scanning meeting row: %w", err)
		}
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating meeting rows: %w", err)
	}

	if meetings == nil {
		meetings = []Meeting{}
	}

	return meetings, nil
}

// Create inserts a new meeting after verifying the development group exists
// and no meeting of the same group overlaps the requested interval. Times
// must already be normalized via NormalizeTime.
func (r *PostgresRepository) Create(ctx context.Context, m *Meeting) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM development_groups WHERE id = $1)`,
		m.GroupID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking development group: %w", err)
	}
	if !exists {
		return ErrGroupNotFound
	}

	if err := checkOverlap(ctx, tx, m.GroupID, 0, m); err != nil {
		return err
	}

	query := `
		INSERT INTO meetings (development_group_id, description, start_time, end_time, room)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err = tx.QueryRow(ctx, query, m.GroupID, m.Description, m.Start, m.End, m.Room).Scan(&m.ID)
	if err != nil {
		return mapWriteError(err, "inserting meeting")
	}

	if err := tx.Commit(ctx); err != nil {
		return mapWriteError(err, "committing meeting insert")
	}

	return nil
}

// Update replaces all fields of an existing meeting. The overlap scan skips
// the meeting's own row, so rescheduling a meeting to its current interval
// never conflicts with itself. Returns ErrNotFound when the id does not
// reference a stored meeting.
func (r *PostgresRepository) Update(ctx context.Context, m *Meeting) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := checkOverlap(ctx, tx, m.GroupID, m.ID, m); err != nil {
		return err
	}

	query := `
		UPDATE meetings
		SET development_group_id = $1, description = $2, start_time = $3, end_time = $4, room = $5
		WHERE id = $6`

	result, err := tx.Exec(ctx, query, m.GroupID, m.Description, m.Start, m.End, m.Room, m.ID)
	if err != nil {
		return mapWriteError(err, "updating meeting")
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return mapWriteError(err, "committing meeting update")
	}

	return nil
}

// Delete removes a meeting by id. Deleting an id that does not exist is a
// no-op, not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting meeting: %w", err)
	}
	return nil
}

// checkOverlap returns ErrOverlap when any meeting of the group, other than
// excludeID, intersects m's half-open interval.
func checkOverlap(ctx context.Context, tx pgx.Tx, groupID, excludeID int64, m *Meeting) error {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM meetings
			WHERE development_group_id = $1
			AND id != $2
			AND start_time < $3
			AND end_time > $4
		)`

	var overlaps bool
	err := tx.QueryRow(ctx, query, groupID, excludeID, m.End, m.Start).Scan(&overlaps)
	if err != nil {
		return fmt.Errorf("checking meeting overlap: %w", err)
	}
	if overlaps {
		return ErrOverlap
	}

	return nil
}

// mapWriteError translates constraint violations raised by the database into
// domain errors. The exclusion constraint fires when a concurrent writer
// committed an overlapping meeting after our scan; the foreign key fires when
// the group was deleted out from under us.
func mapWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23P01": // exclusion_violation
			return ErrOverlap
		case "23503": // foreign_key_violation
			return ErrGroupNotFound
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
