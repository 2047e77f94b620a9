package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
)

const activityColumns = `id, type, start, "end", created_at, updated_at`

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db *sql.DB
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(db *sql.DB) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: db}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (id, type, start, "end", created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		string(a.Type),
		a.Start.UTC().Format(time.RFC3339),
		nullableTimeToString(a.End, time.RFC3339),
		nowUTC(),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanActivity(row)
}

// List returns all activities ordered by start then end, matching the
// engine's sort key so callers see a stable chronological log.
func (r *SQLiteActivityRepo) List(ctx context.Context) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY start, "end" IS NULL, "end"`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

// GetOngoing returns the single open activity, or ErrNotFound when none
// is in progress.
func (r *SQLiteActivityRepo) GetOngoing(ctx context.Context) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE "end" IS NULL ORDER BY start DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)
	return r.scanActivity(row)
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities SET type = ?, start = ?, "end" = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(a.Type),
		a.Start.UTC().Format(time.RFC3339),
		nullableTimeToString(a.End, time.RFC3339),
		nowUTC(),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("activity %s: %w", a.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

// scanActivity scans a single activity from a *sql.Row.
func (r *SQLiteActivityRepo) scanActivity(row *sql.Row) (*domain.Activity, error) {
	var a domain.Activity
	var typeStr, startStr string
	var endStr sql.NullString

	err := row.Scan(&a.ID, &typeStr, &startStr, &endStr, new(string), new(string))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}
	return r.populateActivity(&a, typeStr, startStr, endStr)
}

// scanActivities scans multiple activities from *sql.Rows.
func (r *SQLiteActivityRepo) scanActivities(rows *sql.Rows) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	for rows.Next() {
		var a domain.Activity
		var typeStr, startStr string
		var endStr sql.NullString

		if err := rows.Scan(&a.ID, &typeStr, &startStr, &endStr, new(string), new(string)); err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}

		activity, parseErr := r.populateActivity(&a, typeStr, startStr, endStr)
		if parseErr != nil {
			return nil, parseErr
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

// populateActivity fills in parsed fields after scanning raw strings.
func (r *SQLiteActivityRepo) populateActivity(a *domain.Activity, typeStr, startStr string, endStr sql.NullString) (*domain.Activity, error) {
	a.Type = domain.ActivityType(typeStr)

	var parseErr error
	a.Start, parseErr = time.Parse(time.RFC3339, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start: %w", parseErr)
	}
	a.End = parseNullableTime(endStr, time.RFC3339)
	return a, nil
}
