// Package sqlite stores the activity log in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/domain/repository"
	"github.com/bnema/synapse/internal/logging"
)

const defaultRecentLimit = 50

type activityRepo struct {
	db *sql.DB
}

// NewActivityRepository creates a SQLite-backed activity repository.
func NewActivityRepository(db *sql.DB) repository.ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Record(ctx context.Context, a *entity.Activity) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO activity (kind, binding_key, event_code, action_path, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(a.Kind), string(a.BindingKey), int64(a.EventCode), a.ActionPath, a.Error, a.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		a.ID = id
	}

	logging.FromContext(ctx).Trace().
		Str("kind", string(a.Kind)).
		Int("code", int(a.EventCode)).
		Msg("activity recorded")
	return nil
}

func (r *activityRepo) Recent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, binding_key, event_code, action_path, error, created_at
		 FROM activity
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*entity.Activity, 0, limit)
	for rows.Next() {
		var (
			a       entity.Activity
			kind    string
			key     string
			code    int64
			created int64
		)
		if err := rows.Scan(&a.ID, &kind, &key, &code, &a.ActionPath, &a.Error, &created); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.Kind = entity.ActivityKind(kind)
		a.BindingKey = entity.BindingKey(key)
		a.EventCode = entity.EventCode(code)
		a.CreatedAt = time.Unix(0, created)
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return out, nil
}

func (r *activityRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM activity`); err != nil {
		return fmt.Errorf("clear activity: %w", err)
	}
	return nil
}
