// Package repository holds the sqlite-backed stores.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrIncomplete rejects a submission with an empty field.
var ErrIncomplete = errors.New("submission is incomplete")

// Submission is one completed form.
type Submission struct {
	ID         string
	Date       string
	BloodGroup string
	Division   string
	CreatedAt  time.Time
}

// SubmissionRepo handles submissions.
type SubmissionRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewSubmissionRepo(db *sql.DB) *SubmissionRepo {
	return &SubmissionRepo{db: db, now: func() time.Time { return time.Now().UTC().Truncate(time.Second) }}
}

// Insert stores s, filling ID and CreatedAt when unset, and returns the
// stored row.
func (r *SubmissionRepo) Insert(ctx context.Context, s Submission) (Submission, error) {
	if s.Date == "" || s.BloodGroup == "" || s.Division == "" {
		return Submission{}, ErrIncomplete
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = r.now()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO submissions(id, date, blood_group, division, created_at)
	VALUES (?, ?, ?, ?, ?);
	`, s.ID, s.Date, s.BloodGroup, s.Division, s.CreatedAt)
	if err != nil {
		return Submission{}, fmt.Errorf("insert submission: %w", err)
	}
	return s, nil
}

// Latest returns the newest submission, or nil when there are none.
func (r *SubmissionRepo) Latest(ctx context.Context) (*Submission, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, date, blood_group, division, created_at
	FROM submissions ORDER BY created_at DESC, rowid DESC LIMIT 1`)
	var s Submission
	if err := row.Scan(&s.ID, &s.Date, &s.BloodGroup, &s.Division, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// List returns submissions newest first.
func (r *SubmissionRepo) List(ctx context.Context) ([]Submission, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, date, blood_group, division, created_at
	FROM submissions ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Submission
	for rows.Next() {
		var s Submission
		if err := rows.Scan(&s.ID, &s.Date, &s.BloodGroup, &s.Division, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
