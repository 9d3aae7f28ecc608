package postgres

import (
	"context"
	"fmt"
	"time"

	"caltrack/internal/domain"
)

const weightColumns = "id, user_id, date, weight, note, created_at"

type weightRepo struct {
	q querier
}

func scanWeight(s scanner) (*domain.WeightEntry, error) {
	var (
		w   domain.WeightEntry
		day time.Time
	)
	if err := s.Scan(&w.ID, &w.UserID, &day, &w.Weight, &w.Note, &w.CreatedAt); err != nil {
		return nil, err
	}
	w.Date = day.Format(domain.DayLayout)
	return &w, nil
}

// GetByDate returns the weight logged by a user on day.
func (r *weightRepo) GetByDate(ctx context.Context, userID int64, day string) (*domain.WeightEntry, error) {
	w, err := scanWeight(r.q.QueryRowContext(ctx,
		"SELECT "+weightColumns+" FROM weight_entries WHERE user_id = $1 AND date = $2;", userID, day))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("weight for user %d on %s", userID, day))
	}
	return w, nil
}

// ListRecent returns a user's most recent weights, newest date first.
func (r *weightRepo) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.WeightEntry, error) {
	rows, err := r.q.QueryContext(ctx,
		"SELECT "+weightColumns+" FROM weight_entries WHERE user_id = $1 ORDER BY date DESC LIMIT $2;", userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.WeightEntry, 0, limit)
	for rows.Next() {
		w, err := scanWeight(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *w)
	}
	return out, rows.Err()
}

// Insert stores a new weight entry. A second entry for the same (user, date)
// yields domain.ErrConflict.
func (r *weightRepo) Insert(ctx context.Context, e domain.WeightEntry) (*domain.WeightEntry, error) {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	w, err := scanWeight(r.q.QueryRowContext(ctx,
		"INSERT INTO weight_entries (user_id, date, weight, note, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING "+weightColumns+";",
		e.UserID, e.Date, e.Weight, e.Note, createdAt.UTC(),
	))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("insert weight for user %d on %s", e.UserID, e.Date))
	}
	return w, nil
}

// Update overwrites the weight and note of an entry.
func (r *weightRepo) Update(ctx context.Context, id int64, weight float64, note *string) (*domain.WeightEntry, error) {
	w, err := scanWeight(r.q.QueryRowContext(ctx,
		"UPDATE weight_entries SET weight = $2, note = $3 WHERE id = $1 RETURNING "+weightColumns+";",
		id, weight, note,
	))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("weight %d", id))
	}
	return w, nil
}

// Delete removes a weight entry by ID.
func (r *weightRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, "DELETE FROM weight_entries WHERE id = $1;", id)
	if err != nil {
		return mapError(err, fmt.Sprintf("weight %d", id))
	}
	return expectOne(res, fmt.Sprintf("weight %d", id))
}
