package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"caltrack/internal/domain"
)

const entryColumns = "id, user_id, date, meal_type, name, brand, barcode, serving_size, servings, " +
	"calories, protein, carbs, fat, fiber, sugar, source, external_id, image_url, created_at"

type entryRepo struct {
	q querier
}

func scanEntry(s scanner) (*domain.FoodEntry, error) {
	var (
		e   domain.FoodEntry
		day time.Time
	)
	err := s.Scan(&e.ID, &e.UserID, &day, &e.MealType, &e.Name, &e.Brand, &e.Barcode,
		&e.ServingSize, &e.Servings, &e.Calories, &e.Protein, &e.Carbs, &e.Fat, &e.Fiber, &e.Sugar,
		&e.Source, &e.ExternalID, &e.ImageURL, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	e.Date = day.Format(domain.DayLayout)
	return &e, nil
}

// List returns a user's entries matching f in the requested order.
func (r *entryRepo) List(ctx context.Context, userID int64, f domain.EntryFilter) ([]domain.FoodEntry, error) {
	var b strings.Builder
	args := []any{userID}
	b.WriteString("SELECT " + entryColumns + " FROM food_entries WHERE user_id = $1")
	if f.From != "" {
		args = append(args, f.From)
		fmt.Fprintf(&b, " AND date >= $%d", len(args))
	}
	if f.To != "" {
		args = append(args, f.To)
		fmt.Fprintf(&b, " AND date <= $%d", len(args))
	}
	switch f.Order {
	case domain.OrderNewest:
		b.WriteString(" ORDER BY date DESC, created_at DESC, id DESC;")
	default:
		b.WriteString(" ORDER BY meal_type, created_at, id;")
	}

	rows, err := r.q.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.FoodEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Get retrieves an entry by ID.
func (r *entryRepo) Get(ctx context.Context, id int64) (*domain.FoodEntry, error) {
	e, err := scanEntry(r.q.QueryRowContext(ctx, "SELECT "+entryColumns+" FROM food_entries WHERE id = $1;", id))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("entry %d", id))
	}
	return e, nil
}

// Insert stores a new entry. An unknown user yields domain.ErrNotFound.
func (r *entryRepo) Insert(ctx context.Context, e domain.FoodEntry) (*domain.FoodEntry, error) {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	out, err := scanEntry(r.q.QueryRowContext(ctx,
		`INSERT INTO food_entries (user_id, date, meal_type, name, brand, barcode, serving_size, servings,
			calories, protein, carbs, fat, fiber, sugar, source, external_id, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING `+entryColumns+";",
		e.UserID, e.Date, string(e.MealType), e.Name, e.Brand, e.Barcode, e.ServingSize, e.Servings,
		e.Calories, e.Protein, e.Carbs, e.Fat, e.Fiber, e.Sugar, string(e.Source), e.ExternalID, e.ImageURL,
		createdAt.UTC(),
	))
	if err != nil {
		return nil, mapError(err, "insert entry")
	}
	return out, nil
}

// UpdateServings changes the serving count of an entry.
func (r *entryRepo) UpdateServings(ctx context.Context, id int64, servings float64) (*domain.FoodEntry, error) {
	e, err := scanEntry(r.q.QueryRowContext(ctx,
		"UPDATE food_entries SET servings = $2 WHERE id = $1 RETURNING "+entryColumns+";", id, servings))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("entry %d", id))
	}
	return e, nil
}

// Delete removes an entry by ID.
func (r *entryRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, "DELETE FROM food_entries WHERE id = $1;", id)
	if err != nil {
		return mapError(err, fmt.Sprintf("entry %d", id))
	}
	return expectOne(res, fmt.Sprintf("entry %d", id))
}
