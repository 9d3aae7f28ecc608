package postgres

import (
	"context"
	"fmt"
	"time"

	"caltrack/internal/domain"
)

const favoriteColumns = "id, user_id, name, brand, barcode, calories_per_100g, protein_per_100g, " +
	"carbs_per_100g, fat_per_100g, source, external_id, image_url, created_at"

type favoriteRepo struct {
	q querier
}

func scanFavorite(s scanner) (*domain.FavoriteFood, error) {
	var f domain.FavoriteFood
	err := s.Scan(&f.ID, &f.UserID, &f.Name, &f.Brand, &f.Barcode, &f.CaloriesPer100g, &f.ProteinPer100g,
		&f.CarbsPer100g, &f.FatPer100g, &f.Source, &f.ExternalID, &f.ImageURL, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns a user's favorites ordered by name.
func (r *favoriteRepo) List(ctx context.Context, userID int64) ([]domain.FavoriteFood, error) {
	rows, err := r.q.QueryContext(ctx,
		"SELECT "+favoriteColumns+" FROM favorite_foods WHERE user_id = $1 ORDER BY name, id;", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.FavoriteFood, 0)
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

// Insert stores a new favorite.
func (r *favoriteRepo) Insert(ctx context.Context, f domain.FavoriteFood) (*domain.FavoriteFood, error) {
	createdAt := f.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	out, err := scanFavorite(r.q.QueryRowContext(ctx,
		`INSERT INTO favorite_foods (user_id, name, brand, barcode, calories_per_100g, protein_per_100g,
			carbs_per_100g, fat_per_100g, source, external_id, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+favoriteColumns+";",
		f.UserID, f.Name, f.Brand, f.Barcode, f.CaloriesPer100g, f.ProteinPer100g,
		f.CarbsPer100g, f.FatPer100g, string(f.Source), f.ExternalID, f.ImageURL, createdAt.UTC(),
	))
	if err != nil {
		return nil, mapError(err, "insert favorite")
	}
	return out, nil
}

// Delete removes a favorite by ID.
func (r *favoriteRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, "DELETE FROM favorite_foods WHERE id = $1;", id)
	if err != nil {
		return mapError(err, fmt.Sprintf("favorite %d", id))
	}
	return expectOne(res, fmt.Sprintf("favorite %d", id))
}
