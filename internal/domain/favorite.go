package domain

import (
	"context"
	"time"
)

// FavoriteFood is a user-curated food kept for quick re-logging. Nutrition
// values are per 100g.
type FavoriteFood struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Name            string    `json:"name"`
	Brand           *string   `json:"brand"`
	Barcode         *string   `json:"barcode"`
	CaloriesPer100g float64   `json:"calories_per_100g"`
	ProteinPer100g  float64   `json:"protein_per_100g"`
	CarbsPer100g    float64   `json:"carbs_per_100g"`
	FatPer100g      float64   `json:"fat_per_100g"`
	Source          Source    `json:"source"`
	ExternalID      *string   `json:"external_id"`
	ImageURL        *string   `json:"image_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// FavoriteRepository is the port for favorite persistence.
type FavoriteRepository interface {
	List(ctx context.Context, userID int64) ([]FavoriteFood, error)
	Insert(ctx context.Context, f FavoriteFood) (*FavoriteFood, error)
	Delete(ctx context.Context, id int64) error
}
