package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"caltrack/internal/domain"
)

// NewFavorite is the input for saving a favorite food. An empty source
// defaults to openfoodfacts.
type NewFavorite struct {
	UserID          int64         `json:"user_id"`
	Name            string        `json:"name"`
	Brand           *string       `json:"brand"`
	Barcode         *string       `json:"barcode"`
	CaloriesPer100g float64       `json:"calories_per_100g"`
	ProteinPer100g  float64       `json:"protein_per_100g"`
	CarbsPer100g    float64       `json:"carbs_per_100g"`
	FatPer100g      float64       `json:"fat_per_100g"`
	Source          domain.Source `json:"source"`
	ExternalID      *string       `json:"external_id"`
	ImageURL        *string       `json:"image_url"`
}

// FavoriteService manages a user's favorite foods.
type FavoriteService struct {
	store domain.Store
}

// NewFavoriteService creates a FavoriteService backed by the given store.
func NewFavoriteService(store domain.Store) *FavoriteService {
	return &FavoriteService{store: store}
}

// Add saves a favorite.
func (s *FavoriteService) Add(ctx context.Context, n NewFavorite) (*domain.FavoriteFood, error) {
	if strings.TrimSpace(n.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalid)
	}
	source, err := validSource(n.Source, domain.SourceOpenFoodFacts)
	if err != nil {
		return nil, err
	}

	f := domain.FavoriteFood{
		UserID:          n.UserID,
		Name:            n.Name,
		Brand:           n.Brand,
		Barcode:         n.Barcode,
		CaloriesPer100g: n.CaloriesPer100g,
		ProteinPer100g:  n.ProteinPer100g,
		CarbsPer100g:    n.CarbsPer100g,
		FatPer100g:      n.FatPer100g,
		Source:          source,
		ExternalID:      n.ExternalID,
		ImageURL:        n.ImageURL,
		CreatedAt:       time.Now(),
	}

	var out *domain.FavoriteFood
	err = s.store.InTx(ctx, func(r domain.Repos) error {
		out, err = r.Favorites.Insert(ctx, f)
		return err
	})
	return out, err
}

// List returns the user's favorites ordered by name.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]domain.FavoriteFood, error) {
	var out []domain.FavoriteFood
	err := s.store.InTx(ctx, func(r domain.Repos) error {
		var err error
		out, err = r.Favorites.List(ctx, userID)
		return err
	})
	return out, err
}

// Remove deletes a favorite.
func (s *FavoriteService) Remove(ctx context.Context, id int64) error {
	return s.store.InTx(ctx, func(r domain.Repos) error {
		return r.Favorites.Delete(ctx, id)
	})
}
