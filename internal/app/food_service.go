package app

import (
	"context"
	"strings"

	"caltrack/internal/domain"
)

// FoodService searches an external food database.
type FoodService struct {
	source domain.FoodFactSource
}

// NewFoodService creates a FoodService backed by the given source.
func NewFoodService(source domain.FoodFactSource) *FoodService {
	return &FoodService{source: source}
}

// Search returns one page of products matching query.
func (s *FoodService) Search(ctx context.Context, query string, page int) domain.SearchResult {
	return s.source.Search(ctx, strings.TrimSpace(query), page)
}

// Lookup returns the product with the given barcode, or domain.ErrNotFound.
func (s *FoodService) Lookup(ctx context.Context, barcode string) (*domain.FoodFact, error) {
	f, ok := s.source.Lookup(ctx, strings.TrimSpace(barcode))
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &f, nil
}
