package domain

import "context"

// FoodFact is a normalised product record from an external food database.
type FoodFact struct {
	Barcode         string  `json:"barcode"`
	Name            string  `json:"name"`
	Brand           string  `json:"brand"`
	ImageURL        *string `json:"image_url"`
	ServingSize     string  `json:"serving_size"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
	FiberPer100g    float64 `json:"fiber_per_100g"`
	SugarPer100g    float64 `json:"sugar_per_100g"`
	Source          Source  `json:"source"`
}

// SearchResult is one page of food search results.
type SearchResult struct {
	Products []FoodFact `json:"products"`
	Count    int        `json:"count"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// FoodFactSource is the port for an external food database. Implementations
// absorb upstream failures: a failed search is an empty result and a failed
// lookup is "not found".
type FoodFactSource interface {
	Search(ctx context.Context, query string, page int) SearchResult
	Lookup(ctx context.Context, barcode string) (FoodFact, bool)
}
