package openfoodfacts

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"caltrack/internal/domain"
)

// Defaults applied to fields missing from an upstream product.
const (
	UnknownProductName = "Unknown"
	DefaultServingSize = "100g"
)

// Nutriment keys read from the upstream "nutriments" map.
const (
	keyEnergyKcal = "energy-kcal_100g"
	keyProteins   = "proteins_100g"
	keyCarbs      = "carbohydrates_100g"
	keyFat        = "fat_100g"
	keyFiber      = "fiber_100g"
	keySugars     = "sugars_100g"
)

// fields is the projection requested from the upstream API.
const fields = "code,product_name,brands,image_front_small_url,nutriments,serving_size"

// RawProduct is a product record as returned by Open Food Facts. Every field
// may be missing.
type RawProduct struct {
	Code        *string                    `json:"code"`
	ProductName *string                    `json:"product_name"`
	Brands      *string                    `json:"brands"`
	ImageURL    *string                    `json:"image_front_small_url"`
	Nutriments  map[string]json.RawMessage `json:"nutriments"`
	ServingSize *string                    `json:"serving_size"`
}

// Normalize converts a raw product into the canonical FoodFact shape.
func Normalize(p RawProduct) domain.FoodFact {
	f := domain.FoodFact{
		Barcode:         deref(p.Code),
		Name:            orDefault(p.ProductName, UnknownProductName),
		Brand:           deref(p.Brands),
		ServingSize:     orDefault(p.ServingSize, DefaultServingSize),
		CaloriesPer100g: nutriment(p.Nutriments, keyEnergyKcal),
		ProteinPer100g:  nutriment(p.Nutriments, keyProteins),
		CarbsPer100g:    nutriment(p.Nutriments, keyCarbs),
		FatPer100g:      nutriment(p.Nutriments, keyFat),
		FiberPer100g:    nutriment(p.Nutriments, keyFiber),
		SugarPer100g:    nutriment(p.Nutriments, keySugars),
		Source:          domain.SourceOpenFoodFacts,
	}
	if p.ImageURL != nil && *p.ImageURL != "" {
		img := *p.ImageURL
		f.ImageURL = &img
	}
	return f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDefault(s *string, fallback string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return fallback
	}
	return *s
}

// nutriment reads a numeric nutriment. The upstream sends numbers, but
// occasionally quoted numbers; anything else counts as missing.
func nutriment(m map[string]json.RawMessage, key string) float64 {
	raw, ok := m[key]
	if !ok {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v
		}
	}
	return 0
}
