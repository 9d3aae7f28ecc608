package openfoodfacts_test

import (
	"encoding/json"
	"testing"

	"caltrack/internal/adapter/openfoodfacts"
	"caltrack/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func decodeProduct(t *testing.T, s string) openfoodfacts.RawProduct {
	t.Helper()
	var p openfoodfacts.RawProduct
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		t.Fatalf("decode product: %v", err)
	}
	return p
}

func TestNormalize_Full(t *testing.T) {
	p := decodeProduct(t, `{
		"code": "4000417025005",
		"product_name": "Haferflocken",
		"brands": "Koelln",
		"image_front_small_url": "https://images.example/oats.jpg",
		"serving_size": "40g",
		"nutriments": {
			"energy-kcal_100g": 372,
			"proteins_100g": 13.5,
			"carbohydrates_100g": "58.7",
			"fat_100g": 7,
			"fiber_100g": 10,
			"sugars_100g": 0.7
		}
	}`)
	img := "https://images.example/oats.jpg"
	want := domain.FoodFact{
		Barcode:         "4000417025005",
		Name:            "Haferflocken",
		Brand:           "Koelln",
		ImageURL:        &img,
		ServingSize:     "40g",
		CaloriesPer100g: 372,
		ProteinPer100g:  13.5,
		CarbsPer100g:    58.7,
		FatPer100g:      7,
		FiberPer100g:    10,
		SugarPer100g:    0.7,
		Source:          domain.SourceOpenFoodFacts,
	}
	if diff := cmp.Diff(want, openfoodfacts.Normalize(p)); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_MissingFields(t *testing.T) {
	got := openfoodfacts.Normalize(decodeProduct(t, `{"code": "123"}`))

	want := domain.FoodFact{
		Barcode:     "123",
		Name:        openfoodfacts.UnknownProductName,
		Brand:       "",
		ServingSize: "100g",
		Source:      domain.SourceOpenFoodFacts,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
	if got.ImageURL != nil {
		t.Fatalf("expected nil image, got %q", *got.ImageURL)
	}
}

func TestNormalize_PartialNutriments(t *testing.T) {
	got := openfoodfacts.Normalize(decodeProduct(t, `{
		"product_name": "",
		"nutriments": {"energy-kcal_100g": 52, "fat_100g": "n/a", "sugars_100g": null}
	}`))
	if got.Name != openfoodfacts.UnknownProductName {
		t.Errorf("expected placeholder name, got %q", got.Name)
	}
	if got.CaloriesPer100g != 52 {
		t.Errorf("expected 52 kcal, got %v", got.CaloriesPer100g)
	}
	if got.FatPer100g != 0 || got.SugarPer100g != 0 || got.ProteinPer100g != 0 {
		t.Errorf("expected zero defaults, got %+v", got)
	}
}

func TestNormalize_NonFiniteQuotedNutriment(t *testing.T) {
	got := openfoodfacts.Normalize(decodeProduct(t, `{
		"nutriments": {"energy-kcal_100g": "NaN", "proteins_100g": "Inf", "carbohydrates_100g": "12.5"}
	}`))
	if got.CaloriesPer100g != 0 || got.ProteinPer100g != 0 {
		t.Errorf("expected non-finite values to count as missing, got %+v", got)
	}
	if got.CarbsPer100g != 12.5 {
		t.Errorf("expected 12.5 carbs, got %v", got.CarbsPer100g)
	}
}
