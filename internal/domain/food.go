package domain

import (
	"context"
	"time"
)

// MealType is the meal slot a food entry is logged under.
type MealType string

// Meal slots.
const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// MealTypes lists every slot in the order clients render them.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

// Valid reports whether m is one of the four recognised slots.
func (m MealType) Valid() bool {
	switch m {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// Source records where a food's nutrition facts came from.
type Source string

// Food sources.
const (
	SourceManual        Source = "manual"
	SourceOpenFoodFacts Source = "openfoodfacts"
	SourceRecipe        Source = "recipe"
)

// FoodEntry is one logged food item. Nutrition values are per serving;
// Servings multiplies them.
type FoodEntry struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Date        string    `json:"date"`
	MealType    MealType  `json:"meal_type"`
	Name        string    `json:"name"`
	Brand       *string   `json:"brand"`
	Barcode     *string   `json:"barcode"`
	ServingSize float64   `json:"serving_size"`
	Servings    float64   `json:"servings"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Fiber       float64   `json:"fiber"`
	Sugar       float64   `json:"sugar"`
	Source      Source    `json:"source"`
	ExternalID  *string   `json:"external_id"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Effective returns the entry's calories and macros scaled by its servings.
func (e FoodEntry) Effective() Macros {
	return Macros{
		Calories: e.Calories,
		Protein:  e.Protein,
		Carbs:    e.Carbs,
		Fat:      e.Fat,
	}.Scale(e.Servings)
}

// EntryOrder selects the ordering of a food entry listing.
type EntryOrder int

const (
	// OrderByMeal sorts by meal slot, then creation time, oldest first.
	OrderByMeal EntryOrder = iota
	// OrderNewest sorts by date, then creation time, newest first.
	OrderNewest
)

// EntryFilter narrows a food entry listing. Empty bounds are open.
type EntryFilter struct {
	From  string
	To    string
	Order EntryOrder
}

// OnDay returns a filter matching exactly one day, ordered by meal.
func OnDay(day string) EntryFilter {
	return EntryFilter{From: day, To: day, Order: OrderByMeal}
}

// Includes reports whether day falls inside the filter's bounds.
func (f EntryFilter) Includes(day string) bool {
	if f.From != "" && day < f.From {
		return false
	}
	if f.To != "" && day > f.To {
		return false
	}
	return true
}

// FoodEntryRepository is the port for food entry persistence.
type FoodEntryRepository interface {
	List(ctx context.Context, userID int64, f EntryFilter) ([]FoodEntry, error)
	Get(ctx context.Context, id int64) (*FoodEntry, error)
	Insert(ctx context.Context, e FoodEntry) (*FoodEntry, error)
	UpdateServings(ctx context.Context, id int64, servings float64) (*FoodEntry, error)
	Delete(ctx context.Context, id int64) error
}
