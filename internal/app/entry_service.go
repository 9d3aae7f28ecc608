package app

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"caltrack/internal/domain"
)

// NewEntry is the input for logging a food item. Nil serving fields take
// their defaults: 100g serving size and one serving.
type NewEntry struct {
	UserID      int64           `json:"user_id"`
	Date        string          `json:"date"`
	MealType    domain.MealType `json:"meal_type"`
	Name        string          `json:"name"`
	Brand       *string         `json:"brand"`
	Barcode     *string         `json:"barcode"`
	ServingSize *float64        `json:"serving_size"`
	Servings    *float64        `json:"servings"`
	Calories    float64         `json:"calories"`
	Protein     float64         `json:"protein"`
	Carbs       float64         `json:"carbs"`
	Fat         float64         `json:"fat"`
	Fiber       float64         `json:"fiber"`
	Sugar       float64         `json:"sugar"`
	Source      domain.Source   `json:"source"`
	ExternalID  *string         `json:"external_id"`
	ImageURL    *string         `json:"image_url"`
}

// EntryService encapsulates food-logging use cases.
type EntryService struct {
	store domain.Store
}

// NewEntryService creates an EntryService backed by the given store.
func NewEntryService(store domain.Store) *EntryService {
	return &EntryService{store: store}
}

func (n NewEntry) toEntry() (domain.FoodEntry, error) {
	day, err := domain.ParseDay(n.Date)
	if err != nil {
		return domain.FoodEntry{}, err
	}
	if !n.MealType.Valid() {
		return domain.FoodEntry{}, fmt.Errorf("%w: meal_type %q must be breakfast, lunch, dinner or snack", domain.ErrInvalid, n.MealType)
	}
	if strings.TrimSpace(n.Name) == "" {
		return domain.FoodEntry{}, fmt.Errorf("%w: name is required", domain.ErrInvalid)
	}
	source, err := validSource(n.Source, domain.SourceManual)
	if err != nil {
		return domain.FoodEntry{}, err
	}

	e := domain.FoodEntry{
		UserID:      n.UserID,
		Date:        day,
		MealType:    n.MealType,
		Name:        n.Name,
		Brand:       n.Brand,
		Barcode:     n.Barcode,
		ServingSize: 100,
		Servings:    1,
		Calories:    n.Calories,
		Protein:     n.Protein,
		Carbs:       n.Carbs,
		Fat:         n.Fat,
		Fiber:       n.Fiber,
		Sugar:       n.Sugar,
		Source:      source,
		ExternalID:  n.ExternalID,
		ImageURL:    n.ImageURL,
		CreatedAt:   time.Now(),
	}
	if n.ServingSize != nil {
		e.ServingSize = *n.ServingSize
	}
	if n.Servings != nil {
		e.Servings = *n.Servings
	}

	for name, v := range map[string]float64{
		"serving_size": e.ServingSize, "servings": e.Servings,
		"calories": e.Calories, "protein": e.Protein, "carbs": e.Carbs,
		"fat": e.Fat, "fiber": e.Fiber, "sugar": e.Sugar,
	} {
		if !validQuantity(v) {
			return domain.FoodEntry{}, fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalid, name)
		}
	}
	return e, nil
}

// validQuantity reports whether v is a finite, non-negative amount.
func validQuantity(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

func validSource(s, fallback domain.Source) (domain.Source, error) {
	switch s {
	case "":
		return fallback, nil
	case domain.SourceManual, domain.SourceOpenFoodFacts, domain.SourceRecipe:
		return s, nil
	}
	return "", fmt.Errorf("%w: source %q must be manual, openfoodfacts or recipe", domain.ErrInvalid, s)
}

// Create validates and stores a new food entry.
func (s *EntryService) Create(ctx context.Context, n NewEntry) (*domain.FoodEntry, error) {
	e, err := n.toEntry()
	if err != nil {
		return nil, err
	}

	var out *domain.FoodEntry
	err = s.store.InTx(ctx, func(r domain.Repos) error {
		out, err = r.Entries.Insert(ctx, e)
		return err
	})
	return out, err
}

// List returns a user's entries between from and to (inclusive; empty means
// unbounded), newest first.
func (s *EntryService) List(ctx context.Context, userID int64, from, to string) ([]domain.FoodEntry, error) {
	f := domain.EntryFilter{Order: domain.OrderNewest}
	var err error
	if from != "" {
		if f.From, err = domain.ParseDay(from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if f.To, err = domain.ParseDay(to); err != nil {
			return nil, err
		}
	}

	var out []domain.FoodEntry
	err = s.store.InTx(ctx, func(r domain.Repos) error {
		out, err = r.Entries.List(ctx, userID, f)
		return err
	})
	return out, err
}

// UpdateServings changes how many servings an entry counts for.
func (s *EntryService) UpdateServings(ctx context.Context, id int64, servings float64) (*domain.FoodEntry, error) {
	if !validQuantity(servings) {
		return nil, fmt.Errorf("%w: servings must be a non-negative number", domain.ErrInvalid)
	}

	var out *domain.FoodEntry
	err := s.store.InTx(ctx, func(r domain.Repos) error {
		var err error
		out, err = r.Entries.UpdateServings(ctx, id, servings)
		return err
	})
	return out, err
}

// Delete removes an entry.
func (s *EntryService) Delete(ctx context.Context, id int64) error {
	return s.store.InTx(ctx, func(r domain.Repos) error {
		return r.Entries.Delete(ctx, id)
	})
}
