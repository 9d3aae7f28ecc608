package app

import (
	"context"
	"fmt"
	"time"

	"caltrack/internal/domain"
)

// NutritionService computes daily and weekly nutrition summaries. Unknown
// users get empty summaries rather than an error.
type NutritionService struct {
	store domain.Store
	now   func() time.Time
}

// NewNutritionService creates a NutritionService backed by the given store.
func NewNutritionService(store domain.Store) *NutritionService {
	return &NutritionService{store: store, now: time.Now}
}

// Daily returns the user's entries for day grouped by meal, with totals.
func (s *NutritionService) Daily(ctx context.Context, userID int64, day string) (*DailySummary, error) {
	day, err := domain.ParseDay(day)
	if err != nil {
		return nil, err
	}

	var entries []domain.FoodEntry
	err = s.store.InTx(ctx, func(r domain.Repos) error {
		entries, err = r.Entries.List(ctx, userID, domain.OnDay(day))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("daily summary: %w", err)
	}

	summary := AggregateDay(day, entries)
	return &summary, nil
}

// Weekly returns per-day totals for the seven days starting at start. An
// empty start selects the Monday of the current week.
func (s *NutritionService) Weekly(ctx context.Context, userID int64, start string) (*WeeklySummary, error) {
	if start == "" {
		start = domain.WeekStart(s.now().In(time.Local))
	} else {
		var err error
		if start, err = domain.ParseDay(start); err != nil {
			return nil, err
		}
	}
	end := domain.AddDays(start, DaysPerWeek-1)

	var entries []domain.FoodEntry
	err := s.store.InTx(ctx, func(r domain.Repos) error {
		var err error
		entries, err = r.Entries.List(ctx, userID, domain.EntryFilter{From: start, To: end})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("weekly summary: %w", err)
	}

	summary := AggregateWeek(start, entries)
	return &summary, nil
}
