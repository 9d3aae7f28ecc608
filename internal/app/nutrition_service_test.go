package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"caltrack/internal/adapter/memory"
	"caltrack/internal/app"
	"caltrack/internal/domain"
)

func TestDaily_QueriesExactDay(t *testing.T) {
	var gotFilter domain.EntryFilter
	entries := &mockEntryRepo{
		listFn: func(_ context.Context, userID int64, f domain.EntryFilter) ([]domain.FoodEntry, error) {
			gotFilter = f
			return []domain.FoodEntry{
				{MealType: domain.Lunch, Date: "2026-01-12", Servings: 1, Calories: 250},
			}, nil
		},
	}
	svc := app.NewNutritionService(&mockStore{repos: domain.Repos{Entries: entries}})

	got, err := svc.Daily(context.Background(), 1, "2026-01-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFilter.From != "2026-01-12" || gotFilter.To != "2026-01-12" || gotFilter.Order != domain.OrderByMeal {
		t.Errorf("unexpected filter: %+v", gotFilter)
	}
	if got.Totals.Calories != 250 || len(got.Meals[domain.Lunch]) != 1 {
		t.Errorf("unexpected summary: %+v", got)
	}
}

func TestDaily_BadDate(t *testing.T) {
	svc := app.NewNutritionService(&mockStore{})
	if _, err := svc.Daily(context.Background(), 1, "12/01/2026"); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestDaily_StoreError(t *testing.T) {
	boom := errors.New("boom")
	entries := &mockEntryRepo{
		listFn: func(context.Context, int64, domain.EntryFilter) ([]domain.FoodEntry, error) { return nil, boom },
	}
	svc := app.NewNutritionService(&mockStore{repos: domain.Repos{Entries: entries}})
	if _, err := svc.Daily(context.Background(), 1, "2026-01-12"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

func TestDaily_UnknownUserIsEmpty(t *testing.T) {
	svc := app.NewNutritionService(memory.New())
	got, err := svc.Daily(context.Background(), 42, "2026-01-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Totals != (domain.Macros{}) {
		t.Errorf("expected zero totals, got %+v", got.Totals)
	}
}

func TestWeekly_WindowFromStart(t *testing.T) {
	var gotFilter domain.EntryFilter
	entries := &mockEntryRepo{
		listFn: func(_ context.Context, _ int64, f domain.EntryFilter) ([]domain.FoodEntry, error) {
			gotFilter = f
			return nil, nil
		},
	}
	svc := app.NewNutritionService(&mockStore{repos: domain.Repos{Entries: entries}})

	got, err := svc.Weekly(context.Background(), 1, "2026-01-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFilter.From != "2026-01-14" || gotFilter.To != "2026-01-20" {
		t.Errorf("unexpected filter: %+v", gotFilter)
	}
	if len(got.Days) != 7 || got.EndDate != "2026-01-20" {
		t.Errorf("unexpected summary: %+v", got)
	}
}

func TestWeekly_DefaultsToMonday(t *testing.T) {
	svc := app.NewNutritionService(memory.New())
	got, err := svc.Weekly(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	start, err := domain.ParseDay(got.StartDate)
	if err != nil {
		t.Fatalf("bad start date %q: %v", got.StartDate, err)
	}
	day, _ := time.Parse(domain.DayLayout, start)
	if day.Weekday() != time.Monday {
		t.Errorf("start %s is not a Monday", start)
	}
}

func TestWeekly_BadDate(t *testing.T) {
	svc := app.NewNutritionService(&mockStore{})
	if _, err := svc.Weekly(context.Background(), 1, "2026-13-01"); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
