package app_test

import (
	"context"
	"errors"
	"testing"

	"caltrack/internal/adapter/memory"
	"caltrack/internal/app"
	"caltrack/internal/domain"
)

func TestFavorites(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	userID := newUser(t, store, "anna")
	svc := app.NewFavoriteService(store)

	f, err := svc.Add(ctx, app.NewFavorite{UserID: userID, Name: "skyr", CaloriesPer100g: 63})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if f.Source != domain.SourceOpenFoodFacts {
		t.Errorf("expected openfoodfacts default, got %q", f.Source)
	}
	if _, err := svc.Add(ctx, app.NewFavorite{UserID: userID, Name: "apple", Source: domain.SourceManual}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, app.NewFavorite{UserID: userID}); !errors.Is(err, domain.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	favs, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(favs) != 2 || favs[0].Name != "apple" {
		t.Errorf("unexpected favorites: %+v", favs)
	}

	if err := svc.Remove(ctx, f.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(ctx, f.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
