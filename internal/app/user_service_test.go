package app_test

import (
	"context"
	"errors"
	"testing"

	"caltrack/internal/adapter/memory"
	"caltrack/internal/app"
	"caltrack/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func TestRegister_Defaults(t *testing.T) {
	svc := app.NewUserService(memory.New())
	u, err := svc.Register(context.Background(), " anna ", domain.GoalUpdate{CalorieGoal: ptr(1800)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.Goals{CalorieGoal: 1800, ProteinGoal: 150, CarbGoal: 200, FatGoal: 65}
	if diff := cmp.Diff(want, u.Goals); diff != "" {
		t.Errorf("goals mismatch (-want +got):\n%s", diff)
	}
	if u.Name != "anna" {
		t.Errorf("expected trimmed name, got %q", u.Name)
	}
}

func TestRegister_Conflict(t *testing.T) {
	svc := app.NewUserService(memory.New())
	ctx := context.Background()
	if _, err := svc.Register(ctx, "anna", domain.GoalUpdate{}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, "anna", domain.GoalUpdate{}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if _, err := svc.Register(ctx, "  ", domain.GoalUpdate{}); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestUpdateGoals_Partial(t *testing.T) {
	store := memory.New()
	svc := app.NewUserService(store)
	ctx := context.Background()
	id := newUser(t, store, "anna")

	u, err := svc.UpdateGoals(ctx, id, domain.GoalUpdate{ProteinGoal: ptr(180)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.Goals{CalorieGoal: 2000, ProteinGoal: 180, CarbGoal: 200, FatGoal: 65}
	if diff := cmp.Diff(want, u.Goals); diff != "" {
		t.Errorf("goals mismatch (-want +got):\n%s", diff)
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ProteinGoal != 180 {
		t.Errorf("update not persisted: %+v", got)
	}

	// Magnitudes are stored as given.
	u, err = svc.UpdateGoals(ctx, id, domain.GoalUpdate{FatGoal: ptr(-5)})
	if err != nil || u.FatGoal != -5 {
		t.Errorf("expected -5 accepted, got %+v, %v", u, err)
	}
}

func TestUpdateGoals_NotFound(t *testing.T) {
	svc := app.NewUserService(memory.New())
	if _, err := svc.UpdateGoals(context.Background(), 404, domain.GoalUpdate{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListUsers(t *testing.T) {
	store := memory.New()
	newUser(t, store, "ben")
	newUser(t, store, "anna")

	users, err := app.NewUserService(store).List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 || users[0].Name != "anna" {
		t.Errorf("unexpected users: %+v", users)
	}
}
