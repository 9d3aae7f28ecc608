// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"caltrack/internal/domain"
)

// UserService handles registration and goal profiles.
type UserService struct {
	store domain.Store
}

// NewUserService creates a UserService backed by the given store.
func NewUserService(store domain.Store) *UserService {
	return &UserService{store: store}
}

// Register creates a user with the given name. Goals missing from goals take
// the registration defaults. A taken name yields domain.ErrConflict.
func (s *UserService) Register(ctx context.Context, name string, goals domain.GoalUpdate) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalid)
	}

	var out *domain.User
	err := s.store.InTx(ctx, func(r domain.Repos) error {
		_, err := r.Users.GetByName(ctx, name)
		if err == nil {
			return fmt.Errorf("user %q already exists: %w", name, domain.ErrConflict)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		out, err = r.Users.Create(ctx, domain.User{
			Name:      name,
			Goals:     goals.Apply(domain.DefaultGoals()),
			CreatedAt: time.Now(),
		})
		return err
	})
	return out, err
}

// Get returns a user by ID.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	var out *domain.User
	err := s.store.InTx(ctx, func(r domain.Repos) error {
		var err error
		out, err = r.Users.GetByID(ctx, id)
		return err
	})
	return out, err
}

// List returns all users ordered by name.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := s.store.InTx(ctx, func(r domain.Repos) error {
		var err error
		out, err = r.Users.List(ctx)
		return err
	})
	return out, err
}

// UpdateGoals applies the goals present in u and leaves the rest unchanged.
// Goal magnitudes are not validated.
func (s *UserService) UpdateGoals(ctx context.Context, id int64, u domain.GoalUpdate) (*domain.User, error) {
	var out *domain.User
	err := s.store.InTx(ctx, func(r domain.Repos) error {
		user, err := r.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		out, err = r.Users.UpdateGoals(ctx, id, u.Apply(user.Goals))
		return err
	})
	return out, err
}
