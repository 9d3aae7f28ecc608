package postgres

import (
	"context"
	"fmt"
	"time"

	"caltrack/internal/domain"
)

const userColumns = "id, name, calorie_goal, protein_goal, carb_goal, fat_goal, created_at"

type userRepo struct {
	q querier
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*domain.User, error) {
	var u domain.User
	err := s.Scan(&u.ID, &u.Name, &u.CalorieGoal, &u.ProteinGoal, &u.CarbGoal, &u.FatGoal, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns all users ordered by name.
func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY name;")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

// GetByID retrieves a user by ID.
func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(r.q.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1;", id))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("user %d", id))
	}
	return u, nil
}

// GetByName retrieves a user by name.
func (r *userRepo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	u, err := scanUser(r.q.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE name = $1;", name))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("user %q", name))
	}
	return u, nil
}

// Create creates a new user. A taken name yields domain.ErrConflict.
func (r *userRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	out, err := scanUser(r.q.QueryRowContext(ctx,
		"INSERT INTO users (name, calorie_goal, protein_goal, carb_goal, fat_goal, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING "+userColumns+";",
		u.Name, u.CalorieGoal, u.ProteinGoal, u.CarbGoal, u.FatGoal, createdAt.UTC(),
	))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("create user %q", u.Name))
	}
	return out, nil
}

// UpdateGoals overwrites a user's goals.
func (r *userRepo) UpdateGoals(ctx context.Context, id int64, g domain.Goals) (*domain.User, error) {
	out, err := scanUser(r.q.QueryRowContext(ctx,
		"UPDATE users SET calorie_goal = $2, protein_goal = $3, carb_goal = $4, fat_goal = $5 WHERE id = $1 RETURNING "+userColumns+";",
		id, g.CalorieGoal, g.ProteinGoal, g.CarbGoal, g.FatGoal,
	))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("user %d", id))
	}
	return out, nil
}
