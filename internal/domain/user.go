// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// Default goals applied when a user registers without explicit targets.
const (
	DefaultCalorieGoal = 2000
	DefaultProteinGoal = 150
	DefaultCarbGoal    = 200
	DefaultFatGoal     = 65
)

// Goals are a user's daily macro targets (kcal and grams).
type Goals struct {
	CalorieGoal int `json:"calorie_goal"`
	ProteinGoal int `json:"protein_goal"`
	CarbGoal    int `json:"carb_goal"`
	FatGoal     int `json:"fat_goal"`
}

// DefaultGoals returns the registration defaults.
func DefaultGoals() Goals {
	return Goals{
		CalorieGoal: DefaultCalorieGoal,
		ProteinGoal: DefaultProteinGoal,
		CarbGoal:    DefaultCarbGoal,
		FatGoal:     DefaultFatGoal,
	}
}

// User is a tracked person. Names are unique.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Goals
	CreatedAt time.Time `json:"created_at"`
}

// GoalUpdate is a sparse change to a user's goals; nil fields are left alone.
type GoalUpdate struct {
	CalorieGoal *int `json:"calorie_goal,omitempty"`
	ProteinGoal *int `json:"protein_goal,omitempty"`
	CarbGoal    *int `json:"carb_goal,omitempty"`
	FatGoal     *int `json:"fat_goal,omitempty"`
}

// Apply writes the fields present in u onto g.
func (u GoalUpdate) Apply(g Goals) Goals {
	if u.CalorieGoal != nil {
		g.CalorieGoal = *u.CalorieGoal
	}
	if u.ProteinGoal != nil {
		g.ProteinGoal = *u.ProteinGoal
	}
	if u.CarbGoal != nil {
		g.CarbGoal = *u.CarbGoal
	}
	if u.FatGoal != nil {
		g.FatGoal = *u.FatGoal
	}
	return g
}

// UserRepository defines the port for user persistence operations.
// Lookups return ErrNotFound for unknown users; Create returns ErrConflict
// for a duplicate name.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByName(ctx context.Context, name string) (*User, error)
	Create(ctx context.Context, u User) (*User, error)
	UpdateGoals(ctx context.Context, id int64, g Goals) (*User, error)
}
