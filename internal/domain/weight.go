package domain

import (
	"context"
	"time"
)

// WeightEntry is the body weight logged for one calendar day.
type WeightEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Date      string    `json:"date"`
	Weight    float64   `json:"weight"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// WeightRepository is the port for weight persistence. At most one entry may
// exist per (user, date); Insert returns ErrConflict otherwise.
type WeightRepository interface {
	GetByDate(ctx context.Context, userID int64, day string) (*WeightEntry, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]WeightEntry, error)
	Insert(ctx context.Context, e WeightEntry) (*WeightEntry, error)
	Update(ctx context.Context, id int64, weight float64, note *string) (*WeightEntry, error)
	Delete(ctx context.Context, id int64) error
}
