package app

import (
	"context"
	"errors"
	"time"

	"caltrack/internal/domain"
)

// DefaultWeightLimit is the number of weights ListRecent returns by default.
const DefaultWeightLimit = 30

// upsertAttempts bounds how often Log reruns after losing an insert race.
const upsertAttempts = 2

// WeightService encapsulates weight-tracking use cases.
type WeightService struct {
	store domain.Store
}

// NewWeightService creates a WeightService backed by the given store.
func NewWeightService(store domain.Store) *WeightService {
	return &WeightService{store: store}
}

// Log records the user's weight for day. An existing entry for that day has
// its weight and note replaced (a nil note clears it); otherwise a new entry
// is created. The lookup and the write run in one transaction. If a
// concurrent writer inserts the same day first, the store reports
// domain.ErrConflict and the transaction is rerun, now taking the update path.
func (s *WeightService) Log(ctx context.Context, userID int64, day string, weight float64, note *string) (*domain.WeightEntry, error) {
	day, err := domain.ParseDay(day)
	if err != nil {
		return nil, err
	}

	var out *domain.WeightEntry
	for attempt := 0; attempt < upsertAttempts; attempt++ {
		err = s.store.InTx(ctx, func(r domain.Repos) error {
			existing, err := r.Weights.GetByDate(ctx, userID, day)
			if errors.Is(err, domain.ErrNotFound) {
				out, err = r.Weights.Insert(ctx, domain.WeightEntry{
					UserID:    userID,
					Date:      day,
					Weight:    weight,
					Note:      note,
					CreatedAt: time.Now(),
				})
				return err
			}
			if err != nil {
				return err
			}
			out, err = r.Weights.Update(ctx, existing.ID, weight, note)
			return err
		})
		if !errors.Is(err, domain.ErrConflict) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecent returns the user's most recent weights, newest first. A
// non-positive limit selects DefaultWeightLimit.
func (s *WeightService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.WeightEntry, error) {
	if limit <= 0 {
		limit = DefaultWeightLimit
	}
	var out []domain.WeightEntry
	err := s.store.InTx(ctx, func(r domain.Repos) error {
		var err error
		out, err = r.Weights.ListRecent(ctx, userID, limit)
		return err
	})
	return out, err
}

// Delete removes a weight entry.
func (s *WeightService) Delete(ctx context.Context, id int64) error {
	return s.store.InTx(ctx, func(r domain.Repos) error {
		return r.Weights.Delete(ctx, id)
	})
}
