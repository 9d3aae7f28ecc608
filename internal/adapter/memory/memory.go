// Package memory implements an in-memory store for development and testing.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"caltrack/internal/domain"
)

// state is everything the store holds. Transactions work on a copy and swap
// it in on commit.
type state struct {
	users     []domain.User
	entries   []domain.FoodEntry
	weights   []domain.WeightEntry
	favorites []domain.FavoriteFood

	userIDCounter     int64
	entryIDCounter    int64
	weightIDCounter   int64
	favoriteIDCounter int64
}

func (s *state) clone() *state {
	c := *s
	c.users = append([]domain.User(nil), s.users...)
	c.entries = append([]domain.FoodEntry(nil), s.entries...)
	c.weights = append([]domain.WeightEntry(nil), s.weights...)
	c.favorites = append([]domain.FavoriteFood(nil), s.favorites...)
	return &c
}

func (s *state) userExists(id int64) bool {
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// DB implements an in-memory database storage.
type DB struct {
	mu sync.Mutex
	st *state
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{st: &state{}}
}

// Ensure interfaces are met.
var _ domain.Store = (*DB)(nil)
var _ domain.UserRepository = (*userRepo)(nil)
var _ domain.FoodEntryRepository = (*entryRepo)(nil)
var _ domain.WeightRepository = (*weightRepo)(nil)
var _ domain.FavoriteRepository = (*favoriteRepo)(nil)

// InTx runs fn against a private copy of the data and publishes the copy only
// if fn succeeds. Transactions are serialised.
func (db *DB) InTx(ctx context.Context, fn func(r domain.Repos) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	st := db.st.clone()
	err := fn(domain.Repos{
		Users:     &userRepo{st: st},
		Entries:   &entryRepo{st: st},
		Weights:   &weightRepo{st: st},
		Favorites: &favoriteRepo{st: st},
	})
	if err != nil {
		return err
	}
	db.st = st
	return nil
}

func createdAtOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

// --- UserRepository ---

type userRepo struct{ st *state }

// List returns all users ordered by name.
func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	out := append([]domain.User(nil), r.st.users...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetByID retrieves a user by ID.
func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range r.st.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
}

// GetByName retrieves a user by name.
func (r *userRepo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	for _, u := range r.st.users {
		if u.Name == name {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", name, domain.ErrNotFound)
}

// Create creates a new user.
func (r *userRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	for _, existing := range r.st.users {
		if existing.Name == u.Name {
			return nil, fmt.Errorf("user %q already exists: %w", u.Name, domain.ErrConflict)
		}
	}
	r.st.userIDCounter++
	u.ID = r.st.userIDCounter
	u.CreatedAt = createdAtOrNow(u.CreatedAt)
	r.st.users = append(r.st.users, u)
	return &u, nil
}

// UpdateGoals overwrites a user's goals.
func (r *userRepo) UpdateGoals(ctx context.Context, id int64, g domain.Goals) (*domain.User, error) {
	for i := range r.st.users {
		if r.st.users[i].ID == id {
			r.st.users[i].Goals = g
			u := r.st.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
}

// --- FoodEntryRepository ---

type entryRepo struct{ st *state }

// List returns a user's entries matching f in the requested order.
func (r *entryRepo) List(ctx context.Context, userID int64, f domain.EntryFilter) ([]domain.FoodEntry, error) {
	out := make([]domain.FoodEntry, 0)
	for _, e := range r.st.entries {
		if e.UserID == userID && f.Includes(e.Date) {
			out = append(out, e)
		}
	}

	switch f.Order {
	case domain.OrderNewest:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Date != out[j].Date {
				return out[i].Date > out[j].Date
			}
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].ID > out[j].ID
		})
	default:
		// Same ordering as ORDER BY meal_type, created_at in Postgres.
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].MealType != out[j].MealType {
				return out[i].MealType < out[j].MealType
			}
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			}
			return out[i].ID < out[j].ID
		})
	}
	return out, nil
}

// Get retrieves an entry by ID.
func (r *entryRepo) Get(ctx context.Context, id int64) (*domain.FoodEntry, error) {
	for _, e := range r.st.entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("entry %d: %w", id, domain.ErrNotFound)
}

// Insert stores a new entry.
func (r *entryRepo) Insert(ctx context.Context, e domain.FoodEntry) (*domain.FoodEntry, error) {
	if !r.st.userExists(e.UserID) {
		return nil, fmt.Errorf("user %d: %w", e.UserID, domain.ErrNotFound)
	}
	r.st.entryIDCounter++
	e.ID = r.st.entryIDCounter
	e.CreatedAt = createdAtOrNow(e.CreatedAt)
	r.st.entries = append(r.st.entries, e)
	return &e, nil
}

// UpdateServings changes the serving count of an entry.
func (r *entryRepo) UpdateServings(ctx context.Context, id int64, servings float64) (*domain.FoodEntry, error) {
	for i := range r.st.entries {
		if r.st.entries[i].ID == id {
			r.st.entries[i].Servings = servings
			e := r.st.entries[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf("entry %d: %w", id, domain.ErrNotFound)
}

// Delete removes an entry by ID.
func (r *entryRepo) Delete(ctx context.Context, id int64) error {
	for i, e := range r.st.entries {
		if e.ID == id {
			r.st.entries = append(r.st.entries[:i], r.st.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("entry %d: %w", id, domain.ErrNotFound)
}

// --- WeightRepository ---

type weightRepo struct{ st *state }

// GetByDate returns the weight logged by a user on day.
func (r *weightRepo) GetByDate(ctx context.Context, userID int64, day string) (*domain.WeightEntry, error) {
	for _, w := range r.st.weights {
		if w.UserID == userID && w.Date == day {
			return &w, nil
		}
	}
	return nil, fmt.Errorf("weight for user %d on %s: %w", userID, day, domain.ErrNotFound)
}

// ListRecent returns a user's most recent weights, newest date first.
func (r *weightRepo) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.WeightEntry, error) {
	out := make([]domain.WeightEntry, 0)
	for _, w := range r.st.weights {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Insert stores a new weight entry.
func (r *weightRepo) Insert(ctx context.Context, e domain.WeightEntry) (*domain.WeightEntry, error) {
	if !r.st.userExists(e.UserID) {
		return nil, fmt.Errorf("user %d: %w", e.UserID, domain.ErrNotFound)
	}
	for _, w := range r.st.weights {
		if w.UserID == e.UserID && w.Date == e.Date {
			return nil, fmt.Errorf("weight for user %d on %s: %w", e.UserID, e.Date, domain.ErrConflict)
		}
	}
	r.st.weightIDCounter++
	e.ID = r.st.weightIDCounter
	e.CreatedAt = createdAtOrNow(e.CreatedAt)
	r.st.weights = append(r.st.weights, e)
	return &e, nil
}

// Update overwrites the weight and note of an entry.
func (r *weightRepo) Update(ctx context.Context, id int64, weight float64, note *string) (*domain.WeightEntry, error) {
	for i := range r.st.weights {
		if r.st.weights[i].ID == id {
			r.st.weights[i].Weight = weight
			r.st.weights[i].Note = note
			w := r.st.weights[i]
			return &w, nil
		}
	}
	return nil, fmt.Errorf("weight %d: %w", id, domain.ErrNotFound)
}

// Delete removes a weight entry by ID.
func (r *weightRepo) Delete(ctx context.Context, id int64) error {
	for i, w := range r.st.weights {
		if w.ID == id {
			r.st.weights = append(r.st.weights[:i], r.st.weights[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("weight %d: %w", id, domain.ErrNotFound)
}

// --- FavoriteRepository ---

type favoriteRepo struct{ st *state }

// List returns a user's favorites ordered by name.
func (r *favoriteRepo) List(ctx context.Context, userID int64) ([]domain.FavoriteFood, error) {
	out := make([]domain.FavoriteFood, 0)
	for _, f := range r.st.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Insert stores a new favorite.
func (r *favoriteRepo) Insert(ctx context.Context, f domain.FavoriteFood) (*domain.FavoriteFood, error) {
	if !r.st.userExists(f.UserID) {
		return nil, fmt.Errorf("user %d: %w", f.UserID, domain.ErrNotFound)
	}
	r.st.favoriteIDCounter++
	f.ID = r.st.favoriteIDCounter
	f.CreatedAt = createdAtOrNow(f.CreatedAt)
	r.st.favorites = append(r.st.favorites, f)
	return &f, nil
}

// Delete removes a favorite by ID.
func (r *favoriteRepo) Delete(ctx context.Context, id int64) error {
	for i, f := range r.st.favorites {
		if f.ID == id {
			r.st.favorites = append(r.st.favorites[:i], r.st.favorites[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("favorite %d: %w", id, domain.ErrNotFound)
}
