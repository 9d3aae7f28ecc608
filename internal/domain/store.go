package domain

import "context"

// Repos groups the repositories bound to a single unit of work.
type Repos struct {
	Users     UserRepository
	Entries   FoodEntryRepository
	Weights   WeightRepository
	Favorites FavoriteRepository
}

// Store runs units of work atomically. InTx commits when fn returns nil and
// rolls back on error or panic; the Repos passed to fn must not be used after
// fn returns.
type Store interface {
	InTx(ctx context.Context, fn func(r Repos) error) error
}
