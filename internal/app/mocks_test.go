package app_test

import (
	"context"

	"caltrack/internal/domain"
)

// mockStore hands the same repositories to every unit of work.
type mockStore struct {
	repos domain.Repos
	calls int
}

func (m *mockStore) InTx(ctx context.Context, fn func(r domain.Repos) error) error {
	m.calls++
	return fn(m.repos)
}

type mockEntryRepo struct {
	domain.FoodEntryRepository
	listFn func(ctx context.Context, userID int64, f domain.EntryFilter) ([]domain.FoodEntry, error)
}

func (m *mockEntryRepo) List(ctx context.Context, userID int64, f domain.EntryFilter) ([]domain.FoodEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, f)
	}
	return nil, nil
}

type mockWeightRepo struct {
	domain.WeightRepository
	getByDateFn func(ctx context.Context, userID int64, day string) (*domain.WeightEntry, error)
	insertFn    func(ctx context.Context, e domain.WeightEntry) (*domain.WeightEntry, error)
	updateFn    func(ctx context.Context, id int64, weight float64, note *string) (*domain.WeightEntry, error)
}

func (m *mockWeightRepo) GetByDate(ctx context.Context, userID int64, day string) (*domain.WeightEntry, error) {
	if m.getByDateFn != nil {
		return m.getByDateFn(ctx, userID, day)
	}
	return nil, domain.ErrNotFound
}

func (m *mockWeightRepo) Insert(ctx context.Context, e domain.WeightEntry) (*domain.WeightEntry, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, e)
	}
	return &e, nil
}

func (m *mockWeightRepo) Update(ctx context.Context, id int64, weight float64, note *string) (*domain.WeightEntry, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, weight, note)
	}
	return &domain.WeightEntry{ID: id, Weight: weight, Note: note}, nil
}

type mockFoodSource struct {
	searchFn func(ctx context.Context, query string, page int) domain.SearchResult
	lookupFn func(ctx context.Context, barcode string) (domain.FoodFact, bool)
}

func (m *mockFoodSource) Search(ctx context.Context, query string, page int) domain.SearchResult {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, page)
	}
	return domain.SearchResult{Products: []domain.FoodFact{}}
}

func (m *mockFoodSource) Lookup(ctx context.Context, barcode string) (domain.FoodFact, bool) {
	if m.lookupFn != nil {
		return m.lookupFn(ctx, barcode)
	}
	return domain.FoodFact{}, false
}

func ptr[T any](v T) *T { return &v }
