// Package storage provides the recipe collection implementations.
package storage

import (
	"context"
	"slices"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeStore = (*MemoryStore)(nil)

// MemoryStore keeps recipes in insertion order. It is owned by a single
// goroutine and does no locking. Records are cloned on every boundary
// crossing so callers never share memory with the store.
type MemoryStore struct {
	recipes []*domain.Recipe
	log     *logger.Logger
}

// NewMemoryStore creates an empty in-memory recipe store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{log: log}
}

// Append adds a recipe at the end of the collection.
func (s *MemoryStore) Append(ctx context.Context, r *domain.Recipe) error {
	s.recipes = append(s.recipes, r.Clone())
	s.log.Debug("stored recipe %q at position %d", r.Name, len(s.recipes)-1)
	return nil
}

// All returns copies of every recipe in insertion order.
func (s *MemoryStore) All(ctx context.Context) ([]*domain.Recipe, error) {
	out := make([]*domain.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r.Clone())
	}
	return out, nil
}

// Len returns the number of stored recipes.
func (s *MemoryStore) Len(ctx context.Context) int {
	return len(s.recipes)
}

// Index returns the position of the first recipe matching pred, or -1.
// pred sees the stored record and must not retain or modify it.
func (s *MemoryStore) Index(ctx context.Context, pred func(*domain.Recipe) bool) int {
	for i, r := range s.recipes {
		if pred(r) {
			return i
		}
	}
	return -1
}

// At returns a copy of the recipe at position i.
func (s *MemoryStore) At(ctx context.Context, i int) (*domain.Recipe, error) {
	if i < 0 || i >= len(s.recipes) {
		return nil, domain.ErrNotFound
	}
	return s.recipes[i].Clone(), nil
}

// Replace overwrites the recipe at position i.
func (s *MemoryStore) Replace(ctx context.Context, i int, r *domain.Recipe) error {
	if i < 0 || i >= len(s.recipes) {
		return domain.ErrNotFound
	}
	s.recipes[i] = r.Clone()
	s.log.Debug("replaced recipe %q at position %d", r.Name, i)
	return nil
}

// RemoveAt deletes the recipe at position i and returns it. The relative
// order of the remaining recipes is kept.
func (s *MemoryStore) RemoveAt(ctx context.Context, i int) (*domain.Recipe, error) {
	if i < 0 || i >= len(s.recipes) {
		return nil, domain.ErrNotFound
	}
	removed := s.recipes[i]
	s.recipes = slices.Delete(s.recipes, i, i+1)
	s.log.Debug("removed recipe %q from position %d, %d left", removed.Name, i, len(s.recipes))
	return removed, nil
}
