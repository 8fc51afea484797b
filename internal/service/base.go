// Package service provides the generic service layer base shared by the
// per-entity services.
package service

import (
	"context"

	"github.com/simp-lee/storefront/internal/repository"
)

// Base is the generic orchestration layer over one entity's repository.
// Per-entity services embed it and add their business rules.
type Base[T repository.Model] struct {
	Repo *repository.Repository[T]
}

// NewBase creates a Base over the given repository.
func NewBase[T repository.Model](repo *repository.Repository[T]) Base[T] {
	return Base[T]{Repo: repo}
}

// Add persists a freshly instantiated entity.
func (s Base[T]) Add(ctx context.Context, entity *T) error {
	return s.Repo.Add(ctx, entity)
}

// List returns entities matching the given options; none means all rows in
// the repository's default order.
func (s Base[T]) List(ctx context.Context, opts ...repository.Option) ([]T, error) {
	return s.Repo.List(ctx, opts...)
}
