// Package repository provides a generic GORM-backed data-access layer: a
// per-entity repository engine configured with data rather than inheritance,
// and a classifier that translates storage-engine failures into a stable
// typed error taxonomy.
package repository

import (
	"context"

	"gorm.io/gorm"
)

// Model is implemented by every persisted entity, via the domain primary-key
// mixins. PrimaryKey returns the identity attribute's current value.
type Model interface {
	PrimaryKey() any
}

// Config carries the entity-specific settings of a repository: its default
// ordering, its default error-message templates, and the name of its
// identity column. The zero value is usable.
type Config struct {
	// OrderBy is the default ordering for List; a per-call Order option
	// replaces it.
	OrderBy []OrderBy

	// Messages are the repository's default error-message templates,
	// layered over the global defaults at construction.
	Messages Messages

	// IDColumn is the identity column name, "id" when empty.
	IDColumn string
}

// Repository is a generic data-access object for one entity type, bound to a
// unit-of-work handle. All operations surface failures exclusively as *Error
// values classified by wrapError.
type Repository[T Model] struct {
	db       *gorm.DB
	orderBy  []OrderBy
	messages Messages
	idColumn string
}

// New creates a repository for T bound to db. The error-message mapping is
// resolved once here: cfg.Messages layered over the global defaults, so all
// keys are always present.
func New[T Model](db *gorm.DB, cfg Config) *Repository[T] {
	idColumn := cfg.IDColumn
	if idColumn == "" {
		idColumn = "id"
	}
	return &Repository[T]{
		db:       db,
		orderBy:  cfg.OrderBy,
		messages: resolveMessages(cfg.Messages),
		idColumn: idColumn,
	}
}

// WithTx returns a copy of the repository bound to tx, for running
// operations inside an explicit transaction.
func (r *Repository[T]) WithTx(tx *gorm.DB) *Repository[T] {
	clone := *r
	clone.db = tx
	return &clone
}

// DB exposes the bound unit-of-work handle.
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

// Add registers entity as new and writes it in a single flush-or-commit.
// Server-generated values (id, timestamps) are written back into entity;
// WithRefresh additionally reloads it from storage.
func (r *Repository[T]) Add(ctx context.Context, entity *T, opts ...Option) error {
	q := buildQuery(opts)
	msgs := r.callMessages(q)

	tx := r.session(ctx)
	if err := tx.Create(entity).Error; err != nil {
		return wrapError(err, msgs)
	}
	if q.refresh {
		if err := r.refresh(tx, entity, q.refreshAttrs); err != nil {
			return wrapError(err, msgs)
		}
	}
	return nil
}

// AddMany batch-registers entities with a single flush-or-commit for the
// whole batch. No per-item refresh is performed.
func (r *Repository[T]) AddMany(ctx context.Context, entities []*T, opts ...Option) error {
	q := buildQuery(opts)
	msgs := r.callMessages(q)

	if len(entities) == 0 {
		return nil
	}
	if err := r.session(ctx).Create(entities).Error; err != nil {
		return wrapError(err, msgs)
	}
	return nil
}

// List returns all rows matching the query options. Explicit per-call
// ordering wins over the repository default; ordering is deterministic for
// identical inputs.
func (r *Repository[T]) List(ctx context.Context, opts ...Option) ([]T, error) {
	q := buildQuery(opts)
	msgs := r.callMessages(q)

	tx := q.applyFilters(r.session(ctx).Model(new(T)))

	orders := q.orderBy
	if len(orders) == 0 {
		orders = r.orderBy
	}
	tx = applyOrder(tx, orders)

	if q.limit > 0 {
		tx = tx.Limit(q.limit)
	}
	if q.offset > 0 {
		tx = tx.Offset(q.offset)
	}
	if q.distinct {
		tx = tx.Distinct()
	}
	for _, assoc := range q.preloads {
		tx = tx.Preload(assoc)
	}

	var items []T
	if err := tx.Find(&items).Error; err != nil {
		return nil, wrapError(err, msgs)
	}
	return items, nil
}

// GetOne returns the single row matching the query options. Zero rows is a
// NotFound failure, more than one a MultipleRows failure; it never returns
// nil without an error.
func (r *Repository[T]) GetOne(ctx context.Context, opts ...Option) (*T, error) {
	items, msgs, err := r.probeOne(ctx, opts)
	if err != nil {
		return nil, err
	}
	switch len(items) {
	case 0:
		return nil, NewError(KindNotFound, msgs.render(MsgNotFound, nil), nil)
	case 1:
		return &items[0], nil
	default:
		return nil, NewError(KindMultipleRows, msgs.render(MsgMultipleRows, nil), nil)
	}
}

// GetOneOrNone is GetOne except zero rows returns (nil, nil). More than one
// row still fails.
func (r *Repository[T]) GetOneOrNone(ctx context.Context, opts ...Option) (*T, error) {
	items, msgs, err := r.probeOne(ctx, opts)
	if err != nil {
		return nil, err
	}
	switch len(items) {
	case 0:
		return nil, nil
	case 1:
		return &items[0], nil
	default:
		return nil, NewError(KindMultipleRows, msgs.render(MsgMultipleRows, nil), nil)
	}
}

// probeOne fetches up to two rows so that callers can distinguish "exactly
// one" from "multiple matched".
func (r *Repository[T]) probeOne(ctx context.Context, opts []Option) ([]T, Messages, error) {
	q := buildQuery(opts)
	msgs := r.callMessages(q)

	tx := q.applyFilters(r.session(ctx).Model(new(T)))
	for _, assoc := range q.preloads {
		tx = tx.Preload(assoc)
	}

	var items []T
	if err := tx.Limit(2).Find(&items).Error; err != nil {
		return nil, msgs, wrapError(err, msgs)
	}
	return items, msgs, nil
}

// Update merges the entity's state into storage by primary key and writes it
// in a single flush-or-commit. The entity may originate outside the current
// unit-of-work.
func (r *Repository[T]) Update(ctx context.Context, entity *T, opts ...Option) error {
	q := buildQuery(opts)
	msgs := r.callMessages(q)

	tx := r.session(ctx)
	if err := tx.Save(entity).Error; err != nil {
		return wrapError(err, msgs)
	}
	if q.refresh {
		if err := r.refresh(tx, entity, q.refreshAttrs); err != nil {
			return wrapError(err, msgs)
		}
	}
	return nil
}

// UpdateMany merges each entity individually inside one transaction, so the
// whole batch commits once. Each entity is refreshed afterwards if requested.
func (r *Repository[T]) UpdateMany(ctx context.Context, entities []*T, opts ...Option) error {
	q := buildQuery(opts)
	msgs := r.callMessages(q)

	err := r.session(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entity := range entities {
			if err := tx.Save(entity).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return wrapError(err, msgs)
	}

	if q.refresh {
		tx := r.session(ctx)
		for _, entity := range entities {
			if err := r.refresh(tx, entity, q.refreshAttrs); err != nil {
				return wrapError(err, msgs)
			}
		}
	}
	return nil
}

// Delete removes the loaded entity. Zero affected rows is a NotFound
// failure.
func (r *Repository[T]) Delete(ctx context.Context, entity *T, opts ...Option) error {
	q := buildQuery(opts)
	msgs := r.callMessages(q)

	result := r.session(ctx).Delete(entity)
	if result.Error != nil {
		return wrapError(result.Error, msgs)
	}
	if result.RowsAffected == 0 {
		return NewError(KindNotFound, msgs.render(MsgNotFound, nil), nil)
	}
	return nil
}

// Count returns the number of rows matching the conditions and equality
// filters.
func (r *Repository[T]) Count(ctx context.Context, opts ...Option) (int64, error) {
	q := buildQuery(opts)
	msgs := r.callMessages(q)

	tx := q.applyFilters(r.session(ctx).Model(new(T)))

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, wrapError(err, msgs)
	}
	return total, nil
}

// Exists reports whether any row matches the conditions, using an
// EXISTS-wrapped subquery rather than a full count.
func (r *Repository[T]) Exists(ctx context.Context, conds ...Condition) (bool, error) {
	sub := r.session(ctx).Model(new(T)).Select("1")
	for _, cond := range conds {
		sub = cond(sub)
	}

	var exists bool
	if err := r.session(ctx).Raw("SELECT EXISTS (?)", sub).Scan(&exists).Error; err != nil {
		return false, wrapError(err, r.messages)
	}
	return exists, nil
}

// refresh reloads entity from storage by its identity column. With attrs it
// reloads only the named columns.
func (r *Repository[T]) refresh(tx *gorm.DB, entity *T, attrs []string) error {
	stmt := tx.Where(r.idColumn+" = ?", (*entity).PrimaryKey())
	if len(attrs) > 0 {
		stmt = stmt.Select(attrs)
	}
	return stmt.First(entity).Error
}

// callMessages layers a per-call override over the repository's resolved
// mapping.
func (r *Repository[T]) callMessages(q *query) Messages {
	if len(q.messages) == 0 {
		return r.messages
	}
	return resolveMessages(r.messages, q.messages)
}

func (r *Repository[T]) session(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}
