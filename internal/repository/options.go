package repository

import (
	"regexp"

	"gorm.io/gorm"
)

// Condition is an opaque boolean predicate over entity columns. Conditions
// attach WHERE clauses to the statement they receive; multiple conditions
// compose via AND.
type Condition func(tx *gorm.DB) *gorm.DB

// OrderBy is one ordering term. Build them with Asc and Desc.
type OrderBy struct {
	Column string
	Desc   bool
}

// Asc orders ascending by column.
func Asc(column string) OrderBy {
	return OrderBy{Column: column}
}

// Desc orders descending by column.
func Desc(column string) OrderBy {
	return OrderBy{Column: column, Desc: true}
}

// validColumnName matches only alphanumeric characters and underscores.
// Column names failing this check are silently ignored rather than
// interpolated into SQL.
var validColumnName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// query accumulates the per-call settings of a repository operation.
type query struct {
	conditions   []Condition
	filters      map[string]any
	orderBy      []OrderBy
	preloads     []string
	limit        int
	offset       int
	distinct     bool
	messages     Messages
	refresh      bool
	refreshAttrs []string
}

// Option configures a single repository operation.
type Option func(*query)

// Where adds boolean conditions, AND-composed with everything else.
func Where(conds ...Condition) Option {
	return func(q *query) {
		q.conditions = append(q.conditions, conds...)
	}
}

// FilterBy adds an equality filter on a column.
func FilterBy(column string, value any) Option {
	return func(q *query) {
		if q.filters == nil {
			q.filters = make(map[string]any)
		}
		q.filters[column] = value
	}
}

// Order replaces the repository's default ordering for this call.
func Order(orders ...OrderBy) Option {
	return func(q *query) {
		q.orderBy = append(q.orderBy, orders...)
	}
}

// Preload adds eager-load directives for declared relationships. Nested
// relationships chain with a dot, e.g. "Items.Product".
func Preload(associations ...string) Option {
	return func(q *query) {
		q.preloads = append(q.preloads, associations...)
	}
}

// Limit caps the number of rows returned by List.
func Limit(n int) Option {
	return func(q *query) { q.limit = n }
}

// Offset skips the first n rows in List.
func Offset(n int) Option {
	return func(q *query) { q.offset = n }
}

// Distinct de-duplicates joined-result rows.
func Distinct() Option {
	return func(q *query) { q.distinct = true }
}

// WithMessages overrides error-message templates for this call only.
// Override keys win over the repository defaults; unset keys keep them.
func WithMessages(m Messages) Option {
	return func(q *query) { q.messages = m }
}

// WithRefresh reloads the entity from storage after a write, picking up
// server-generated defaults. With no attrs the whole row is reloaded;
// otherwise only the named columns.
func WithRefresh(attrs ...string) Option {
	return func(q *query) {
		q.refresh = true
		q.refreshAttrs = append(q.refreshAttrs, attrs...)
	}
}

func buildQuery(opts []Option) *query {
	q := &query{}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// applyFilters attaches the query's conditions and equality filters.
func (q *query) applyFilters(tx *gorm.DB) *gorm.DB {
	for _, cond := range q.conditions {
		tx = cond(tx)
	}
	for column, value := range q.filters {
		if !validColumnName.MatchString(column) {
			continue
		}
		tx = tx.Where(column+" = ?", value)
	}
	return tx
}

// applyOrder attaches ORDER BY terms. Invalid column names are ignored.
func applyOrder(tx *gorm.DB, orders []OrderBy) *gorm.DB {
	for _, o := range orders {
		if !validColumnName.MatchString(o.Column) {
			continue
		}
		dir := " ASC"
		if o.Desc {
			dir = " DESC"
		}
		tx = tx.Order(o.Column + dir)
	}
	return tx
}
