package product

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
	"github.com/simp-lee/storefront/internal/repository"
	"github.com/simp-lee/storefront/internal/service"
)

// allowedSortFields lists the catalog columns a client may sort by.
var allowedSortFields = []string{"price", "name"}

// Service defines the product catalog operations.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*domain.Product, error)
	CreateProducts(ctx context.Context, reqs []CreateProductRequest) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context, q domain.ProductQuery) (*pkg.Page[domain.Product], error)
}

// productService implements Service.
type productService struct {
	service.Base[domain.Product]
}

// NewService creates a product Service over the given repository.
func NewService(repo *repository.Repository[domain.Product]) Service {
	return &productService{Base: service.NewBase(repo)}
}

// CreateProduct instantiates a product from the request and persists it.
func (s *productService) CreateProduct(ctx context.Context, req CreateProductRequest) (*domain.Product, error) {
	p := newProduct(req)
	if err := s.Add(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProducts persists a batch of products with a single commit; one bad
// record fails the whole batch.
func (s *productService) CreateProducts(ctx context.Context, reqs []CreateProductRequest) ([]domain.Product, error) {
	entities := make([]*domain.Product, 0, len(reqs))
	for _, req := range reqs {
		entities = append(entities, newProduct(req))
	}
	if err := s.Repo.AddMany(ctx, entities); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(entities))
	for _, e := range entities {
		products = append(products, *e)
	}
	return products, nil
}

// GetProduct retrieves a product by id.
func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.Repo.GetOne(ctx, repository.FilterBy("id", id))
}

// ListProducts runs the catalog listing: conjunctive filter conditions, a
// count for the page metadata, then the ordered, limited select.
func (s *productService) ListProducts(ctx context.Context, q domain.ProductQuery) (*pkg.Page[domain.Product], error) {
	conds := buildProductConditions(q)

	total, err := s.Repo.Count(ctx, repository.Where(conds...))
	if err != nil {
		return nil, err
	}

	opts := []repository.Option{
		repository.Where(conds...),
		repository.Limit(q.PageSize),
		repository.Offset(pkg.PageOffset(q.Page, q.PageSize)),
	}
	if q.SortBy != "" && slices.Contains(allowedSortFields, q.SortBy) {
		order := repository.Asc(q.SortBy)
		if q.SortOrder == domain.SortOrderDesc {
			order = repository.Desc(q.SortBy)
		}
		opts = append(opts, repository.Order(order))
	}

	items, err := s.List(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return pkg.NewPage(items, total, q.Page, q.PageSize), nil
}

// buildProductConditions translates the listing parameters into predicates.
// Search matches name or description, case-insensitively; price bounds are
// inclusive.
func buildProductConditions(q domain.ProductQuery) []repository.Condition {
	var conds []repository.Condition

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		conds = append(conds, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		})
	}

	if q.Category != "" {
		pattern := "%" + strings.ToLower(q.Category) + "%"
		conds = append(conds, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("LOWER(category) LIKE ?", pattern)
		})
	}

	if q.PriceFrom != nil {
		from := *q.PriceFrom
		conds = append(conds, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("price >= ?", from)
		})
	}

	if q.PriceTo != nil {
		to := *q.PriceTo
		conds = append(conds, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("price <= ?", to)
		})
	}

	return conds
}

func newProduct(req CreateProductRequest) *domain.Product {
	return &domain.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Category:    strings.TrimSpace(req.Category),
	}
}
