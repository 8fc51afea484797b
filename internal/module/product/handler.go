package product

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

// ProductHandler handles REST API requests for the product catalog.
type ProductHandler struct {
	svc Service
}

// NewHandler creates a new ProductHandler with the given service.
func NewHandler(svc Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.CreateProduct(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, p)
}

// CreateBulk handles POST /api/v1/products/bulk.
func (h *ProductHandler) CreateBulk(c *gin.Context) {
	var reqs []CreateProductRequest
	if !pkg.BindAndValidate(c, &reqs) {
		return
	}

	products, err := h.svc.CreateProducts(c.Request.Context(), reqs)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, products)
}

// List handles GET /api/v1/products.
func (h *ProductHandler) List(c *gin.Context) {
	var req ListProductsRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	page, err := h.svc.ListProducts(c.Request.Context(), domain.ProductQuery{
		Page:      req.Page,
		PageSize:  req.PageSize,
		Search:    req.Search,
		Category:  req.Category,
		PriceFrom: req.PriceFrom,
		PriceTo:   req.PriceTo,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, page)
}

// Get handles GET /api/v1/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		pkg.BadRequest(c, "invalid product id")
		return
	}

	p, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, p)
}
