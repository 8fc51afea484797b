package product

// CreateProductRequest represents the input for creating a new product.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
}

// ListProductsRequest represents the catalog listing query parameters.
type ListProductsRequest struct {
	Page      int      `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize  int      `form:"page_size,default=20" binding:"omitempty,min=1,max=200"`
	Search    string   `form:"search"`
	Category  string   `form:"category"`
	PriceFrom *float64 `form:"price_from" binding:"omitempty,gte=0"`
	PriceTo   *float64 `form:"price_to" binding:"omitempty,gte=0"`
	SortBy    string   `form:"sort_by" binding:"omitempty,oneof=price name"`
	SortOrder string   `form:"sort_order,default=asc" binding:"omitempty,oneof=asc desc"`
}
