package domain

// Product is a catalog entry. The name is unique across the catalog; the
// price column is a fixed-precision decimal, so values exceeding its
// precision fail at the storage layer, not in input validation.
type Product struct {
	UUIDModel
	AuditColumns
	Name        string  `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       *string `json:"image"`
	Category    string  `gorm:"size:100;index;not null" json:"category"`
}

// Product sort directions and sortable columns accepted by the catalog
// listing.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// ProductQuery holds the catalog listing parameters: pagination, free-text
// search, category filter, inclusive price bounds, and sorting.
type ProductQuery struct {
	Page      int
	PageSize  int
	Search    string
	Category  string
	PriceFrom *float64
	PriceTo   *float64
	SortBy    string // "price" or "name"; empty means repository default
	SortOrder string // "asc" or "desc"
}
