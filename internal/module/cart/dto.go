package cart

import (
	"github.com/google/uuid"

	"github.com/simp-lee/storefront/internal/domain"
)

// AddCartItemRequest represents the input for adding a product to the cart.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItemRequest represents the input for changing a line item's
// quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// CartItemView is one line of the cart read model.
type CartItemView struct {
	ID       uuid.UUID      `json:"id"`
	Quantity int            `json:"quantity"`
	Product  domain.Product `json:"product"`
}

// CartView is the cart read model: the cart, its items with products, and
// the computed total.
type CartView struct {
	ID         uuid.UUID      `json:"id"`
	SessionID  string         `json:"session_id"`
	TotalPrice float64        `json:"total_price"`
	Items      []CartItemView `json:"items"`
}
