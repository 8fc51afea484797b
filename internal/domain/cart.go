package domain

import "github.com/google/uuid"

// Cart is a per-session shopping cart. It owns its items: deleting the cart
// cascades to them.
type Cart struct {
	UUIDModel
	SessionID string     `gorm:"size:50;uniqueIndex;not null" json:"session_id"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
}

// CartItem is one line of a cart. It references a product but does not own
// it.
type CartItem struct {
	UUIDModel
	CartID    uuid.UUID `gorm:"type:uuid;not null" json:"cart_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
}
