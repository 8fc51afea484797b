package cart

import (
	"gorm.io/gorm"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/repository"
)

var cartErrorMessages = repository.Messages{
	repository.MsgNotFound:        repository.Text("Cart not found"),
	repository.MsgDuplicateKey:    repository.Text("A cart already exists for this session"),
	repository.MsgIntegrity:       repository.Text("Cart data is invalid"),
	repository.MsgForeignKey:      repository.Text("Cart references an invalid related resource"),
	repository.MsgCheckConstraint: repository.Text("Cart data violates business rules"),
	repository.MsgMultipleRows:    repository.Text("Multiple carts were found when only one was expected"),
	repository.MsgOther:           repository.Text("An unexpected error occurred while processing the cart"),
}

var cartItemErrorMessages = repository.Messages{
	repository.MsgNotFound:        repository.Text("Cart item not found"),
	repository.MsgDuplicateKey:    repository.Text("This product is already in the cart"),
	repository.MsgIntegrity:       repository.Text("Cart item data is invalid"),
	repository.MsgForeignKey:      repository.Text("Cart item references an invalid cart or product"),
	repository.MsgCheckConstraint: repository.Text("Cart item data violates business rules"),
	repository.MsgMultipleRows:    repository.Text("Multiple cart items were found when only one was expected"),
	repository.MsgOther:           repository.Text("An unexpected error occurred while processing the cart item"),
}

// NewCartRepository creates the cart repository.
func NewCartRepository(db *gorm.DB) *repository.Repository[domain.Cart] {
	return repository.New[domain.Cart](db, repository.Config{
		Messages: cartErrorMessages,
	})
}

// NewCartItemRepository creates the cart-item repository.
func NewCartItemRepository(db *gorm.DB) *repository.Repository[domain.CartItem] {
	return repository.New[domain.CartItem](db, repository.Config{
		Messages: cartItemErrorMessages,
	})
}
