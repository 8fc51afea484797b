package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
	"github.com/simp-lee/storefront/internal/repository"
)

// ErrItemNotInCart rejects mutations of a cart item through a session that
// does not own it. The check runs before any write, so the item's state is
// untouched.
var ErrItemNotInCart = errors.New("cart item does not belong to this cart")

// Service defines the cart operations. Every operation is scoped to a
// session identifier: one cart per session.
type Service interface {
	GetOrCreateCart(ctx context.Context, sessionID string) (*domain.Cart, error)
	GetCart(ctx context.Context, sessionID string) (*CartView, error)
	AddItem(ctx context.Context, sessionID string, req AddCartItemRequest) (*domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, sessionID string, itemID uuid.UUID, quantity int) (*domain.CartItem, error)
	DeleteItem(ctx context.Context, sessionID string, itemID uuid.UUID) error
}

// cartService implements Service over the cart, cart-item, and product
// repositories.
type cartService struct {
	db       *gorm.DB
	carts    *repository.Repository[domain.Cart]
	items    *repository.Repository[domain.CartItem]
	products *repository.Repository[domain.Product]
}

// NewService creates a cart Service.
func NewService(
	db *gorm.DB,
	carts *repository.Repository[domain.Cart],
	items *repository.Repository[domain.CartItem],
	products *repository.Repository[domain.Product],
) Service {
	return &cartService{db: db, carts: carts, items: items, products: products}
}

// GetOrCreateCart returns the session's cart, creating it on first use.
// Under a concurrent first use the unique session constraint decides the
// winner; the loser surfaces a duplicate-key failure for the caller to
// retry.
func (s *cartService) GetOrCreateCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.carts.GetOneOrNone(ctx, repository.FilterBy("session_id", sessionID))
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	created := &domain.Cart{SessionID: sessionID}
	if err := s.carts.Add(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// GetCart assembles the cart read model for a session: the cart, its items
// with their products loaded in one traversal, and the computed total.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	if _, err := s.GetOrCreateCart(ctx, sessionID); err != nil {
		return nil, err
	}

	cart, err := s.carts.GetOne(ctx,
		repository.FilterBy("session_id", sessionID),
		repository.Preload("Items.Product"),
	)
	if err != nil {
		return nil, err
	}

	var total float64
	items := make([]CartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		total += item.Product.Price * float64(item.Quantity)
		items = append(items, CartItemView{
			ID:       item.ID,
			Quantity: item.Quantity,
			Product:  item.Product,
		})
	}

	return &CartView{
		ID:         cart.ID,
		SessionID:  cart.SessionID,
		TotalPrice: total,
		Items:      items,
	}, nil
}

// AddItem appends a line item to the session's cart, creating the cart when
// needed. Cart creation and the item insert share one transaction.
func (s *cartService) AddItem(ctx context.Context, sessionID string, req AddCartItemRequest) (*domain.CartItem, error) {
	product, err := s.products.GetOne(ctx, repository.FilterBy("id", req.ProductID))
	if err != nil {
		return nil, err
	}

	item := &domain.CartItem{
		ProductID: product.ID,
		Quantity:  req.Quantity,
	}

	err = pkg.WithTx(s.db, func(tx *gorm.DB) error {
		carts := s.carts.WithTx(tx)

		cart, err := carts.GetOneOrNone(ctx, repository.FilterBy("session_id", sessionID))
		if err != nil {
			return err
		}
		if cart == nil {
			cart = &domain.Cart{SessionID: sessionID}
			if err := carts.Add(ctx, cart); err != nil {
				return err
			}
		}

		item.CartID = cart.ID
		return s.items.WithTx(tx).Add(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItemQuantity changes a line item's quantity after verifying the
// session's cart owns it.
func (s *cartService) UpdateItemQuantity(ctx context.Context, sessionID string, itemID uuid.UUID, quantity int) (*domain.CartItem, error) {
	item, err := s.ownedItem(ctx, sessionID, itemID)
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes a line item after verifying the session's cart owns
// it. The delete is hard: the row is gone.
func (s *cartService) DeleteItem(ctx context.Context, sessionID string, itemID uuid.UUID) error {
	item, err := s.ownedItem(ctx, sessionID, itemID)
	if err != nil {
		return err
	}
	return s.items.Delete(ctx, item)
}

// ownedItem loads the item and enforces the ownership rule: the item id
// must appear in the session cart's item list.
func (s *cartService) ownedItem(ctx context.Context, sessionID string, itemID uuid.UUID) (*domain.CartItem, error) {
	cart, err := s.carts.GetOne(ctx,
		repository.FilterBy("session_id", sessionID),
		repository.Preload("Items"),
	)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetOne(ctx, repository.FilterBy("id", itemID))
	if err != nil {
		return nil, err
	}

	for _, owned := range cart.Items {
		if owned.ID == item.ID {
			return item, nil
		}
	}
	return nil, ErrItemNotInCart
}
