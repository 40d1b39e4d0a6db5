package usecase

import (
	"context"

	"jild/internal/domain/cart"
	"jild/internal/domain/catalog"

	"github.com/google/uuid"
)

// CartView is a cart as the client renders it.
type CartView struct {
	Lines    []cart.Line  `json:"lines"`
	Wishlist []int        `json:"wishlist"`
	Summary  cart.Summary `json:"summary"`
}

// ShopUsecase serves the catalog and in-memory carts. Carts are keyed by the
// signed-in user id or by an anonymous cart id.
type ShopUsecase interface {
	// ListProducts filters and sorts the catalog; userID biases the recommended sort when set.
	ListProducts(ctx context.Context, userID *uuid.UUID, query catalog.Query) ([]catalog.Product, error)
	Categories() []string

	Cart(ctx context.Context, cartKey string) *CartView
	AddToCart(ctx context.Context, cartKey string, productID int) (*CartView, error)
	RemoveFromCart(ctx context.Context, cartKey string, productID int) (*CartView, error)
	// UpdateQuantity ignores quantities below 1.
	UpdateQuantity(ctx context.Context, cartKey string, productID, quantity int) (*CartView, error)
	ToggleWishlist(ctx context.Context, cartKey string, productID int) (*CartView, error)
	// PlaceOrder clears the cart. Nothing is recorded.
	PlaceOrder(ctx context.Context, cartKey string) (*cart.Confirmation, error)
}
