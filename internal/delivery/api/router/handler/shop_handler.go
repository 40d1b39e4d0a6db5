package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"jild/config"
	"jild/internal/delivery/api/middleware"
	"jild/internal/delivery/api/response"
	"jild/internal/domain/catalog"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartCookieName identifies an anonymous cart.
const CartCookieName = "jild_cart"

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Config *config.Config
	Logger *slog.Logger
}

// ShopHandler serves the catalog and the cart. It is mounted behind
// OptionalAuth: signed-in users get their own cart and a personalised sort,
// anonymous visitors get a cookie-keyed cart.
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

// AddToCartRequest adds one unit of a product.
type AddToCartRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
}

// UpdateQuantityRequest sets a line's quantity. Values below 1 are ignored.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ListProducts filters by ?search= and ?category= and orders by ?sort=.
func (h *ShopHandler) ListProducts(c echo.Context) error {
	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	products, err := h.shopUC.ListProducts(c.Request().Context(), userID, catalog.Query{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Sort:     catalog.SortKey(c.QueryParam("sort")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// Categories lists the category filter values, "all" first.
func (h *ShopHandler) Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.shopUC.Categories())
}

// GetCart returns the caller's cart.
func (h *ShopHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.shopUC.Cart(c.Request().Context(), h.cartKey(c)))
}

// AddToCart adds a product or increments its line.
func (h *ShopHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if ok, err := bindAndValidate(c, &req, "Invalid cart input"); !ok {
		return err
	}

	view, err := h.shopUC.AddToCart(c.Request().Context(), h.cartKey(c), req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateQuantity sets the quantity of the :id line.
func (h *ShopHandler) UpdateQuantity(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req UpdateQuantityRequest
	if ok, err := bindAndValidate(c, &req, "Invalid quantity"); !ok {
		return err
	}

	view, err := h.shopUC.UpdateQuantity(c.Request().Context(), h.cartKey(c), productID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// RemoveFromCart drops the :id line.
func (h *ShopHandler) RemoveFromCart(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	view, err := h.shopUC.RemoveFromCart(c.Request().Context(), h.cartKey(c), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ToggleWishlist adds or removes :id from the wishlist.
func (h *ShopHandler) ToggleWishlist(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	view, err := h.shopUC.ToggleWishlist(c.Request().Context(), h.cartKey(c), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// PlaceOrder empties the cart and returns the confirmation notice. No order is
// stored.
func (h *ShopHandler) PlaceOrder(c echo.Context) error {
	confirmation, err := h.shopUC.PlaceOrder(c.Request().Context(), h.cartKey(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, confirmation)
}

// cartKey is "user:<id>" when signed in, else "anon:<cookie>", issuing the
// cookie on first use.
func (h *ShopHandler) cartKey(c echo.Context) string {
	if userID, ok := middleware.GetUserID(c); ok {
		return "user:" + userID.String()
	}

	if cookie, err := c.Cookie(CartCookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return "anon:" + id.String()
		}
	}

	id := uuid.New()
	c.SetCookie(&http.Cookie{
		Name:     CartCookieName,
		Value:    id.String(),
		Path:     "/",
		MaxAge:   int(h.cfg.Cart.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	})

	return "anon:" + id.String()
}
