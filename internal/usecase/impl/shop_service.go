package impl

import (
	"context"
	"log/slog"
	"sync"

	"jild/config"
	deliverycontext "jild/internal/delivery/context"
	"jild/internal/domain/cart"
	"jild/internal/domain/catalog"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/repository"
	"jild/internal/infra/cache"
	"jild/internal/infra/metrics"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartSession struct {
	mu   sync.Mutex
	cart *cart.Cart
}

type shopService struct {
	analysisRepo repository.SkinAnalysisRepository
	carts        *cache.TTLCache[string, *cartSession]
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	AnalysisRepo repository.SkinAnalysisRepository
	Metrics      *metrics.Metrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) (usecase.ShopUsecase, error) {
	carts, err := cache.NewTTLCache[string, *cartSession](params.Config.Cart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cart cache")
	}

	return &shopService{
		analysisRepo: params.AnalysisRepo,
		carts:        carts,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}, nil
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts filters and sorts the catalog. A signed-in user's latest
// analysis lifts its products to the top of the recommended order; failing
// to read it only loses that bias.
func (srv *shopService) ListProducts(ctx context.Context, userID *uuid.UUID, query catalog.Query) ([]catalog.Product, error) {
	if query.Sort == "" {
		query.Sort = catalog.SortRecommended
	}
	if !catalog.ValidSort(query.Sort) {
		return nil, domainerrors.ErrValidationFailed.
			WithMessage("Unknown sort order").
			WithDetails(string(query.Sort))
	}

	var userRecs []string
	if userID != nil {
		analysis, err := srv.analysisRepo.FindLatestByUserID(ctx, *userID)
		switch {
		case err == nil:
			userRecs = analysis.Recommendations
		case errors.Is(err, repository.ErrSkinAnalysisNotFound):
		default:
			srv.log(ctx).Warn("Failed to load recommendations for shop",
				slog.Any("userID", *userID),
				slog.Any("error", err),
			)
		}
	}

	return catalog.List(query, userRecs), nil
}

func (srv *shopService) Categories() []string {
	return catalog.Categories()
}

// withCart runs fn on the cart stored under cartKey, creating it if needed.
func (srv *shopService) withCart(cartKey string, fn func(c *cart.Cart) error) (*usecase.CartView, error) {
	sess := srv.carts.AddIfAbsent(cartKey, &cartSession{cart: cart.New()})
	srv.carts.Touch(cartKey)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := fn(sess.cart); err != nil {
		return nil, err
	}

	return viewOf(sess.cart), nil
}

func viewOf(c *cart.Cart) *usecase.CartView {
	return &usecase.CartView{
		Lines:    c.Lines(),
		Wishlist: c.Wishlist(),
		Summary:  c.Summarize(),
	}
}

func (srv *shopService) Cart(_ context.Context, cartKey string) *usecase.CartView {
	view, _ := srv.withCart(cartKey, func(*cart.Cart) error { return nil })

	return view
}

func (srv *shopService) AddToCart(_ context.Context, cartKey string, productID int) (*usecase.CartView, error) {
	product, ok := catalog.Find(productID)
	if !ok {
		return nil, domainerrors.ErrProductNotFound
	}

	view, err := srv.withCart(cartKey, func(c *cart.Cart) error {
		c.Add(product)

		return nil
	})
	srv.metrics.CartOperationsTotal.WithLabelValues("add").Inc()

	return view, err
}

func (srv *shopService) RemoveFromCart(_ context.Context, cartKey string, productID int) (*usecase.CartView, error) {
	view, err := srv.withCart(cartKey, func(c *cart.Cart) error {
		if !c.Remove(productID) {
			return domainerrors.ErrCartLineNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.metrics.CartOperationsTotal.WithLabelValues("remove").Inc()

	return view, nil
}

// UpdateQuantity sets a line's quantity. Quantities below 1 leave the cart
// unchanged without an error.
func (srv *shopService) UpdateQuantity(_ context.Context, cartKey string, productID, quantity int) (*usecase.CartView, error) {
	view, err := srv.withCart(cartKey, func(c *cart.Cart) error {
		if quantity < 1 {
			return nil
		}
		if !c.UpdateQuantity(productID, quantity) {
			return domainerrors.ErrCartLineNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.metrics.CartOperationsTotal.WithLabelValues("update_quantity").Inc()

	return view, nil
}

func (srv *shopService) ToggleWishlist(_ context.Context, cartKey string, productID int) (*usecase.CartView, error) {
	if _, ok := catalog.Find(productID); !ok {
		return nil, domainerrors.ErrProductNotFound
	}

	view, err := srv.withCart(cartKey, func(c *cart.Cart) error {
		c.ToggleWishlist(productID)

		return nil
	})
	srv.metrics.CartOperationsTotal.WithLabelValues("wishlist").Inc()

	return view, err
}

// PlaceOrder clears the cart. No order is stored or published.
func (srv *shopService) PlaceOrder(ctx context.Context, cartKey string) (*cart.Confirmation, error) {
	var conf cart.Confirmation
	_, err := srv.withCart(cartKey, func(c *cart.Cart) error {
		if c.Empty() {
			return domainerrors.ErrCartEmpty
		}
		conf = c.PlaceOrder()

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.CartOperationsTotal.WithLabelValues("place_order").Inc()
	srv.log(ctx).Info("Order placed",
		slog.Int("items", conf.Summary.Count),
		slog.String("total", conf.Summary.Total),
	)

	return &conf, nil
}
