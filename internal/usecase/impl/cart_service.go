package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/state"
	"pos/internal/usecase"

	"go.uber.org/fx"
)

// cartService keeps product stock reserved while it sits in the cart:
// for every product, catalog stock plus cart quantity equals the stock at
// the last catalog load.
type cartService struct {
	store     *state.Store
	stateRepo repository.StateRepository
	metrics   service.SalesMetrics
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Store     *state.Store
	StateRepo repository.StateRepository
	Metrics   service.SalesMetrics
	Logger    *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		store:     params.Store,
		stateRepo: params.StateRepo,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// GetCart returns the current cart
func (s *cartService) GetCart(ctx context.Context) *usecase.CartView {
	return newCartView(s.store.GetState())
}

// AddToCart adds one unit of an item. Products need stock left.
func (s *cartService) AddToCart(ctx context.Context, itemID int64) (*usecase.CartView, error) {
	var view *usecase.CartView
	err := s.store.Mutate(func(cur entity.AppState) (state.Patch, error) {
		idx := cur.Catalog.IndexOf(itemID)
		if idx < 0 {
			return state.Patch{}, domainerrors.ErrItemNotFound.WithDetails(fmt.Sprintf("id %d", itemID))
		}
		item := cur.Catalog[idx]
		if item.IsProduct() && item.Stock <= 0 {
			return state.Patch{}, domainerrors.ErrOutOfStock.WithDetails(item.Name)
		}

		if line := cur.Cart.IndexOf(itemID); line >= 0 {
			cur.Cart[line].Quantity++
		} else {
			cur.Cart = append(cur.Cart, entity.NewCartLine(item))
		}
		if item.IsProduct() {
			cur.Catalog[idx].Stock--
		}

		return s.commitCart(ctx, &cur, &view), nil
	})
	if err != nil {
		return nil, countRejection(s.metrics, err)
	}

	requestLogger(ctx, s.logger).Debug("Item added to cart", slog.Int64("item_id", itemID))

	return view, nil
}

// AdjustQuantity applies delta to a cart line. A line that reaches zero is
// removed and stock moves back only by what the line actually held.
func (s *cartService) AdjustQuantity(ctx context.Context, itemID int64, delta int) (*usecase.CartView, error) {
	if delta == 0 {
		return nil, countRejection(s.metrics, domainerrors.ErrInvalidQuantity.WithDetails("perubahan jumlah tidak boleh 0"))
	}

	var view *usecase.CartView
	err := s.store.Mutate(func(cur entity.AppState) (state.Patch, error) {
		lineIdx := cur.Cart.IndexOf(itemID)
		if lineIdx < 0 {
			return state.Patch{}, domainerrors.ErrCartLineNotFound.WithDetails(fmt.Sprintf("id %d", itemID))
		}
		line := cur.Cart[lineIdx]

		itemIdx := cur.Catalog.IndexOf(itemID)
		tracksStock := line.Kind == entity.KindProduct && itemIdx >= 0
		if tracksStock && delta > 0 && delta > cur.Catalog[itemIdx].Stock {
			return state.Patch{}, domainerrors.ErrInsufficientStock.WithDetails(
				fmt.Sprintf("%s: tersisa %d", line.Name, cur.Catalog[itemIdx].Stock))
		}

		applied := delta
		if line.Quantity+delta <= 0 {
			applied = -line.Quantity
			cur.Cart = slices.Delete(cur.Cart, lineIdx, lineIdx+1)
		} else {
			cur.Cart[lineIdx].Quantity += delta
		}
		if tracksStock {
			cur.Catalog[itemIdx].Stock -= applied
		}

		return s.commitCart(ctx, &cur, &view), nil
	})
	if err != nil {
		return nil, countRejection(s.metrics, err)
	}

	return view, nil
}

// ClearCart empties the cart after confirmation, returning reserved stock
func (s *cartService) ClearCart(ctx context.Context, confirmer service.Confirmer) error {
	if len(s.store.GetState().Cart) == 0 {
		return nil
	}

	if err := confirm(ctx, confirmer, "Kosongkan keranjang?"); err != nil {
		return countRejection(s.metrics, err)
	}

	var view *usecase.CartView
	err := s.store.Mutate(func(cur entity.AppState) (state.Patch, error) {
		for _, line := range cur.Cart {
			if line.Kind != entity.KindProduct {
				continue
			}
			if idx := cur.Catalog.IndexOf(line.ItemID); idx >= 0 {
				cur.Catalog[idx].Stock += line.Quantity
			}
		}
		cur.Cart = entity.Cart{}

		return s.commitCart(ctx, &cur, &view), nil
	})
	if err != nil {
		return err
	}

	requestLogger(ctx, s.logger).Info("Cart cleared")

	return nil
}

// commitCart persists the catalog and builds the patch for a cart change.
// Any cart change drops a pending payment selection.
func (s *cartService) commitCart(ctx context.Context, cur *entity.AppState, view **usecase.CartView) state.Patch {
	if cur.Cart == nil {
		cur.Cart = entity.Cart{}
	}
	s.stateRepo.SaveCatalog(ctx, cur.Catalog)
	*view = newCartView(*cur)
	idle := entity.IdleCheckout()

	return state.Patch{Catalog: cur.Catalog, Cart: cur.Cart, Checkout: &idle}
}

func newCartView(st entity.AppState) *usecase.CartView {
	lines := st.Cart
	if lines == nil {
		lines = entity.Cart{}
	}

	return &usecase.CartView{
		Lines:     lines,
		ItemCount: lines.ItemCount(),
		Totals:    entity.ComputeTotals(lines.Subtotal(), st.Settings),
	}
}
