package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"pos/internal/domain/catalog"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/state"
	"pos/internal/usecase"

	"go.uber.org/fx"
)

const maxPageSize = 100

type catalogService struct {
	store     *state.Store
	stateRepo repository.StateRepository
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Store     *state.Store
	StateRepo repository.StateRepository
	Logger    *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		store:     params.Store,
		stateRepo: params.StateRepo,
		logger:    params.Logger,
	}
}

// Browse merges the query into the UI state and returns the visible page.
// Changing the filter or the search term without an explicit page goes back to page 1.
func (s *catalogService) Browse(ctx context.Context, query usecase.BrowseQuery) (*catalog.Page, error) {
	if query.Filter != nil && !query.Filter.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("filter %q", *query.Filter))
	}
	if query.PageSize != nil && (*query.PageSize < 1 || *query.PageSize > maxPageSize) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("pageSize harus 1..%d", maxPageSize))
	}

	var page catalog.Page
	err := s.store.Mutate(func(cur entity.AppState) (state.Patch, error) {
		ui := cur.UI
		if query.Filter != nil {
			ui.Filter = *query.Filter
			ui.Page = 1
		}
		if query.SearchTerm != nil {
			ui.SearchTerm = *query.SearchTerm
			ui.Page = 1
		}
		if query.PageSize != nil {
			ui.PageSize = *query.PageSize
		}
		if query.Page != nil {
			ui.Page = *query.Page
		}

		filtered := catalog.Filter(cur.Catalog, ui)
		ui.Page = catalog.ClampPage(ui.Page, catalog.TotalPages(len(filtered), ui.PageSize))
		page = catalog.Paginate(filtered, ui.Page, ui.PageSize)

		if ui == cur.UI {
			return state.Patch{}, nil
		}

		return state.Patch{UI: &ui}, nil
	})
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// ListItems returns the whole catalog
func (s *catalogService) ListItems(ctx context.Context) entity.Catalog {
	items := s.store.GetState().Catalog
	if items == nil {
		return entity.Catalog{}
	}

	return items
}

// GetItem returns one catalog item
func (s *catalogService) GetItem(ctx context.Context, id int64) (*entity.CatalogItem, error) {
	item, ok := s.store.GetState().Catalog.Find(id)
	if !ok {
		return nil, domainerrors.ErrItemNotFound.WithDetails(fmt.Sprintf("id %d", id))
	}

	return &item, nil
}

// UpsertItem inserts a new item or replaces the item with the same id.
// Stock is the quantity still available: units reserved by the cart are not
// included and return on top of it when the cart is cleared. An item in the
// cart cannot change kind.
func (s *catalogService) UpsertItem(ctx context.Context, input *usecase.ItemInput) (*entity.CatalogItem, error) {
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	item := entity.CatalogItem{
		SKU:   strings.TrimSpace(input.SKU),
		Name:  strings.TrimSpace(input.Name),
		Price: input.Price,
		Kind:  input.Kind,
		Image: input.Image,
	}
	if item.Kind == entity.KindProduct {
		item.Stock = input.Stock
	} else {
		item.DurationMinutes = input.DurationMinutes
	}

	err := s.store.Mutate(func(cur entity.AppState) (state.Patch, error) {
		items := cur.Catalog
		if input.ID == nil {
			item.ID = items.NextID()
			items = append(items, item)
		} else {
			idx := items.IndexOf(*input.ID)
			if idx < 0 {
				return state.Patch{}, domainerrors.ErrItemNotFound.WithDetails(fmt.Sprintf("id %d", *input.ID))
			}
			if cur.Cart.IndexOf(*input.ID) >= 0 && items[idx].Kind != item.Kind {
				return state.Patch{}, domainerrors.ErrItemInCart.WithDetails(items[idx].Name)
			}
			item.ID = *input.ID
			items[idx] = item
		}

		s.stateRepo.SaveCatalog(ctx, items)

		return state.Patch{Catalog: items}, nil
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, s.logger).Info("Catalog item saved",
		slog.Int64("item_id", item.ID),
		slog.String("kind", item.Kind.String()),
	)

	return &item, nil
}

// DeleteItem removes an item that is not in the cart, after confirmation
func (s *catalogService) DeleteItem(ctx context.Context, id int64, confirmer service.Confirmer) error {
	current := s.store.GetState()
	item, ok := current.Catalog.Find(id)
	if !ok {
		return domainerrors.ErrItemNotFound.WithDetails(fmt.Sprintf("id %d", id))
	}
	if current.Cart.IndexOf(id) >= 0 {
		return domainerrors.ErrItemInCart.WithDetails(item.Name)
	}

	if err := confirm(ctx, confirmer, fmt.Sprintf("Hapus %s dari katalog?", item.Name)); err != nil {
		return err
	}

	err := s.store.Mutate(func(cur entity.AppState) (state.Patch, error) {
		idx := cur.Catalog.IndexOf(id)
		if idx < 0 {
			return state.Patch{}, domainerrors.ErrItemNotFound.WithDetails(fmt.Sprintf("id %d", id))
		}
		if cur.Cart.IndexOf(id) >= 0 {
			return state.Patch{}, domainerrors.ErrItemInCart.WithDetails(item.Name)
		}

		items := slices.Delete(cur.Catalog, idx, idx+1)
		s.stateRepo.SaveCatalog(ctx, items)

		return state.Patch{Catalog: items}, nil
	})
	if err != nil {
		return err
	}

	requestLogger(ctx, s.logger).Info("Catalog item deleted", slog.Int64("item_id", id))

	return nil
}

func validateItemInput(input *usecase.ItemInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrInvalidItem
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.ErrInvalidItem.WithDetails("nama wajib diisi")
	case !input.Kind.IsValid():
		return domainerrors.ErrInvalidItem.WithDetails(fmt.Sprintf("jenis %q", input.Kind))
	case input.Price < 0:
		return domainerrors.ErrInvalidItem.WithDetails("harga tidak boleh negatif")
	case input.Stock < 0:
		return domainerrors.ErrInvalidItem.WithDetails("stok tidak boleh negatif")
	case input.DurationMinutes < 0:
		return domainerrors.ErrInvalidItem.WithDetails("durasi tidak boleh negatif")
	}

	return nil
}
