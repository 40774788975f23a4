package impl

import (
	"context"
	"fmt"
	"testing"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	mockRepo "pos/internal/mocks/repository"
	mockSvc "pos/internal/mocks/service"
	"pos/internal/state"
	"pos/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	store     *state.Store
	stateRepo *mockRepo.MockStateRepository
}

func createTestCatalogService(t *testing.T, items entity.Catalog) catalogServiceFixtures {
	store := newTestStore(t, state.Patch{Catalog: items})
	stateRepo := mockRepo.NewMockStateRepository(t)

	return catalogServiceFixtures{
		service: NewCatalogService(CatalogServiceParams{
			Store:     store,
			StateRepo: stateRepo,
			Logger:    newTestLogger(),
		}),
		store:     store,
		stateRepo: stateRepo,
	}
}

func numberedCatalog(n int) entity.Catalog {
	items := make(entity.Catalog, 0, n)
	for i := 1; i <= n; i++ {
		kind := entity.KindProduct
		if i%2 == 0 {
			kind = entity.KindService
		}
		items = append(items, entity.CatalogItem{
			ID:    int64(i),
			SKU:   fmt.Sprintf("SKU-%02d", i),
			Name:  fmt.Sprintf("Item %02d", i),
			Price: int64(i) * 1000,
			Kind:  kind,
			Stock: 5,
		})
	}

	return items
}

func ptr[T any](v T) *T {
	return &v
}

func TestCatalogService_Browse(t *testing.T) {
	tests := []struct {
		name      string
		query     usecase.BrowseQuery
		wantIDs   []int64
		wantPage  int
		wantPages int
	}{
		{
			name:      "first page",
			query:     usecase.BrowseQuery{PageSize: ptr(4)},
			wantIDs:   []int64{1, 2, 3, 4},
			wantPage:  1,
			wantPages: 3,
		},
		{
			name:      "last partial page",
			query:     usecase.BrowseQuery{Page: ptr(3), PageSize: ptr(4)},
			wantIDs:   []int64{9, 10},
			wantPage:  3,
			wantPages: 3,
		},
		{
			name:      "page beyond the end is clamped",
			query:     usecase.BrowseQuery{Page: ptr(42), PageSize: ptr(4)},
			wantIDs:   []int64{9, 10},
			wantPage:  3,
			wantPages: 3,
		},
		{
			name:      "services only",
			query:     usecase.BrowseQuery{Filter: ptr(entity.FilterService), PageSize: ptr(12)},
			wantIDs:   []int64{2, 4, 6, 8, 10},
			wantPage:  1,
			wantPages: 1,
		},
		{
			name:      "search matches sku ignoring case",
			query:     usecase.BrowseQuery{SearchTerm: ptr("sku-1")},
			wantIDs:   []int64{10},
			wantPage:  1,
			wantPages: 1,
		},
		{
			name:      "no match still has one page",
			query:     usecase.BrowseQuery{SearchTerm: ptr("zzz")},
			wantIDs:   []int64{},
			wantPage:  1,
			wantPages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t, numberedCatalog(10))

			page, err := fx.service.Browse(context.Background(), tt.query)
			require.NoError(t, err)

			ids := make([]int64, 0, len(page.Items))
			for _, item := range page.Items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.wantPage, fx.store.GetState().UI.Page)
		})
	}
}

func TestCatalogService_Browse_FilterChangeResetsPage(t *testing.T) {
	fx := createTestCatalogService(t, numberedCatalog(10))
	ctx := context.Background()

	_, err := fx.service.Browse(ctx, usecase.BrowseQuery{Page: ptr(2), PageSize: ptr(4)})
	require.NoError(t, err)

	page, err := fx.service.Browse(ctx, usecase.BrowseQuery{Filter: ptr(entity.FilterProduct)})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 4, page.PageSize)
	assert.Equal(t, entity.FilterProduct, fx.store.GetState().UI.Filter)
}

func TestCatalogService_Browse_InvalidQuery(t *testing.T) {
	fx := createTestCatalogService(t, numberedCatalog(3))

	_, err := fx.service.Browse(context.Background(), usecase.BrowseQuery{Filter: ptr(entity.KindFilter("parts"))})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Browse(context.Background(), usecase.BrowseQuery{PageSize: ptr(0)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_UpsertItem_Insert(t *testing.T) {
	fx := createTestCatalogService(t, testCatalog())
	fx.stateRepo.EXPECT().
		SaveCatalog(mock.Anything, mock.AnythingOfType("entity.Catalog")).
		Return(true).
		Once()

	item, err := fx.service.UpsertItem(context.Background(), &usecase.ItemInput{
		SKU:             " SV-BAT ",
		Name:            "Ganti Baterai",
		Price:           150000,
		Kind:            entity.KindService,
		Stock:           7,
		DurationMinutes: 45,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), item.ID)
	assert.Equal(t, "SV-BAT", item.SKU)
	assert.Zero(t, item.Stock, "services carry no stock")
	assert.Equal(t, 45, item.DurationMinutes)
	assert.Len(t, fx.store.GetState().Catalog, 4)
}

func TestCatalogService_UpsertItem_Replace(t *testing.T) {
	fx := createTestCatalogService(t, testCatalog())
	fx.stateRepo.EXPECT().
		SaveCatalog(mock.Anything, mock.AnythingOfType("entity.Catalog")).
		Return(true).
		Once()

	_, err := fx.service.UpsertItem(context.Background(), &usecase.ItemInput{
		ID:    ptr(cableID),
		Name:  "Kabel Data USB-C 2m",
		Price: 40000,
		Kind:  entity.KindProduct,
		Stock: 12,
	})
	require.NoError(t, err)

	item, ok := fx.store.GetState().Catalog.Find(cableID)
	require.True(t, ok)
	assert.Equal(t, "Kabel Data USB-C 2m", item.Name)
	assert.Equal(t, 12, item.Stock)
	assert.Len(t, fx.store.GetState().Catalog, 3)
}

func TestCatalogService_UpsertItem_ItemInCart(t *testing.T) {
	setup := func(t *testing.T) (catalogServiceFixtures, usecase.CartUsecase) {
		fx := createTestCatalogService(t, testCatalog())
		fx.stateRepo.EXPECT().
			SaveCatalog(mock.Anything, mock.AnythingOfType("entity.Catalog")).
			Return(true).
			Maybe()
		cart := NewCartService(CartServiceParams{
			Store:     fx.store,
			StateRepo: fx.stateRepo,
			Metrics:   mockSvc.NewMockSalesMetrics(t),
			Logger:    newTestLogger(),
		})

		_, err := cart.AddToCart(context.Background(), glassID)
		require.NoError(t, err)

		return fx, cart
	}

	t.Run("kind change rejected", func(t *testing.T) {
		fx, _ := setup(t)
		before := fx.store.GetState().Catalog

		_, err := fx.service.UpsertItem(context.Background(), &usecase.ItemInput{
			ID:              ptr(glassID),
			Name:            "Pasang Tempered Glass",
			Price:           25000,
			Kind:            entity.KindService,
			DurationMinutes: 10,
		})

		assert.ErrorIs(t, err, domainerrors.ErrItemInCart)
		assert.Equal(t, before, fx.store.GetState().Catalog)
	})

	t.Run("stock edit sets available stock", func(t *testing.T) {
		fx, cart := setup(t)
		ctx := context.Background()

		_, err := fx.service.UpsertItem(ctx, &usecase.ItemInput{
			ID:    ptr(glassID),
			Name:  "Tempered Glass",
			Price: 27000,
			Kind:  entity.KindProduct,
			Stock: 3,
		})
		require.NoError(t, err)

		_, err = cart.AdjustQuantity(ctx, glassID, 3)
		require.NoError(t, err)
		item, _ := fx.store.GetState().Catalog.Find(glassID)
		assert.Equal(t, 0, item.Stock)

		require.NoError(t, cart.ClearCart(ctx, service.StaticConfirmer(true)))
		item, _ = fx.store.GetState().Catalog.Find(glassID)
		assert.Equal(t, entity.KindProduct, item.Kind)
		assert.Equal(t, 4, item.Stock)
	})
}

func TestCatalogService_UpsertItem_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.ItemInput
		wantErr error
	}{
		{name: "missing name", input: &usecase.ItemInput{Name: "  ", Kind: entity.KindProduct}, wantErr: domainerrors.ErrInvalidItem},
		{name: "negative price", input: &usecase.ItemInput{Name: "X", Price: -1, Kind: entity.KindProduct}, wantErr: domainerrors.ErrInvalidItem},
		{name: "negative stock", input: &usecase.ItemInput{Name: "X", Stock: -1, Kind: entity.KindProduct}, wantErr: domainerrors.ErrInvalidItem},
		{name: "unknown kind", input: &usecase.ItemInput{Name: "X", Kind: "bundle"}, wantErr: domainerrors.ErrInvalidItem},
		{name: "unknown id", input: &usecase.ItemInput{ID: ptr(int64(99)), Name: "X", Kind: entity.KindProduct}, wantErr: domainerrors.ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t, testCatalog())

			_, err := fx.service.UpsertItem(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, testCatalog(), fx.store.GetState().Catalog)
		})
	}
}

func TestCatalogService_DeleteItem(t *testing.T) {
	fx := createTestCatalogService(t, testCatalog())
	ctx := context.Background()
	fx.stateRepo.EXPECT().
		SaveCatalog(mock.Anything, mock.AnythingOfType("entity.Catalog")).
		Return(true).
		Once()

	confirmer := mockSvc.NewMockConfirmer(t)
	confirmer.EXPECT().Confirm(ctx, "Hapus Ganti LCD dari katalog?").Return(true).Once()

	err := fx.service.DeleteItem(ctx, lcdID, confirmer)
	require.NoError(t, err)

	_, err = fx.service.GetItem(ctx, lcdID)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
	assert.Len(t, fx.service.ListItems(ctx), 2)
}

func TestCatalogService_DeleteItem_Rejected(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		fx := createTestCatalogService(t, testCatalog())

		err := fx.service.DeleteItem(context.Background(), lcdID, service.StaticConfirmer(false))

		assert.ErrorIs(t, err, domainerrors.ErrConfirmationRequired)
		assert.Len(t, fx.store.GetState().Catalog, 3)
	})

	t.Run("item in cart", func(t *testing.T) {
		fx := createTestCatalogService(t, testCatalog())
		fx.store.SetState(state.Patch{Cart: entity.Cart{entity.NewCartLine(testCatalog()[2])}})
		confirmer := mockSvc.NewMockConfirmer(t)

		err := fx.service.DeleteItem(context.Background(), lcdID, confirmer)

		assert.ErrorIs(t, err, domainerrors.ErrItemInCart)
		assert.Len(t, fx.store.GetState().Catalog, 3)
	})

	t.Run("unknown item", func(t *testing.T) {
		fx := createTestCatalogService(t, testCatalog())

		err := fx.service.DeleteItem(context.Background(), 99, service.StaticConfirmer(true))

		assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
	})
}
