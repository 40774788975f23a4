package impl

import (
	"context"
	"testing"

	"pos/internal/domain/entity"
	mockRepo "pos/internal/mocks/repository"
	"pos/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapService_LoadInitialData_SeedsDefaults(t *testing.T) {
	store := state.New(newTestLogger())
	stateRepo := mockRepo.NewMockStateRepository(t)
	ctx := context.Background()

	stateRepo.EXPECT().LoadCatalog(ctx).Return(entity.Catalog{}, false)
	stateRepo.EXPECT().LoadOrders(ctx).Return(entity.Orders{}, false)
	stateRepo.EXPECT().LoadSettings(ctx).Return(entity.Settings{}, false)
	stateRepo.EXPECT().SaveCatalog(ctx, entity.DefaultCatalog()).Return(true).Once()
	stateRepo.EXPECT().SaveSettings(ctx, entity.DefaultSettings()).Return(true).Once()

	var replaced int
	store.Subscribe("test", state.Replaced, func(state.Event) error { replaced++; return nil })

	err := NewBootstrapService(store, stateRepo, newTestLogger()).LoadInitialData(ctx)
	require.NoError(t, err)

	st := store.GetState()
	assert.Equal(t, entity.DefaultCatalog(), st.Catalog)
	assert.Equal(t, entity.DefaultSettings(), st.Settings)
	assert.NotNil(t, st.Orders)
	assert.Empty(t, st.Orders)
	assert.Equal(t, 1, replaced)
}

func TestBootstrapService_LoadInitialData_UsesStoredState(t *testing.T) {
	store := state.New(newTestLogger())
	stateRepo := mockRepo.NewMockStateRepository(t)
	ctx := context.Background()
	settings := entity.Settings{TaxEnabled: true, TaxRate: 11, StoreName: "Servis HP Jaya"}

	stateRepo.EXPECT().LoadCatalog(ctx).Return(testCatalog(), true)
	stateRepo.EXPECT().LoadOrders(ctx).Return(salesHistory(), true)
	stateRepo.EXPECT().LoadSettings(ctx).Return(settings, true)

	err := NewBootstrapService(store, stateRepo, newTestLogger()).LoadInitialData(ctx)
	require.NoError(t, err)

	st := store.GetState()
	assert.Equal(t, testCatalog(), st.Catalog)
	assert.Len(t, st.Orders, 3)
	assert.Equal(t, settings, st.Settings)
}

func TestBootstrapService_LoadInitialData_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewBootstrapService(state.New(newTestLogger()), mockRepo.NewMockStateRepository(t), newTestLogger()).LoadInitialData(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
