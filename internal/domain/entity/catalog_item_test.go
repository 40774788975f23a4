package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_NextID(t *testing.T) {
	assert.Equal(t, int64(1), Catalog{}.NextID())
	assert.Equal(t, int64(10), Catalog{{ID: 3}, {ID: 9}, {ID: 4}}.NextID())
}

func TestCatalog_Find(t *testing.T) {
	catalog := DefaultCatalog()

	item, ok := catalog.Find(2)
	require.True(t, ok)
	assert.Equal(t, "Kabel Data USB-C", item.Name)

	_, ok = catalog.Find(404)
	assert.False(t, ok)
}

func TestCatalog_CloneIsIndependent(t *testing.T) {
	catalog := DefaultCatalog()
	cloned := catalog.Clone()
	cloned[0].Stock = 0

	assert.Equal(t, 50, catalog[0].Stock)
	assert.Nil(t, Catalog(nil).Clone())
}

func TestDefaultCatalog_HasUniqueIDs(t *testing.T) {
	seen := make(map[int64]bool)
	for _, item := range DefaultCatalog() {
		assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
		seen[item.ID] = true
		assert.True(t, item.Kind.IsValid())
	}
}

func TestCart_Subtotal(t *testing.T) {
	cart := Cart{
		NewCartLine(CatalogItem{ID: 1, Name: "Tempered Glass", Price: 25000, Kind: KindProduct}),
		{ItemID: 5, Name: "Ganti LCD", Price: 350000, Kind: KindService, Quantity: 2},
	}

	assert.Equal(t, int64(725000), cart.Subtotal())
	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, 1, cart.IndexOf(5))
	assert.Equal(t, -1, cart.IndexOf(7))
}

func TestKindFilter_Matches(t *testing.T) {
	assert.True(t, FilterAll.Matches(KindService))
	assert.True(t, FilterProduct.Matches(KindProduct))
	assert.False(t, FilterProduct.Matches(KindService))
	assert.False(t, FilterService.Matches(KindProduct))
}
