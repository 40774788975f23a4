package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pos/internal/domain/entity"
	"pos/internal/state"

	"github.com/stretchr/testify/assert"
)

const (
	glassID int64 = 1
	cableID int64 = 2
	lcdID   int64 = 3

	glassStock = 2
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testCatalog has one product in stock, one sold out product and one service.
func testCatalog() entity.Catalog {
	return entity.Catalog{
		{ID: glassID, SKU: "TG-001", Name: "Tempered Glass", Price: 25000, Kind: entity.KindProduct, Stock: glassStock},
		{ID: cableID, SKU: "KB-002", Name: "Kabel Data USB-C", Price: 35000, Kind: entity.KindProduct, Stock: 0},
		{ID: lcdID, SKU: "SV-LCD", Name: "Ganti LCD", Price: 350000, Kind: entity.KindService, DurationMinutes: 90},
	}
}

func newTestStore(t *testing.T, patch state.Patch) *state.Store {
	t.Helper()

	store := state.New(newTestLogger())
	store.SetState(patch)

	return store
}

// wib is the shop timezone used across reporting tests.
var wib = time.FixedZone("WIB", 7*60*60)

// assertStockReserved checks that catalog stock plus cart quantity still adds
// up to the loaded stock of the product.
func assertStockReserved(t *testing.T, st entity.AppState, itemID int64, loaded int) {
	t.Helper()

	item, ok := st.Catalog.Find(itemID)
	if !assert.True(t, ok) {
		return
	}

	inCart := 0
	if idx := st.Cart.IndexOf(itemID); idx >= 0 {
		inCart = st.Cart[idx].Quantity
	}
	assert.Equal(t, loaded, item.Stock+inCart)
}
