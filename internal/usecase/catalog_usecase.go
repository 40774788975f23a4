package usecase

import (
	"context"

	"pos/internal/domain/catalog"
	"pos/internal/domain/entity"
	"pos/internal/domain/service"
)

// BrowseQuery changes the catalog browsing controls. Nil fields keep the
// current value.
type BrowseQuery struct {
	Filter     *entity.KindFilter
	SearchTerm *string
	Page       *int
	PageSize   *int
}

// ItemInput is the catalog form submission. A nil ID inserts a new item,
// otherwise the item with that ID is replaced.
type ItemInput struct {
	ID              *int64          `json:"id"`
	SKU             string          `json:"sku" validate:"max=64"`
	Name            string          `json:"name" validate:"required,max=120"`
	Price           int64           `json:"price" validate:"gte=0"`
	Kind            entity.ItemKind `json:"kind" validate:"required,oneof=product service"`
	Stock           int             `json:"stock" validate:"gte=0"`
	DurationMinutes int             `json:"durationMinutes" validate:"gte=0"`
	Image           string          `json:"image"`
}

// CatalogUsecase defines the interface for catalog browsing and maintenance
type CatalogUsecase interface {
	// Browse applies the query to the browsing controls and returns the visible page
	Browse(ctx context.Context, query BrowseQuery) (*catalog.Page, error)

	// ListItems returns the whole catalog
	ListItems(ctx context.Context) entity.Catalog

	// GetItem returns one catalog item
	GetItem(ctx context.Context, id int64) (*entity.CatalogItem, error)

	// UpsertItem inserts or replaces a catalog item
	UpsertItem(ctx context.Context, input *ItemInput) (*entity.CatalogItem, error)

	// DeleteItem removes a catalog item after confirmation
	DeleteItem(ctx context.Context, id int64, confirmer service.Confirmer) error
}
