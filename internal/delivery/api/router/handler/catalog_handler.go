package handler

import (
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/domain/entity"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves catalog browsing and maintenance
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// Browse handles GET /catalog?kind=&q=&page=&pageSize=.
// Parameters left out keep the register's current browsing controls.
func (h *CatalogHandler) Browse(c echo.Context) error {
	var query usecase.BrowseQuery

	if c.QueryParams().Has("kind") {
		filter := entity.KindFilter(c.QueryParam("kind"))
		query.Filter = &filter
	}
	if c.QueryParams().Has("q") {
		term := c.QueryParam("q")
		query.SearchTerm = &term
	}

	var err error
	if query.Page, err = optionalIntQuery(c, "page"); err != nil {
		return response.HandleAppError(c, err)
	}
	if query.PageSize, err = optionalIntQuery(c, "pageSize"); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.catalogUC.Browse(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// ListItems handles GET /catalog/items
func (h *CatalogHandler) ListItems(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.ListItems(c.Request().Context()))
}

// GetItem handles GET /catalog/items/:id
func (h *CatalogHandler) GetItem(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.GetItem(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// UpsertItem handles POST /catalog/items. A body without id creates an item.
func (h *CatalogHandler) UpsertItem(c echo.Context) error {
	var input usecase.ItemInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.UpsertItem(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if input.ID == nil {
		status = http.StatusCreated
	}

	return response.Success(c, status, item)
}

// DeleteItem handles DELETE /catalog/items/:id?confirm=true
func (h *CatalogHandler) DeleteItem(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteItem(c.Request().Context(), id, confirmerFromRequest(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": id})
}
