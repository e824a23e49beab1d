package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

// kindByResource maps the route segment of each taxonomy screen to its
// catalog kind.
var kindByResource = map[string]domain.CatalogKind{
	"categories": domain.KindCategory,
	"brands":     domain.KindBrand,
	"tags":       domain.KindTag,
	"attributes": domain.KindAttribute,
	"terms":      domain.KindTerm,
	"faqs":       domain.KindFAQ,
}

// CatalogHandler serves the taxonomy CRUD screens. One handler covers all
// six resources; the :resource route param selects the kind.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func resourceKind(c echo.Context) (domain.CatalogKind, error) {
	kind, ok := kindByResource[c.Param("resource")]
	if !ok {
		return "", echo.NewHTTPError(http.StatusNotFound, "unknown resource")
	}
	return kind, nil
}

func (h *CatalogHandler) List(c echo.Context) error {
	kind, err := resourceKind(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), kind)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}

func (h *CatalogHandler) Get(c echo.Context) error {
	kind, err := resourceKind(c)
	if err != nil {
		return err
	}

	item, err := h.service.Get(c.Request().Context(), kind, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) Create(c echo.Context) error {
	kind, err := resourceKind(c)
	if err != nil {
		return err
	}

	var req ports.UpsertCatalogInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	item, err := h.service.Create(c.Request().Context(), kind, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) Update(c echo.Context) error {
	kind, err := resourceKind(c)
	if err != nil {
		return err
	}

	var req ports.UpsertCatalogInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	item, err := h.service.Update(c.Request().Context(), kind, c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) Delete(c echo.Context) error {
	kind, err := resourceKind(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), kind, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
