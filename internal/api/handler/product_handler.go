package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopgrid/admin-api/internal/core/ports"
)

// ProductHandler serves the product table and vendor CRUD.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List derives the visible product page from the collection.
func (h *ProductHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), identity, listingParams(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req ports.UpsertProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.service.Create(c.Request().Context(), identity, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req ports.UpsertProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.service.Update(c.Request().Context(), identity, c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
