package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopgrid/admin-api/internal/core/ports"
)

// ShopHandler serves shop management for admins and vendors.
type ShopHandler struct {
	service ports.ShopService
}

func NewShopHandler(service ports.ShopService) *ShopHandler {
	return &ShopHandler{service: service}
}

func (h *ShopHandler) List(c echo.Context) error {
	shops, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": shops})
}

func (h *ShopHandler) Get(c echo.Context) error {
	shop, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req ports.UpsertShopInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	shop, err := h.service.Create(c.Request().Context(), identity, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, shop)
}

func (h *ShopHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req ports.UpsertShopInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	shop, err := h.service.Update(c.Request().Context(), identity, c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shop)
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

// SetActive approves or disables a shop (admin only, routed accordingly).
func (h *ShopHandler) SetActive(c echo.Context) error {
	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	if err := h.service.SetActive(c.Request().Context(), c.Param("id"), req.Active); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
