package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopgrid/admin-api/internal/core/ports"
)

// OrderHandler serves the order table and detail screens.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List derives the visible order page from the collection.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        q       query  string  false  "Free-text search over id, customer name and phone"
// @Param        status  query  string  false  "Status filter; omit or ALL for every status"
// @Param        sort    query  string  false  "created_at_desc (default), created_at_asc, total_desc, total_asc"
// @Param        page    query  int     false  "1-based page, clamped into range"
// @Success      200  {object}  listing.Page
// @Router       /admin/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
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

func (h *OrderHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	order, err := h.service.Get(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus moves an order to a known status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), identity, c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
