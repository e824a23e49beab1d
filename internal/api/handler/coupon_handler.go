package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopgrid/admin-api/internal/core/ports"
)

// CouponHandler serves coupon management (admin section).
type CouponHandler struct {
	service ports.CouponService
}

func NewCouponHandler(service ports.CouponService) *CouponHandler {
	return &CouponHandler{service: service}
}

func (h *CouponHandler) List(c echo.Context) error {
	coupons, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": coupons})
}

func (h *CouponHandler) Get(c echo.Context) error {
	coupon, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, coupon)
}

func (h *CouponHandler) Create(c echo.Context) error {
	var req ports.UpsertCouponInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	coupon, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, coupon)
}

func (h *CouponHandler) Update(c echo.Context) error {
	var req ports.UpsertCouponInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	coupon, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, coupon)
}

func (h *CouponHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
