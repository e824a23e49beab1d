package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopgrid/admin-api/internal/core/ports"
)

// WithdrawalHandler serves the withdrawal table and the payout workflows.
type WithdrawalHandler struct {
	service ports.WithdrawalService
}

func NewWithdrawalHandler(service ports.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{service: service}
}

// List derives the visible withdrawal page from the collection.
//
// @Summary      List withdrawals
// @Tags         withdrawals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listing.Page
// @Router       /admin/withdrawals [get]
func (h *WithdrawalHandler) List(c echo.Context) error {
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

func (h *WithdrawalHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	w, err := h.service.Get(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, w)
}

// Create records a vendor payout request.
func (h *WithdrawalHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req ports.CreateWithdrawalInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	w, err := h.service.Create(c.Request().Context(), identity, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, w)
}

type updateWithdrawalStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

// UpdateStatus moves a withdrawal through the admin approval workflow.
func (h *WithdrawalHandler) UpdateStatus(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateWithdrawalStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	w, err := h.service.UpdateStatus(c.Request().Context(), identity, c.Param("id"), req.Status, req.Note)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, w)
}
