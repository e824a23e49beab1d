package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopgrid/admin-api/internal/core/authz"
	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

// SessionHandler serves the identity endpoints: who am I, log out, and which
// navigation chrome to render.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Me returns the persisted session identity. It re-reads the store rather
// than echoing the request context so the response always reflects what
// feature code would see.
//
// @Summary      Current session identity
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.SessionIdentity
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *SessionHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	current, err := h.sessions.Current(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, current)
}

// Logout clears the persisted session record.
func (h *SessionHandler) Logout(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.sessions.Clear(c.Request().Context(), identity.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"redirect": authz.LoginTarget})
}

type navResponse struct {
	Role  domain.Role `json:"role"`
	Items []navItem   `json:"items"`
}

type navItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Nav returns the navigation chrome for the current view. A role hint
// derived from the ?path= segment takes precedence over the store role for
// chrome selection only; it never widens access, since every data route is
// gated separately.
func (h *SessionHandler) Nav(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	role := identity.Role
	if hint, ok := authz.SectionRole(c.QueryParam("path")); ok {
		role = hint
	}

	return c.JSON(http.StatusOK, navResponse{Role: role, Items: navItemsFor(role)})
}

func navItemsFor(role domain.Role) []navItem {
	switch role {
	case domain.RoleAdmin:
		return []navItem{
			{Label: "Dashboard", Href: "/admin"},
			{Label: "Orders", Href: "/admin/orders"},
			{Label: "Withdrawals", Href: "/admin/withdrawals"},
			{Label: "Products", Href: "/admin/products"},
			{Label: "Shops", Href: "/admin/shops"},
			{Label: "Categories", Href: "/admin/categories"},
			{Label: "Brands", Href: "/admin/brands"},
			{Label: "Coupons", Href: "/admin/coupons"},
			{Label: "Users", Href: "/admin/users"},
		}
	case domain.RoleSR:
		return []navItem{
			{Label: "Dashboard", Href: "/sr"},
			{Label: "Orders", Href: "/sr/orders"},
			{Label: "Withdrawals", Href: "/sr/withdrawals"},
		}
	case domain.RoleVendor:
		return []navItem{
			{Label: "Dashboard", Href: "/vendor"},
			{Label: "Products", Href: "/vendor/products"},
			{Label: "Orders", Href: "/vendor/orders"},
			{Label: "Withdrawals", Href: "/vendor/withdrawals"},
		}
	default:
		return []navItem{{Label: "Home", Href: "/"}}
	}
}
