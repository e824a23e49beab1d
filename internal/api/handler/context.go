package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/listing"
)

// identityKey mirrors the key the Auth middleware stores the resolved
// identity under.
const identityKey = "identity"

// ctxIdentity extracts the store-derived identity injected by the Auth
// middleware. Its presence proves the middleware ran; a protected handler
// reached without it fails closed.
func ctxIdentity(c echo.Context) (domain.SessionIdentity, error) {
	identity, ok := c.Get(identityKey).(domain.SessionIdentity)
	if !ok || identity.UserID == "" {
		return domain.SessionIdentity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}

// listingParams parses the list-screen query parameters. Every input is
// tolerant: an absent status means "all", an unknown sort falls back to the
// default ordering, and a malformed page number clamps later in the pipeline.
func listingParams(c echo.Context) listing.Params {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	status := strings.ToUpper(strings.TrimSpace(c.QueryParam("status")))
	if status == "" {
		status = listing.StatusAll
	}
	return listing.Params{
		Query:  c.QueryParam("q"),
		Status: status,
		Sort:   listing.ParseSort(c.QueryParam("sort")),
		Page:   page,
	}
}
