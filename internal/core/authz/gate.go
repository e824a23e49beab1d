// Package authz holds the pure route-authorization decision. The HTTP
// middleware performs the imperative redirect; everything here is testable
// without a server.
package authz

import (
	"strings"

	"github.com/shopgrid/admin-api/internal/core/domain"
)

// Redirect targets handed back to clients on a denied decision.
const (
	LoginTarget    = "/login"
	NotFoundTarget = "/404"
)

// Decision is the outcome of gating one navigation.
type Decision struct {
	Allowed bool
	Target  string // redirect target when !Allowed
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirect(target string) Decision {
	return Decision{Target: target}
}

// Decide gates a resolved role against a request path. An empty role means
// identity could not be resolved at all and always redirects to login.
//
// The cross-check is deliberately asymmetric: only the admin and sr sections
// guard against each other. Vendor and customer prefixes are not
// cross-checked against anything; those roles share dashboard chrome today
// and the narrower policy is preserved as observed in production.
func Decide(role domain.Role, path string) Decision {
	if role == "" {
		return redirect(LoginTarget)
	}

	section := firstSegment(path)
	switch {
	case role == domain.RoleAdmin && section == "sr":
		return redirect(NotFoundTarget)
	case role == domain.RoleSR && section == "admin":
		return redirect(NotFoundTarget)
	}
	return allow()
}

// SectionRole extracts a role hint from the leading path segment. The hint
// picks which navigation chrome to serve; it never feeds the authorization
// decision, which uses the store-derived role only.
func SectionRole(path string) (domain.Role, bool) {
	switch firstSegment(path) {
	case "admin":
		return domain.RoleAdmin, true
	case "sr":
		return domain.RoleSR, true
	case "vendor":
		return domain.RoleVendor, true
	case "customer":
		return domain.RoleCustomer, true
	}
	return "", false
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return path
}
