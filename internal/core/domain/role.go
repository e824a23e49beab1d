package domain

import "strings"

// Role identifies which dashboard section a user belongs to.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSR       Role = "sr" // sales representative
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
)

// DefaultRole is the fallback applied when a session carries no usable role.
const DefaultRole = RoleSR

// NormalizeRole maps arbitrary external input to exactly one member of the
// role set. Strings are matched case-insensitively; nil, non-string values
// and unknown strings all resolve to fallback. The function is total: it
// never returns a value outside the set and never panics.
func NormalizeRole(input any, fallback Role) Role {
	s, ok := input.(string)
	if !ok {
		return fallback
	}
	switch Role(strings.ToLower(s)) {
	case RoleAdmin:
		return RoleAdmin
	case RoleSR:
		return RoleSR
	case RoleCustomer:
		return RoleCustomer
	case RoleVendor:
		return RoleVendor
	}
	return fallback
}

// ResolveRole applies NormalizeRole with the package default fallback.
func ResolveRole(input any) Role {
	return NormalizeRole(input, DefaultRole)
}
