package authz

import (
	"testing"

	"github.com/shopgrid/admin-api/internal/core/domain"
)

func TestDecide_CrossCheck(t *testing.T) {
	cases := []struct {
		name    string
		role    domain.Role
		path    string
		allowed bool
		target  string
	}{
		{"admin on sr section", domain.RoleAdmin, "/sr/orders", false, NotFoundTarget},
		{"sr on admin section", domain.RoleSR, "/admin/withdrawals", false, NotFoundTarget},
		{"admin on admin section", domain.RoleAdmin, "/admin/orders", true, ""},
		{"sr on sr section", domain.RoleSR, "/sr/orders", true, ""},
		// The vendor/customer prefixes are deliberately not cross-checked.
		{"vendor on sr section", domain.RoleVendor, "/sr/orders", true, ""},
		{"customer on admin section", domain.RoleCustomer, "/admin/orders", true, ""},
		{"vendor on vendor section", domain.RoleVendor, "/vendor/products", true, ""},
		{"admin on unprefixed path", domain.RoleAdmin, "/me", true, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.role, tc.path)
			if d.Allowed != tc.allowed {
				t.Fatalf("Decide(%q, %q).Allowed = %v, want %v", tc.role, tc.path, d.Allowed, tc.allowed)
			}
			if d.Target != tc.target {
				t.Fatalf("Decide(%q, %q).Target = %q, want %q", tc.role, tc.path, d.Target, tc.target)
			}
		})
	}
}

func TestDecide_UnresolvedRedirectsToLogin(t *testing.T) {
	d := Decide("", "/admin/orders")
	if d.Allowed {
		t.Fatal("unresolved identity must never be allowed")
	}
	if d.Target != LoginTarget {
		t.Fatalf("expected login target, got %q", d.Target)
	}
}

func TestDecide_PrefixNotSubstring(t *testing.T) {
	// "/srx/..." is not the sr section.
	if d := Decide(domain.RoleAdmin, "/srx/orders"); !d.Allowed {
		t.Fatal("only the exact leading segment should match a section")
	}
	if d := Decide(domain.RoleSR, "/administration"); !d.Allowed {
		t.Fatal("only the exact leading segment should match a section")
	}
	// Bare "/sr" is the section root.
	if d := Decide(domain.RoleAdmin, "/sr"); d.Allowed {
		t.Fatal("section root must be gated too")
	}
}

func TestSectionRole(t *testing.T) {
	if role, ok := SectionRole("/admin/orders"); !ok || role != domain.RoleAdmin {
		t.Fatalf("expected admin hint, got %q ok=%v", role, ok)
	}
	if role, ok := SectionRole("/vendor"); !ok || role != domain.RoleVendor {
		t.Fatalf("expected vendor hint, got %q ok=%v", role, ok)
	}
	if _, ok := SectionRole("/settings/profile"); ok {
		t.Fatal("unknown sections should produce no hint")
	}
	if _, ok := SectionRole(""); ok {
		t.Fatal("empty path should produce no hint")
	}
}
