package domain

import "testing"

func TestNormalizeRole_KnownValues(t *testing.T) {
	cases := map[string]Role{
		"admin":    RoleAdmin,
		"ADMIN":    RoleAdmin,
		"Admin":    RoleAdmin,
		"sr":       RoleSR,
		"SR":       RoleSR,
		"customer": RoleCustomer,
		"vendor":   RoleVendor,
		"VeNdOr":   RoleVendor,
	}
	for input, want := range cases {
		if got := ResolveRole(input); got != want {
			t.Errorf("ResolveRole(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeRole_Fallback(t *testing.T) {
	inputs := []any{nil, "", "bogus", "administrator", 42, 3.14, []string{"admin"}, map[string]string{}}
	for _, input := range inputs {
		if got := ResolveRole(input); got != DefaultRole {
			t.Errorf("ResolveRole(%v) = %q, want default %q", input, got, DefaultRole)
		}
	}
}

func TestNormalizeRole_CustomFallback(t *testing.T) {
	if got := NormalizeRole("nope", RoleCustomer); got != RoleCustomer {
		t.Errorf("expected custom fallback %q, got %q", RoleCustomer, got)
	}
	if got := NormalizeRole(nil, ""); got != "" {
		t.Errorf("expected empty fallback to pass through, got %q", got)
	}
}

func TestNormalizeRole_AlwaysInSet(t *testing.T) {
	set := map[Role]struct{}{RoleAdmin: {}, RoleSR: {}, RoleCustomer: {}, RoleVendor: {}}
	inputs := []any{"admin", "SR", "x", "", nil, 0, false, struct{}{}}
	for _, input := range inputs {
		got := ResolveRole(input)
		if _, ok := set[got]; !ok {
			t.Errorf("ResolveRole(%v) = %q, outside the role set", input, got)
		}
	}
}

func TestNormalizeStatus_UnknownDegradesToOther(t *testing.T) {
	if got := NormalizeOrderStatus("weird_value"); got != StatusOther {
		t.Errorf("expected %q, got %q", StatusOther, got)
	}
	if got := NormalizeOrderStatus("delivered"); got != string(OrderDelivered) {
		t.Errorf("expected %q, got %q", OrderDelivered, got)
	}
	if got := NormalizeWithdrawalStatus(" on_hold "); got != string(WithdrawalOnHold) {
		t.Errorf("expected %q, got %q", WithdrawalOnHold, got)
	}
	if got := NormalizeProductStatus(""); got != StatusOther {
		t.Errorf("expected %q for empty status, got %q", StatusOther, got)
	}
}

func TestValidStatus_MutationChecks(t *testing.T) {
	if !ValidOrderStatus("Cancelled") {
		t.Error("expected Cancelled to be a valid order status")
	}
	if ValidOrderStatus("weird_value") {
		t.Error("expected weird_value to be rejected")
	}
	if !ValidWithdrawalStatus("approved") {
		t.Error("expected approved to be a valid withdrawal status")
	}
	if ValidProductStatus("OTHER") {
		t.Error("OTHER is a read-side bucket, not an assignable status")
	}
}
