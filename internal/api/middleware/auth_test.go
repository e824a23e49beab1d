package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

const testSecret = "test-secret"

type fakeSessions struct {
	synced   *ports.IdentityClaims
	identity *domain.SessionIdentity
	syncErr  error
}

func (f *fakeSessions) Sync(_ context.Context, claims ports.IdentityClaims) (*domain.SessionIdentity, error) {
	f.synced = &claims
	if f.syncErr != nil {
		return nil, f.syncErr
	}
	if f.identity != nil {
		return f.identity, nil
	}
	return &domain.SessionIdentity{UserID: claims.UserID, Role: domain.RoleSR}, nil
}

func (f *fakeSessions) Current(_ context.Context, userID string) (*domain.SessionIdentity, error) {
	if f.identity != nil && f.identity.UserID == userID {
		return f.identity, nil
	}
	return nil, domain.ErrIdentityUnresolved
}

func (f *fakeSessions) Clear(_ context.Context, _ string) error { return nil }

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, sessions ports.SessionService, header string) (*httptest.ResponseRecorder, domain.SessionIdentity, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got domain.SessionIdentity
	var reached bool
	handler := Auth(testSecret, sessions)(func(c echo.Context) error {
		reached = true
		got, _ = c.Get(IdentityKey).(domain.SessionIdentity)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec, got, reached
}

func TestAuth_ValidTokenInjectsStoreIdentity(t *testing.T) {
	sessions := &fakeSessions{identity: &domain.SessionIdentity{
		UserID: "u1", Name: "From Store", Role: domain.RoleVendor, ShopID: "shop-1",
	}}
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "u1", "name": "From Claims", "role": "vendor", "shop_id": "shop-1",
	})

	rec, got, reached := runAuth(t, sessions, "Bearer "+token)
	if !reached || rec.Code != http.StatusOK {
		t.Fatalf("expected the handler to run, status %d", rec.Code)
	}
	// The handler sees the store's merged view, not the raw claims.
	if got.Name != "From Store" || got.Role != domain.RoleVendor {
		t.Fatalf("handler got %+v, want the synced store identity", got)
	}
	if sessions.synced == nil || sessions.synced.UserID != "u1" {
		t.Fatal("claims were not synced into the session store")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, _, reached := runAuth(t, &fakeSessions{}, "")
	if reached {
		t.Fatal("handler must not run without credentials")
	}
	assertLoginRedirect(t, rec)
}

func TestAuth_MalformedHeader(t *testing.T) {
	rec, _, reached := runAuth(t, &fakeSessions{}, "Token abc")
	if reached {
		t.Fatal("handler must not run with a non-bearer scheme")
	}
	assertLoginRedirect(t, rec)
}

func TestAuth_WrongSignature(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{"sub": "u1"})
	rec, _, reached := runAuth(t, &fakeSessions{}, "Bearer "+token)
	if reached {
		t.Fatal("handler must not run with a forged token")
	}
	assertLoginRedirect(t, rec)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "u1", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	rec, _, reached := runAuth(t, &fakeSessions{}, "Bearer "+token)
	if reached {
		t.Fatal("handler must not run with an expired token")
	}
	assertLoginRedirect(t, rec)
}

func TestAuth_SyncFailureIsUnresolved(t *testing.T) {
	sessions := &fakeSessions{syncErr: domain.ErrIdentityUnresolved}
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "u1", "role": "admin"})

	rec, _, reached := runAuth(t, sessions, "Bearer "+token)
	if reached {
		t.Fatal("a failed session sync must not admit the request")
	}
	assertLoginRedirect(t, rec)
}

func assertLoginRedirect(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["redirect"] != "/login" {
		t.Fatalf("redirect = %q, want /login", body["redirect"])
	}
}
