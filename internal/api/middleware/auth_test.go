package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/session"
	"github.com/mitcampus/campus-companion/internal/infrastructure/db/memory"
)

func newManager(t *testing.T, records map[string]*domain.User) *session.Manager {
	t.Helper()
	store := memory.NewSessionStore()
	for sid, u := range records {
		if err := store.Save(context.Background(), sid, u); err != nil {
			t.Fatalf("seed session: %v", err)
		}
	}
	return session.NewManager(store, zerolog.Nop())
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := NewTokens("secret", time.Hour)
	mgr := newManager(t, map[string]*domain.User{
		"sid-1": {ID: "1", Email: "admin@mitmusaffarpur.edu.in", Role: domain.RoleAdmin},
	})

	signed, err := tokens.Issue("sid-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens, mgr)(func(c echo.Context) error {
		called = true
		s, ok := c.Get(SessionKey).(*session.Session)
		if !ok || s.ID() != "sid-1" {
			t.Fatalf("session not set")
		}
		if s.Role() != domain.RoleAdmin {
			t.Fatalf("expected stored role to be trusted, got %q", s.Role())
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(NewTokens("secret", time.Hour), newManager(t, nil))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(NewTokens("secret", time.Hour), newManager(t, nil))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongSecretAndAlg(t *testing.T) {
	e := echo.New()
	mw := Auth(NewTokens("secret", time.Hour), newManager(t, nil))

	other, _ := NewTokens("other", time.Hour).Issue("sid-1", domain.RoleStudent)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sid": "sid-1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	for _, raw := range []string{other, none} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := mw(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})(c)
		if err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokens := NewTokens("secret", time.Minute)
	tokens.now = func() time.Time { return time.Now().Add(-time.Hour) }
	signed, _ := tokens.Issue("sid-1", domain.RoleStudent)

	if _, err := NewTokens("secret", time.Minute).Parse(signed); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestOptionalAuth_MintsSessionWithoutToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/guest", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := OptionalAuth(NewTokens("secret", time.Hour), newManager(t, nil))(func(c echo.Context) error {
		s := c.Get(SessionKey).(*session.Session)
		if s.ID() == "" || s.Authenticated() {
			t.Fatalf("expected fresh unauthenticated session, got %q", s.ID())
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestOptionalAuth_ReusesSessionID(t *testing.T) {
	e := echo.New()
	tokens := NewTokens("secret", time.Hour)
	signed, _ := tokens.Issue("sid-keep", domain.RoleGuest)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := OptionalAuth(tokens, newManager(t, nil))(func(c echo.Context) error {
		if s := c.Get(SessionKey).(*session.Session); s.ID() != "sid-keep" {
			t.Fatalf("expected sid-keep, got %q", s.ID())
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestRequireUser(t *testing.T) {
	e := echo.New()
	mgr := newManager(t, map[string]*domain.User{"sid-1": {ID: "1", Role: domain.RoleStudent}})
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(SessionKey, mgr.Open(context.Background(), "sid-empty"))
	if err := RequireUser()(next)(c); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(SessionKey, mgr.Open(context.Background(), "sid-1"))
	if err := RequireUser()(next)(c); err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
}
