package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/session"
)

// SessionKey is the echo context key holding the *session.Session.
const SessionKey = "session"

// Auth validates the bearer token and attaches the session it names.
func Auth(tokens *Tokens, sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearer(c)
			if err != nil {
				return err
			}
			claims, err := tokens.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(SessionKey, sessions.Open(c.Request().Context(), claims.SessionID))
			return next(c)
		}
	}
}

// OptionalAuth attaches the session named by a valid bearer token, or a fresh
// empty session when the header is missing or the token does not verify.
// Entry points use it so a browser keeps one session id across logins.
func OptionalAuth(tokens *Tokens, sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := uuid.NewString()
			if raw, err := bearer(c); err == nil {
				if claims, err := tokens.Parse(raw); err == nil {
					sid = claims.SessionID
				}
			}
			c.Set(SessionKey, sessions.Open(c.Request().Context(), sid))
			return next(c)
		}
	}
}

// RequireUser rejects sessions without an authenticated user.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, _ := c.Get(SessionKey).(*session.Session)
			if s == nil || !s.Authenticated() {
				return domain.ErrNoSession
			}
			return next(c)
		}
	}
}

func bearer(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
