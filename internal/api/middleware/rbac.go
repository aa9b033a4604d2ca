package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/session"
)

// RBAC enforces role-based access control against the session's role.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, _ := c.Get(SessionKey).(*session.Session)
			if s == nil || !s.Authenticated() {
				return domain.ErrNoSession
			}
			if _, ok := allowed[s.Role()]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
