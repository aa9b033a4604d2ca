package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mitcampus/campus-companion/internal/api/middleware"
	"github.com/mitcampus/campus-companion/internal/core/session"
)

// currentSession returns the session attached by the auth middleware. Its
// absence means the route was registered without one and is a wiring bug.
func currentSession(c echo.Context) (*session.Session, error) {
	s, ok := c.Get(middleware.SessionKey).(*session.Session)
	if !ok || s == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return s, nil
}

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
