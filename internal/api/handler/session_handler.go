package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
)

// SessionHandler exposes the current identity and what it may see.
type SessionHandler struct {
	identity ports.IdentityService
}

func NewSessionHandler(identity ports.IdentityService) *SessionHandler {
	return &SessionHandler{identity: identity}
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user"`
}

type profileRequest struct {
	Name            *string        `json:"name" validate:"omitempty,min=1,max=100"`
	Branch          *domain.Branch `json:"branch" validate:"omitempty,oneof=computer_science electronics mechanical civil electrical"`
	Semester        *int           `json:"semester" validate:"omitempty,min=1,max=8"`
	YearOfAdmission *int           `json:"yearOfAdmission" validate:"omitempty,min=2000,max=2100"`
}

type navigationResponse struct {
	Role  domain.Role      `json:"role"`
	Items []domain.NavItem `json:"items"`
}

// Current returns the session user, or null when nobody is signed in.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	user := sess.User()
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: user != nil, User: user})
}

// UpdateProfile merges the supplied fields into the session user.
//
// @Summary      Update profile
// @Tags         session
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/profile [patch]
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	var req profileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.identity.UpdateProfile(c.Request().Context(), sess, ports.ProfileUpdate{
		Name:            req.Name,
		Branch:          req.Branch,
		Semester:        req.Semester,
		YearOfAdmission: req.YearOfAdmission,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Navigation lists the sections the session role may open.
//
// @Summary      Visible sections
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  navigationResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/navigation [get]
func (h *SessionHandler) Navigation(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	role := sess.Role()
	return c.JSON(http.StatusOK, navigationResponse{Role: role, Items: domain.VisibleSections(role)})
}
