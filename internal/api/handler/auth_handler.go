package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mitcampus/campus-companion/internal/api/metrics"
	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
	"github.com/mitcampus/campus-companion/internal/core/session"
)

// TokenIssuer signs a bearer token for a session.
type TokenIssuer interface {
	Issue(sessionID string, role domain.Role) (string, error)
}

type AuthHandler struct {
	identity ports.IdentityService
	tokens   TokenIssuer
}

func NewAuthHandler(identity ports.IdentityService, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{identity: identity, tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Password        string         `json:"password"`
	ConfirmPassword string         `json:"confirmPassword"`
	Branch          *domain.Branch `json:"branch" validate:"omitempty,oneof=computer_science electronics mechanical civil electrical"`
	Semester        *int           `json:"semester" validate:"omitempty,min=1,max=8"`
	YearOfAdmission *int           `json:"yearOfAdmission" validate:"omitempty,min=2000,max=2100"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login signs in with an institutional email. Any password is accepted.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.identity.Login(c.Request().Context(), sess, req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("login", failureReason(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("login", "success").Inc()
	return h.respond(c, http.StatusOK, sess, user)
}

// Register creates a student account and signs it in.
//
// @Summary      Register a new student
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration form"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.identity.Register(c.Request().Context(), sess, ports.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Branch:          req.Branch,
		Semester:        req.Semester,
		YearOfAdmission: req.YearOfAdmission,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("register", failureReason(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("register", "success").Inc()
	return h.respond(c, http.StatusCreated, sess, user)
}

// Guest enters as the fixed guest identity.
//
// @Summary      Continue as guest
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /auth/guest [post]
func (h *AuthHandler) Guest(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	user, err := h.identity.LoginAsGuest(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	metrics.LoginsTotal.WithLabelValues("guest", "success").Inc()
	return h.respond(c, http.StatusOK, sess, user)
}

// Logout clears the session. The token stays valid but names an empty session.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.identity.Logout(c.Request().Context(), sess); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) respond(c echo.Context, status int, sess *session.Session, user *domain.User) error {
	token, err := h.tokens.Issue(sess.ID(), user.Role)
	if err != nil {
		return err
	}
	return c.JSON(status, authResponse{Token: token, User: user})
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrMissingField):
		return "missing_field"
	case errors.Is(err, domain.ErrPasswordMismatch):
		return "password_mismatch"
	case errors.Is(err, domain.ErrPasswordTooShort):
		return "password_too_short"
	default:
		return "error"
	}
}
