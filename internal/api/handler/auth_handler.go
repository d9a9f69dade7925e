package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/openretail/pos-gateway/internal/api/middleware"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
	"github.com/openretail/pos-gateway/internal/session"
)

type AuthHandler struct {
	authService ports.AuthService
	codec       *session.Codec
	secure      bool
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, codec *session.Codec, secure bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, codec: codec, secure: secure, log: log}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	User      *domain.Principal `json:"user"`
	ExpiresAt string            `json:"expires_at"`
}

// Login exchanges credentials for a session cookie.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      423   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	value, err := h.codec.Encode(sess)
	if err != nil {
		return err
	}
	c.SetCookie(h.codec.Cookie(value, h.secure))

	return c.JSON(http.StatusOK, sessionResponse{
		User:      &sess.Principal,
		ExpiresAt: sess.ExpiresAt().UTC().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// Logout revokes the backend token and clears the session cookie. The
// cookie is cleared even when the backend call fails: local logout
// always wins.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sess := middleware.SessionFrom(c); sess != nil {
		if err := h.authService.Logout(c.Request().Context(), sess); err != nil {
			h.log.Warn().Err(err).Msg("logout cleanup failed")
		}
	}
	c.SetCookie(h.codec.ClearCookie(h.secure))
	return c.NoContent(http.StatusNoContent)
}

// Session returns the current principal, for the UI to hydrate its
// auth state on page load.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrAuthRequired.Error())
	}
	return c.JSON(http.StatusOK, sessionResponse{
		User:      &sess.Principal,
		ExpiresAt: sess.ExpiresAt().UTC().Format("2006-01-02T15:04:05Z07:00"),
	})
}
