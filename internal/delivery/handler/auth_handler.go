package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/benjaminhze/cribhunter/internal/application/command"
	"github.com/benjaminhze/cribhunter/internal/application/common"
	"github.com/benjaminhze/cribhunter/internal/application/interfaces"
	"github.com/benjaminhze/cribhunter/internal/application/mapper"
	"github.com/benjaminhze/cribhunter/internal/domain"
)

type AuthHandler struct {
	auth interfaces.AuthService
}

func NewAuthHandler(auth interfaces.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group, authn *Authenticator) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.GET("/me", h.Me, authn.RequireAuth)
	g.POST("/logout", h.Logout, authn.RequireAuth)
	g.POST("/refresh", h.Refresh, authn.RequireAuth)
}

// POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}

	result, err := h.auth.Register(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result.Result)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}

	result, err := h.auth.Login(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

// GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, mapper.NewUserResultFromEntity(identity(c)))
}

// POST /api/auth/logout. Tokens are not revoked; the client discards it.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, common.NewMessageResult("Successfully logged out"))
}

// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	result, err := h.auth.Refresh(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// bindBody decodes the JSON body into dst. Decoding failures are reported
// as schema violations.
func bindBody(c echo.Context, dst any) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, dst); err != nil {
		return domain.NewUnprocessableError("Invalid request body")
	}
	return nil
}

func bindAndValidate(c echo.Context, dst any) error {
	if err := bindBody(c, dst); err != nil {
		return err
	}
	return c.Validate(dst)
}
