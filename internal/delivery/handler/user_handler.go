package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/benjaminhze/cribhunter/internal/application/command"
	"github.com/benjaminhze/cribhunter/internal/application/interfaces"
	"github.com/benjaminhze/cribhunter/internal/domain"
)

type UserHandler struct {
	users interfaces.UserService
}

func NewUserHandler(users interfaces.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterRoutes mounts the profile and favorites routes. All of them
// require authentication.
func (h *UserHandler) RegisterRoutes(g *echo.Group, authn *Authenticator) {
	g.Use(authn.RequireAuth)
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile)
	g.DELETE("/profile", h.DeleteProfile)
	g.GET("/favorites", h.ListFavorites)
	g.POST("/favorites/:property_id", h.AddFavorite)
	g.DELETE("/favorites/:property_id", h.RemoveFavorite)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	result, err := h.users.GetProfile(c.Request().Context(), identity(c).Id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var cmd command.UpdateProfileCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}
	cmd.UserId = identity(c).Id

	result, err := h.users.UpdateProfile(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *UserHandler) DeleteProfile(c echo.Context) error {
	result, err := h.users.DeleteProfile(c.Request().Context(), identity(c).Id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *UserHandler) ListFavorites(c echo.Context) error {
	result, err := h.users.ListFavorites(c.Request().Context(), identity(c).Id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *UserHandler) AddFavorite(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("property_id"))
	if err != nil {
		return domain.NewNotFoundError("Property not found")
	}

	result, err := h.users.AddFavorite(c.Request().Context(), identity(c).Id, propertyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("property_id"))
	if err != nil {
		return domain.NewNotFoundError("Favorite not found")
	}

	result, err := h.users.RemoveFavorite(c.Request().Context(), identity(c).Id, propertyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
