package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/benjaminhze/cribhunter/internal/application/command"
	"github.com/benjaminhze/cribhunter/internal/application/common"
	"github.com/benjaminhze/cribhunter/internal/application/interfaces"
	"github.com/benjaminhze/cribhunter/internal/application/query"
	"github.com/benjaminhze/cribhunter/internal/domain"
)

type PropertyHandler struct {
	properties interfaces.PropertyService
}

func NewPropertyHandler(properties interfaces.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

func (h *PropertyHandler) RegisterRoutes(g *echo.Group, authn *Authenticator) {
	g.GET("", h.List, authn.OptionalAuth)
	g.GET("/user/:user_id", h.ListByOwner, authn.OptionalAuth)
	g.GET("/:id", h.Get, authn.OptionalAuth)
	g.POST("", h.Create, authn.RequireAuth)
	g.PUT("/:id", h.Update, authn.RequireAuth)
	g.DELETE("/:id", h.Delete, authn.RequireAuth)
}

// GET /api/properties?property_type=&listing_type=&min_price=&max_price=&bedrooms=&bathrooms=&skip=&limit=
func (h *PropertyHandler) List(c echo.Context) error {
	q := query.NewListPropertiesQuery()
	err := echo.QueryParamsBinder(c).
		String("property_type", &q.PropertyType).
		String("listing_type", &q.ListingType).
		Float64("min_price", &q.MinPrice).
		Float64("max_price", &q.MaxPrice).
		Int("bedrooms", &q.Bedrooms).
		Int("bathrooms", &q.Bathrooms).
		Int("skip", &q.Skip).
		Int("limit", &q.Limit).
		BindError()
	if err != nil {
		return domain.NewUnprocessableError("Invalid query parameters")
	}
	if err := c.Validate(q); err != nil {
		return err
	}

	result, err := h.properties.ListProperties(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

// GET /api/properties/:id
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domain.NewNotFoundError("Property not found")
	}

	result, err := h.properties.GetProperty(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

// GET /api/properties/user/:user_id
func (h *PropertyHandler) ListByOwner(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		// No user can own listings under an id that is not a uuid.
		return c.JSON(http.StatusOK, []*common.PropertyResult{})
	}

	result, err := h.properties.ListOwnerProperties(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

// POST /api/properties
func (h *PropertyHandler) Create(c echo.Context) error {
	// The body is validated by the service once the caller is known to
	// be allowed to create listings.
	var cmd command.CreatePropertyCommand
	if err := bindBody(c, &cmd); err != nil {
		return err
	}

	result, err := h.properties.CreateProperty(c.Request().Context(), identity(c), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result.Result)
}

// PUT /api/properties/:id
func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domain.NewNotFoundError("Property not found or you don't have permission to update it")
	}

	var cmd command.UpdatePropertyCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}
	cmd.PropertyId = id

	result, err := h.properties.UpdateProperty(c.Request().Context(), identity(c), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

// DELETE /api/properties/:id
func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domain.NewNotFoundError("Property not found or you don't have permission to delete it")
	}

	result, err := h.properties.DeleteProperty(c.Request().Context(), identity(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
