package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "inmobiliaria/internal/errors"
	"inmobiliaria/internal/model"
	"inmobiliaria/internal/service"
)

// PropertyHandler bundles HTTP handlers for the properties resource.
type PropertyHandler struct {
	svc service.PropertyService
}

// NewPropertyHandler creates a handler layer.
func NewPropertyHandler(svc service.PropertyService) *PropertyHandler {
	return &PropertyHandler{svc: svc}
}

// CreatePropertyRequest is the property creation payload.
type CreatePropertyRequest struct {
	Direccion   string `json:"direccion" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
	Precio      int64  `json:"precio" validate:"required"`
}

// CreateProperty godoc
// @Summary Create a property
// @Tags propiedades
// @Accept json
// @Produce json
// @Param propiedad body CreatePropertyRequest true "Property payload"
// @Success 201 {object} model.Property
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /propiedades/ [post]
func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property := &model.Property{
		Direccion:   req.Direccion,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
	}
	created, err := h.svc.Create(c.Request().Context(), property)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// ListProperties godoc
// @Summary List properties
// @Tags propiedades
// @Produce json
// @Param skip query int false "Offset into the result set"
// @Param limit query int false "Maximum records to return"
// @Success 200 {array} model.Property
// @Router /propiedades/ [get]
func (h *PropertyHandler) ListProperties(c echo.Context) error {
	skip, limit := pageParams(c)
	properties, err := h.svc.List(c.Request().Context(), skip, limit)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, properties)
}
