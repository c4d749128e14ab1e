package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "inmobiliaria/internal/errors"
	"inmobiliaria/internal/service"
)

// UserHandler bundles HTTP handlers for the users resource.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// CreateUser godoc
// @Summary Register a new user
// @Tags usuarios
// @Accept json
// @Produce json
// @Param usuario body CreateUserRequest true "User payload"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /usuarios/ [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Register(c.Request().Context(), req.Nombre, req.Email, req.Password)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, user)
}

// ListUsers godoc
// @Summary List users
// @Tags usuarios
// @Produce json
// @Param skip query int false "Offset into the result set"
// @Param limit query int false "Maximum records to return"
// @Success 200 {array} model.User
// @Router /usuarios/ [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	skip, limit := pageParams(c)
	users, err := h.svc.List(c.Request().Context(), skip, limit)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}
