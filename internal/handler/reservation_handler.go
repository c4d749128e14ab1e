package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "inmobiliaria/internal/errors"
	"inmobiliaria/internal/model"
	"inmobiliaria/internal/service"
)

// ReservationHandler bundles HTTP handlers for the reservations resource.
type ReservationHandler struct {
	svc service.ReservationService
}

// NewReservationHandler creates a handler layer.
func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// CreateReservationRequest is the reservation creation payload. Date
// ordering is deliberately not validated.
type CreateReservationRequest struct {
	UsuarioID   uint      `json:"usuario_id" validate:"required"`
	PropiedadID uint      `json:"propiedad_id" validate:"required"`
	FechaInicio time.Time `json:"fecha_inicio" validate:"required"`
	FechaFin    time.Time `json:"fecha_fin" validate:"required"`
}

// CreateReservation godoc
// @Summary Create a reservation
// @Tags reservas
// @Accept json
// @Produce json
// @Param reserva body CreateReservationRequest true "Reservation payload"
// @Success 201 {object} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /reservas/ [post]
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reservation := &model.Reservation{
		UsuarioID:   req.UsuarioID,
		PropiedadID: req.PropiedadID,
		FechaInicio: req.FechaInicio,
		FechaFin:    req.FechaFin,
	}
	created, err := h.svc.Create(c.Request().Context(), reservation)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// ListReservations godoc
// @Summary List reservations
// @Tags reservas
// @Produce json
// @Param skip query int false "Offset into the result set"
// @Param limit query int false "Maximum records to return"
// @Success 200 {array} model.Reservation
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /reservas/ [get]
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	skip, limit := pageParams(c)
	reservations, err := h.svc.List(c.Request().Context(), skip, limit)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, reservations)
}
