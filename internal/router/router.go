package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"inmobiliaria/internal/auth"
	"inmobiliaria/internal/handler"
	"inmobiliaria/internal/middleware"
	"inmobiliaria/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	tokens *auth.TokenService,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	propertyHandler *handler.PropertyHandler,
	reservationHandler *handler.ReservationHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	// Signature/expiry check first, then subject-to-user resolution.
	authRequired := []echo.MiddlewareFunc{
		middleware.BearerToken(tokens),
		middleware.CurrentUser(authService),
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/token", authHandler.Token)

	e.POST("/usuarios/", userHandler.CreateUser)
	e.GET("/usuarios/", userHandler.ListUsers)

	e.POST("/propiedades/", propertyHandler.CreateProperty, authRequired...)
	e.GET("/propiedades/", propertyHandler.ListProperties)

	e.POST("/reservas/", reservationHandler.CreateReservation, authRequired...)
	e.GET("/reservas/", reservationHandler.ListReservations, authRequired...)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
