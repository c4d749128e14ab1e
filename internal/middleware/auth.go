package middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"inmobiliaria/internal/auth"
	apperrors "inmobiliaria/internal/errors"
	"inmobiliaria/internal/model"
	"inmobiliaria/internal/service"
)

// Context keys set by the auth middleware chain.
const (
	subjectKey     = "subject"
	currentUserKey = "currentUser"
)

// BearerToken extracts the bearer token from the Authorization header and
// verifies signature and expiry. The verified subject is stored on the
// context; missing or invalid tokens answer 401 with a generic message.
func BearerToken(tokens *auth.TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: subjectKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			subject, err := tokens.Verify(tokenString)
			if err != nil {
				return nil, err
			}
			return subject, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
		},
	})
}

// CurrentUser resolves the verified subject to a stored user and makes it
// available to handlers. A subject with no matching user answers 401; a
// token does not outlive its account.
func CurrentUser(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, ok := c.Get(subjectKey).(string)
			if !ok || subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
			}

			user, err := authService.CurrentUser(c.Request().Context(), subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// UserFrom returns the authenticated user placed on the context by
// CurrentUser, or nil when the route is unauthenticated.
func UserFrom(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}
