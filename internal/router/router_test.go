package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"inmobiliaria/internal/auth"
	"inmobiliaria/internal/cache"
	"inmobiliaria/internal/handler"
	"inmobiliaria/internal/model"
	"inmobiliaria/internal/service"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]model.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockPropertyRepository is a mock implementation of repository.PropertyRepository.
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *model.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) List(ctx context.Context, offset, limit int) ([]model.Property, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Property), args.Error(1)
}

// MockReservationRepository is a mock implementation of repository.ReservationRepository.
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) List(ctx context.Context, offset, limit int) ([]model.Reservation, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reservation), args.Error(1)
}

type testEnv struct {
	e        *echo.Echo
	tokens   *auth.TokenService
	users    *MockUserRepository
	props    *MockPropertyRepository
	reservas *MockReservationRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		e:        echo.New(),
		tokens:   auth.NewTokenService("test-secret", 0),
		users:    new(MockUserRepository),
		props:    new(MockPropertyRepository),
		reservas: new(MockReservationRepository),
	}

	authService := service.NewAuthService(env.users, env.tokens, (*cache.Client)(nil))
	userService := service.NewUserService(env.users)
	propertyService := service.NewPropertyService(env.props)
	reservationService := service.NewReservationService(env.reservas)

	Register(
		env.e,
		env.tokens,
		authService,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewPropertyHandler(propertyService),
		handler.NewReservationHandler(reservationService),
	)
	return env
}

func (env *testEnv) storedUser(password string) *model.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), 10)
	return &model.User{
		ID:           1,
		Nombre:       "Ana",
		Email:        "ana@example.com",
		PasswordHash: string(hashed),
	}
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func postJSON(path, body, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	return req
}

func TestTokenEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := env.storedUser("password123")
	env.users.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)
	env.users.On("FindByEmail", mock.Anything, "nadie@example.com").Return(nil, gorm.ErrRecordNotFound)

	t.Run("valid credentials issue a bearer token", func(t *testing.T) {
		rec := env.do(postForm("/token", url.Values{
			"username": {"ana@example.com"},
			"password": {"password123"},
		}))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp handler.TokenResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "bearer", resp.TokenType)

		subject, err := env.tokens.Verify(resp.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, "ana@example.com", subject)
	})

	t.Run("wrong password is a 400", func(t *testing.T) {
		rec := env.do(postForm("/token", url.Values{
			"username": {"ana@example.com"},
			"password": {"wrong"},
		}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown email is a 400", func(t *testing.T) {
		rec := env.do(postForm("/token", url.Values{
			"username": {"nadie@example.com"},
			"password": {"password123"},
		}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateUserEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("FindByEmail", mock.Anything, "nuevo@example.com").Return(nil, gorm.ErrRecordNotFound)
	env.users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = 7
	}).Return(nil)
	env.users.On("FindByEmail", mock.Anything, "ana@example.com").Return(env.storedUser("x"), nil)

	t.Run("registration returns the record with a generated id", func(t *testing.T) {
		rec := env.do(postJSON("/usuarios/", `{"nombre":"Nuevo","email":"nuevo@example.com","password":"password123"}`, ""))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created model.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, uint(7), created.ID)
		assert.Equal(t, "nuevo@example.com", created.Email)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("duplicate email is a 400", func(t *testing.T) {
		rec := env.do(postJSON("/usuarios/", `{"nombre":"Ana","email":"ana@example.com","password":"password123"}`, ""))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		rec := env.do(postJSON("/usuarios/", `{"email":"x@example.com"}`, ""))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPropertyEndpoints(t *testing.T) {
	env := newTestEnv(t)
	user := env.storedUser("password123")
	env.users.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)
	env.props.On("Create", mock.Anything, mock.AnythingOfType("*model.Property")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Property).ID = 3
	}).Return(nil)
	env.props.On("List", mock.Anything, 0, 100).Return([]model.Property{{ID: 3, Direccion: "Calle 1"}}, nil)
	env.props.On("List", mock.Anything, 1, 1).Return([]model.Property{{ID: 4}}, nil)

	token, err := env.tokens.Issue(user.Email, 0)
	assert.NoError(t, err)

	t.Run("create without a token is a 401", func(t *testing.T) {
		rec := env.do(postJSON("/propiedades/", `{"direccion":"Calle 1","descripcion":"Piso","precio":1000}`, ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("create with an expired token is a 401", func(t *testing.T) {
		expired, err := env.tokens.Issue(user.Email, -time.Minute)
		assert.NoError(t, err)
		rec := env.do(postJSON("/propiedades/", `{"direccion":"Calle 1","descripcion":"Piso","precio":1000}`, expired))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("create with a valid token returns the record", func(t *testing.T) {
		rec := env.do(postJSON("/propiedades/", `{"direccion":"Calle 1","descripcion":"Piso","precio":1000}`, token))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created model.Property
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, uint(3), created.ID)
		assert.Equal(t, int64(1000), created.Precio)
	})

	t.Run("listing needs no auth", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/propiedades/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		var listed []model.Property
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		assert.Len(t, listed, 1)
		assert.Equal(t, "Calle 1", listed[0].Direccion)
	})

	t.Run("skip and limit reach the store", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/propiedades/?skip=1&limit=1", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		var listed []model.Property
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		assert.Len(t, listed, 1)
		assert.Equal(t, uint(4), listed[0].ID)
	})
}

func TestReservationEndpoints(t *testing.T) {
	env := newTestEnv(t)
	user := env.storedUser("password123")
	env.users.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)
	env.reservas.On("Create", mock.Anything, mock.AnythingOfType("*model.Reservation")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Reservation).ID = 9
	}).Return(nil)
	env.reservas.On("List", mock.Anything, 0, 100).Return([]model.Reservation{{ID: 9, UsuarioID: 1, PropiedadID: 3}}, nil)

	token, err := env.tokens.Issue(user.Email, 0)
	assert.NoError(t, err)

	body := `{"usuario_id":1,"propiedad_id":3,"fecha_inicio":"2026-09-01T00:00:00Z","fecha_fin":"2026-09-05T00:00:00Z"}`

	t.Run("create requires auth", func(t *testing.T) {
		rec := env.do(postJSON("/reservas/", body, ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("create with a valid token", func(t *testing.T) {
		rec := env.do(postJSON("/reservas/", body, token))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created model.Reservation
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, uint(9), created.ID)
	})

	t.Run("reversed date range is still accepted", func(t *testing.T) {
		reversed := `{"usuario_id":1,"propiedad_id":3,"fecha_inicio":"2026-09-05T00:00:00Z","fecha_fin":"2026-09-01T00:00:00Z"}`
		rec := env.do(postJSON("/reservas/", reversed, token))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("list requires auth", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/reservas/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("list with a valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/reservas/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := env.do(req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var listed []model.Reservation
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		assert.Len(t, listed, 1)
	})
}
