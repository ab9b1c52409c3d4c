package auth_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/amirasaad/ledger/webapi/auth"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var jwtCfg = &config.Jwt{
	Secret:   "test-secret-key-with-enough-bytes",
	Issuer:   "ledger",
	Audience: "ledger-api",
	Expiry:   time.Hour,
}

func setup(t *testing.T) (*fiber.App, *mocks.MockUnitOfWork, *mocks.MockUserRepository) {
	t.Helper()
	uow := mocks.NewMockUnitOfWork(t)
	users := mocks.NewMockUserRepository(t)
	app := fiber.New()
	auth.Routes(app, authsvc.NewWithJWT(uow, jwtCfg, slog.Default()))
	return app, uow, users
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLogin_Success(t *testing.T) {
	app, uow, users := setup(t)
	hash, err := utils.HashPassword("senha123")
	require.NoError(t, err)
	uow.EXPECT().UserRepository().Return(users, nil).Once()
	users.EXPECT().GetByUsername(mock.Anything, "visualAPI").
		Return(&dto.UserRead{ID: uuid.New(), Username: "visualAPI", HashedPassword: hash}, nil).Once()

	resp := post(t, app, "/api/auth/login", `{"name":"visualAPI","password":"senha123"}`)
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body.Data.(map[string]any)
	assert.NotEmpty(t, data["token"])
}

func TestLogin_UniformFailure(t *testing.T) {
	app, uow, users := setup(t)
	hash, err := utils.HashPassword("senha123")
	require.NoError(t, err)
	uow.EXPECT().UserRepository().Return(users, nil).Twice()
	users.EXPECT().GetByUsername(mock.Anything, "visualAPI").
		Return(&dto.UserRead{ID: uuid.New(), Username: "visualAPI", HashedPassword: hash}, nil).Once()
	users.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, nil).Once()

	wrong := post(t, app, "/api/auth/login", `{"name":"visualAPI","password":"nope"}`)
	defer wrong.Body.Close() //nolint: errcheck
	unknown := post(t, app, "/api/auth/login", `{"name":"ghost","password":"senha123"}`)
	defer unknown.Body.Close() //nolint: errcheck

	assert.Equal(t, fiber.StatusUnauthorized, wrong.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, unknown.StatusCode)

	var a, b common.ProblemDetails
	require.NoError(t, json.NewDecoder(wrong.Body).Decode(&a))
	require.NoError(t, json.NewDecoder(unknown.Body).Decode(&b))
	assert.Equal(t, a.Title, b.Title)
	assert.Equal(t, a.Detail, b.Detail)
}

func TestLogin_BlankIsUnauthorized(t *testing.T) {
	app, uow, users := setup(t)
	uow.EXPECT().UserRepository().Return(users, nil).Maybe()
	users.EXPECT().GetByUsername(mock.Anything, "").Return(nil, nil).Maybe()

	resp := post(t, app, "/api/auth/login", `{"name":"","password":""}`)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_BadRequest(t *testing.T) {
	app, _, _ := setup(t)
	resp := post(t, app, "/api/auth/login", `{"name":123}`)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		app, uow, users := setup(t)
		uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, fn func(repository.UnitOfWork) error) error { return fn(uow) },
		).Once()
		uow.EXPECT().UserRepository().Return(users, nil).Once()
		users.EXPECT().ExistsByUsername(mock.Anything, "bob").Return(false, nil).Once()
		users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		resp := post(t, app, "/api/auth/CreateUser", `{"name":"bob","password":"s3cret"}`)
		defer resp.Body.Close() //nolint: errcheck
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("duplicate", func(t *testing.T) {
		app, uow, users := setup(t)
		uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, fn func(repository.UnitOfWork) error) error { return fn(uow) },
		).Once()
		uow.EXPECT().UserRepository().Return(users, nil).Once()
		users.EXPECT().ExistsByUsername(mock.Anything, "bob").Return(true, nil).Once()

		resp := post(t, app, "/api/auth/CreateUser", `{"name":"bob","password":"s3cret"}`)
		defer resp.Body.Close() //nolint: errcheck
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("blank", func(t *testing.T) {
		app, _, _ := setup(t)
		resp := post(t, app, "/api/auth/CreateUser", `{"name":"","password":"x"}`)
		defer resp.Body.Close() //nolint: errcheck
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("oversized credentials", func(t *testing.T) {
		app, _, _ := setup(t)
		for _, body := range []string{
			`{"name":"` + strings.Repeat("u", user.MaxUsernameLength+1) + `","password":"x"}`,
			`{"name":"bob","password":"` + strings.Repeat("p", user.MaxPasswordBytes+1) + `"}`,
		} {
			resp := post(t, app, "/api/auth/CreateUser", body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			resp.Body.Close() //nolint: errcheck
		}
	})

	t.Run("store failure", func(t *testing.T) {
		app, uow, _ := setup(t)
		uow.EXPECT().Do(mock.Anything, mock.Anything).Return(domain.ErrStore).Once()

		resp := post(t, app, "/api/auth/CreateUser", `{"name":"bob","password":"s3cret"}`)
		defer resp.Body.Close() //nolint: errcheck
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
