// Package testutils builds fully wired fiber apps for handler tests, either
// on mocks or on a throwaway Postgres.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/metrics"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/pkg/service/health"
	"github.com/amirasaad/ledger/webapi"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Config returns an application config suitable for tests.
func Config() *config.App {
	return &config.App{
		Env: "test",
		Auth: &config.Auth{Jwt: &config.Jwt{
			Secret:   "test-secret-key-with-enough-bytes",
			Issuer:   "ledger",
			Audience: "ledger-api",
			Expiry:   time.Hour,
		}},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Seed:      &config.Seed{},
	}
}

// MockApp bundles a fiber app wired on mocked repositories.
type MockApp struct {
	App      *fiber.App
	Config   *config.App
	Uow      *mocks.MockUnitOfWork
	People   *mocks.MockPersonRepository
	Accounts *mocks.MockAccountRepository
	Users    *mocks.MockUserRepository
	Metrics  *metrics.Metrics
}

// NewMockApp builds the full HTTP stack on top of mocks. db may be nil when
// the test never hits the health probe.
func NewMockApp(t *testing.T, db health.Pinger) *MockApp {
	t.Helper()
	log.SetOutput(io.Discard)
	cfg := Config()
	m := &MockApp{
		Config:   cfg,
		Uow:      mocks.NewMockUnitOfWork(t),
		People:   mocks.NewMockPersonRepository(t),
		Accounts: mocks.NewMockAccountRepository(t),
		Users:    mocks.NewMockUserRepository(t),
		Metrics:  metrics.New(),
	}
	a := app.New(&app.Deps{
		Uow:     m.Uow,
		DB:      db,
		Metrics: m.Metrics,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, cfg)
	m.App = webapi.SetupApp(a)
	return m
}

// RunInTx makes the next Do call run its function against the mocked UoW.
func (m *MockApp) RunInTx() {
	m.Uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(m.Uow)
		},
	).Once()
}

// Token signs a valid bearer token for username with the test secret.
func Token(t *testing.T, cfg *config.App, username string) string {
	t.Helper()
	strategy := auth.NewJWTStrategy(nil, cfg.Auth.Jwt, slog.New(slog.NewTextHandler(io.Discard, nil)))
	token, err := strategy.GenerateToken(context.Background(), &dto.UserRead{ID: uuid.New(), Username: username})
	require.NoError(t, err)
	return token
}

// MakeRequest sends a request through app. body is sent as JSON when not
// empty and token as a bearer credential when not empty.
func MakeRequest(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// DecodeData unmarshals the data field of a success envelope into out.
func DecodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	var envelope struct {
		common.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// DecodeProblem unmarshals a problem details body.
func DecodeProblem(t *testing.T, resp *http.Response) common.ProblemDetails {
	t.Helper()
	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}
