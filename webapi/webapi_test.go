package webapi_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/amirasaad/ledger/docs"
	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/metrics"
	"github.com/amirasaad/ledger/webapi"
	"github.com/amirasaad/ledger/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, cfg *config.App) *fiber.App {
	t.Helper()
	a := app.New(&app.Deps{
		Uow:     mocks.NewMockUnitOfWork(t),
		Metrics: metrics.New(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, cfg)
	return webapi.SetupApp(a)
}

func TestRootRoute(t *testing.T) {
	fiberApp := newApp(t, testutils.Config())
	resp := testutils.MakeRequest(t, fiberApp, fiber.MethodGet, "/", "", "")
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNotFoundRoute(t *testing.T) {
	fiberApp := newApp(t, testutils.Config())
	resp := testutils.MakeRequest(t, fiberApp, fiber.MethodGet, "/nope", "", "")
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
}

func TestMetricsEndpoint(t *testing.T) {
	fiberApp := newApp(t, testutils.Config())
	first := testutils.MakeRequest(t, fiberApp, fiber.MethodGet, "/", "", "")
	first.Body.Close() //nolint: errcheck

	resp := testutils.MakeRequest(t, fiberApp, fiber.MethodGet, "/metrics", "", "")
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/",status="200"} 1`)
}

func TestSwaggerDoc(t *testing.T) {
	fiberApp := newApp(t, testutils.Config())
	resp := testutils.MakeRequest(t, fiberApp, fiber.MethodGet, "/swagger/doc.json", "", "")
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "/Conta/{id}/debito")
}

func TestRateLimit(t *testing.T) {
	cfg := testutils.Config()
	cfg.RateLimit = &config.RateLimit{MaxRequests: 2, Window: time.Minute}
	fiberApp := newApp(t, cfg)

	get := func(forwardedFor, realIP string) int {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		if forwardedFor != "" {
			req.Header.Set("X-Forwarded-For", forwardedFor)
		}
		if realIP != "" {
			req.Header.Set("X-Real-IP", realIP)
		}
		resp, err := fiberApp.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint: errcheck
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, get("10.0.0.1, 192.168.0.1", ""))
	assert.Equal(t, fiber.StatusOK, get("10.0.0.1", ""))
	assert.Equal(t, fiber.StatusTooManyRequests, get("10.0.0.1, 172.16.0.1", ""))

	// Each client is limited on its own.
	assert.Equal(t, fiber.StatusOK, get("10.0.0.2", ""))
	assert.Equal(t, fiber.StatusOK, get("", "10.0.0.3"))
	assert.Equal(t, fiber.StatusOK, get("", "10.0.0.3"))
	assert.Equal(t, fiber.StatusTooManyRequests, get("", "10.0.0.3"))
}
