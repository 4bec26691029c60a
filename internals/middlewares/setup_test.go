package middlewares

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"cosmo_stats_backend/internals/configs"
	"cosmo_stats_backend/internals/middlewares/logger"
)

func newSetupApp(t *testing.T) (*fiber.App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	SetupMiddlewares(app, configs.Config{
		RequestTimeout: time.Second,
		CorsOrigins:    []string{"http://localhost:5173"},
	}, zap.New(core))
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })
	app.Get("/report", func(c *fiber.Ctx) error { return c.SendString("report body") })
	return app, logs
}

func TestPanicStillGetsRequestLog(t *testing.T) {
	app, logs := newSetupApp(t)
	req := httptest.NewRequest("GET", "/panic", nil)
	req.Header.Set(logger.HeaderRequestID, "req-42")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	reqLogs := logs.FilterMessage("request").All()
	require.Len(t, reqLogs, 1)
	assert.Equal(t, "req-42", reqLogs[0].ContextMap()["id"])
	assert.Equal(t, int64(500), reqLogs[0].ContextMap()["status"])
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestNoETagOnResponses(t *testing.T) {
	app, _ := newSetupApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/report", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(fiber.HeaderETag))
}
