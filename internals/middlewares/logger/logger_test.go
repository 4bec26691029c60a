package logger

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newApp(t *testing.T, timeout time.Duration) (*fiber.App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(LoggerMiddleware(zap.New(core), timeout))
	app.Get("/ok", func(c *fiber.Ctx) error {
		_, hasDeadline := c.UserContext().Deadline()
		return c.JSON(fiber.Map{"id": RequestID(c), "deadline": hasDeadline})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	return app, logs
}

func TestGeneratesRequestID(t *testing.T) {
	app, logs := newApp(t, time.Second)
	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)

	id := resp.Header.Get(HeaderRequestID)
	assert.Len(t, id, 36)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, id, entry.ContextMap()["id"])
	assert.Equal(t, int64(200), entry.ContextMap()["status"])
}

func TestKeepsIncomingRequestID(t *testing.T) {
	app, _ := newApp(t, time.Second)
	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
}

func TestLogsHandlerErrorStatus(t *testing.T) {
	app, logs := newApp(t, 0)
	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(404), logs.All()[0].ContextMap()["status"])
}
