package httpserver

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-view/config"
	"weather-view/pkg/logger"
)

func TestInitFiberServer_LogsRequests(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewZapLogger("test-app", &buf)

	app := InitFiberServer("test-app", config.ServerConfig{ReadTimeout: 5, IdleTimeout: 5}, l)
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	requestID := resp.Header.Get(fiber.HeaderXRequestID)
	assert.Len(t, requestID, 36)

	out := buf.String()
	assert.Contains(t, out, `"msg":"handled request"`)
	assert.Contains(t, out, `"path":"/ping"`)
	assert.Contains(t, out, `"request_id":"`+requestID+`"`)
}

func TestInitFiberServer_RecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	app := InitFiberServer("test-app", config.ServerConfig{ReadTimeout: 5, IdleTimeout: 5}, logger.NewZapLogger("test-app", &buf))
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestInitFiberServer_Probes(t *testing.T) {
	app := InitFiberServer("test-app", config.ServerConfig{ReadTimeout: 5, IdleTimeout: 5}, logger.NewZapLogger("test-app", &bytes.Buffer{}))

	for _, path := range []string{"/manage/health", "/manage/ready"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}
