package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/staffboard/attestation-dashboard/internal/interfaces/http"
	"github.com/staffboard/attestation-dashboard/pkg/logger"
)

func buildLoggingApp(buf *bytes.Buffer, handler fiber.Handler) *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "info", Writer: buf})
	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/ping", handler)
	return app
}

func TestRequestLogger_OneLinePerRequest(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggingApp(&buf, func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	line := buf.String()
	assert.Contains(t, line, `"method":"GET"`)
	assert.Contains(t, line, `"path":"/ping"`)
	assert.Contains(t, line, `"status":200`)
	assert.Contains(t, line, "request handled")
}

func TestRequestLogger_ScopedLoggerInLocals(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggingApp(&buf, func(c *fiber.Ctx) error {
		log := apphttp.GetLogger(c)
		require.NotNil(t, log, "handlers see the request-scoped logger")
		log.Info().Msg("inside handler")
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	// The handler's own line carries the request fields from the sublogger
	assert.Contains(t, buf.String(), "inside handler")
	assert.GreaterOrEqual(t, bytes.Count(buf.Bytes(), []byte(`"path":"/ping"`)), 2)
}

func TestGetLogger_NilWithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/bare", func(c *fiber.Ctx) error {
		assert.Nil(t, apphttp.GetLogger(c))
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bare", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
}
