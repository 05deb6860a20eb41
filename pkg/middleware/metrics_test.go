package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustGuard/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewMetricsMiddleware(quietLogger(), "metrics_test").Middleware())
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	counter := prometheus.RequestTotal.WithLabelValues("metrics_test", "GET", "200")
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(counter) == 1
	}, time.Second, 10*time.Millisecond)
}
