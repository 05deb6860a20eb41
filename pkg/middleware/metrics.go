package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/common"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger     *logrus.Logger
	serverType string
	taskChan   chan func()
}

// NewMetricsMiddleware records request counters off the request path on a
// small worker pool.
func NewMetricsMiddleware(logger *logrus.Logger, serverType string) Middleware {
	m := &metricsMiddleware{
		logger:     logger,
		serverType: serverType,
		taskChan:   make(chan func(), 1000),
	}
	m.startWorkers(2)
	return m
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, ok := c.Locals(common.LatencyContextKey).(time.Time)
		if !ok {
			start = time.Now()
		}

		err := c.Next()

		elapsed := time.Since(start)
		method := strings.Clone(c.Method())
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path

		m.enqueueTask(func() {
			prometheus.RequestTotal.WithLabelValues(m.serverType, method, strconv.Itoa(status)).Inc()
			if prometheus.Config.EnableLatency {
				prometheus.RequestLatency.WithLabelValues(m.serverType, route).
					Observe(float64(elapsed.Microseconds()) / 1000)
			}
		})
		return err
	}
}

func (m *metricsMiddleware) startWorkers(n int) {
	for i := 0; i < n; i++ {
		go func() {
			for task := range m.taskChan {
				task()
			}
		}()
	}
}

func (m *metricsMiddleware) enqueueTask(task func()) {
	select {
	case m.taskChan <- task:
	default:
		m.logger.Warn("metrics task queue full, dropping sample")
	}
}
