package server

import (
	"github.com/NeuralTrust/TrustGuard/pkg/config"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustGuard/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	// APIServer exposes the moderation API on server.port.
	APIServer struct {
		*BaseServer
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	initializeMetrics(di.Config)
	s := &APIServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
	s.BaseServer.setupMetricsEndpoint()
	return s
}

func (s *APIServer) Run() error {
	return s.listen("api", s.Config.Server.Port)
}

func (s *APIServer) Shutdown() error {
	return s.Router.Shutdown()
}

func initializeMetrics(cfg *config.Config) {
	if !cfg.Metrics.Enabled {
		return
	}
	prometheus.Initialize(prometheus.MetricsConfig{
		EnableLatency: cfg.Metrics.EnableLatency,
		EnableLabels:  cfg.Metrics.EnableLabels,
	})
}
