package server

import (
	"github.com/NeuralTrust/TrustGuard/pkg/config"
	"github.com/NeuralTrust/TrustGuard/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	BoardServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	// BoardServer serves the comment board on server.board_port.
	BoardServer struct {
		*BaseServer
	}
)

func NewBoardServer(di BoardServerDI) *BoardServer {
	initializeMetrics(di.Config)
	s := &BoardServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
	s.BaseServer.setupMetricsEndpoint()
	return s
}

func (s *BoardServer) Run() error {
	return s.listen("board", s.Config.Server.BoardPort)
}

func (s *BoardServer) Shutdown() error {
	return s.Router.Shutdown()
}
