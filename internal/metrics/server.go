package metrics

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/rub-converter/internal/logger"
)

const metricsPath = "/metrics"

type Server struct {
	server *http.Server
}

func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.Handler())
	return &Server{server: &http.Server{Addr: addr, Handler: mux}}
}

func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Serve blocks until Shutdown is called or the listener fails.
func (s *Server) Serve() {
	logger.Info("metrics server listening", zap.String("addr", s.server.Addr))
	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to serve metrics", zap.Error(err))
	}
}

func (s *Server) Shutdown(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil {
		logger.Error("failed to stop metrics server", zap.Error(err))
		return
	}
	logger.Info("metrics server stopped")
}
