package http

import (
	"fmt"
	stdhttp "net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/voteroom/voteroom-server/internal/config"
	"github.com/voteroom/voteroom-server/internal/core"
)

// NewServer builds the HTTP server: websocket endpoint, health check and
// metrics.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger, gatherer prometheus.Gatherer) *stdhttp.Server {
	mux := stdhttp.NewServeMux()
	mux.HandleFunc("/healthz", healthHandler)
	mux.Handle("/ws", NewWSHandler(hub, logger, cfg.ClientBuffer))
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	_, _ = fmt.Fprint(w, "ok")
}
