package profiling

import (
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/savthe/prediction-confidence/internal"
	"github.com/savthe/prediction-confidence/internal/config"
)

// Server exposes pprof on a dedicated port, away from the public API.
type Server struct {
	cfg config.ProfilingConfig
	log *internal.Logger
}

// NewServer creates a profiling server from configuration.
func NewServer(cfg config.ProfilingConfig) *Server {
	return &Server{cfg: cfg, log: internal.NewLogger("profiling")}
}

// Start serves pprof in a background goroutine when profiling is enabled.
func (s *Server) Start() {
	if !s.cfg.Enabled {
		s.log.Debug("profiling disabled")
		return
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/debug/pprof/", pprof.Index)
	r.Get("/debug/pprof/cmdline", pprof.Cmdline)
	r.Get("/debug/pprof/profile", pprof.Profile)
	r.Get("/debug/pprof/symbol", pprof.Symbol)
	r.Get("/debug/pprof/trace", pprof.Trace)
	r.Handle("/debug/pprof/*", http.HandlerFunc(pprof.Index))
	r.Get("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		addr := ":" + s.cfg.Port
		s.log.Info("profiling server listening on %s", addr)
		if err := http.ListenAndServe(addr, r); err != nil {
			s.log.Error("profiling server stopped: %v", err)
		}
	}()
}
