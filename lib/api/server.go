package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/maksimkurb/keen-netconf/lib/log"
	"github.com/maksimkurb/keen-netconf/lib/opdata"
)

// Server is the read-only status API of the daemon, plus one endpoint to
// trigger a reconciliation cycle by hand.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	reconciler Reconciler
	provider   *opdata.Provider
}

func NewServer(bindAddr string, rec Reconciler, provider *opdata.Provider) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		reconciler: rec,
		provider:   provider,
	}

	s.router.Use(RecoveryMiddleware)
	s.router.Use(LoggingMiddleware)

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         bindAddr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/interfaces", func(r chi.Router) {
			r.Get("/", HandleInterfacesList(s.reconciler))
			r.Get("/{name}", HandleInterfacesGet(s.reconciler))
			r.Get("/{name}/state", HandleInterfaceState(s.provider, "interface"))
			r.Get("/{name}/statistics", HandleInterfaceState(s.provider, "statistics"))
		})

		r.Get("/neighbors", HandleNeighborsList())
		r.Post("/apply", HandleApply(s.reconciler))
	})

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// Start starts the HTTP server and blocks until it is shut down
func (s *Server) Start() error {
	log.Infof("[API] Status API listening on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("[API] Shutting down status API...")
	return s.httpServer.Shutdown(ctx)
}
