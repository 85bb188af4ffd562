// Package httpapi exposes one mindmapping session over HTTP for the web
// front end. The front end owns presentation; this API owns the session
// state and the round-trips to the generation service.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"mindmapai/mindweave/internal/orchestrate"
	"mindmapai/mindweave/internal/probe"
	"mindmapai/mindweave/internal/render"
	"mindmapai/mindweave/internal/session"
)

// Server serves one session to one user.
type Server struct {
	logger     *zap.Logger
	sess       *session.Session
	svc        *orchestrate.Service
	prober     *probe.Prober
	renderOpts render.Options
	validate   *validator.Validate
}

// NewServer wires the handlers around an existing session and service.
func NewServer(svc *orchestrate.Service, sess *session.Session, prober *probe.Prober, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		logger:     logger,
		sess:       sess,
		svc:        svc,
		prober:     prober,
		renderOpts: render.DefaultOptions(),
		validate:   validator.New(),
	}
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID())
	r.Use(logging(s.logger))
	r.Use(cors())

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", s.handleHealthz)

		r.Post("/mindmap", s.handleGenerate)
		r.Get("/mindmap", s.handleGetMindmap)
		r.Get("/mindmap/stats", s.handleStats)
		r.Get("/mindmap/nodes/{id}", s.handleGetNode)
		r.Post("/mindmap/example", s.handleExample)

		r.Post("/chat", s.handleChat)
		r.Get("/chat", s.handleTranscript)

		r.Get("/topic", s.handleGetTopic)
		r.Put("/topic", s.handlePutTopic)

		r.Post("/probe", s.handleProbe)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("mindweave API listening", zap.String("addr", addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
