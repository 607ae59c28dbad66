package localfetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matforge/matforge/pkg/material"
)

// Server serves a directory of exported assets over the service API. It
// stands in for the editor-side exporter during development and in tests:
// an asset path /Game/A/B.B maps onto <dir>/Game/A/B.json, with an optional
// B.bin or B.png sidecar as the raw payload.
type Server struct {
	Dir    string
	Logger *log.Logger
}

// NewServer creates a server over an export directory.
func NewServer(dir string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{Dir: dir, Logger: logger}
}

// Routes builds the service router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/api/v1/export", s.handleExport)
	return r
}

// Serve runs the service on addr until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Routes()}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.Logger.Info("serving exports", "addr", addr, "dir", s.Dir)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleExport(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "missing path parameter", http.StatusBadRequest)
		return
	}
	base, ok := s.assetFile(path)
	if !ok {
		http.Error(w, "invalid path", http.StatusBadRequest)
		return
	}

	if req.URL.Query().Get("raw") == "true" {
		data, err := os.ReadFile(base + ".json")
		if err != nil {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	for _, ext := range []string{".bin", ".png"} {
		data, err := os.ReadFile(base + ext)
		if err != nil {
			continue
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(data)
		return
	}
	http.NotFound(w, req)
}

// assetFile maps an asset path onto its extension-less file base inside the
// export directory. Paths escaping the directory are rejected.
func (s *Server) assetFile(path string) (string, bool) {
	short := strings.TrimPrefix(material.ShortPath(path), "/")
	if short == "" || strings.Contains(short, "..") {
		return "", false
	}
	return filepath.Join(s.Dir, filepath.FromSlash(short)), true
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, req)
		s.Logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"query", req.URL.RawQuery,
			"duration", time.Since(start))
	})
}
