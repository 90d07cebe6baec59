// Package api exposes the wardrobe and outfit suggestion engine over
// HTTP as a small JSON REST API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/jmylchreest/sartor/internal/storage"
	"github.com/jmylchreest/sartor/internal/suggest"
)

// Options tunes server behaviour.
type Options struct {
	// DefaultCount is the number of suggestions returned when a request
	// does not ask for a specific count.
	DefaultCount int

	// Attempts bounds the sampling loop of each suggestion request.
	Attempts int
}

// Server serves the REST API backed by a storage.Store.
type Server struct {
	store        *storage.Store
	log          *zap.Logger
	suggestCfg   suggest.Config
	defaultCount int
}

// NewServer creates a Server. A nil logger disables request logging.
func NewServer(store *storage.Store, log *zap.Logger, opts Options) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := suggest.DefaultConfig()
	if opts.Attempts > 0 {
		cfg.Attempts = opts.Attempts
	}
	count := opts.DefaultCount
	if count <= 0 {
		count = 3
	}
	return &Server{
		store:        store,
		log:          log,
		suggestCfg:   cfg,
		defaultCount: count,
	}
}

// Handler builds the routing table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.log))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", s.handleListItems)
			r.Post("/", s.handleCreateItem)
			r.Delete("/{id}", s.handleDeleteItem)
		})

		r.Post("/suggestions", s.handleSuggest)

		r.Route("/outfits", func(r chi.Router) {
			r.Get("/", s.handleListOutfits)
			r.Post("/", s.handleSaveOutfit)
			r.Delete("/{id}", s.handleDeleteOutfit)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("encoding response failed", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
