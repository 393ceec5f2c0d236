package catalog

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ShopCatalog/internal/docstore"
	"ShopCatalog/pkg/kit"
)

const (
	readyPingTimeout = 1 * time.Second
	dbCheckTimeout   = 2 * time.Second

	// dbz caps its collection listing to keep the diagnostic payload small.
	maxDiagCollections = 10
)

type Server struct {
	Store    docstore.Store // nil when no database is configured
	Resolver *Resolver
	Seeder   *Seeder
	Log      *zap.Logger

	// SeedLimiter, when set, rate-limits POST /api/seed per client IP.
	SeedLimiter *kit.IPRateLimiter
}

func NewServer(store docstore.Store, log *zap.Logger) *Server {
	return &Server{
		Store:    store,
		Resolver: &Resolver{Store: store, Log: log},
		Seeder:   &Seeder{Store: store, Log: log},
		Log:      log,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.handleRoot)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.handleReady)
	r.Get("/dbz", s.handleDBCheck)

	r.Get("/api/products", s.handleListProducts)
	r.Get("/api/categories", s.handleListCategories)

	if s.SeedLimiter != nil {
		r.With(s.SeedLimiter.Middleware).Post("/api/seed", s.handleSeed)
	} else {
		r.Post("/api/seed", s.handleSeed)
	}

	return r
}

type productList struct {
	Items []Product `json:"items"`
	Count int       `json:"count"`
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	items, count := s.Resolver.ListProducts(r.Context(), q.Get("category"), q.Get("q"))
	kit.WriteJSON(w, http.StatusOK, productList{Items: items, Count: count})
}

type categoryList struct {
	Items []string `json:"items"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, categoryList{Items: s.Resolver.ListCategories(r.Context())})
}

type seedResult struct {
	Inserted int `json:"inserted"`
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	inserted, err := s.Seeder.Seed(r.Context())
	if err != nil {
		if errors.Is(err, docstore.ErrNotConfigured) {
			kit.WriteError(w, r, http.StatusServiceUnavailable, "database not configured", nil)
			return
		}
		if s.Log != nil {
			s.Log.Error("seed failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, seedResult{Inserted: inserted})
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	kit.WriteMessage(w, http.StatusOK, "catalog backend running")
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	// Storeless mode serves the sample catalog and is fully functional.
	if s.Store == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		if s.Log != nil {
			s.Log.Warn("readyz failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type dbStatus struct {
	Database    string   `json:"database"`
	Collections []string `json:"collections,omitempty"`
	Error       string   `json:"error,omitempty"`
}

func (s *Server) handleDBCheck(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		kit.WriteJSON(w, http.StatusOK, dbStatus{Database: "not_configured"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbCheckTimeout)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		kit.WriteJSON(w, http.StatusOK, dbStatus{Database: "error", Error: err.Error()})
		return
	}

	cols, err := s.Store.Collections(ctx)
	if err != nil {
		kit.WriteJSON(w, http.StatusOK, dbStatus{Database: "error", Error: err.Error()})
		return
	}
	if len(cols) > maxDiagCollections {
		cols = cols[:maxDiagCollections]
	}

	kit.WriteJSON(w, http.StatusOK, dbStatus{Database: "connected", Collections: cols})
}
