package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/karimzidan/devatlas/internal/config"
	"github.com/karimzidan/devatlas/internal/conjugation"
	"github.com/karimzidan/devatlas/internal/content"
	"github.com/karimzidan/devatlas/internal/prefs"
	"github.com/karimzidan/devatlas/internal/render"
	"github.com/karimzidan/devatlas/internal/search"
	"github.com/karimzidan/devatlas/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteName string
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server serves the catalog live: pages rendered per request, selection
// state carried in query parameters, JSON APIs for search, preferences
// and saved verbs.
type Server struct {
	cfg        Config
	store      *content.Store
	renderer   *render.Renderer
	shell      *site.Shell
	index      *search.Index
	prefs      *prefs.Store
	verbs      *conjugation.Store
	lookuper   conjugation.Lookuper
	router     chi.Router
	httpServer *http.Server
}

// New wires the server from its dependencies.
func New(cfg Config, store *content.Store, prefStore *prefs.Store, verbStore *conjugation.Store, lookuper conjugation.Lookuper) *Server {
	s := &Server{
		cfg:      cfg,
		store:    store,
		renderer: render.New(),
		shell:    site.NewShell(cfg.SiteName),
		index:    search.FromCatalog(),
		prefs:    prefStore,
		verbs:    verbStore,
		lookuper: lookuper,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(s.recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/api/search", s.handleSearch)
	prefs.RegisterRoutes(r, s.prefs)
	conjugation.RegisterRoutes(r, s.verbs, s.lookuper)

	r.Get("/", s.handleHome)

	// Interactive pages come before the generic topic route so their
	// paths are never treated as plain documents.
	r.Get("/german/cases", s.handleCases)
	r.Get("/german/adjectives", s.handleAdjectives)
	r.Get("/french/vocabulary", s.handleVocabulary)
	r.Get("/french/verbs", s.handleVerbsPage)
	r.Post("/french/verbs", s.handleVerbLookupForm)
	r.Post("/french/verbs/remove", s.handleVerbRemoveForm)
	r.Get("/process/scrum", s.handleBrowse("/process/scrum"))
	r.Get("/architecture/review", s.handleBrowse("/architecture/review"))

	r.Get("/{section}/{topic}", s.handleTopic)
	r.NotFound(s.handleNotFound)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("devatlas server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// recoverer turns a panic into the same error page a bad URL gets,
// instead of a blank 500. The sidebar stays usable so the reader can
// navigate away.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s: %v", r.URL.Path, rec)
				s.renderError(w, r, http.StatusInternalServerError, fmt.Errorf("internal error: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// lang resolves the language for a page: the stored preference,
// overridden (and persisted) by an explicit ?lang= parameter.
func (s *Server) lang(r *http.Request, page string) config.Lang {
	if q := r.URL.Query().Get("lang"); q != "" {
		l := config.Lang(q)
		if err := s.prefs.SetLang(r.Context(), page, l); err == nil {
			return l
		}
	}
	l, err := s.prefs.Lang(r.Context(), page)
	if err != nil {
		return config.LangEnglish
	}
	return l
}
