// Package api exposes the projection engine and saved calculations over HTTP
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/store"
	"golang.org/x/time/rate"
)

// maxBodyBytes caps request bodies; calculation envelopes are tiny
const maxBodyBytes = 1 << 20

// Server wires the engine and an optional store to HTTP handlers
type Server struct {
	Engine  *calculation.Engine
	Store   store.Store
	Logger  calculation.Logger
	limiter *rate.Limiter
}

// NewServer creates a server allowing limit requests per second with the given burst.
// A nil store disables the /calculations routes.
func NewServer(engine *calculation.Engine, st store.Store, logger calculation.Logger, limit float64, burst int) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{
		Engine:  engine,
		Store:   st,
		Logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(limit), burst),
	}
}

// Router builds the chi router
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(s.rateLimit)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/calculators", s.handleCalculators)
		r.Post("/calculate", s.handleCalculate)

		if s.Store != nil {
			r.Get("/calculations", s.handleList)
			r.Post("/calculations", s.handleSave)
			r.Delete("/calculations", s.handleClear)
			r.Get("/calculations/{id}", s.handleGet)
			r.Delete("/calculations/{id}", s.handleDelete)
		}
	})
	return r
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			s.Logger.Warnf("rate limit exceeded: %s %s", r.Method, r.URL.Path)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.Logger.Infof("%s %s %d %s [%s]", r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Microsecond), middleware.GetReqID(r.Context()))
	})
}

// ListenAndServe serves the router on addr
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.Logger.Infof("listening on %s", addr)
	return srv.ListenAndServe()
}
