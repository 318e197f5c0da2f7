// Package offerserver serves the Offers Service REST contract from an
// in-memory store, for running the console without the real backend.
package offerserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"offeradmin/internal/logger"
	"offeradmin/internal/offer"
	"offeradmin/internal/offerstore"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultAddr matches the console's default Offers Service URL.
const DefaultAddr = ":3000"

// Server exposes a Store over HTTP.
type Server struct {
	store  *offerstore.Store
	log    *logger.Logger
	router chi.Router
	server *http.Server
}

// NewServer creates a server for store listening on addr.
func NewServer(store *offerstore.Store, addr string, log *logger.Logger) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	if log == nil {
		log = logger.Discard()
	}
	s := &Server{store: store, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	s.RegisterRoutes(r)
	s.router = r

	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// RegisterRoutes mounts the /offers collection on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/offers", func(r chi.Router) {
		r.Get("/", s.listOffers)
		r.Post("/", s.createOffer)
		r.Get("/{id}", s.getOffer)
		r.Put("/{id}", s.updateOffer)
		r.Delete("/{id}", s.deleteOffer)
	})
}

// Handler returns the HTTP handler (for tests and embedding).
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe blocks until the server stops. It returns nil after Shutdown.
func (s *Server) ListenAndServe() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) listOffers(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.store.List())
}

func (s *Server) getOffer(w http.ResponseWriter, r *http.Request) {
	o, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	respond(w, http.StatusOK, o)
}

func (s *Server) createOffer(w http.ResponseWriter, r *http.Request) {
	d, ok := decodeDraft(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusCreated, s.store.Create(d))
}

func (s *Server) updateOffer(w http.ResponseWriter, r *http.Request) {
	d, ok := decodeDraft(w, r)
	if !ok {
		return
	}
	o, err := s.store.Update(chi.URLParam(r, "id"), d)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	respond(w, http.StatusOK, o)
}

func (s *Server) deleteOffer(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// requestLogger logs one line per request with status and latency.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		latency := float64(time.Since(start).Microseconds()) / 1000
		s.log.HTTPRequest(r.Method, r.URL.Path, status, latency, middleware.GetReqID(r.Context()))
	})
}

func decodeDraft(w http.ResponseWriter, r *http.Request) (offer.Draft, bool) {
	var d offer.Draft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return offer.Draft{}, false
	}
	return d, true
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respond(w, status, map[string]string{"message": err.Error()})
}
