// Package server implements the HTTP naming service
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nainya/lexname/internal/logger"
	"github.com/nainya/lexname/internal/metrics"
	"github.com/nainya/lexname/pkg/codes"
	"github.com/nainya/lexname/pkg/document"
	"github.com/nainya/lexname/pkg/filename"
	"github.com/nainya/lexname/pkg/registry"
	"github.com/nainya/lexname/pkg/sequence"
)

// Config wires the server's collaborators.
type Config struct {
	Port      int
	Assembler *filename.Assembler
	Registry  *registry.Store
	Sequences *sequence.Generator
	Taxonomy  *codes.Taxonomy
	Metrics   *metrics.Metrics
	Log       *logger.Logger
}

// Server serves the JSON naming API.
type Server struct {
	assembler *filename.Assembler
	registry  *registry.Store
	sequences *sequence.Generator
	taxonomy  *codes.Taxonomy
	metrics   *metrics.Metrics
	log       *logger.Logger
	http      *http.Server
}

// NewServer creates the API server.
func NewServer(cfg Config) *Server {
	s := &Server{
		assembler: cfg.Assembler,
		registry:  cfg.Registry,
		sequences: cfg.Sequences,
		taxonomy:  cfg.Taxonomy,
		metrics:   cfg.Metrics,
		log:       cfg.Log,
	}
	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Router builds the chi route tree. Exposed for tests.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/filenames", s.handleGenerate)
		r.Get("/filenames/{name}", s.handleParse)
		r.Get("/filenames/{name}/validate", s.handleValidate)

		r.Get("/registry", s.handleRegistryList)
		r.Get("/registry/{gid}", s.handleRegistryGet)

		r.Get("/sequences/yearly", s.handleYearlyPeek)
	})
	return r
}

// Start serves until Shutdown or listener failure.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("naming server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.LogServerShutdown()
	return s.http.Shutdown(ctx)
}

// statusWriter captures the response status for metrics and logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.metrics.HTTPRequestsInFlight.Inc()
		defer s.metrics.HTTPRequestsInFlight.Dec()

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		duration := time.Since(start)
		s.metrics.RecordHTTPRequest(route, strconv.Itoa(ww.status), duration)
		s.log.LogHTTPRequest(r.Method, r.URL.Path, ww.status, duration)
	})
}

type generateResponse struct {
	Filename   string               `json:"filename"`
	FolderHint string               `json:"folder_hint"`
	Components *filename.Components `json:"components"`
}

type parseResponse struct {
	Filename   string               `json:"filename"`
	FolderHint string               `json:"folder_hint"`
	Components *filename.Components `json:"components"`
}

type validateResponse struct {
	Valid      bool                 `json:"valid"`
	Errors     []string             `json:"errors,omitempty"`
	Components *filename.Components `json:"components,omitempty"`
}

type listResponse struct {
	Count   int                `json:"count"`
	Records []*registry.Record `json:"records"`
}

type yearlyResponse struct {
	Country  string `json:"country"`
	Category string `json:"category"`
	Year     int    `json:"year"`
	Current  uint64 `json:"current"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var meta document.Metadata
	if err := json.NewDecoder(r.Body).Decode(&meta); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid metadata payload: %v", err))
		return
	}

	name, comps, err := s.assembler.Generate(&meta)
	if err != nil {
		s.metrics.SequenceErrorsTotal.Inc()
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("generate filename: %v", err))
		return
	}
	s.metrics.FilenamesGeneratedTotal.Inc()
	if comps.DocType == string(codes.DocCase) && meta.Citation != "" {
		_, reversible := filename.Resolve(comps)
		s.metrics.RecordCitationEncode(reversible)
	}

	hint := filename.FolderHint(comps)
	rec := &registry.Record{
		GlobalID:   comps.GlobalID,
		Filename:   name,
		FolderHint: hint,
		Components: comps,
	}
	if err := s.registry.Put(rec); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("register filename: %v", err))
		return
	}
	s.metrics.RegistryWritesTotal.Inc()
	s.metrics.RegistryRecordsTotal.Inc()

	writeJSON(w, http.StatusCreated, generateResponse{
		Filename:   name,
		FolderHint: hint,
		Components: comps,
	})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	c, ok := filename.Parse(name)
	s.metrics.RecordParse(ok)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("filename does not match naming grammar: %s", name))
		return
	}

	writeJSON(w, http.StatusOK, parseResponse{
		Filename:   name,
		FolderHint: filename.FolderHint(c),
		Components: c,
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	c, errs := filename.ValidateAndParse(name, s.taxonomy)
	s.metrics.RecordParse(c != nil)

	writeJSON(w, http.StatusOK, validateResponse{
		Valid:      c != nil && len(errs) == 0,
		Errors:     errs,
		Components: c,
	})
}

func (s *Server) handleRegistryGet(w http.ResponseWriter, r *http.Request) {
	gid := chi.URLParam(r, "gid")

	rec, err := s.registry.Get(gid)
	if errors.Is(err, registry.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no record for global ID %s", gid))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleRegistryList(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	yearStr := r.URL.Query().Get("year")
	if country == "" || yearStr == "" {
		writeError(w, http.StatusBadRequest, "country and year query parameters are required")
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid year: %s", yearStr))
		return
	}

	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit: %s", v))
			return
		}
	}

	recs, err := s.registry.ListByCountryYear(codes.NormalizeCountry(country), year, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if recs == nil {
		recs = []*registry.Record{}
	}
	writeJSON(w, http.StatusOK, listResponse{Count: len(recs), Records: recs})
}

func (s *Server) handleYearlyPeek(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	country := codes.NormalizeCountry(q.Get("country"))
	category := string(codes.NormalizeDocType(q.Get("category")))
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid year: %s", q.Get("year")))
		return
	}

	current, err := s.sequences.CurrentYearly(country, category, year)
	if err != nil {
		s.metrics.SequenceErrorsTotal.Inc()
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, yearlyResponse{
		Country:  country,
		Category: category,
		Year:     year,
		Current:  current,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
