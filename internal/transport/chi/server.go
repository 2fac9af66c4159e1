// Package chi exposes the drafting toolkit over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain"
	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/shape"
	"github.com/Arkcutt12/Ark-ai-agent/internal/metrics"
	"github.com/Arkcutt12/Ark-ai-agent/internal/usecase/analyze"
	"github.com/Arkcutt12/Ark-ai-agent/internal/usecase/generate"
	healthuc "github.com/Arkcutt12/Ark-ai-agent/internal/usecase/health"
	"github.com/Arkcutt12/Ark-ai-agent/internal/usecase/vectorize"
	"github.com/Arkcutt12/Ark-ai-agent/internal/version"
)

// maxUploadBytes caps DXF uploads at 10 MB.
const maxUploadBytes = 10 << 20

// Error response codes.
const (
	codeBadRequest         = "bad_request"
	codeValidationFailed   = "validation_failed"
	codeInvalidFile        = "invalid_file"
	codeDraftFailed        = "draft_failed"
	codeNotImplemented     = "not_implemented"
	codeInterpreterFailure = "interpreter_unavailable"
	codeInternalError      = "internal_error"
)

// errorResponse is the JSON error payload.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Vectorizer draws text onto a DXF document.
type Vectorizer interface {
	Vectorize(ctx context.Context, text string, fontSize float64, layerName, outputPath string) (vectorize.Placement, error)
}

// Interpreter maps a free-text description to a shape interpretation.
type Interpreter interface {
	Interpret(description string) shape.Interpretation
}

// Refiner is an optional second-stage interpreter (LLM-backed).
type Refiner interface {
	Interpret(ctx context.Context, description string) (shape.Interpretation, error)
}

// Generator draws an interpreted shape onto a DXF document.
type Generator interface {
	Generate(ctx context.Context, interp shape.Interpretation, outputPath string) (generate.Result, error)
}

// Analyzer inspects an uploaded DXF stream.
type Analyzer interface {
	Analyze(ctx context.Context, r io.Reader) (analyze.Report, error)
}

// Server wires the use case services to HTTP routes.
type Server struct {
	vectorizer    Vectorizer
	interpreter   Interpreter
	refiner       Refiner
	generator     Generator
	analyzer      Analyzer
	health        *healthuc.Service
	outputDir     string
	logger        *zap.Logger
	errorHandlers []errorHandler
	now           func() time.Time
}

// NewServer creates an HTTP API server. refiner can be nil.
func NewServer(
	vectorizer Vectorizer,
	interpreter Interpreter,
	refiner Refiner,
	generator Generator,
	analyzer Analyzer,
	health *healthuc.Service,
	outputDir string,
	logger *zap.Logger,
) *Server {
	s := &Server{
		vectorizer:  vectorizer,
		interpreter: interpreter,
		refiner:     refiner,
		generator:   generator,
		analyzer:    analyzer,
		health:      health,
		outputDir:   outputDir,
		logger:      logger,
		now:         time.Now,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidFile, http.StatusBadRequest, codeInvalidFile),
		sentinelHandler(domain.ErrNotImplemented, http.StatusNotImplemented, codeNotImplemented),
		sentinelHandler(domain.ErrInterpreterUnavailable, http.StatusBadGateway, codeInterpreterFailure),
		sentinelHandler(domain.ErrDraftFailed, http.StatusInternalServerError, codeDraftFailed),
	}
	return s
}

// Routes registers all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Root)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Post("/analyze-dxf", s.AnalyzeDXF)
	r.Post("/vectorize", s.VectorizeText)
	r.Post("/generate", s.GenerateShape)
}

// Root handles GET / with API info.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    "arkcutt drafting API",
		"version": version.Version,
		"endpoints": map[string]string{
			"analyze":   "POST /analyze-dxf",
			"vectorize": "POST /vectorize",
			"generate":  "POST /generate",
			"health":    "GET /health",
		},
	})
}

type vectorizeRequest struct {
	Text     string  `json:"text"`
	FontSize float64 `json:"font_size"`
	Layer    string  `json:"layer,omitempty"`
}

type vectorizeResponse struct {
	Success   bool                `json:"success"`
	Placement vectorize.Placement `json:"placement"`
	Path      string              `json:"path"`
}

// VectorizeText handles POST /vectorize.
func (s *Server) VectorizeText(w http.ResponseWriter, r *http.Request) {
	var req vectorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	path := s.outputPath("text", req.Text)
	placement, err := s.vectorizer.Vectorize(r.Context(), req.Text, req.FontSize, req.Layer, path)
	if err != nil {
		metrics.VectorizationsTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.VectorizationsTotal.WithLabelValues("success").Inc()

	writeJSON(w, http.StatusOK, vectorizeResponse{
		Success:   true,
		Placement: placement,
		Path:      placement.Path,
	})
}

type generateRequest struct {
	Description string `json:"description"`
}

// interpretationJSON is the wire form of a shape interpretation.
type interpretationJSON struct {
	Category    shape.Category   `json:"category"`
	Type        string           `json:"type"`
	Dimensions  shape.Dimensions `json:"dimensions"`
	Style       shape.Style      `json:"style"`
	Description string           `json:"description"`
}

type generateResponse struct {
	Success        bool               `json:"success"`
	Interpretation interpretationJSON `json:"interpretation"`
	Result         generate.Result    `json:"result"`
}

// GenerateShape handles POST /generate: interpret the description,
// optionally refine it through the LLM, then draw.
func (s *Server) GenerateShape(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Description is required")
		return
	}

	interp := s.interpret(r.Context(), req.Description)

	path := s.outputPath("shape", interp.Type())
	result, err := s.generator.Generate(r.Context(), interp, path)
	if err != nil {
		metrics.ShapeGenerationsTotal.
			WithLabelValues(string(interp.Category()), interp.Type(), "error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.ShapeGenerationsTotal.
		WithLabelValues(string(interp.Category()), interp.Type(), string(result.Status)).Inc()

	writeJSON(w, http.StatusOK, generateResponse{
		Success:        true,
		Interpretation: interpretationToJSON(interp),
		Result:         result,
	})
}

// interpret runs the keyword heuristic and lets the LLM refiner
// override it when available. Refiner failures fall back silently to
// the heuristic result.
func (s *Server) interpret(ctx context.Context, description string) shape.Interpretation {
	interp := s.interpreter.Interpret(description)
	if s.refiner == nil {
		return interp
	}

	refined, err := s.refiner.Interpret(ctx, description)
	if err != nil {
		s.logger.Warn("interpreter refinement failed, using heuristic",
			zap.Error(err))
		return interp
	}
	return refined
}

type analyzeResponse struct {
	Success bool `json:"success"`
	analyze.Report
}

// AnalyzeDXF handles POST /analyze-dxf with a multipart "file" field.
func (s *Server) AnalyzeDXF(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "File field is required")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".dxf") {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "File must be a DXF")
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.AnalysisEntitiesTotal.WithLabelValues("valid").
		Add(float64(report.Statistics.ValidEntities))
	metrics.AnalysisEntitiesTotal.WithLabelValues("phantom").
		Add(float64(report.Statistics.PhantomEntities))

	writeJSON(w, http.StatusOK, analyzeResponse{Success: true, Report: report})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":  report.Status,
		"checks":  report.Checks,
		"version": version.Version,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// outputPath builds a unique file name under the output directory.
func (s *Server) outputPath(kind, hint string) string {
	name := fmt.Sprintf("%s_%s_%d.dxf", kind, slugify(hint), s.now().UnixNano())
	return filepath.Join(s.outputDir, name)
}

// slugify keeps file names shell-safe: lowercase alphanumerics and
// underscores, capped at 24 characters.
func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if b.Len() >= 24 {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "out"
	}
	return b.String()
}

func interpretationToJSON(i shape.Interpretation) interpretationJSON {
	return interpretationJSON{
		Category:    i.Category(),
		Type:        i.Type(),
		Dimensions:  i.Dimensions(),
		Style:       i.Style(),
		Description: i.Description(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidInput,
		domain.ErrInvalidFile,
		domain.ErrDraftFailed,
		domain.ErrNotImplemented,
		domain.ErrInterpreterUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
