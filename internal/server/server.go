// Package server exposes the evaluation and cheating pipelines over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	m "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/spigell/hh-evaluator/internal/ai"
	"github.com/spigell/hh-evaluator/internal/cheating"
	"github.com/spigell/hh-evaluator/internal/evaluation"
	"github.com/spigell/hh-evaluator/internal/logger"
)

const (
	defaultRequestTimeout = 2 * time.Minute
	maxBodyBytes          = 4 << 20
)

type Evaluator interface {
	Evaluate(ctx context.Context, input evaluation.Input, opts evaluation.Options) (*evaluation.Result, error)
}

type CheatingAnalyzer interface {
	AnalyzeRequest(ctx context.Context, requestID, transcript, jobDescription string) (*cheating.Analysis, error)
}

type Config struct {
	Listen         string
	RequestTimeout time.Duration
	Model          string
}

type Server struct {
	evaluator Evaluator
	analyzer  CheatingAnalyzer
	validate  *validator.Validate
	logger    *zap.Logger
	timeout   time.Duration
	model     string
	listen    string
}

func New(evaluator Evaluator, analyzer CheatingAnalyzer, log *zap.Logger, cfg Config) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Server{
		evaluator: evaluator,
		analyzer:  analyzer,
		validate:  validator.New(),
		logger:    log,
		timeout:   timeout,
		model:     cfg.Model,
		listen:    cfg.Listen,
	}
}

// HTTPServer wraps the router into an http.Server listening on Config.Listen.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.listen,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(m.RealIP, requestID, s.accessLog, m.Recoverer)

	r.Get("/healthz", s.health)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/evaluations", s.evaluate)
		r.Post("/cheating-analyses", s.analyzeCheating)
	})

	return r
}

type cheatingRequest struct {
	Transcript     string `json:"transcript" validate:"required,max=500000"`
	JobDescription string `json:"jobDescription" validate:"max=100000"`
}

type errResp struct {
	Error     string       `json:"error"`
	Fields    []fieldError `json:"fields,omitempty"`
	RequestID string       `json:"requestId,omitempty"`
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "model": s.model})
}

func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluation.Request
	if !s.decode(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	id := RequestID(r.Context())
	result, err := s.evaluator.Evaluate(ctx, req.Input(), req.Options(id))
	if err != nil {
		s.writeError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) analyzeCheating(w http.ResponseWriter, r *http.Request) {
	var req cheatingRequest
	if !s.decode(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	id := RequestID(r.Context())
	analysis, err := s.analyzer.AnalyzeRequest(ctx, id, req.Transcript, req.JobDescription)
	if err != nil {
		s.writeError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// decode reads and validates the body; on failure the response is already written.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	id := RequestID(r.Context())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid json: " + err.Error(), RequestID: id})
		return false
	}

	if err := s.validate.Struct(target); err != nil {
		resp := errResp{Error: "invalid request", RequestID: id}
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fe := range validationErrs {
				resp.Fields = append(resp.Fields, fieldError{Field: fe.Field(), Rule: fe.Tag()})
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return false
	}

	return true
}

func (s *Server) writeError(w http.ResponseWriter, id string, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code = http.StatusGatewayTimeout
	case errors.Is(err, ai.ErrModelCall):
		code = http.StatusBadGateway
	}

	s.logger.Warn("request failed",
		zap.String(logger.FieldRequestID, id),
		zap.Int("status", code),
		zap.Error(err),
	)
	writeJSON(w, code, errResp{Error: err.Error(), RequestID: id})
}
