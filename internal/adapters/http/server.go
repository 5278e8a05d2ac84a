// Package http exposes the engine and session manager over a JSON REST
// API. Expected failures (rejected answers, missing required fields) are
// reported as ok:false payloads with status 200; only unknown resources
// and malformed requests map to error statuses.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	_ "embed"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quillon/quillon"
	"github.com/quillon/quillon/internal/logging"
	"github.com/quillon/quillon/pkg/domain"
	"github.com/quillon/quillon/pkg/session"
)

//go:embed openapi.yaml
var openapiSpec []byte

// Server wires the engine and the session manager into HTTP handlers.
type Server struct {
	engine   *quillon.Engine
	sessions *session.Manager
	logger   *slog.Logger
	metrics  *metrics
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler builds the full HTTP handler: API routes, OpenAPI document,
// Swagger UI, health and Prometheus metrics endpoints.
func NewHandler(engine *quillon.Engine, sessions *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		engine:   engine,
		sessions: sessions,
		logger:   logging.NewNop(),
		metrics:  newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.metrics.middleware)

	r.Get("/health", s.health)
	r.Get("/info", s.info)
	r.Handle("/metrics", s.metrics.handler())

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	r.Route("/documents", func(r chi.Router) {
		r.Get("/", s.listDocuments)
		r.Get("/{documentID}", s.getDocument)
		r.Post("/{documentID}/next", s.nextQuestion)
		r.Post("/{documentID}/validate", s.validateAnswer)
		r.Post("/{documentID}/progress", s.progress)
		r.Post("/{documentID}/generate", s.generateDocument)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.createSession)
		r.Get("/", s.listSessions)
		r.Get("/{sessionID}", s.getSession)
		r.Delete("/{sessionID}", s.deleteSession)
		r.Put("/{sessionID}/answers", s.putAnswer)
		r.Post("/{sessionID}/generate", s.generateFromSession)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Quillon API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// -- Request/response shapes --

type answersRequest struct {
	Answers map[string]any `json:"answers"`
}

type answerRequest struct {
	QuestionID string `json:"question_id"`
	Value      any    `json:"value"`
}

type validationResponse struct {
	OK        bool   `json:"ok"`
	Value     string `json:"value,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
	Message   string `json:"message,omitempty"`
}

type nextResponse struct {
	Question       *domain.Question `json:"question"`
	Done           bool             `json:"done"`
	CompletionRate int              `json:"completion_rate"`
}

type generateResponse struct {
	OK            bool     `json:"ok"`
	Document      string   `json:"document,omitempty"`
	MissingFields []string `json:"missing_fields,omitempty"`
	MissingLabels []string `json:"missing_labels,omitempty"`
}

type sessionResponse struct {
	*domain.Session
	CompletionRate int `json:"completion_rate"`
}

// -- Handlers --

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) info(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"name":      "quillon",
		"version":   quillon.Version,
		"templates": len(s.engine.ListDocuments()),
	})
}

func (s *Server) listDocuments(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.ListDocuments())
}

func (s *Server) getDocument(w http.ResponseWriter, r *http.Request) {
	tpl, err := s.engine.GetTemplate(chi.URLParam(r, "documentID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tpl)
}

func (s *Server) nextQuestion(w http.ResponseWriter, r *http.Request) {
	var body answersRequest
	if !s.decode(w, r, &body) {
		return
	}

	documentID := chi.URLParam(r, "documentID")
	answers := domain.AnswersFromAny(body.Answers)

	q, err := s.engine.NextQuestion(documentID, answers)
	if err != nil {
		s.writeError(w, err)
		return
	}
	rate, err := s.engine.CompletionRate(documentID, answers)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, nextResponse{Question: q, Done: q == nil, CompletionRate: rate})
}

func (s *Server) validateAnswer(w http.ResponseWriter, r *http.Request) {
	var body answerRequest
	if !s.decode(w, r, &body) {
		return
	}

	value, err := s.engine.ValidateAnswer(chi.URLParam(r, "documentID"), body.QuestionID, body.Value)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			s.writeJSON(w, http.StatusOK, validationResponse{OK: false, ErrorCode: verr.Code, Message: verr.Message})
			return
		}
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, validationResponse{OK: true, Value: value})
}

func (s *Server) progress(w http.ResponseWriter, r *http.Request) {
	var body answersRequest
	if !s.decode(w, r, &body) {
		return
	}

	rate, err := s.engine.CompletionRate(chi.URLParam(r, "documentID"), domain.AnswersFromAny(body.Answers))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"completion_rate": rate})
}

func (s *Server) generateDocument(w http.ResponseWriter, r *http.Request) {
	var body answersRequest
	if !s.decode(w, r, &body) {
		return
	}
	s.generate(w, chi.URLParam(r, "documentID"), domain.AnswersFromAny(body.Answers))
}

func (s *Server) generate(w http.ResponseWriter, documentID string, answers domain.Answers) {
	doc, err := s.engine.Generate(documentID, answers)
	if err != nil {
		var missing *domain.MissingFieldsError
		if errors.As(err, &missing) {
			s.writeJSON(w, http.StatusOK, generateResponse{
				OK:            false,
				MissingFields: missing.Fields,
				MissingLabels: missing.Labels,
			})
			return
		}
		s.writeError(w, err)
		return
	}

	s.metrics.generated.WithLabelValues(documentID).Inc()
	s.writeJSON(w, http.StatusOK, generateResponse{OK: true, Document: doc})
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DocumentID string `json:"document_id"`
	}
	if !s.decode(w, r, &body) {
		return
	}

	// Reject unknown templates before reserving a session ID.
	if _, err := s.engine.GetTemplate(body.DocumentID); err != nil {
		s.writeError(w, err)
		return
	}

	sess, err := s.sessions.LoadOrCreate(r.Context(), uuid.NewString(), body.DocumentID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("session created", "session_id", sess.ID, "template", body.DocumentID)
	s.writeJSON(w, http.StatusCreated, sessionResponse{Session: sess})
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.sessions.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"sessions": ids})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Load(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	rate, err := s.engine.CompletionRate(sess.DocumentID, sess.Answers)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{Session: sess, CompletionRate: rate})
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// putAnswer validates one answer and, when accepted, stores it in the
// session and reports the next question. The whole read-modify-write
// runs under the session lock, so concurrent submissions on one session
// serialize instead of overwriting each other's snapshots; the store is
// accessed directly inside because Manager.Load/Save each take the same
// lock.
func (s *Server) putAnswer(w http.ResponseWriter, r *http.Request) {
	var body answerRequest
	if !s.decode(w, r, &body) {
		return
	}

	sessionID := chi.URLParam(r, "sessionID")

	var (
		sess     *domain.Session
		value    string
		rejected *domain.ValidationError
	)
	err := s.sessions.WithLock(r.Context(), sessionID, func(ctx context.Context) error {
		loaded, err := s.sessions.Store().Load(ctx, sessionID)
		if err != nil {
			return err
		}

		v, err := s.engine.ValidateAnswer(loaded.DocumentID, body.QuestionID, body.Value)
		if err != nil {
			if errors.As(err, &rejected) {
				return nil
			}
			return err
		}

		loaded.Answers[body.QuestionID] = v
		loaded.UpdatedAt = time.Now().UTC()
		if err := s.sessions.Store().Save(ctx, loaded); err != nil {
			return err
		}

		sess = loaded
		value = v
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	if rejected != nil {
		s.writeJSON(w, http.StatusOK, validationResponse{OK: false, ErrorCode: rejected.Code, Message: rejected.Message})
		return
	}

	q, err := s.engine.NextQuestion(sess.DocumentID, sess.Answers)
	if err != nil {
		s.writeError(w, err)
		return
	}
	rate, err := s.engine.CompletionRate(sess.DocumentID, sess.Answers)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, struct {
		validationResponse
		Question       *domain.Question `json:"question"`
		Done           bool             `json:"done"`
		CompletionRate int              `json:"completion_rate"`
	}{
		validationResponse: validationResponse{OK: true, Value: value},
		Question:           q,
		Done:               q == nil,
		CompletionRate:     rate,
	})
}

func (s *Server) generateFromSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Load(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.generate(w, sess.DocumentID, sess.Answers)
}

// -- Helpers --

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.logger.Warn("invalid request body", "path", r.URL.Path, "err", err)
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrTemplateNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrQuestionNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
