package quillon

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/quillon/quillon/internal/runtime"
	"github.com/quillon/quillon/internal/templates"
	"github.com/quillon/quillon/pkg/domain"
	"github.com/quillon/quillon/pkg/registry"
)

// Engine is the high-level entry point of the library: a validated template
// catalogue plus the question/answer operations over it. An Engine is
// immutable after construction and safe for concurrent use; all answer
// state lives with the caller (or in a session store).
type Engine struct {
	registry *registry.Registry
	logger   *slog.Logger

	extra []domain.Template
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithRegistry injects a pre-built registry, bypassing the built-in set.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithTemplates appends templates to the built-in catalogue.
func WithTemplates(tpls ...domain.Template) Option {
	return func(e *Engine) {
		e.extra = append(e.extra, tpls...)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes an Engine. By default it serves the built-in French
// document catalogue; WithTemplates adds to it, WithRegistry replaces it.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.registry == nil {
		set := append(templates.Builtin(), eng.extra...)
		r, err := registry.New(set...)
		if err != nil {
			return nil, fmt.Errorf("build registry: %w", err)
		}
		eng.registry = r
	} else if len(eng.extra) > 0 {
		return nil, fmt.Errorf("WithTemplates cannot be combined with WithRegistry")
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return eng, nil
}

// ListDocuments returns the catalogue summaries in registration order.
func (e *Engine) ListDocuments() []domain.Summary {
	return e.registry.List()
}

// GetTemplate returns the full definition of one template.
func (e *Engine) GetTemplate(documentID string) (*domain.Template, error) {
	tpl, ok := e.registry.Get(documentID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, documentID)
	}
	return tpl, nil
}

// NextQuestion returns the first eligible unanswered question of the
// template, or nil when the questionnaire is complete.
func (e *Engine) NextQuestion(documentID string, answers domain.Answers) (*domain.Question, error) {
	tpl, err := e.GetTemplate(documentID)
	if err != nil {
		return nil, err
	}
	return runtime.NextQuestion(tpl, answers), nil
}

// ValidateAnswer checks a proposed answer against its question and returns
// the canonical string form to store. A rejected answer yields a
// *domain.ValidationError; anything else is a hard failure.
func (e *Engine) ValidateAnswer(documentID, questionID string, value any) (string, error) {
	tpl, err := e.GetTemplate(documentID)
	if err != nil {
		return "", err
	}
	q := tpl.Question(questionID)
	if q == nil {
		return "", fmt.Errorf("%w: %q in template %q", domain.ErrQuestionNotFound, questionID, documentID)
	}
	canonical, err := runtime.ValidateAnswer(q, value)
	if err != nil {
		e.logger.Debug("answer rejected", "template", documentID, "question", questionID, "err", err)
		return "", err
	}
	return canonical, nil
}

// CompletionRate reports questionnaire progress as a percentage in [0,100],
// counting only currently eligible questions.
func (e *Engine) CompletionRate(documentID string, answers domain.Answers) (int, error) {
	tpl, err := e.GetTemplate(documentID)
	if err != nil {
		return 0, err
	}
	return runtime.CompletionRate(tpl, answers), nil
}

// Generate renders the final document from the collected answers.
// When required fields are still missing it fails with a
// *domain.MissingFieldsError listing every one of them.
func (e *Engine) Generate(documentID string, answers domain.Answers) (string, error) {
	tpl, err := e.GetTemplate(documentID)
	if err != nil {
		return "", err
	}
	doc, err := runtime.Generate(tpl, answers)
	if err != nil {
		return "", err
	}
	e.logger.Info("document generated", "template", documentID, "bytes", len(doc))
	return doc, nil
}

// Registry exposes the underlying catalogue, for adapters that need raw
// template access.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}
