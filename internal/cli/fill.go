// Package cli implements the interactive questionnaire flow behind the
// `quillon fill` command.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/quillon/quillon"
	"github.com/quillon/quillon/pkg/domain"
	"github.com/quillon/quillon/pkg/session"
)

// Flow drives one questionnaire in the terminal: ask the next eligible
// question, validate, persist, repeat until done, then generate.
type Flow struct {
	engine   *quillon.Engine
	sessions *session.Manager
	driver   PromptDriver
}

// NewFlow assembles an interactive flow.
func NewFlow(engine *quillon.Engine, sessions *session.Manager, driver PromptDriver) *Flow {
	return &Flow{
		engine:   engine,
		sessions: sessions,
		driver:   driver,
	}
}

// Run fills the questionnaire for documentID under the given session and
// returns the generated document. Resuming an existing session picks up
// where it stopped; answers are persisted after every accepted turn.
func (f *Flow) Run(ctx context.Context, documentID, sessionID string) (string, error) {
	sess, err := f.sessions.LoadOrCreate(ctx, sessionID, documentID)
	if err != nil {
		return "", err
	}
	documentID = sess.DocumentID

	tpl, err := f.engine.GetTemplate(documentID)
	if err != nil {
		return "", err
	}
	if err := f.driver.Info(ctx, fmt.Sprintf("%s — %s (durée estimée : %s)", tpl.Name, tpl.Description, tpl.EstimatedTime)); err != nil {
		return "", err
	}

	for {
		q, err := f.engine.NextQuestion(documentID, sess.Answers)
		if err != nil {
			return "", err
		}
		if q == nil {
			break
		}

		value, err := f.ask(ctx, q)
		if err != nil {
			return "", err
		}

		canonical, err := f.engine.ValidateAnswer(documentID, q.ID, value)
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				if err := f.driver.Info(ctx, "✗ "+verr.Message); err != nil {
					return "", err
				}
				continue // re-ask the same question
			}
			return "", err
		}

		sess.Answers[q.ID] = canonical
		if err := f.sessions.Save(ctx, sess); err != nil {
			return "", err
		}

		rate, err := f.engine.CompletionRate(documentID, sess.Answers)
		if err != nil {
			return "", err
		}
		if err := f.driver.Info(ctx, fmt.Sprintf("Progression : %d%%", rate)); err != nil {
			return "", err
		}
	}

	return f.engine.Generate(documentID, sess.Answers)
}

// ask prompts for one question using the widget matching its type.
func (f *Flow) ask(ctx context.Context, q *domain.Question) (any, error) {
	message := q.Text
	if !q.Required {
		message += " (facultatif)"
	}

	switch q.Type {
	case domain.QuestionBoolean:
		ok, err := f.driver.Confirm(ctx, ConfirmConfig{Message: message, Help: q.Help})
		if err != nil {
			return nil, err
		}
		return ok, nil

	case domain.QuestionSelect:
		labels := make([]string, len(q.Options))
		for i, opt := range q.Options {
			labels[i] = opt.Label
		}
		idx, err := f.driver.Select(ctx, SelectConfig{Message: message, Options: labels, Help: q.Help})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(q.Options) {
			return "", nil
		}
		return q.Options[idx].Value, nil

	case domain.QuestionMultiline:
		return f.driver.TextArea(ctx, TextAreaConfig{Message: message, Help: q.Help})

	default:
		help := q.Help
		if q.Type == domain.QuestionDate && help == "" {
			help = "Format : AAAA-MM-JJ"
		}
		return f.driver.Input(ctx, InputConfig{Message: message, Help: help})
	}
}
