// Package runtime implements the stateless questionnaire mechanics:
// picking the next question, validating answers, measuring progress and
// gating document generation. Every function re-derives its result from
// the full answer map, so callers can edit answers in any order without
// the engine holding stale cursor state.
package runtime

import "github.com/quillon/quillon/pkg/domain"

// Eligible reports whether a question is currently askable: either it has
// no dependency, or the answer it depends on is truthy.
func Eligible(q *domain.Question, answers domain.Answers) bool {
	if q.DependsOn == "" {
		return true
	}
	return answers.Truthy(q.DependsOn)
}

// NextQuestion returns the first question, in declaration order, that is
// eligible and not yet answered. A nil return means the questionnaire is
// complete under the current answers.
//
// Answered questions are never re-asked, and ineligible ones are skipped
// without counting against completion. A later answer flipping a
// dependency self-corrects on the next call.
func NextQuestion(t *domain.Template, answers domain.Answers) *domain.Question {
	for i := range t.Questions {
		q := &t.Questions[i]
		if _, answered := answers[q.ID]; answered {
			continue
		}
		if !Eligible(q, answers) {
			continue
		}
		return q
	}
	return nil
}
