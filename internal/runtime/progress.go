package runtime

import (
	"math"

	"github.com/quillon/quillon/pkg/domain"
)

// CompletionRate returns how much of the questionnaire is done, as a
// percentage in [0, 100]. The denominator is the count of questions
// eligible under the current answers (answered ones included); the
// numerator is how many of those carry a non-empty answer.
//
// It recomputes from scratch on every call, so out-of-order edits can
// never make it drift.
func CompletionRate(t *domain.Template, answers domain.Answers) int {
	eligible := 0
	answered := 0

	for i := range t.Questions {
		q := &t.Questions[i]
		if !Eligible(q, answers) {
			continue
		}
		eligible++
		if answers.Has(q.ID) {
			answered++
		}
	}

	if eligible == 0 {
		return 0
	}
	return int(math.Round(100 * float64(answered) / float64(eligible)))
}
