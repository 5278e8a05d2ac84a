package runtime

import (
	"github.com/quillon/quillon/internal/merge"
	"github.com/quillon/quillon/pkg/domain"
)

// Generate renders the final document for a template. Before rendering it
// verifies every required field in one pass and reports all missing ones
// together, so the caller can prompt for the whole lot at once.
//
// Rendering itself is deliberately lenient: unanswered optional
// placeholders resolve to the empty string, never to an error.
func Generate(t *domain.Template, answers domain.Answers) (string, error) {
	var missing *domain.MissingFieldsError

	for _, id := range t.RequiredFields {
		if answers.Has(id) {
			continue
		}
		if missing == nil {
			missing = &domain.MissingFieldsError{}
		}
		missing.Fields = append(missing.Fields, id)
		missing.Labels = append(missing.Labels, t.Label(id))
	}
	if missing != nil {
		return "", missing
	}

	return merge.Render(t.DocumentBody, answers), nil
}
