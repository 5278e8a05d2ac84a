package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillon/quillon/pkg/domain"
)

func TestCompletionRateBounds(t *testing.T) {
	tpl := navTemplate()

	assert.Equal(t, 0, CompletionRate(tpl, domain.Answers{}))

	// caution unanswered: 3 eligible questions (nom, caution, ville).
	assert.Equal(t, 33, CompletionRate(tpl, domain.Answers{"nom": "Dupont"}))
	assert.Equal(t, 67, CompletionRate(tpl, domain.Answers{"nom": "Dupont", "ville": "Lyon"}))
}

func TestCompletionRateFullWhenAllEligibleAnswered(t *testing.T) {
	tpl := navTemplate()

	// caution=false keeps the dependent question out of the denominator.
	answers := domain.Answers{"nom": "Dupont", "caution": "false", "ville": "Lyon"}
	assert.Equal(t, 100, CompletionRate(tpl, answers))

	// Flipping it to true grows the denominator: progress drops below 100.
	answers["caution"] = "true"
	assert.Equal(t, 75, CompletionRate(tpl, answers))

	answers["caution_montant"] = "500"
	assert.Equal(t, 100, CompletionRate(tpl, answers))
}

func TestCompletionRateEmptyTemplate(t *testing.T) {
	tpl := &domain.Template{ID: "vide"}
	assert.Equal(t, 0, CompletionRate(tpl, domain.Answers{}))
}

func TestCompletionRateEmptyAnswerDoesNotCount(t *testing.T) {
	tpl := navTemplate()

	// ville answered empty: present in the map but not counted as done.
	answers := domain.Answers{"nom": "Dupont", "caution": "false", "ville": ""}
	assert.Equal(t, 67, CompletionRate(tpl, answers))
}
