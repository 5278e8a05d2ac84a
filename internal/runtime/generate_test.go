package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillon/quillon/pkg/domain"
)

func genTemplate() *domain.Template {
	return &domain.Template{
		ID:             "attestation",
		RequiredFields: []string{"nom", "ville"},
		Questions: []domain.Question{
			{ID: "nom", Text: "Votre nom", Type: domain.QuestionText, Required: true},
			{ID: "ville", Text: "Votre ville", Type: domain.QuestionText, Required: true},
			{ID: "note", Text: "Note complémentaire", Type: domain.QuestionMultiline},
		},
		DocumentBody: "Je soussigné {{nom}}, à {{ville}}.\n\n{{#note}}Note : {{note}}{{/note}}",
	}
}

func TestGenerateMissingRequiredListsAll(t *testing.T) {
	tpl := genTemplate()

	doc, err := Generate(tpl, domain.Answers{})
	assert.Empty(t, doc)

	var missing *domain.MissingFieldsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"nom", "ville"}, missing.Fields)
	assert.Equal(t, []string{"Votre nom", "Votre ville"}, missing.Labels)
}

func TestGenerateMissingSingleField(t *testing.T) {
	tpl := genTemplate()

	_, err := Generate(tpl, domain.Answers{"nom": "Dupont"})

	var missing *domain.MissingFieldsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"ville"}, missing.Fields)
}

func TestGenerateLenientOnOptionalFields(t *testing.T) {
	tpl := genTemplate()

	doc, err := Generate(tpl, domain.Answers{"nom": "Dupont", "ville": "Lyon"})
	require.NoError(t, err)
	assert.Equal(t, "Je soussigné Dupont, à Lyon.", doc)
	assert.NotContains(t, doc, "{{")
}

func TestGenerateDeterministic(t *testing.T) {
	tpl := genTemplate()
	answers := domain.Answers{"nom": "Dupont", "ville": "Lyon", "note": "urgent"}

	first, err := Generate(tpl, answers)
	require.NoError(t, err)
	second, err := Generate(tpl, answers)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "Note : urgent")
}
