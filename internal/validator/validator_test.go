package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillon/quillon/pkg/domain"
)

func validTemplate() domain.Template {
	return domain.Template{
		ID:             "ok",
		Name:           "Document valide",
		Category:       domain.CategoryOther,
		RequiredFields: []string{"nom"},
		Questions: []domain.Question{
			{ID: "nom", Text: "Nom", Type: domain.QuestionText, Required: true},
			{ID: "caution", Text: "Caution ?", Type: domain.QuestionBoolean},
			{ID: "montant", Text: "Montant", Type: domain.QuestionNumber, DependsOn: "caution"},
		},
		DocumentBody: "{{nom}} {{#caution}}{{montant}}{{/caution}}",
	}
}

func TestCheckValidTemplate(t *testing.T) {
	tpl := validTemplate()
	require.NoError(t, Check(&tpl))
}

func TestCheckForwardDependency(t *testing.T) {
	tpl := validTemplate()
	tpl.Questions[0].DependsOn = "caution" // declared later

	err := Check(&tpl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not declared earlier")
}

func TestCheckUnknownBodyField(t *testing.T) {
	tpl := validTemplate()
	tpl.DocumentBody += " {{fantome}}"

	err := Check(&tpl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "fantome"`)
}

func TestCheckRequiredFieldWithoutQuestion(t *testing.T) {
	tpl := validTemplate()
	tpl.RequiredFields = append(tpl.RequiredFields, "absent")

	err := Check(&tpl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required field "absent"`)
}

func TestCheckSelectNeedsOptions(t *testing.T) {
	tpl := validTemplate()
	tpl.Questions = append(tpl.Questions, domain.Question{
		ID: "choix", Text: "Choix", Type: domain.QuestionSelect,
	})

	err := Check(&tpl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no options")
}

func TestCheckBadPattern(t *testing.T) {
	tpl := validTemplate()
	tpl.Questions[0].Validation = &domain.Validation{Pattern: "("}

	err := Check(&tpl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestCheckUnterminatedBlock(t *testing.T) {
	tpl := validTemplate()
	tpl.DocumentBody = "{{nom}} {{#caution}}{{montant}}"

	err := Check(&tpl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `block "caution" is never closed`)
}

func TestCheckCloseWithoutOpen(t *testing.T) {
	tpl := validTemplate()
	tpl.DocumentBody = "{{nom}} {{montant}}{{/caution}}"

	err := Check(&tpl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `closes block "caution" that was never opened`)
}

func TestCheckMismatchedBlocks(t *testing.T) {
	tpl := validTemplate()
	tpl.Questions = append(tpl.Questions, domain.Question{
		ID: "garant", Text: "Garant ?", Type: domain.QuestionBoolean,
	})
	tpl.DocumentBody = "{{#caution}}{{montant}}{{/garant}}"

	err := Check(&tpl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `closes block "garant" while block "caution" is open`)
}

func TestCheckNestedBlocks(t *testing.T) {
	tpl := validTemplate()
	tpl.Questions = append(tpl.Questions, domain.Question{
		ID: "garant", Text: "Garant ?", Type: domain.QuestionBoolean,
	})
	tpl.DocumentBody = "{{#caution}}{{#garant}}{{montant}}{{/garant}}{{/caution}}"

	err := Check(&tpl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not nest")
}

func TestCheckSetDuplicateIDs(t *testing.T) {
	a := validTemplate()
	b := validTemplate()

	err := CheckSet([]domain.Template{a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate template id "ok"`)
}

func TestCheckSetAggregatesProblems(t *testing.T) {
	tpl := validTemplate()
	tpl.RequiredFields = append(tpl.RequiredFields, "absent")
	tpl.DocumentBody += " {{fantome}}"

	err := CheckSet([]domain.Template{tpl})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent")
	assert.Contains(t, err.Error(), "fantome")
}
