package quillon

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillon/quillon/pkg/domain"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := New()
	require.NoError(t, err)
	return eng
}

func leaseAnswers() domain.Answers {
	return domain.Answers{
		"type_location":        "vide",
		"proprietaire_nom":     "Martin Sophie",
		"proprietaire_adresse": "12 avenue Victor Hugo, 69006 Lyon",
		"locataire_nom":        "Dupont Pierre",
		"logement_adresse":     "3 rue des Lilas, 69003 Lyon",
		"logement_description": "Appartement T2 au 2e étage",
		"superficie":           "45",
		"date_effet":           "2026-09-01",
		"duree_bail":           "3_ans",
		"loyer":                "850",
		"modalite_paiement":    "virement bancaire le 5 de chaque mois",
	}
}

func TestListDocuments(t *testing.T) {
	eng := newEngine(t)

	summaries := eng.ListDocuments()
	require.Len(t, summaries, 5)
	assert.Equal(t, "bail-habitation", summaries[0].ID)
	assert.Equal(t, domain.CategoryLease, summaries[0].Category)
	assert.NotEmpty(t, summaries[0].EstimatedTime)
}

func TestGetTemplateUnknown(t *testing.T) {
	eng := newEngine(t)

	_, err := eng.GetTemplate("testament")
	require.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestLeaseGeneration(t *testing.T) {
	eng := newEngine(t)

	doc, err := eng.Generate("bail-habitation", leaseAnswers())
	require.NoError(t, err)

	assert.Contains(t, doc, "Dupont Pierre")
	assert.Contains(t, doc, "Martin Sophie")
	assert.Equal(t, 1, strings.Count(doc, "850"), "rent amount must appear exactly once")
	assert.NotContains(t, doc, "{{")

	// No deposit and no works were declared: both articles disappear whole.
	assert.NotContains(t, doc, "ARTICLE 4")
	assert.NotContains(t, doc, "ARTICLE 5")
	assert.NotContains(t, doc, "COLOCATION")
	assert.NotContains(t, doc, "CAUTION")
}

func TestLeaseGenerationWithDeposit(t *testing.T) {
	eng := newEngine(t)

	answers := leaseAnswers()
	answers["depot_garantie"] = "850"

	doc, err := eng.Generate("bail-habitation", answers)
	require.NoError(t, err)
	assert.Contains(t, doc, "ARTICLE 4 - DÉPÔT DE GARANTIE")
	assert.Equal(t, 2, strings.Count(doc, "850"))
}

func TestLeaseGenerationMissingField(t *testing.T) {
	eng := newEngine(t)

	answers := leaseAnswers()
	delete(answers, "locataire_nom")

	_, err := eng.Generate("bail-habitation", answers)

	var missing *domain.MissingFieldsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"locataire_nom"}, missing.Fields)
	assert.Equal(t, []string{"Nom complet du locataire"}, missing.Labels)
}

func TestQuestionnaireWalk(t *testing.T) {
	eng := newEngine(t)

	answers := domain.Answers{}
	q, err := eng.NextQuestion("bail-habitation", answers)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "type_location", q.ID)

	// Answer every question the navigator serves. Boolean gates get
	// "false", so their dependent questions stay ineligible.
	fixed := leaseAnswers()
	fixed["depot_garantie"] = "900"
	fixed["travaux"] = "Peinture du séjour"
	for i := 0; i < 50; i++ {
		q, err = eng.NextQuestion("bail-habitation", answers)
		require.NoError(t, err)
		if q == nil {
			break
		}
		value, ok := fixed[q.ID]
		if !ok {
			if q.Type == domain.QuestionBoolean {
				value = "false"
			} else {
				value = ""
			}
		}
		canonical, err := eng.ValidateAnswer("bail-habitation", q.ID, value)
		require.NoError(t, err, q.ID)
		answers[q.ID] = canonical
	}
	require.Nil(t, q, "questionnaire should terminate")

	rate, err := eng.CompletionRate("bail-habitation", answers)
	require.NoError(t, err)
	assert.Equal(t, 100, rate)

	// Boolean gates answered false: their dependents were never served.
	assert.NotContains(t, answers, "colocataires_noms")
	assert.NotContains(t, answers, "garant_nom")

	doc, err := eng.Generate("bail-habitation", answers)
	require.NoError(t, err)
	assert.NotContains(t, doc, "{{")
}

func TestValidateAnswerRejections(t *testing.T) {
	eng := newEngine(t)

	cases := []struct {
		name       string
		questionID string
		value      any
		code       string
	}{
		{"required empty", "locataire_nom", "   ", domain.ValidationRequired},
		{"bad number", "loyer", "huit cent", domain.ValidationType},
		{"bad date", "date_effet", "01/09/2026", domain.ValidationType},
		{"unknown option", "duree_bail", "2_ans", domain.ValidationType},
		{"too short", "locataire_nom", "X", domain.ValidationLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eng.ValidateAnswer("bail-habitation", tc.questionID, tc.value)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.code, verr.Code)
			assert.Equal(t, tc.questionID, verr.QuestionID)
		})
	}
}

func TestValidateAnswerPattern(t *testing.T) {
	eng := newEngine(t)

	_, err := eng.ValidateAnswer("contrat-prestation", "prestataire_siret", "12345")
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.ValidationPattern, verr.Code)
	assert.Contains(t, verr.Message, "14 chiffres")

	canonical, err := eng.ValidateAnswer("contrat-prestation", "prestataire_siret", "12345678901234")
	require.NoError(t, err)
	assert.Equal(t, "12345678901234", canonical)
}

func TestValidateAnswerCoercesScalars(t *testing.T) {
	eng := newEngine(t)

	canonical, err := eng.ValidateAnswer("bail-habitation", "loyer", 850.0)
	require.NoError(t, err)
	assert.Equal(t, "850", canonical)

	canonical, err = eng.ValidateAnswer("bail-habitation", "colocation", true)
	require.NoError(t, err)
	assert.Equal(t, "true", canonical)
}

func TestValidateAnswerUnknownQuestion(t *testing.T) {
	eng := newEngine(t)

	_, err := eng.ValidateAnswer("bail-habitation", "fantome", "x")
	require.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestCompletionRateProgression(t *testing.T) {
	eng := newEngine(t)

	start, err := eng.CompletionRate("bail-habitation", domain.Answers{})
	require.NoError(t, err)
	assert.Equal(t, 0, start)

	partial, err := eng.CompletionRate("bail-habitation", leaseAnswers())
	require.NoError(t, err)
	assert.Greater(t, partial, start)
	assert.LessOrEqual(t, partial, 100)
}

func TestWithTemplatesExtendsCatalogue(t *testing.T) {
	extra := domain.Template{
		ID:             "attestation-simple",
		Name:           "Attestation simple",
		Category:       domain.CategoryOther,
		RequiredFields: []string{"nom"},
		Questions: []domain.Question{
			{ID: "nom", Text: "Nom", Type: domain.QuestionText, Required: true},
		},
		DocumentBody: "Je soussigné {{nom}} certifie l'exactitude des informations ci-dessus.",
	}

	eng, err := New(WithTemplates(extra))
	require.NoError(t, err)
	assert.Len(t, eng.ListDocuments(), 6)

	doc, err := eng.Generate("attestation-simple", domain.Answers{"nom": "Durand"})
	require.NoError(t, err)
	assert.Contains(t, doc, "Durand")
}

func TestWithTemplatesRejectsBrokenTemplate(t *testing.T) {
	broken := domain.Template{ID: "broken", Name: "Broken", DocumentBody: "{{nulle_part}}"}

	_, err := New(WithTemplates(broken))
	require.Error(t, err)
}
