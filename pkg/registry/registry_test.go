package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillon/quillon/pkg/domain"
)

func testTemplate(id string) domain.Template {
	return domain.Template{
		ID:             id,
		Name:           "Document " + id,
		Category:       domain.CategoryOther,
		RequiredFields: []string{"nom"},
		Questions: []domain.Question{
			{ID: "nom", Text: "Nom", Type: domain.QuestionText, Required: true},
		},
		DocumentBody: "Bonjour {{nom}}",
	}
}

func TestNewPreservesOrder(t *testing.T) {
	r, err := New(testTemplate("b"), testTemplate("a"), testTemplate("c"))
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	summaries := r.List()
	ids := []string{summaries[0].ID, summaries[1].ID, summaries[2].ID}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestNewRejectsInvalidSet(t *testing.T) {
	bad := testTemplate("bad")
	bad.DocumentBody = "{{inconnu}}"

	_, err := New(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inconnu")
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New(testTemplate("x"), testTemplate("x"))
	require.Error(t, err)
}

func TestGet(t *testing.T) {
	r, err := New(testTemplate("a"))
	require.NoError(t, err)

	tpl, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Document a", tpl.Name)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}
