package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillon/quillon"
	"github.com/quillon/quillon/pkg/domain"
)

func TestBuildTemplate(t *testing.T) {
	b := New("reconnaissance-dette").
		Name("Reconnaissance de dette").
		Description("Engagement écrit de rembourser une somme prêtée.").
		Category(domain.CategoryContract).
		EstimatedTime("5 min")

	b.Text("debiteur_nom", "Nom du débiteur").Required().MinLength(3)
	b.Text("creancier_nom", "Nom du créancier").Required()
	b.Number("montant", "Somme due (en euros)").Required()
	b.Date("echeance", "Date limite de remboursement").Required()
	b.Boolean("interets", "La dette porte-t-elle intérêts ?")
	b.Number("taux", "Taux d'intérêt annuel (en %)").DependsOn("interets")
	b.Body(`Je soussigné {{debiteur_nom}} reconnais devoir à {{creancier_nom}} la somme de {{montant}} euros, remboursable au plus tard le {{echeance}}.
{{#interets}}La somme porte intérêts au taux annuel de {{taux}} %.{{/interets}}`)

	tpl, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "reconnaissance-dette", tpl.ID)
	assert.Equal(t, []string{"debiteur_nom", "creancier_nom", "montant", "echeance"}, tpl.RequiredFields)
	require.Len(t, tpl.Questions, 6)
	assert.Equal(t, "interets", tpl.Questions[5].DependsOn)
	assert.Equal(t, 3, tpl.Questions[0].Validation.MinLength)
}

func TestBuildRejectsInvalidTemplate(t *testing.T) {
	b := New("broken").Name("Broken")
	b.Text("nom", "Nom").DependsOn("plus_tard")
	b.Boolean("plus_tard", "Plus tard ?")
	b.Body("{{nom}}")

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not declared earlier")
}

func TestBuildSelectOptions(t *testing.T) {
	b := New("choix").Name("Choix")
	b.Select("mode", "Mode de paiement",
		Opt("virement", "Virement bancaire"),
		Opt("cheque", "Chèque"),
	).Required()
	b.Body("Paiement par {{mode}}.")

	tpl, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"virement", "cheque"}, tpl.Questions[0].OptionValues())
}

// Built templates plug straight into an engine.
func TestBuiltTemplateWorksEndToEnd(t *testing.T) {
	b := New("attestation-don").Name("Attestation de don")
	b.Text("donateur", "Nom du donateur").Required()
	b.Number("montant", "Montant du don").Required()
	b.Body("{{donateur}} a donné {{montant}} euros.")

	tpl, err := b.Build()
	require.NoError(t, err)

	engine, err := quillon.New(quillon.WithTemplates(tpl))
	require.NoError(t, err)

	doc, err := engine.Generate("attestation-don", domain.Answers{
		"donateur": "Durand",
		"montant":  "200",
	})
	require.NoError(t, err)
	assert.Equal(t, "Durand a donné 200 euros.", doc)
}
