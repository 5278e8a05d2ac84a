package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillon/quillon"
	"github.com/quillon/quillon/pkg/adapters/memory"
	"github.com/quillon/quillon/pkg/session"
)

// scriptDriver replays queued answers, one per prompt, in flow order.
type scriptDriver struct {
	inputs    []string
	confirms  []bool
	selects   []int
	textareas []string
	infos     []string
}

func (d *scriptDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *scriptDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *scriptDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func (d *scriptDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	out := d.textareas[0]
	d.textareas = d.textareas[1:]
	return out, nil
}

func (d *scriptDriver) Info(ctx context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func newTestFlow(t *testing.T, driver PromptDriver) (*Flow, *session.Manager) {
	t.Helper()
	engine, err := quillon.New()
	require.NoError(t, err)
	sessions := session.NewManager(memory.NewStore())
	return NewFlow(engine, sessions, driver), sessions
}

func TestRunProcurationFlow(t *testing.T) {
	driver := &scriptDriver{
		inputs: []string{
			"Durand Claire",              // mandant_nom
			"8 rue Pasteur, 75011 Paris", // mandant_adresse
			"pas une date",               // mandant_naissance, rejected
			"1950-01-01",                 // mandant_naissance, retried
			"Durand Paul",                // mandataire_nom
			"9 rue Pasteur, 75011 Paris", // mandataire_adresse
			"2026-09-15",                 // date_debut
			"Paris",                      // lieu_signature
		},
		textareas: []string{"Retirer un colis recommandé à La Poste"},
		confirms:  []bool{false}, // duree_limitee: no end date
	}
	flow, _ := newTestFlow(t, driver)

	doc, err := flow.Run(context.Background(), "procuration", "s1")
	require.NoError(t, err)

	assert.Contains(t, doc, "Durand Claire")
	assert.Contains(t, doc, "né(e) le 1950-01-01")
	assert.NotContains(t, doc, "{{")
	assert.NotContains(t, doc, "prendra fin de plein droit")

	// The bad date was rejected and the prompt repeated.
	assert.Contains(t, driver.infos, "✗ expected a date in YYYY-MM-DD form")

	// All scripted answers were consumed.
	assert.Empty(t, driver.inputs)
	assert.Empty(t, driver.confirms)
	assert.Empty(t, driver.textareas)
}

func TestRunPersistsProgress(t *testing.T) {
	driver := &scriptDriver{
		inputs: []string{
			"Durand Claire",
			"8 rue Pasteur, 75011 Paris",
			"", // mandant_naissance skipped
			"Durand Paul",
			"9 rue Pasteur, 75011 Paris",
			"2026-09-15",
			"Paris",
		},
		textareas: []string{"Signer les documents de vente"},
		confirms:  []bool{false},
	}
	flow, sessions := newTestFlow(t, driver)

	_, err := flow.Run(context.Background(), "procuration", "resume-me")
	require.NoError(t, err)

	sess, err := sessions.Load(context.Background(), "resume-me")
	require.NoError(t, err)
	assert.Equal(t, "Durand Claire", sess.Answers["mandant_nom"])
	assert.Equal(t, "false", sess.Answers["duree_limitee"])
}

func TestRunResumeSkipsAnsweredQuestions(t *testing.T) {
	driver := &scriptDriver{
		inputs: []string{
			"8 rue Pasteur, 75011 Paris",
			"",
			"Durand Paul",
			"9 rue Pasteur, 75011 Paris",
			"2026-09-15",
			"Paris",
		},
		textareas: []string{"Retirer un colis"},
		confirms:  []bool{false},
	}
	flow, sessions := newTestFlow(t, driver)

	// Pre-seed the session with the first answer: the flow must not re-ask it.
	sess, err := sessions.LoadOrCreate(context.Background(), "half-done", "procuration")
	require.NoError(t, err)
	sess.Answers["mandant_nom"] = "Durand Claire"
	require.NoError(t, sessions.Save(context.Background(), sess))

	doc, err := flow.Run(context.Background(), "procuration", "half-done")
	require.NoError(t, err)
	assert.Contains(t, doc, "Durand Claire")
	assert.Empty(t, driver.inputs)
}
