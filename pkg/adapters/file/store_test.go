package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillon/quillon/pkg/domain"
	"github.com/quillon/quillon/pkg/ports"
)

func TestStoreContract(t *testing.T) {
	ports.RunSessionStoreContract(t, New(t.TempDir()))
}

func TestSaveIsAtomic(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	ctx := context.Background()

	session := domain.NewSession("s1", "procuration")
	session.Answers["mandant_nom"] = "Durand"
	require.NoError(t, store.Save(ctx, session))

	// No temp files may survive a successful save.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "s1.json", entries[0].Name())
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{nope"), 0o644))

	_, err := store.Load(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestDefaultBasePath(t *testing.T) {
	store := New("")
	assert.Equal(t, filepath.Join(".quillon", "sessions"), store.BasePath)
}
