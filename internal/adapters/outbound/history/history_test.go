package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maidos/codeqc/internal/adapters/outbound/history"
	"github.com/maidos/codeqc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoHistoryReturnsNil(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestSaveAndLoad_AppendsEntries(t *testing.T) {
	dir := t.TempDir()
	store := history.New()

	first := domain.RunEntry{
		Timestamp:       "2026-08-30T10:00:00Z",
		MissionComplete: false,
		CompositeScore:  92.5,
	}
	second := domain.RunEntry{
		Timestamp:       "2026-08-30T11:00:00Z",
		CommitHash:      "abc1234",
		MissionComplete: true,
		CompositeScore:  100,
	}

	require.NoError(t, store.Save(dir, first))
	require.NoError(t, store.Save(dir, second))

	entries, err := store.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestLoad_CorruptFileErrors(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, ".codeqc", "history", "runs.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0o755))
	require.NoError(t, os.WriteFile(fp, []byte("{not json"), 0o644))

	_, err := history.New().Load(dir)
	assert.Error(t, err)
}
