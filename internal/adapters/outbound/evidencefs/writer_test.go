package evidencefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maidos/codeqc/internal/adapters/outbound/evidencefs"
	"github.com/maidos/codeqc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_OneLogPerArtifact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "evidence")
	evidence := domain.EvidenceCollection{
		domain.ArtifactScan: {
			Name:    domain.ArtifactScan,
			Exists:  true,
			Clean:   true,
			Summary: "static-rule scan clean",
		},
		domain.ArtifactRedline: {
			Name:    domain.ArtifactRedline,
			Exists:  true,
			Count:   3,
			Summary: "3 violations",
		},
	}

	require.NoError(t, evidencefs.New().Write(dir, evidence))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(domain.AllArtifacts()))

	scan, err := os.ReadFile(filepath.Join(dir, "scan.log"))
	require.NoError(t, err)
	assert.Contains(t, string(scan), "artifact: scan")
	assert.Contains(t, string(scan), "clean: true")
	assert.Contains(t, string(scan), "summary: static-rule scan clean")

	redline, err := os.ReadFile(filepath.Join(dir, "redline.log"))
	require.NoError(t, err)
	assert.Contains(t, string(redline), "count: 3")
	assert.Contains(t, string(redline), "clean: false")
}

func TestWrite_MissingArtifactsStillWritten(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "evidence")

	require.NoError(t, evidencefs.New().Write(dir, domain.EvidenceCollection{}))

	for _, name := range domain.AllArtifacts() {
		_, err := os.Stat(filepath.Join(dir, name.LogFile()))
		assert.NoError(t, err, "expected %s", name.LogFile())
	}
}

func TestWrite_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "evidence")

	require.NoError(t, evidencefs.New().Write(dir, domain.EvidenceCollection{}))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
