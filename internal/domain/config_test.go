package domain_test

import (
	"testing"

	"github.com/maidos/codeqc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.InDelta(t, 80.0, cfg.CoverageThreshold, 0.001)
	assert.InDelta(t, 3.0, cfg.BLDSMinimum, 0.001)
	assert.Equal(t, "evidence", cfg.EvidenceDir)
	require.NoError(t, cfg.Validate())
}

func TestDefaultConfig_AuditNotInDeliveryGate(t *testing.T) {
	// The audit artifact fails closed when absent; keeping it out of the
	// stock g4 criteria means that default can't silently block acceptance.
	cfg := domain.DefaultConfig()
	assert.NotContains(t, cfg.Gates.G4, domain.ArtifactAudit)
	assert.Equal(t, []domain.ArtifactName{domain.ArtifactPackage, domain.ArtifactRun}, cfg.Gates.G4)
}

func TestProjectConfig_Validate_Ranges(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.CoverageThreshold = 120
	assert.Error(t, cfg.Validate())

	cfg = domain.DefaultConfig()
	cfg.BLDSMinimum = 6
	assert.Error(t, cfg.Validate())
}

func TestProjectConfig_Validate_UnknownArtifact(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Gates.Exit = []domain.ArtifactName{"coverge"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coverge")
}
