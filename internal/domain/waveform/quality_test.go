package waveform_test

import (
	"testing"

	"github.com/maidos/codeqc/internal/domain/waveform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQualityChannel_AllClean(t *testing.T) {
	ch := waveform.BuildQualityChannel(waveform.QualityInput{})

	assert.Equal(t, waveform.ChannelQuality, ch.ID)
	require.Len(t, ch.Readings, 4)
	assert.Equal(t, waveform.StatusPass, ch.Overall)
	assert.InDelta(t, 100.0, ch.Score, 0.001)
}

func TestBuildQualityChannel_TwoTierRule(t *testing.T) {
	cases := []struct {
		name      string
		errors    int
		warnings  int
		amplitude float64
		status    waveform.Status
	}{
		{"clean", 0, 0, 100, waveform.StatusPass},
		{"warnings only", 0, 3, 80, waveform.StatusWarn},
		{"errors", 2, 0, 0, waveform.StatusFail},
		{"errors and warnings", 1, 5, 0, waveform.StatusFail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ch := waveform.BuildQualityChannel(waveform.QualityInput{
				BuildErrors:   tc.errors,
				BuildWarnings: tc.warnings,
				LintErrors:    tc.errors,
				LintWarnings:  tc.warnings,
			})

			for _, r := range ch.Readings[:2] {
				assert.InDelta(t, tc.amplitude, r.Amplitude, 0.001, r.ID)
				assert.Equal(t, tc.status, r.Status, r.ID)
			}
		})
	}
}

// Redline violations are never advisory: X3 is binary with no WARN tier.
func TestBuildQualityChannel_X3RedlineBinary(t *testing.T) {
	ch := waveform.BuildQualityChannel(waveform.QualityInput{RedlineViolations: 1})

	x3 := ch.Readings[2]
	assert.Equal(t, "X3", x3.ID)
	assert.InDelta(t, 0.0, x3.Amplitude, 0.001)
	assert.Equal(t, waveform.StatusFail, x3.Status)
	assert.Equal(t, waveform.StatusFail, ch.Overall)
}

func TestBuildQualityChannel_X4SecurityBinary(t *testing.T) {
	ch := waveform.BuildQualityChannel(waveform.QualityInput{SecurityHigh: 1})

	x4 := ch.Readings[3]
	assert.InDelta(t, 0.0, x4.Amplitude, 0.001)
	assert.Equal(t, waveform.StatusFail, x4.Status)

	ch = waveform.BuildQualityChannel(waveform.QualityInput{SecurityCritical: 2})
	assert.Equal(t, waveform.StatusFail, ch.Readings[3].Status)
}
