package waveform_test

import (
	"testing"

	"github.com/maidos/codeqc/internal/domain/waveform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights(t *testing.T) {
	w := waveform.DefaultWeights()

	assert.InDelta(t, 0.4, w.Functional, 0.001)
	assert.InDelta(t, 0.3, w.Quality, 0.001)
	assert.InDelta(t, 0.3, w.Authenticity, 0.001)
}

func TestBuildReport_PerfectRun(t *testing.T) {
	y := waveform.BuildFunctionalChannel(perfectFunctional())
	x := waveform.BuildQualityChannel(waveform.QualityInput{})
	z := waveform.BuildAuthenticityChannel(cleanAuthenticity())

	report := waveform.BuildReport(y, x, z)

	require.Len(t, report.Channels, 3)
	assert.True(t, report.AllPass)
	assert.InDelta(t, 100.0, report.CompositeScore, 0.001)
}

func TestBuildReport_WeightedComposite(t *testing.T) {
	y := waveform.BuildFunctionalChannel(perfectFunctional()) // 100
	x := waveform.BuildQualityChannel(waveform.QualityInput{RedlineViolations: 3})
	z := waveform.BuildAuthenticityChannel(cleanAuthenticity()) // 100

	report := waveform.BuildReport(y, x, z)

	// X = (100+100+0+100)/4 = 75; composite = 0.4*100 + 0.3*75 + 0.3*100.
	assert.InDelta(t, 75.0, x.Score, 0.001)
	assert.InDelta(t, 92.5, report.CompositeScore, 0.001)
	assert.False(t, report.AllPass)
}

func TestBuildReport_AllPassRequiresEveryChannelPass(t *testing.T) {
	y := waveform.BuildFunctionalChannel(perfectFunctional())
	z := waveform.BuildAuthenticityChannel(cleanAuthenticity())

	warned := waveform.BuildQualityChannel(waveform.QualityInput{LintWarnings: 1})
	require.Equal(t, waveform.StatusWarn, warned.Overall)

	report := waveform.BuildReport(y, warned, z)
	assert.False(t, report.AllPass, "a WARN channel must not count as PASS")
}

func TestBuildReportWithWeights_CompositeBounds(t *testing.T) {
	// For channel scores anywhere in [0,100] the composite stays in [0,100].
	extremes := []waveform.QualityInput{
		{},                                       // 100
		{BuildErrors: 1, LintErrors: 1, RedlineViolations: 1, SecurityCritical: 1}, // 0
	}

	for _, in := range extremes {
		x := waveform.BuildQualityChannel(in)
		report := waveform.BuildReportWithWeights(x, x, x, waveform.DefaultWeights())
		assert.GreaterOrEqual(t, report.CompositeScore, 0.0)
		assert.LessOrEqual(t, report.CompositeScore, 100.0)
	}
}
