package waveform

import "fmt"

// QualityInput carries the counters behind the code-quality channel.
type QualityInput struct {
	BuildErrors       int
	BuildWarnings     int
	LintErrors        int
	LintWarnings      int
	RedlineViolations int
	SecurityCritical  int
	SecurityHigh      int
}

// BuildQualityChannel evaluates channel X (code-quality compliance).
//
// Readings:
//   - X1 build, X2 lint: two-tier: 100 clean, 80 warnings only, 0 on any error
//   - X3 redline: binary, violations are never advisory
//   - X4 security: binary on zero critical and zero high findings
func BuildQualityChannel(in QualityInput) WaveformChannel {
	x1 := twoTierReading("X1", "build", "build", in.BuildErrors, in.BuildWarnings)
	x2 := twoTierReading("X2", "lint", "lint", in.LintErrors, in.LintWarnings)

	x3 := Reading{
		ID:          "X3",
		Label:       "redline",
		Status:      passFail(in.RedlineViolations == 0),
		EvidenceRef: "redline",
		Detail:      fmt.Sprintf("%d redline violations", in.RedlineViolations),
	}
	if in.RedlineViolations == 0 {
		x3.Amplitude = 100
	}

	secClean := in.SecurityCritical == 0 && in.SecurityHigh == 0
	x4 := Reading{
		ID:          "X4",
		Label:       "security",
		Status:      passFail(secClean),
		EvidenceRef: "audit",
		Detail:      fmt.Sprintf("%d critical, %d high", in.SecurityCritical, in.SecurityHigh),
	}
	if secClean {
		x4.Amplitude = 100
	}

	return finalize(WaveformChannel{
		ID:       ChannelQuality,
		Label:    "code-quality compliance",
		Readings: []Reading{x1, x2, x3, x4},
	})
}

// twoTierReading applies the shared build/lint rule: errors zero the
// reading, warnings alone cost 20 points.
func twoTierReading(id, label, ref string, errors, warnings int) Reading {
	r := Reading{
		ID:          id,
		Label:       label,
		EvidenceRef: ref,
		Detail:      fmt.Sprintf("%d errors, %d warnings", errors, warnings),
	}
	switch {
	case errors > 0:
		r.Amplitude = 0
		r.Status = StatusFail
	case warnings > 0:
		r.Amplitude = 80
		r.Status = StatusWarn
	default:
		r.Amplitude = 100
		r.Status = StatusPass
	}
	return r
}
