package waveform

import "fmt"

// FunctionalInput carries the counters behind the functional-completeness
// channel.
type FunctionalInput struct {
	SpecMapped        bool
	SpecMissingCount  int
	TestsPass         bool
	TestsFailed       int
	TestsTotal        int
	CoveragePercent   float64
	CoverageThreshold float64
	ImplComplete      bool
}

// BuildFunctionalChannel evaluates channel Y (functional completeness).
//
// Readings:
//   - Y1 spec mapping: 100 when fully mapped, else 20 points off per
//     missing entry, floored at 0
//   - Y2 test results: pass ratio as a percentage, 0 when no tests ran
//   - Y3 coverage: the raw percentage; shortfall is advisory (WARN, never FAIL)
//   - Y4 implementation: 100 complete / 50 incomplete, WARN when incomplete
func BuildFunctionalChannel(in FunctionalInput) WaveformChannel {
	y1 := Reading{
		ID:          "Y1",
		Label:       "spec mapping",
		Status:      passFail(in.SpecMapped),
		EvidenceRef: "mapping",
		Detail:      fmt.Sprintf("%d missing spec entries", in.SpecMissingCount),
	}
	if in.SpecMapped {
		y1.Amplitude = 100
	} else {
		y1.Amplitude = max(0, 100-float64(in.SpecMissingCount)*20)
	}

	y2 := Reading{
		ID:          "Y2",
		Label:       "test results",
		Status:      passFail(in.TestsPass),
		EvidenceRef: "test",
		Detail:      fmt.Sprintf("%d/%d tests passed", in.TestsTotal-in.TestsFailed, in.TestsTotal),
	}
	if in.TestsTotal > 0 {
		y2.Amplitude = float64(in.TestsTotal-in.TestsFailed) / float64(in.TestsTotal) * 100
	}

	y3 := Reading{
		ID:          "Y3",
		Label:       "coverage",
		Amplitude:   in.CoveragePercent,
		Status:      passWarn(in.CoveragePercent >= in.CoverageThreshold),
		EvidenceRef: "coverage",
		Detail:      fmt.Sprintf("%.1f%% against %.1f%% threshold", in.CoveragePercent, in.CoverageThreshold),
	}

	y4 := Reading{
		ID:          "Y4",
		Label:       "implementation",
		Amplitude:   50,
		Status:      passWarn(in.ImplComplete),
		EvidenceRef: "impl",
	}
	if in.ImplComplete {
		y4.Amplitude = 100
	}

	return finalize(WaveformChannel{
		ID:       ChannelFunctional,
		Label:    "functional completeness",
		Readings: []Reading{y1, y2, y3, y4},
	})
}
