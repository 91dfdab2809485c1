package waveform

import "fmt"

// AuthenticityInput carries the counters behind the authenticity channel.
type AuthenticityInput struct {
	FraudCount   int
	IAVPass      bool
	BLDSScore    float64
	BLDSMinimum  float64
	Traceability bool
}

// BuildAuthenticityChannel evaluates channel Z (authenticity).
//
// Readings:
//   - Z1 fraud scan: binary on zero findings
//   - Z2 IAV interview: binary on the interview verdict
//   - Z3 BLDS: score scaled to 0–100, binary against the configured minimum
//   - Z4 traceability: advisory: missing traceability warns, never blocks
func BuildAuthenticityChannel(in AuthenticityInput) WaveformChannel {
	z1 := Reading{
		ID:          "Z1",
		Label:       "fraud scan",
		Status:      passFail(in.FraudCount == 0),
		EvidenceRef: "fraud",
		Detail:      fmt.Sprintf("%d fraud findings", in.FraudCount),
	}
	if in.FraudCount == 0 {
		z1.Amplitude = 100
	}

	z2 := Reading{
		ID:          "Z2",
		Label:       "IAV interview",
		Status:      passFail(in.IAVPass),
		EvidenceRef: "iav",
	}
	if in.IAVPass {
		z2.Amplitude = 100
	}

	z3 := Reading{
		ID:          "Z3",
		Label:       "BLDS",
		Amplitude:   in.BLDSScore / 5 * 100,
		Status:      passFail(in.BLDSScore >= in.BLDSMinimum),
		EvidenceRef: "blds",
		Detail:      fmt.Sprintf("score %.1f, minimum %.1f", in.BLDSScore, in.BLDSMinimum),
	}

	z4 := Reading{
		ID:          "Z4",
		Label:       "traceability",
		Status:      passWarn(in.Traceability),
		EvidenceRef: "datasource",
	}
	if in.Traceability {
		z4.Amplitude = 100
	}

	return finalize(WaveformChannel{
		ID:       ChannelAuthenticity,
		Label:    "authenticity",
		Readings: []Reading{z1, z2, z3, z4},
	})
}
