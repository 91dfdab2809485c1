// Package waveform turns run evidence counters into three independent
// 0–100 quality signals (functional, code-quality, authenticity), each read
// from four weighted probes, plus a single weighted composite score.
package waveform

import "math"

// Status is the discrete state of a reading or channel.
type Status string

const (
	StatusPass Status = "PASS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Channel identifiers, oscilloscope style: Y functional, X quality,
// Z authenticity.
const (
	ChannelFunctional   = "CH1_Y"
	ChannelQuality      = "CH2_X"
	ChannelAuthenticity = "CH3_Z"
)

// Reading is a single probe on one channel.
type Reading struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Amplitude   float64 `json:"amplitude"`
	Status      Status  `json:"status"`
	EvidenceRef string  `json:"evidence_ref,omitempty"`
	Detail      string  `json:"detail,omitempty"`
}

// WaveformChannel is one quality signal: four readings, a worst-status
// overall, and the unweighted mean amplitude as its score.
type WaveformChannel struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Readings []Reading `json:"readings"`
	Overall  Status    `json:"overall"`
	Score    float64   `json:"score"`
}

// finalize derives the channel's overall status and score from its
// readings: FAIL dominates WARN dominates PASS, and the score is the
// rounded mean of the amplitudes.
func finalize(ch WaveformChannel) WaveformChannel {
	overall := StatusPass
	var sum float64
	for _, r := range ch.Readings {
		sum += r.Amplitude
		switch r.Status {
		case StatusFail:
			overall = StatusFail
		case StatusWarn:
			if overall != StatusFail {
				overall = StatusWarn
			}
		}
	}

	ch.Overall = overall
	if len(ch.Readings) > 0 {
		ch.Score = round2(sum / float64(len(ch.Readings)))
	}
	return ch
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func passFail(ok bool) Status {
	if ok {
		return StatusPass
	}
	return StatusFail
}

func passWarn(ok bool) Status {
	if ok {
		return StatusPass
	}
	return StatusWarn
}
