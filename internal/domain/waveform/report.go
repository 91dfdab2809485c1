package waveform

// Weights is the channel weighting used for the composite score.
type Weights struct {
	Functional   float64 `json:"functional"`
	Quality      float64 `json:"quality"`
	Authenticity float64 `json:"authenticity"`
}

// DefaultWeights is the fixed 40/30/30 composite policy. It is injectable
// for tests but deliberately not exposed through project configuration.
func DefaultWeights() Weights {
	return Weights{Functional: 0.4, Quality: 0.3, Authenticity: 0.3}
}

// WaveformReport aggregates the three channels into one verdict signal.
type WaveformReport struct {
	Channels       []WaveformChannel `json:"channels"`
	AllPass        bool              `json:"all_pass"`
	CompositeScore float64           `json:"composite_score"`
}

// BuildReport combines the functional, quality, and authenticity channels
// under the default weighting.
func BuildReport(functional, quality, authenticity WaveformChannel) WaveformReport {
	return BuildReportWithWeights(functional, quality, authenticity, DefaultWeights())
}

// BuildReportWithWeights is BuildReport with an explicit weighting.
func BuildReportWithWeights(functional, quality, authenticity WaveformChannel, w Weights) WaveformReport {
	return WaveformReport{
		Channels: []WaveformChannel{functional, quality, authenticity},
		AllPass: functional.Overall == StatusPass &&
			quality.Overall == StatusPass &&
			authenticity.Overall == StatusPass,
		CompositeScore: round2(functional.Score*w.Functional +
			quality.Score*w.Quality +
			authenticity.Score*w.Authenticity),
	}
}
