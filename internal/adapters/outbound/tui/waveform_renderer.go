package tui

import (
	"fmt"
	"strings"

	"github.com/maidos/codeqc/internal/domain/waveform"
)

const barWidth = 30

// RenderWaveform renders the three-channel report with amplitude bars.
func RenderWaveform(report waveform.WaveformReport) string {
	var b strings.Builder

	title := headerStyle.Render("codeqc")
	subtitle := dimStyle.Render("Waveform Report")
	composite := titleStyle.Render(fmt.Sprintf("composite %.2f / 100", report.CompositeScore))

	overall := failStyle.Bold(true).Render("NOT ALL CHANNELS PASS")
	if report.AllPass {
		overall = passStyle.Bold(true).Render("ALL CHANNELS PASS")
	}

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + overall + "\n" + composite))
	b.WriteString("\n")

	for _, ch := range report.Channels {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %s  %s  %s\n",
			sectionStyle.Render(ch.ID),
			titleStyle.Render(ch.Label),
			statusStyle(ch.Overall).Render(string(ch.Overall)),
			dimStyle.Render(fmt.Sprintf("%.2f", ch.Score)),
		))

		for _, r := range ch.Readings {
			bar := amplitudeBar(r.Amplitude, r.Status)
			line := fmt.Sprintf("    %-3s %-16s %s %6.2f  %s",
				r.ID, r.Label, bar, r.Amplitude,
				statusStyle(r.Status).Render(string(r.Status)))
			if r.Detail != "" {
				line += "  " + faintStyle.Render(r.Detail)
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

// amplitudeBar draws a fixed-width bar scaled to the 0–100 amplitude.
func amplitudeBar(amplitude float64, status waveform.Status) string {
	if amplitude < 0 {
		amplitude = 0
	}
	if amplitude > 100 {
		amplitude = 100
	}
	filled := int(amplitude / 100 * barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return statusStyle(status).Render(bar)
}
