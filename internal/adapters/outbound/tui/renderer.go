package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"
	"github.com/maidos/codeqc/internal/application"
	"github.com/maidos/codeqc/internal/domain"
	"github.com/maidos/codeqc/internal/domain/gate"
	"github.com/maidos/codeqc/internal/domain/waveform"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderVerdict renders the full verification result: verdict box, DoD
// checklist, gate status, and the evidence table.
func RenderVerdict(result *application.VerifyResult) string {
	var b strings.Builder

	// ── Header ──
	verdict := failStyle.Bold(true).Render("REJECTED")
	if result.DoD.MissionComplete {
		verdict = passStyle.Bold(true).Render("MISSION COMPLETE")
	}
	title := headerStyle.Render("codeqc")
	subtitle := dimStyle.Render("Acceptance Verdict")
	composite := titleStyle.Render(fmt.Sprintf("composite %.2f / 100", result.Waveform.CompositeScore))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict + "\n" + composite))
	b.WriteString("\n\n")

	// ── DoD checklist ──
	b.WriteString("  " + sectionStyle.Render("Definition of Done") + "\n")
	for _, item := range result.DoD.Items {
		mark := failStyle.Render("✗")
		if item.Passed {
			mark = passStyle.Render("✓")
		}
		b.WriteString(fmt.Sprintf("    %s %d. %-22s %s\n",
			mark, item.ID, item.Name, faintStyle.Render(item.Verification)))
	}

	b.WriteString("\n" + separatorLine + "\n\n")

	// ── Gates ──
	b.WriteString("  " + sectionStyle.Render("Gates") + "\n")
	renderGate(&b, result.Gates.Entry)
	renderGate(&b, result.Gates.Mid)
	renderGate(&b, result.Gates.Exit)
	renderGate(&b, result.Gates.Accept)
	renderGate(&b, result.Hierarchy.G1)
	renderGate(&b, result.Hierarchy.G2)
	renderGate(&b, result.Hierarchy.G3)
	renderGate(&b, result.Hierarchy.G4)

	b.WriteString("\n" + separatorLine + "\n\n")

	// ── Evidence ──
	b.WriteString("  " + sectionStyle.Render("Evidence") + "\n")
	for _, name := range domain.AllArtifacts() {
		art := result.Evidence[name]
		mark := failStyle.Render("●")
		if art.Clean {
			mark = passStyle.Render("●")
		}
		b.WriteString(fmt.Sprintf("    %s %-11s %s\n", mark, art.Name, dimStyle.Render(art.Summary)))
	}

	return b.String()
}

func renderGate(b *strings.Builder, g gate.Result) {
	state := failStyle.Render("FAIL")
	if g.Passed {
		state = passStyle.Render("PASS")
	}
	b.WriteString(fmt.Sprintf("    %-8s %s", g.Name, state))

	if len(g.Criteria) > 0 {
		var bad []string
		for name, ok := range g.Criteria {
			if !ok {
				bad = append(bad, criterionLabel(name))
			}
		}
		if len(bad) > 0 {
			b.WriteString("  " + faintStyle.Render("failing: "+strings.Join(bad, ", ")))
		}
	} else {
		b.WriteString("  " + faintStyle.Render("(no criteria configured)"))
	}
	b.WriteString("\n")
}

// criterionLabel humanizes a camelCase criterion key for display.
func criterionLabel(name string) string {
	return strings.ToLower(strings.Join(camelcase.Split(name), " "))
}

func statusStyle(s waveform.Status) lipgloss.Style {
	switch s {
	case waveform.StatusPass:
		return passStyle
	case waveform.StatusWarn:
		return warnStyle
	default:
		return failStyle
	}
}
