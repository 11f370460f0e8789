package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Status types for provisioning steps
type Status string

const (
	StatusPending Status = "pending" // Not reached yet
	StatusDone    Status = "done"    // Step completed
	StatusSkipped Status = "skipped" // Idempotency check found nothing to do
	StatusWould   Status = "would"   // Dry-run placeholder
	StatusFailed  Status = "failed"  // Step aborted the run
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusDone:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case StatusFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case StatusSkipped:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusWould:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusGlyph returns the single-character marker for a status
func StatusGlyph(status Status) string {
	switch status {
	case StatusDone:
		return "✓"
	case StatusFailed:
		return "✗"
	case StatusSkipped:
		return "-"
	case StatusWould:
		return "~"
	default:
		return " "
	}
}

// StepView is what the renderer needs to announce a step
type StepView struct {
	Index   int
	Total   int
	Name    string
	Summary string
}

// ResultView is what the renderer needs to report a finished step
type ResultView struct {
	Name   string
	Status Status
	Detail string
}

// RenderStepHeader renders the banner line printed before a step runs
func RenderStepHeader(v StepView) string {
	counter := fmt.Sprintf("[%d/%d]", v.Index, v.Total)
	header := fmt.Sprintf("%s %s", pterm.Bold.Sprint(counter), pterm.Bold.Sprint(v.Name))
	if v.Summary != "" {
		header += "  " + MutedStyle.Render(v.Summary)
	}
	return header
}

// RenderResult renders a single finished step line
func RenderResult(v ResultView) string {
	glyph := StatusStyle(v.Status).Sprint(StatusGlyph(v.Status))
	line := fmt.Sprintf("%s %s", glyph, v.Name)
	if v.Detail != "" {
		line += " " + MutedStyle.Render("("+v.Detail+")")
	}
	return line
}

// RenderRunSummary renders the closing block after a run
func RenderRunSummary(results []ResultView) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Run summary"))
	b.WriteString("\n")

	var done, skipped, would, failed int
	for _, r := range results {
		b.WriteString(ListItemStyle.Render(RenderResult(r)))
		b.WriteString("\n")

		switch r.Status {
		case StatusDone:
			done++
		case StatusSkipped:
			skipped++
		case StatusWould:
			would++
		case StatusFailed:
			failed++
		}
	}

	counts := fmt.Sprintf("%d completed, %d skipped", done, skipped)
	if would > 0 {
		counts = fmt.Sprintf("%d would run, %s", would, counts)
	}
	if failed > 0 {
		counts += fmt.Sprintf(", %d failed", failed)
		b.WriteString("\n" + ErrorStyle.Render(counts))
	} else {
		b.WriteString("\n" + SuccessStyle.Render(counts))
	}

	return b.String()
}
