// Package tui renders run reports and the interactive prompts of the CLI.
package tui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"tasnim.dev/netlab/internal/orchestrator"
	"tasnim.dev/netlab/internal/tui/theme"
)

// RenderReport formats a run report for the terminal.
func RenderReport(r *orchestrator.Report) string {
	var b strings.Builder

	b.WriteString(theme.HeaderStyle.Render(theme.TitleStyle.Render("netlab " + r.Operation)))
	b.WriteString("\n")
	b.WriteString(renderSummary(r))

	if len(r.Phases) > 0 {
		b.WriteString(theme.SectionStyle.Render("Phases"))
		b.WriteString("\n")
		b.WriteString(phaseTable(r.Phases))
		b.WriteString("\n")
	}

	if len(r.Created) > 0 {
		b.WriteString(theme.SectionStyle.Render(fmt.Sprintf("Created (%d)", len(r.Created))))
		b.WriteString("\n")
		b.WriteString(resourceTable(r.Created))
		b.WriteString("\n")
	}

	if len(r.Deleted) > 0 {
		b.WriteString(theme.SectionStyle.Render(fmt.Sprintf("Deleted (%d)", len(r.Deleted))))
		b.WriteString("\n")
		b.WriteString(resourceTable(r.Deleted))
		b.WriteString("\n")
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(renderWarnings(r.Warnings))
	}

	if r.Err != nil {
		b.WriteString("\n")
		b.WriteString(theme.ErrorStyle.Render("Error: " + r.Err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func renderSummary(r *orchestrator.Report) string {
	scope := r.ScopeID
	if scope == "" {
		scope = r.Scope.String()
	} else if r.Scope.Name != "" {
		scope += " (" + r.Scope.Name + ")"
	}

	d := newDetailBuilder(8, theme.MutedStyle, theme.SectionStyle)
	d.row("vpc", theme.ValueStyle.Render(scope))
	d.row("run", theme.ValueStyle.Render(r.RunID))
	if !r.Started.IsZero() {
		d.row("started", r.Started.Format(time.RFC3339))
	}
	d.row("took", formatDuration(r.Duration))
	return d.String()
}

func renderWarnings(warnings []orchestrator.Warning) string {
	d := newDetailBuilder(24, theme.WarningStyle, theme.WarningStyle)
	d.section(fmt.Sprintf("Warnings (%d)", len(warnings)))
	for _, w := range warnings {
		status := "dropped"
		if w.Partial() {
			status = "partial"
		}
		d.row(w.Resource, fmt.Sprintf("%s %s: %v", theme.RenderStatus(status), w.Phase, w.Err))
	}
	return d.String()
}

func phaseTable(phases []orchestrator.PhaseRecord) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.MutedStyle).
		Headers("PHASE", "STATUS", "DURATION")
	for _, p := range phases {
		status := "ok"
		if p.Err != nil {
			status = "failed"
		}
		t.Row(p.Phase.String(), theme.RenderStatus(status), formatDuration(p.Duration))
	}
	return t.String()
}

func resourceTable(resources []orchestrator.ResourceRecord) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.MutedStyle).
		Headers("KIND", "ID", "NAME").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, res := range resources {
		name := res.Name
		if name == "" {
			name = "-"
		}
		t.Row(res.Kind, res.ID, name)
	}
	return t.String()
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
