package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// detailBuilder builds key-value blocks with a fixed-width label column.
type detailBuilder struct {
	b            strings.Builder
	labelStyle   lipgloss.Style
	sectionStyle lipgloss.Style
}

func newDetailBuilder(labelWidth int, labelStyle, sectionStyle lipgloss.Style) *detailBuilder {
	return &detailBuilder{
		labelStyle:   labelStyle.Width(labelWidth),
		sectionStyle: sectionStyle,
	}
}

func (d *detailBuilder) row(label, value string) {
	fmt.Fprintf(&d.b, "  %s %s\n", d.labelStyle.Render(label), value)
}

// section writes a heading like "── title ──────...".
func (d *detailBuilder) section(title string) {
	pad := max(40-len(title), 4)
	heading := fmt.Sprintf("── %s %s", title, strings.Repeat("─", pad))
	d.b.WriteString(d.sectionStyle.Render(heading) + "\n")
}

func (d *detailBuilder) String() string {
	return d.b.String()
}
