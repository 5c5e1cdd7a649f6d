package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/popgrowth/internal/export"
	"github.com/san-kum/popgrowth/internal/logistic"
)

const sidebarW = 34

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	var body string
	if m.err != nil {
		body = m.viewError()
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, m.viewTable(), m.viewChart())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), " ", body))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewHeader() string {
	s := m.styles
	return s.title.Render(logistic.ModelName) + "  " + s.subtle.Render("theme: "+Themes[m.theme].Name) + "\n" +
		"  " + s.formula.Render(logistic.EquationODE) + "\n" +
		"  " + s.formula.Render(logistic.EquationClosedForm) + "\n"
}

func (m Model) viewSidebar() string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.title.Render("PARAMETERS") + "\n\n")

	for i, f := range m.fields {
		val := f.Format(f.Get(m.params))
		if m.editing && i == m.cursor {
			val = s.editing.Render(m.editBuf + "_")
		} else {
			val = s.value.Render(val)
		}
		if i == m.cursor {
			b.WriteString(s.selected.Render("▸ "+f.Label) + "\n")
		} else {
			b.WriteString(s.label.Render("  "+f.Label) + "\n")
		}
		b.WriteString(fmt.Sprintf("    %s  %s\n", val,
			s.subtle.Render(fmt.Sprintf("[%s..%s] ±%s", f.Format(f.Min), f.Format(f.Max), stepLabel(f)))))
	}
	if m.editErr != nil {
		b.WriteString(s.warn.Render(m.editErr.Error()) + "\n")
	}

	b.WriteString("\n" + s.Separator(sidebarW-4) + "\n")
	b.WriteString(s.label.Render("A = (K−N₀)/N₀  ") + s.value.Render(fmt.Sprintf("%.4f", m.params.A())) + "\n")
	if m.err == nil {
		if last, ok := m.series.Final(); ok && last.Defined && m.params.K > 0 {
			b.WriteString(s.label.Render("N(tmax)/K      ") + s.value.Render(fmt.Sprintf("%.3f", last.N/float64(m.params.K))) + "\n")
			b.WriteString(s.ProgressBar(last.N/float64(m.params.K), sidebarW-6) + "\n")
		}
		b.WriteString(s.Sparkline(m.series.Values(), sidebarW-6) + "\n")
	}
	if m.preset >= 0 {
		b.WriteString(s.subtle.Render("preset: "+m.presets[m.preset]) + "\n")
	}

	return s.panel.Width(sidebarW).Render(b.String())
}

func stepLabel(f logistic.Field) string {
	if f.Integer {
		return fmt.Sprintf("%d", int(f.Step))
	}
	return fmt.Sprintf("%g", f.Step)
}

func (m Model) viewTable() string {
	s := m.styles
	end := min(m.offset+m.tableRows, len(m.series))
	rows := make([][]string, 0, end-m.offset)
	for _, pt := range m.series[m.offset:end] {
		rows = append(rows, []string{fmt.Sprintf("%d", pt.T), export.CellN(pt)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Themes[m.theme].Border)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return s.cell
		}).
		Headers("t", "N").
		Rows(rows...)

	caption := fmt.Sprintf("rows %d–%d of %d", m.offset, max(end-1, m.offset), len(m.series))
	return s.title.Render("RESULTS") + "  " + s.subtle.Render(caption) + "\n" + t.Render()
}

func (m Model) viewChart() string {
	s := m.styles
	values := m.series.Values()

	defined := false
	for _, v := range values {
		if !math.IsNaN(v) {
			defined = true
			break
		}
	}
	if !defined {
		return s.warn.Render("no defined points to plot")
	}

	opts := []asciigraph.Option{
		asciigraph.Height(m.chartH),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("N over t, t = 0..%d", m.params.TMax)),
	}
	if w, ok := m.plotWidth(); ok {
		opts = append(opts, asciigraph.Width(w))
	}
	graph := asciigraph.Plot(values, opts...)
	return "\n" + s.title.Render("CHART") + "\n" + s.chart.Render(graph)
}

// plotWidth is the width the chart is resampled to. Resampling interpolates
// across NaN, so a series with undefined points is plotted one column per
// point to keep the gaps.
func (m Model) plotWidth() (int, bool) {
	if m.series.Undefined() > 0 {
		return 0, false
	}
	return m.chartW, true
}

func (m Model) viewError() string {
	s := m.styles
	msg := m.err.Error()
	if de, ok := logistic.AsDomainError(m.err); ok {
		msg = de.Explain()
	}
	return s.errPanel.Width(60).Render(s.errTitle.Render("Cannot compute the series") + "\n\n" + msg)
}
