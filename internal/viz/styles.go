package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles is the per-theme style set used by View.
type styles struct {
	title    lipgloss.Style
	formula  lipgloss.Style
	subtle   lipgloss.Style
	panel    lipgloss.Style
	label    lipgloss.Style
	selected lipgloss.Style
	value    lipgloss.Style
	editing  lipgloss.Style
	header   lipgloss.Style
	cell     lipgloss.Style
	chart    lipgloss.Style
	errTitle lipgloss.Style
	errPanel lipgloss.Style
	warn     lipgloss.Style
	sparkHi  lipgloss.Style
	sparkMid lipgloss.Style
	sparkLo  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		formula:  lipgloss.NewStyle().Foreground(t.Accent),
		subtle:   lipgloss.NewStyle().Foreground(t.Muted),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1),
		label:    lipgloss.NewStyle().Foreground(t.Muted),
		selected: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		value:    lipgloss.NewStyle().Foreground(t.Text),
		editing:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		header:   lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Padding(0, 1),
		cell:     lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1).Align(lipgloss.Right),
		chart:    lipgloss.NewStyle().Foreground(t.Secondary),
		errTitle: lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		errPanel: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(t.Error).Padding(1, 2),
		warn:     lipgloss.NewStyle().Foreground(t.Warning),
		sparkHi:  lipgloss.NewStyle().Foreground(t.Success),
		sparkMid: lipgloss.NewStyle().Foreground(t.Warning),
		sparkLo:  lipgloss.NewStyle().Foreground(t.Error),
	}
}

// ProgressBar renders how far a ratio in [0, 1] has filled.
func (s styles) ProgressBar(ratio float64, width int) string {
	if math.IsNaN(ratio) {
		ratio = 0
	}
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if ratio > 0.8 {
		return s.sparkHi.Render(bar)
	} else if ratio > 0.4 {
		return s.sparkMid.Render(bar)
	}
	return s.sparkLo.Render(bar)
}

// Sparkline renders values as block characters, leaving a blank cell for
// NaN.
func (s styles) Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	rng := hi - lo
	if rng == 0 || math.IsInf(rng, 0) || math.IsNaN(rng) {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		v := values[i*step]
		if math.IsNaN(v) {
			result.WriteRune(' ')
			continue
		}
		norm := (v - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		idx = min(max(idx, 0), len(chars)-1)

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			result.WriteString(s.sparkHi.Render(c))
		case norm > 0.3:
			result.WriteString(s.sparkMid.Render(c))
		default:
			result.WriteString(s.sparkLo.Render(c))
		}
	}

	return result.String()
}

// Separator is a decorative rule of the given width.
func (s styles) Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return s.subtle.Render(left + " ◆ " + right)
}
