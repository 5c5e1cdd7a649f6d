package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/popgrowth/internal/logistic"
)

const (
	marginLeft   = 64.0
	marginRight  = 16.0
	marginTop    = 16.0
	marginBottom = 36.0
)

// SVGOptions controls chart geometry and colors.
type SVGOptions struct {
	Width       int
	Height      int
	Stroke      string
	Background  string
	AxisColor   string
	StrokeWidth float64
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:       720,
		Height:      400,
		Stroke:      "#00ffff",
		Background:  "#0a0a0a",
		AxisColor:   "#666688",
		StrokeWidth: 1.5,
	}
}

// SeriesToSVG draws the series as a connected line with t on the horizontal
// axis and N on the vertical axis. Undefined points end the current path
// segment; the line resumes at the next defined point.
func SeriesToSVG(series logistic.Series, opts SVGOptions) string {
	if opts.Width <= 0 || opts.Height <= 0 {
		d := DefaultSVGOptions()
		opts.Width, opts.Height = d.Width, d.Height
	}
	w, h := float64(opts.Width), float64(opts.Height)
	plotW := w - marginLeft - marginRight
	plotH := h - marginTop - marginBottom

	minY, maxY, ok := valueRange(series)
	if !ok {
		minY, maxY = 0, 1
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = math.Max(math.Abs(maxY)*0.1, 1)
	}
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeY = maxY - minY

	lastT := 0
	if n := len(series); n > 0 {
		lastT = series[n-1].T
	}
	maxT := math.Max(float64(lastT), 1)

	px := func(t int) float64 { return marginLeft + float64(t)/maxT*plotW }
	py := func(v float64) float64 { return marginTop + plotH - (v-minY)/rangeY*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Background))

	// axes
	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="1">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
</g>
`, opts.AxisColor,
		marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH,
		marginLeft, marginTop, marginLeft, marginTop+plotH))

	sb.WriteString(fmt.Sprintf(`<g fill="%s" font-family="monospace" font-size="11">
<text x="%.1f" y="%.1f" text-anchor="end">%.3f</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.3f</text>
<text x="%.1f" y="%.1f" text-anchor="middle">0</text>
<text x="%.1f" y="%.1f" text-anchor="middle">%d</text>
<text x="%.1f" y="%.1f" text-anchor="middle">t</text>
<text x="%.1f" y="%.1f" text-anchor="middle">N</text>
</g>
`, opts.AxisColor,
		marginLeft-4, marginTop+4, maxY,
		marginLeft-4, marginTop+plotH, minY,
		marginLeft, marginTop+plotH+14,
		marginLeft+plotW, marginTop+plotH+14, lastT,
		marginLeft+plotW/2, h-6,
		14.0, marginTop+plotH/2))

	path := seriesPath(series, px, py)
	if path != "" {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f" d="%s"/>
`, opts.Stroke, opts.StrokeWidth, path))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func seriesPath(series logistic.Series, px func(int) float64, py func(float64) float64) string {
	var sb strings.Builder
	penDown := false
	for _, pt := range series {
		if !pt.Defined {
			penDown = false
			continue
		}
		cmd := "L"
		if !penDown {
			cmd = "M"
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%s%.1f,%.1f", cmd, px(pt.T), py(pt.N)))
		penDown = true
	}
	return sb.String()
}

func valueRange(series logistic.Series) (lo, hi float64, ok bool) {
	for _, pt := range series {
		if !pt.Defined {
			continue
		}
		if !ok {
			lo, hi, ok = pt.N, pt.N, true
			continue
		}
		lo = math.Min(lo, pt.N)
		hi = math.Max(hi, pt.N)
	}
	return lo, hi, ok
}
