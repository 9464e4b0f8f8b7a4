package export

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"

	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/viz"
)

// SVGOptions controls PhaseSVG output. Width and Height are in pixels.
type SVGOptions struct {
	Width  int
	Height int
	Theme  viz.Theme
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 640, Height: 480, Theme: viz.ThemeMinimal}
}

// PhaseSVG writes a phase-plane plot of trs as an SVG document, one path per
// trajectory, with a legend in the top-left corner.
func PhaseSVG(w io.Writer, trs []dynamo.Trajectory, opts SVGOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("svg size must be positive, got %dx%d", opts.Width, opts.Height)
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	points := 0
	for _, tr := range trs {
		for _, p := range tr.Samples {
			if !p.IsValid() {
				continue
			}
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.V), math.Max(maxY, p.V)
			points++
		}
	}
	if points == 0 {
		return dynamo.ErrEmptyTrajectory
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	width, height := float64(opts.Width), float64(opts.Height)
	project := func(s dynamo.Sample) (float64, float64) {
		return (s.X - minX) / rangeX * width, height - (s.V-minY)/rangeY*height
	}

	bw := bufio.NewWriter(w)
	colors := opts.Theme.Series()

	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Theme.Background)

	// axes through the origin when it is in view
	if minX < 0 && maxX > 0 {
		x, _ := project(dynamo.Sample{})
		fmt.Fprintf(bw, `<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="%s" stroke-width="0.5"/>`+"\n", x, x, opts.Height, opts.Theme.Muted)
	}
	if minY < 0 && maxY > 0 {
		_, y := project(dynamo.Sample{})
		fmt.Fprintf(bw, `<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-width="0.5"/>`+"\n", y, opts.Width, y, opts.Theme.Muted)
	}

	for i, tr := range trs {
		if tr.Len() == 0 {
			continue
		}
		color := opts.Theme.Text
		if i < len(colors) {
			color = colors[i]
		}
		fmt.Fprintf(bw, `<path id="%s" fill="none" stroke="%s" stroke-width="1.5" d="`, html.EscapeString(tr.Label), color)
		for j, p := range tr.Samples {
			if !p.IsValid() {
				break
			}
			x, y := project(p)
			if j == 0 {
				fmt.Fprintf(bw, "M%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(bw, " L%.1f,%.1f", x, y)
			}
		}
		bw.WriteString("\"/>\n")
	}

	for i, tr := range trs {
		color := opts.Theme.Text
		if i < len(colors) {
			color = colors[i]
		}
		y := 20 + 18*i
		fmt.Fprintf(bw, `<rect x="12" y="%d" width="12" height="4" fill="%s"/>`+"\n", y-6, color)
		fmt.Fprintf(bw, `<text x="30" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>`+"\n", y, opts.Theme.Text, html.EscapeString(tr.Label))
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}
