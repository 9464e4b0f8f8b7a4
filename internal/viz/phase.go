package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/harmonic/internal/dynamo"
)

// PhaseOptions controls a phase-plane plot. Width and Height are in
// character cells.
type PhaseOptions struct {
	Width  int
	Height int
	Theme  Theme
	// Hidden[i] suppresses trajectory i.
	Hidden []bool
	// Cursor marks sample index Cursor on every visible trajectory; negative
	// disables the marker.
	Cursor int
}

func DefaultPhaseOptions() PhaseOptions {
	return PhaseOptions{
		Width:  72,
		Height: 24,
		Theme:  ThemeMinimal,
		Cursor: -1,
	}
}

func (o PhaseOptions) hidden(i int) bool {
	return i < len(o.Hidden) && o.Hidden[i]
}

// Bounds is the plotted phase-plane window.
type Bounds struct {
	XMin, XMax, VMin, VMax float64
}

func phaseBounds(trs []dynamo.Trajectory, opts PhaseOptions) (Bounds, bool) {
	b := Bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	found := false
	for i, tr := range trs {
		if opts.hidden(i) {
			continue
		}
		for _, s := range tr.Samples {
			if !s.IsValid() {
				continue
			}
			b.XMin = math.Min(b.XMin, s.X)
			b.XMax = math.Max(b.XMax, s.X)
			b.VMin = math.Min(b.VMin, s.V)
			b.VMax = math.Max(b.VMax, s.V)
			found = true
		}
	}
	if !found {
		return Bounds{-1, 1, -1, 1}, false
	}

	xRange := b.XMax - b.XMin
	vRange := b.VMax - b.VMin
	if xRange == 0 {
		xRange = 1
	}
	if vRange == 0 {
		vRange = 1
	}
	b.XMin -= xRange * 0.05
	b.XMax += xRange * 0.05
	b.VMin -= vRange * 0.05
	b.VMax += vRange * 0.05
	return b, true
}

// Phase draws trajectories onto a fresh braille canvas in position (x axis)
// versus velocity (y axis).
func Phase(trs []dynamo.Trajectory, opts PhaseOptions) (*Canvas, Bounds) {
	c := NewCanvas(opts.Width, opts.Height)
	b, _ := phaseBounds(trs, opts)

	pw, ph := opts.Width*2, opts.Height*4
	project := func(s dynamo.Sample) (int, int) {
		px := int(float64(pw-1) * (s.X - b.XMin) / (b.XMax - b.XMin))
		py := int(float64(ph-1) * (s.V - b.VMin) / (b.VMax - b.VMin))
		return px, ph - 1 - py
	}

	for i, tr := range trs {
		if opts.hidden(i) || tr.Len() == 0 {
			continue
		}
		c.Pen(i)
		prevX, prevY := project(tr.Samples[0])
		c.Set(prevX, prevY)
		for _, s := range tr.Samples[1:] {
			if !s.IsValid() {
				break
			}
			x, y := project(s)
			c.DrawLine(prevX, prevY, x, y)
			prevX, prevY = x, y
		}
	}

	if opts.Cursor >= 0 {
		for i, tr := range trs {
			if opts.hidden(i) || opts.Cursor >= tr.Len() || !tr.Samples[opts.Cursor].IsValid() {
				continue
			}
			c.Pen(i)
			x, y := project(tr.Samples[opts.Cursor])
			for dx := -1; dx <= 1; dx++ {
				for dy := -2; dy <= 2; dy++ {
					c.Set(x+dx, y+dy)
				}
			}
		}
	}

	return c, b
}

// PhasePlot renders a framed, coloured phase-plane plot with axis labels
// and a legend.
func PhasePlot(trs []dynamo.Trajectory, opts PhaseOptions) string {
	if opts.Width <= 0 || opts.Height <= 0 {
		return ""
	}
	st := NewStyles(opts.Theme)
	c, b := Phase(trs, opts)
	lines := c.Lines(st.Series)

	var sb strings.Builder
	yTop := fmt.Sprintf("%8.2f", b.VMax)
	yMid := fmt.Sprintf("%8.2f", (b.VMax+b.VMin)/2)
	yBot := fmt.Sprintf("%8.2f", b.VMin)
	pad := strings.Repeat(" ", len(yTop))

	sb.WriteString(st.Muted.Render(yTop) + " " + st.Frame.Render("┌"+strings.Repeat("─", opts.Width)+"┐") + "\n")
	for i, line := range lines {
		label := pad
		if i == len(lines)/2 {
			label = yMid
		}
		sb.WriteString(st.Muted.Render(label) + " " + st.Frame.Render("│") + line + st.Frame.Render("│") + "\n")
	}
	sb.WriteString(st.Muted.Render(yBot) + " " + st.Frame.Render("└"+strings.Repeat("─", opts.Width)+"┘") + "\n")

	xLeft := fmt.Sprintf("%.2f", b.XMin)
	xRight := fmt.Sprintf("%.2f", b.XMax)
	gap := opts.Width + 2 - len(xLeft) - len(xRight)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(pad + " " + st.Muted.Render(xLeft+strings.Repeat(" ", gap)+xRight) + "\n")
	sb.WriteString(pad + " " + st.Muted.Render("x: position   y: velocity") + "\n")
	sb.WriteString(pad + " " + Legend(trs, opts) + "\n")

	return sb.String()
}

// Legend renders one coloured marker per trajectory. Hidden trajectories
// are shown muted.
func Legend(trs []dynamo.Trajectory, opts PhaseOptions) string {
	st := NewStyles(opts.Theme)
	parts := make([]string, 0, len(trs))
	for i, tr := range trs {
		if opts.hidden(i) {
			parts = append(parts, st.Muted.Render("○ "+tr.Label))
			continue
		}
		parts = append(parts, st.SeriesStyle(i).Render("● "+tr.Label))
	}
	return strings.Join(parts, "   ")
}
