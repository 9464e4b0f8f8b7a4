package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/harmonic/internal/analysis"
	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/metrics"
	"github.com/san-kum/harmonic/internal/physics"
)

// Report renders run diagnostics: grid size, step, derived constants and an
// energy summary with sparkline per trajectory.
func Report(osc physics.Oscillator, res *dynamo.Result, theme Theme) (string, error) {
	summaries, err := metrics.SummarizeAll(osc, res)
	if err != nil {
		return "", err
	}
	st := NewStyles(theme)
	d := osc.Derived()

	var sb strings.Builder
	sb.WriteString(st.Title.Render("DAMPED OSCILLATOR") + "\n")
	row := func(label, value string) {
		sb.WriteString(st.Label.Render(label) + st.Value.Render(value) + "\n")
	}
	row("steps", fmt.Sprintf("%d", res.Len()))
	row("dt", fmt.Sprintf("%.6f", res.Dt))
	row("omega", fmt.Sprintf("%.6f", d.Omega))
	row("amplitude", fmt.Sprintf("%.6f", d.Amplitude))
	row("phase", fmt.Sprintf("%.6f", d.Phase))
	row("damping", fmt.Sprintf("%g (euler only)", osc.Damping))
	sb.WriteString(st.Separator(60) + "\n")

	header := fmt.Sprintf("%-12s %10s %10s %10s %10s %10s", "trajectory", "E0", "Emin", "Emax", "Efinal", "max drift")
	sb.WriteString(st.Muted.Render(header) + "\n")

	trs := res.Trajectories()
	for i, s := range summaries {
		line := fmt.Sprintf("%-12s %10.4f %10.4f %10.4f %10.4f %10.2e",
			s.Label, s.Initial, s.Min, s.Max, s.Final, s.MaxDrift)
		spark := st.Sparkline(metrics.Series(osc, trs[i]), 24)
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, st.SeriesStyle(i).Render(line), "  ", spark) + "\n")
	}
	sb.WriteString(st.Separator(60) + "\n")

	header = fmt.Sprintf("%-12s %10s %10s", "trajectory", "omega fft", "period")
	sb.WriteString(st.Muted.Render(header) + "\n")
	for i, tr := range trs {
		sb.WriteString(st.SeriesStyle(i).Render(fmt.Sprintf("%-12s %10s %10s",
			tr.Label, estimate(analysis.DominantFrequency(tr, res.Dt)), estimate(analysis.CrossingPeriod(tr, res.Dt)))) + "\n")
	}

	return sb.String(), nil
}

// estimate formats a frequency or period, or "n/a" when it could not be
// measured.
func estimate(v float64, err error) string {
	if err != nil {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", v)
}
