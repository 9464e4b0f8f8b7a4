package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/physics"
	"github.com/san-kum/harmonic/internal/viz"
)

const (
	minPlotWidth  = 20
	minPlotHeight = 8
	panelWidth    = 44
	playInterval  = time.Second / 20
)

type tickMsg time.Time

// Model is the bubbletea model of the phase-plane viewer. It only reads the
// Result it was built from.
type Model struct {
	res      *dynamo.Result
	osc      physics.Oscillator
	trs      []dynamo.Trajectory
	hidden   []bool
	cursor   int
	playing  bool
	showHelp bool
	theme    viz.Theme
	width    int
	height   int
}

func New(osc physics.Oscillator, res *dynamo.Result, theme viz.Theme) Model {
	trs := res.Trajectories()
	return Model{
		res:    res,
		osc:    osc,
		trs:    trs,
		hidden: make([]bool, len(trs)),
		theme:  theme,
		width:  72,
		height: 24,
	}
}

// Run starts the viewer on the alternate screen and blocks until it exits.
func Run(osc physics.Oscillator, res *dynamo.Result, theme viz.Theme) error {
	_, err := tea.NewProgram(New(osc, res, theme), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Cursor() int          { return m.cursor }
func (m Model) Hidden(i int) bool    { return i >= 0 && i < len(m.hidden) && m.hidden[i] }
func (m Model) Playing() bool        { return m.playing }
func (m Model) Theme() viz.Theme     { return m.theme }
func (m Model) PlotSize() (int, int) { return m.width, m.height }

func (m Model) Init() tea.Cmd { return nil }

func tick() tea.Cmd {
	return tea.Tick(playInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(minPlotWidth, msg.Width-panelWidth-14)
		m.height = max(minPlotHeight, msg.Height-8)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "1", "a":
			m.toggle(0)
		case "2", "e":
			m.toggle(1)
		case "3", "v":
			m.toggle(2)
		case "left", "h":
			m.scrub(-1)
		case "right", "l":
			m.scrub(1)
		case "[":
			m.scrub(-10)
		case "]":
			m.scrub(10)
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = m.res.Len() - 1
		case " ":
			m.playing = !m.playing
			if m.playing {
				if m.cursor >= m.res.Len()-1 {
					m.cursor = 0
				}
				return m, tick()
			}
		case "t":
			m.theme = m.theme.Next()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		m.scrub(1)
		if m.cursor >= m.res.Len()-1 {
			m.playing = false
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) toggle(i int) {
	if i < len(m.hidden) {
		m.hidden[i] = !m.hidden[i]
	}
}

// scrub moves the cursor by delta samples, clamped to the grid.
func (m *Model) scrub(delta int) {
	m.cursor = max(0, min(m.cursor+delta, m.res.Len()-1))
}

func (m Model) View() string {
	st := viz.NewStyles(m.theme)

	opts := viz.PhaseOptions{
		Width:  m.width,
		Height: m.height,
		Theme:  m.theme,
		Hidden: m.hidden,
		Cursor: m.cursor,
	}
	plot := viz.PhasePlot(m.trs, opts)

	var s strings.Builder
	s.WriteString(st.Title.Render("PHASE PLANE") + "\n\n")

	status := "PAUSED"
	if m.playing {
		status = "PLAYING"
	}
	s.WriteString(st.Label.Render("status") + st.Value.Render(status) + "\n")
	s.WriteString(st.Label.Render("step") + st.Value.Render(fmt.Sprintf("%d / %d", m.cursor, m.res.Len()-1)) + "\n")
	s.WriteString(st.Label.Render("time") + st.Value.Render(fmt.Sprintf("%.4f", m.res.Times[m.cursor])) + "\n")
	s.WriteString(st.Label.Render("dt") + st.Value.Render(fmt.Sprintf("%.6f", m.res.Dt)) + "\n")
	s.WriteString(st.ProgressBar(float64(m.cursor)/float64(max(1, m.res.Len()-1)), 30) + "\n\n")

	for i, tr := range m.trs {
		name := st.SeriesStyle(i).Render(tr.Label)
		if m.Hidden(i) {
			name = st.Muted.Render(tr.Label + " (hidden)")
		}
		smp := tr.Samples[m.cursor]
		s.WriteString(name + "\n")
		s.WriteString(st.Label.Render("  x, v") + st.Value.Render(fmt.Sprintf("%9.4f %9.4f", smp.X, smp.V)) + "\n")
		s.WriteString(st.Label.Render("  energy") + st.Value.Render(fmt.Sprintf("%9.4f", m.osc.Energy(smp))) + "\n")
	}

	s.WriteString(st.Help.Render("1/2/3:Toggle  ←→:Step  [ ]:±10\nSP:Play  T:Theme  ?:Help  Q:Quit"))

	panel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Muted).
		Padding(0, 2).
		Width(panelWidth).
		Render(s.String())

	body := lipgloss.JoinHorizontal(lipgloss.Top, plot, panel)
	if m.showHelp {
		return helpText + "\n" + body
	}
	return body
}

const helpText = `
  1 / a     toggle analytical
  2 / e     toggle euler
  3 / v     toggle verlet
  ← →       step one sample
  [ ]       step ten samples
  g / G     first / last sample
  space     play / pause
  t         cycle theme
  q         quit
`
