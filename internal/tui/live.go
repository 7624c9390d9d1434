// Package tui is the terminal front end: a bubbletea program that sweeps the
// lattice at a fixed rate and draws it with half-block glyphs.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"ising/internal/core"
	"ising/internal/logging"
	"ising/internal/render"
	"ising/internal/sim"
	"ising/pkg/ising"
)

const (
	frameRate = time.Second / 60
	// rows taken by the header, status and help lines
	chromeRows = 6
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// TickMsg drives the simulation clock.
type TickMsg time.Time

// Factory builds a lattice for the given seed.
type Factory func(seed int64) (*ising.Lattice, error)

// Model is the bubbletea model for the live view.
type Model struct {
	runner  *sim.Runner
	term    *render.Terminal
	step    *core.FixedStep
	meter   *core.RateMeter
	factory Factory
	seed    int64
	running bool
	last    sim.Sample
	err     error
}

// NewModel builds the first lattice from factory and seed. The view starts
// paused.
func NewModel(factory Factory, seed int64, tps int) (Model, error) {
	l, err := factory(seed)
	if err != nil {
		return Model{}, err
	}
	term := render.NewTerminal(0)
	runner := sim.NewRunner(l, sim.WithRenderer(term, 1))
	runner.Draw()
	return Model{
		runner:  runner,
		term:    term,
		step:    core.NewFixedStep(tps),
		meter:   &core.RateMeter{},
		factory: factory,
		seed:    seed,
	}, nil
}

func tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

// Update handles keys, resizes and clock ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			m.step.Reset()
			m.meter.Reset()
		case "n":
			if !m.running {
				m.last = m.runner.Advance()
			}
		case "r":
			m.reseed()
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if m.running {
			now := time.Time(msg)
			n := m.step.Due(now)
			for i := 0; i < n; i++ {
				m.last = m.runner.Advance()
			}
			m.meter.Add(now, n)
		}
		return m, tick()
	}
	return m, nil
}

// reseed rebuilds the lattice at the next seed. Seed 0 draws from entropy,
// so it stays 0 and every reseed gets a fresh stream.
func (m *Model) reseed() {
	seed := m.seed
	if seed != 0 {
		seed++
	}
	l, err := m.factory(seed)
	if err != nil {
		m.err = err
		logging.Logger().Error("reset failed", "seed", seed, "err", err)
		return
	}
	m.seed = seed
	m.err = nil
	m.last = sim.Sample{}
	m.step.Reset()
	m.meter.Reset()
	m.runner.Reset(l)
}

// resize fits the frame into the terminal: the lattice column count is
// bounded by the width left of the panel and by twice the usable rows.
func (m *Model) resize(width, height int) {
	cols := width * 2 / 3
	if rows := height - chromeRows; rows > 0 && 2*rows < cols {
		cols = 2 * rows
	}
	if cols < 1 {
		cols = 1
	}
	m.term.SetMaxCols(cols)
	m.runner.Draw()
}

// View renders the frame, the parameter panel and the magnetization plot.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("ISING") + "  ")
	status := "PAUSED"
	if m.running {
		status = "RUNNING"
	}
	seed := "entropy"
	if m.seed != 0 {
		seed = fmt.Sprint(m.seed)
	}
	s.WriteString(statusStyle.Render(fmt.Sprintf("%s  seed %s", status, seed)) + "\n\n")

	l := m.runner.Lattice()
	panel := strings.Join(sim.Describe(l, m.last, m.meter.Rate()).Lines(), "\n")
	if hist := m.runner.History(); len(hist) > 1 {
		chart := asciigraph.Plot(hist,
			asciigraph.Height(6),
			asciigraph.Width(40),
			asciigraph.LowerBound(-1),
			asciigraph.UpperBound(1),
			asciigraph.Caption("magnetization"))
		panel += "\n" + graphStyle.Render(chart)
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.term.String(), panelStyle.Render(panel)))
	s.WriteString("\n")
	if m.err != nil {
		s.WriteString(errStyle.Render(m.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render("space run/pause • n step • r reseed • q quit"))
	return s.String()
}

// Run starts the program on the alternate screen and blocks until it quits.
func Run(factory Factory, seed int64, tps int) error {
	m, err := NewModel(factory, seed, tps)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
