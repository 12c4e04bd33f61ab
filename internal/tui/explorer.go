package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seralva/forcecurve/internal/curve"
	"github.com/seralva/forcecurve/internal/viz"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	editStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	chartMinWidth = 50
)

// param binds one editable field of the generator to a display name.
type param struct {
	name string
	unit string
	get  func(*curve.Generator) float64
	set  func(*curve.Generator, float64)
}

var params = []param{
	{"torque constant", "N·m/A",
		func(g *curve.Generator) float64 { return g.Motor.Kt },
		func(g *curve.Generator, v float64) { g.Motor.Kt = v; g.Motor.Kv = 0 }},
	{"resistance l-l", "Ω",
		func(g *curve.Generator) float64 { return g.Motor.Rll },
		func(g *curve.Generator, v float64) { g.Motor.Rll = v }},
	{"inductance l-l", "µH",
		func(g *curve.Generator) float64 { return g.Motor.Lll * 1e6 },
		func(g *curve.Generator, v float64) { g.Motor.Lll = v * 1e-6 }},
	{"copper temp", "°C",
		func(g *curve.Generator) float64 { return g.Motor.CopperTemp },
		func(g *curve.Generator, v float64) { g.Motor.CopperTemp = v }},
	{"bus voltage", "V",
		func(g *curve.Generator) float64 { return g.Motor.BusVoltage },
		func(g *curve.Generator, v float64) { g.Motor.BusVoltage = v }},
	{"phase current max", "A",
		func(g *curve.Generator) float64 { return g.Limits.IMax },
		func(g *curve.Generator, v float64) { g.Limits.IMax = v }},
	{"field weakening max", "A",
		func(g *curve.Generator) float64 { return g.Limits.IdFWMax },
		func(g *curve.Generator, v float64) { g.Limits.IdFWMax = v }},
	{"gear ratio", "",
		func(g *curve.Generator) float64 { return g.Transmission.Ratio },
		func(g *curve.Generator, v float64) { g.Transmission.Ratio = v }},
	{"gear efficiency", "",
		func(g *curve.Generator) float64 { return g.Transmission.Efficiency },
		func(g *curve.Generator, v float64) { g.Transmission.Efficiency = v }},
	{"drum radius", "m",
		func(g *curve.Generator) float64 { return g.Transmission.DrumRadius },
		func(g *curve.Generator, v float64) { g.Transmission.DrumRadius = v }},
	{"max speed", "m/s",
		func(g *curve.Generator) float64 { return g.Sweep.MaxSpeed },
		func(g *curve.Generator, v float64) { g.Sweep.MaxSpeed = v }},
}

// Model is the interactive explorer: a parameter panel on the left, the
// recomputed curve chart on the right. Every accepted edit rebuilds the
// whole table through the pure generator.
type Model struct {
	gen     curve.Generator
	table   *curve.Table
	cursor  int
	editing bool
	editBuf string
	editErr string
	width   int
	height  int
}

func New(gen curve.Generator) Model {
	return Model{
		gen:    gen,
		table:  gen.Generate(),
		width:  100,
		height: 30,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg)
		}
		return m.navKey(msg)
	}
	return m, nil
}

func (m Model) navKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(params)-1 {
			m.cursor++
		}
	case "enter", "e":
		m.editing = true
		m.editBuf = strconv.FormatFloat(params[m.cursor].get(&m.gen), 'g', -1, 64)
		m.editErr = ""
	case "d":
		m.gen.Limits.Direction = 1 - m.gen.Limits.Direction
		m.table = m.gen.Generate()
	case "r":
		m.gen = curve.NewGenerator()
		m.table = m.gen.Generate()
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
	case "enter":
		v, err := strconv.ParseFloat(strings.TrimSpace(m.editBuf), 64)
		if err != nil {
			m.editErr = "not a number"
			return m, nil
		}
		params[m.cursor].set(&m.gen, v)
		m.table = m.gen.Generate()
		m.editing = false
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 && strings.ContainsAny(s, "0123456789.eE+-") {
			m.editBuf += s
		}
	}
	return m, nil
}

func (m Model) View() string {
	var left strings.Builder
	left.WriteString(headerStyle.Render("cable machine parameters"))
	left.WriteString("\n\n")

	for i, p := range params {
		marker := "  "
		line := fmt.Sprintf("%-20s %10.4g %s", p.name, p.get(&m.gen), p.unit)
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
			if m.editing {
				line = fmt.Sprintf("%-20s %s", p.name, editStyle.Render(m.editBuf+"▌"))
			} else {
				line = cursorStyle.Render(line)
			}
		}
		left.WriteString(marker + line + "\n")
	}

	left.WriteString("\n")
	left.WriteString(fmt.Sprintf("%-20s %10s\n", "direction", m.gen.Limits.Direction.String()))
	if m.editErr != "" {
		left.WriteString(errStyle.Render(m.editErr) + "\n")
	}
	left.WriteString("\n")
	left.WriteString(dimStyle.Render("↑/↓ select · enter edit · d direction · r reset · q quit"))

	chartWidth := m.width - 48
	if chartWidth < chartMinWidth {
		chartWidth = chartMinWidth
	}
	chartHeight := m.height - 8
	if chartHeight < 10 {
		chartHeight = 10
	}
	right := viz.Chart(m.table, chartWidth, chartHeight)

	return lipgloss.JoinHorizontal(lipgloss.Top, left.String(), "   ", right) + "\n"
}

// Run starts the explorer in the alternate screen.
func Run(gen curve.Generator) error {
	p := tea.NewProgram(New(gen), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
