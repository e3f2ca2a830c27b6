// Package tui is the interactive parameter form. It edits a config,
// triggers full passes and previews the resulting scene on a braille
// canvas. A failed pass leaves the previous preview on screen.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/collatree/internal/analysis"
	"github.com/san-kum/collatree/internal/collatz"
	"github.com/san-kum/collatree/internal/config"
	"github.com/san-kum/collatree/internal/tree"
	"github.com/san-kum/collatree/internal/viz"
)

const formWidth = 44

// Model is the bubbletea model behind the parameter form.
type Model struct {
	cfg     *config.Config
	gen     *tree.Generator
	theme   viz.Theme
	cursor  int
	editing bool
	editBuf string
	err     error

	width  int
	height int
}

// NewApp builds the form and runs the first pass with cfg.
func NewApp(cfg *config.Config, rng collatz.Rand) *Model {
	m := &Model{
		cfg:    cfg.Clone(),
		gen:    tree.NewGenerator(rng),
		theme:  viz.GetTheme(cfg.Render.Theme),
		width:  120,
		height: 32,
	}
	m.generate()
	return m
}

func Run(cfg *config.Config, rng collatz.Rand) error {
	_, err := tea.NewProgram(NewApp(cfg, rng), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m *Model) generate() {
	_, m.err = m.gen.Regenerate(m.cfg.Params())
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(fields)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = fields[m.cursor].format(m.cfg)
	case "left", "h":
		fields[m.cursor].nudge(m.cfg, -1)
	case "right", "l":
		fields[m.cursor].nudge(m.cfg, 1)
	case "g":
		m.generate()
	case "t":
		m.theme = nextTheme(m.theme)
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		f := fields[m.cursor]
		v, err := f.parse(strings.TrimSpace(m.editBuf))
		if err != nil {
			m.err = err
			return m, nil
		}
		f.set(m.cfg, v)
		m.editing, m.editBuf, m.err = false, "", nil
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func nextTheme(cur viz.Theme) viz.Theme {
	for i, t := range viz.Themes {
		if t.Name == cur.Name {
			return viz.Themes[(i+1)%len(viz.Themes)]
		}
	}
	return viz.Themes[0]
}

func (m Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary)
	label := lipgloss.NewStyle().Foreground(m.theme.Muted)
	value := lipgloss.NewStyle().Foreground(m.theme.Text)
	cursor := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent)
	errStyle := lipgloss.NewStyle().Foreground(m.theme.Error)

	var form strings.Builder
	form.WriteString(title.Render("Collatz Conjecture Visualizer") + "\n\n")
	for i, f := range fields {
		marker := "  "
		v := f.format(m.cfg)
		if i == m.cursor {
			marker = cursor.Render("▸ ")
			if m.editing {
				v = m.editBuf + "█"
			}
		}
		form.WriteString(fmt.Sprintf("%s%s %s\n", marker,
			label.Render(fmt.Sprintf("%-28s", f.label+":")), value.Render(v)))
	}

	form.WriteString("\n")
	if m.err != nil {
		form.WriteString(errStyle.Render("error: "+m.err.Error()) + "\n")
	} else if scene := m.gen.Scene(); scene != nil {
		s := analysis.Summarize(scene, m.gen.Params().MaxDepth)
		form.WriteString(value.Render(fmt.Sprintf("%d paths, mean %.1f steps, %d truncated",
			s.Count, s.MeanSteps, s.Truncated)) + "\n")
		steps := make([]float64, len(scene.Items))
		for i, item := range scene.Items {
			steps[i] = float64(item.Steps)
		}
		form.WriteString(viz.Sparkline(steps, formWidth-6, m.theme) + "\n")
	}
	form.WriteString(label.Render("\n↑/↓ select  enter edit  ←/→ adjust\ng generate  t theme  q quit"))

	left := lipgloss.NewStyle().Width(formWidth).Padding(1, 2).Render(form.String())

	pw := m.width - formWidth - 6
	ph := m.height - 4
	if pw < 10 || ph < 4 {
		return left
	}
	preview := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Muted).
		Render(viz.RenderScene(m.gen.Scene(), pw, ph, m.theme))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, preview)
}
