// Package tui provides the Bubble Tea paste-and-solve interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/unicoord/internal/coordinator"
	"github.com/verte-zerg/unicoord/internal/model"
	"github.com/verte-zerg/unicoord/internal/report"
)

const (
	focusInput = iota
	focusOutput
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	paneStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	activePaneStyle = paneStyle.Copy().BorderForeground(lipgloss.Color("#C89A3A"))
)

// Model implements the Bubble Tea coordinator UI.
type Model struct {
	cfg    model.ScriptConfig
	input  textarea.Model
	output viewport.Model
	focus  int

	result    coordinator.Result
	hasResult bool
	status    string

	copy func(string) error

	width  int
	height int
}

// NewModel constructs a coordinator TUI model with initial input text.
func NewModel(cfg model.ScriptConfig, initial string) *Model {
	input := textarea.New()
	input.Placeholder = "Paste one base64 recording per line (3 or more), then press ctrl+s"
	input.ShowLineNumbers = true
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetValue(initial)
	input.Focus()

	m := &Model{
		cfg:    cfg,
		input:  input,
		output: viewport.New(80, 10),
		copy:   clipboard.WriteAll,
	}
	if strings.TrimSpace(initial) != "" {
		m.solve()
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			m.solve()
			return m, nil
		case "ctrl+t":
			m.cfg.Macro = !m.cfg.Macro
			m.renderOutput()
			return m, nil
		case "ctrl+y":
			m.copyOutput()
			return m, nil
		case "tab":
			m.toggleFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.output, cmd = m.output.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	inputPane, outputPane := paneStyle, paneStyle
	if m.focus == focusInput {
		inputPane = activePaneStyle
	} else {
		outputPane = activePaneStyle
	}
	sections := []string{
		titleStyle.Render("Recordings"),
		inputPane.Render(m.input.View()),
		titleStyle.Render("Script"),
		outputPane.Render(m.output.View()),
	}
	if m.status != "" {
		sections = append(sections, mutedStyle.Render(m.status))
	}
	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) updateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// two titles, two bordered panes, status and footer
	chrome := 2 + 4 + 2
	inner := m.width - 2
	if inner < 10 {
		inner = 10
	}
	avail := m.height - chrome
	if avail < 4 {
		avail = 4
	}
	inputHeight := avail / 3
	m.input.SetWidth(inner)
	m.input.SetHeight(inputHeight)
	m.output.Width = inner
	m.output.Height = avail - inputHeight
	m.renderOutput()
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusOutput
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) solve() {
	m.result = coordinator.Parse(m.input.Value())
	m.hasResult = true
	m.status = ""
	m.renderOutput()
	m.output.GotoTop()
}

func (m *Model) renderOutput() {
	if !m.hasResult {
		m.output.SetContent(mutedStyle.Render("No script yet."))
		return
	}
	m.output.SetContent(renderResult(m.result, m.cfg, m.output.Width))
}

func (m *Model) scriptText() (string, bool) {
	if !m.hasResult {
		return "", false
	}
	out, ok := m.result.Output()
	if !ok {
		return "", false
	}
	return out.Render(m.cfg), true
}

func (m *Model) copyOutput() {
	text, ok := m.scriptText()
	if !ok {
		m.status = "Nothing to copy."
		return
	}
	if err := m.copy(text); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.status = "Copied script to clipboard."
}

func (m *Model) renderFooter() string {
	segments := []string{fmt.Sprintf("Recordings %d", len(coordinator.SplitLines(m.input.Value())))}
	if m.hasResult {
		if out, ok := m.result.Output(); ok {
			segments = append(segments, fmt.Sprintf("Points %d", len(out.Coords)))
		}
	}
	form := "Plain"
	if m.cfg.Macro {
		form = "Macro"
	}
	segments = append(segments, "Form "+form)
	segments = append(segments, "ctrl+s solve · ctrl+t form · ctrl+y copy · tab focus · esc quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}

func renderResult(res coordinator.Result, cfg model.ScriptConfig, width int) string {
	if err := res.Err(); err != nil {
		return errorStyle.Render(clipLines(err.Error(), width))
	}
	out, _ := res.Output()
	parts := []string{clipLines(out.Render(cfg), width)}
	if w := res.Warning(); w != "" {
		parts = append(parts, warningStyle.Render(clipLines(strings.TrimSuffix(w, "\n"), width)))
	}
	parts = append(parts, mutedStyle.Render(clipLines(strings.TrimSuffix(report.Coefficients(out.Coords), "\n"), width)))
	return strings.Join(parts, "\n\n")
}
