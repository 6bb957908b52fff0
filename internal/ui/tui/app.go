package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/apereda/gradus/internal/domain"
)

type screen int

const (
	screenMenu screen = iota
	screenValue
	screenResult
)

type menuItem struct {
	title string
	desc  string
	scale domain.Scale
	quit  bool
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	menu  list.Model
	input textinput.Model

	activeScale domain.Scale
	result      domain.Conversion
	errText     string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{title: "Celsius to Fahrenheit", desc: "°C → °F", scale: domain.Celsius},
		menuItem{title: "Fahrenheit to Celsius", desc: "°F → °C", scale: domain.Fahrenheit},
		menuItem{title: "Quit", desc: "Exit the converter", quit: true},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Temperature Converter"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	in := textinput.New()
	in.Placeholder = "e.g. 25 or -12.5"
	in.CharLimit = 16
	in.Width = 24

	return model{
		theme: t,
		deps:  deps,
		scr:   screenMenu,
		menu:  l,
		input: in,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-8)
		return m, nil

	case tea.KeyMsg:
		switch m.scr {
		case screenMenu:
			return m.updateMenu(msg)
		case screenValue:
			return m.updateValue(msg)
		case screenResult:
			return m.updateResult(msg)
		}
	}

	switch m.scr {
	case screenMenu:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	case screenValue:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		if it.quit {
			return m, tea.Quit
		}
		m.activeScale = it.scale
		m.errText = ""
		m.input.SetValue("")
		m.scr = screenValue
		return m, m.input.Focus()
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateValue(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.scr = screenMenu
		m.errText = ""
		return m, nil

	case "enter":
		raw := strings.TrimSpace(m.input.Value())
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.errText = "Please enter a valid number."
			return m, nil
		}

		conv, err := m.deps.Converter.Execute(context.Background(), domain.Temperature{
			Value: v,
			Scale: m.activeScale,
		})
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}

		m.result = conv
		m.errText = ""
		m.scr = screenResult
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "enter", "esc", "b":
		m.scr = screenMenu
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Gradus") + "\n" +
		m.theme.Subtitle.Render("Celsius ↔ Fahrenheit converter") + "\n"

	switch m.scr {
	case screenMenu:
		help := m.theme.Help.Render("↑/↓ navigate • enter select • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenValue:
		var body strings.Builder
		body.WriteString(m.theme.Title.Render(fmt.Sprintf("Enter temperature in %s", m.activeScale)))
		body.WriteString("\n\n")
		body.WriteString(m.input.View())
		if m.errText != "" {
			body.WriteString("\n\n")
			body.WriteString(m.theme.Error.Render(m.errText))
		}
		body.WriteString("\n\n")
		body.WriteString(m.theme.Help.Render("enter convert • esc back"))
		return wrap.Render(header + "\n" + m.theme.Card.Render(body.String()))

	case screenResult:
		card := m.theme.Card.Render(
			m.theme.Result.Render(m.result.String()) + "\n\n" +
				m.theme.Help.Render("enter/esc menu • q quit"),
		)
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
