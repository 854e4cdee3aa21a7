package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/Fossilia/eospyo"
	"github.com/Fossilia/eospyo/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectType modelState = iota
	stateInputValue
	stateShowResult
)

type interactiveModel struct {
	err      error
	names    []string
	input    textinput.Model
	result   string
	size     int
	width    int
	selected int
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	names := types.RegisteredNames()
	sort.Strings(names)

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	return &interactiveModel{
		names: names,
		width: width,
		state: stateSelectType,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputValue {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectType && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectType && m.selected < len(m.names)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectType:
				m.prepareInput()
				m.state = stateInputValue

			case stateInputValue:
				m.encode()
				m.state = stateShowResult

			case stateShowResult:
				m.state = stateSelectType
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputValue:
				m.state = stateSelectType
			case stateShowResult:
				m.state = stateSelectType
				m.result = ""
				m.err = nil
			}
		}
	}

	if m.state == stateInputValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = placeholderFor(m.names[m.selected])
	ti.Prompt = m.names[m.selected] + ": "
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) encode() {
	name := m.names[m.selected]
	v, err := constructValue(name, m.input.Value())
	if err != nil {
		m.err = err
		return
	}
	encoded := eospyo.Encode(v)
	m.result = hex.EncodeToString(encoded)
	m.size = len(encoded)
	m.err = nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Chain Type Packer"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString("Select a type to encode:\n\n")
		for i, name := range m.names {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + name))
			} else {
				b.WriteString(cursor + typeNameStyle.Render(name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputValue:
		b.WriteString(fmt.Sprintf("Encoding %s\n\n", typeNameStyle.Render(m.names[m.selected])))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter encode • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Encoding of %s:\n\n", typeNameStyle.Render(m.names[m.selected])))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(wrapHex(m.result, m.width-2)))
			b.WriteString(helpStyle.Render(fmt.Sprintf("\n\n%d bytes", m.size)))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

// placeholderFor hints at the textual form each type parses.
func placeholderFor(typeName string) string {
	switch typeName {
	case "bool":
		return "true"
	case "name":
		return "eosio.token"
	case "symbol":
		return "4,EOS"
	case "asset":
		return "1.0000 EOS"
	case "unixtimestamp":
		return "2021-08-31T12:00:00Z"
	case "string", "bytes":
		return "text"
	default:
		return "0"
	}
}

// wrapHex breaks a long hex string into terminal-width lines.
func wrapHex(s string, width int) string {
	if width < 8 {
		width = 8
	}
	var b strings.Builder
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteString("\n")
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
