package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/histream/stream"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// valueLimit caps the array elements shown per attribute.
const valueLimit = 8

var errNotTerminal = errors.New("inspect needs an interactive terminal")

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "browse the node tree of a stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}
			return runInspect(args[0])
		},
	}
}

type inspectModel struct {
	err      error
	stream   *stream.Stream
	filename string
	path     []stream.Node
	children []stream.Node
	attrs    []stream.Attribute
	filter   textinput.Model
	selected int
	state    inspectState
}

type inspectState int

const (
	stateBrowse inspectState = iota
	stateFilter
)

func newInspectModel(filename string) *inspectModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "tag prefix"
	ti.CharLimit = 4
	ti.Width = 10
	return &inspectModel{
		filename: filename,
		filter:   ti,
		state:    stateBrowse,
	}
}

type loadedMsg struct {
	err    error
	stream *stream.Stream
}

func (m *inspectModel) Init() tea.Cmd {
	return m.load
}

func (m *inspectModel) load() tea.Msg {
	s, err := openFile(m.filename)
	return loadedMsg{stream: s, err: err}
}

func (m *inspectModel) current() stream.Node {
	if len(m.path) == 0 {
		return stream.Node{}
	}
	return m.path[len(m.path)-1]
}

// refresh reloads the child and attribute lists of the current node.
func (m *inspectModel) refresh() {
	node := m.current()
	prefix := m.filter.Value()

	m.children = m.children[:0]
	for c := range node.Children() {
		if strings.HasPrefix(c.Tag().String(), prefix) {
			m.children = append(m.children, c)
		}
	}
	m.attrs = m.attrs[:0]
	for a := range node.Attributes() {
		m.attrs = append(m.attrs, a)
	}
	m.selected = min(m.selected, max(len(m.children)-1, 0))
}

func (m *inspectModel) descend() {
	if m.selected >= len(m.children) {
		return
	}
	m.path = append(m.path, m.children[m.selected])
	m.selected = 0
	m.filter.Reset()
	m.refresh()
}

func (m *inspectModel) ascend() {
	if len(m.path) <= 1 {
		return
	}
	m.path = m.path[:len(m.path)-1]
	m.selected = 0
	m.filter.Reset()
	m.refresh()
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.stream = msg.stream
		m.path = []stream.Node{msg.stream.Root()}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateFilter {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.children)-1 {
				m.selected++
			}

		case "enter", "right", "l":
			m.descend()

		case "backspace", "left", "h", "esc":
			m.ascend()

		case "/":
			m.state = stateFilter
			return m, m.filter.Focus()
		}
	}
	return m, nil
}

func (m *inspectModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.state = stateBrowse
		m.filter.Blur()
		return m, nil
	case "esc":
		m.state = stateBrowse
		m.filter.Blur()
		m.filter.Reset()
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *inspectModel) breadcrumb() string {
	parts := make([]string, len(m.path))
	for i, n := range m.path {
		parts[i] = n.Tag().String()
	}
	return strings.Join(parts, " / ")
}

func (m *inspectModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.stream == nil {
		return "Loading stream..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("histream"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("  ")
	b.WriteString(m.breadcrumb())
	b.WriteString("\n\n")

	if len(m.attrs) > 0 {
		b.WriteString("Attributes:\n")
		for _, a := range m.attrs {
			fmt.Fprintf(&b, "  %s %s %s\n",
				tagStyle.Render(a.Tag().String()),
				typeStyle.Render(a.Type().String()),
				formatValue(a, valueLimit))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Children (%d):\n", m.current().NumChildren())
	if len(m.children) == 0 {
		b.WriteString(helpStyle.Render("  none"))
		b.WriteString("\n")
	}
	for i, c := range m.children {
		line := fmt.Sprintf("%s  %d attrs, %d children", c.Tag(), c.NumAttributes(), c.NumChildren())
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.state == stateFilter || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ select • enter open • backspace up • / filter • q quit"))

	return b.String()
}

func runInspect(filename string) error {
	p := tea.NewProgram(newInspectModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
