// Package pager provides the interactive terminal pager used by xmldoc-cli
// to browse rendered documentation.
package pager

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	statusBarHeight = 1
	statusMsgDur    = 3 * time.Second
	logoText        = " xmldoc "
)

var (
	logoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#512bd4")).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#2f2f2f", Dark: "#e6e6e6"}).
			Background(lipgloss.AdaptiveColor{Light: "#e6e6e6", Dark: "#303030"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#2f2f2f", Dark: "#d9d9d9"}).
			Background(lipgloss.AdaptiveColor{Light: "#f5f5f5", Dark: "#1e1e1e"}).
			Padding(1, 2)
)

var helpEntries = []struct {
	keys string
	desc string
}{
	{"↑/k", "scroll up"},
	{"↓/j", "scroll down"},
	{"PgUp/b", "page up"},
	{"PgDn/f/space", "page down"},
	{"g/Home", "go to top"},
	{"G/End", "go to bottom"},
	{"c", "copy raw comment"},
	{"?", "toggle help"},
	{"q/Esc", "quit"},
}

// Document holds the content and metadata shown by the pager. Raw is the
// unrendered documentation fragment offered for clipboard copy.
type Document struct {
	Content string
	Raw     string
	Label   string
}

// Run launches an interactive pager over the rendered document.
func Run(doc Document) error {
	_, err := tea.NewProgram(newModel(doc), tea.WithAltScreen()).Run()

	return err
}

type statusMsgTimeoutMsg struct{}

type model struct {
	viewport      viewport.Model
	ready         bool
	width         int
	height        int
	doc           Document
	showHelp      bool
	statusMessage string
}

func newModel(doc Document) *model {
	vp := viewport.New(0, 0)
	vp.SetContent(doc.Content)
	vp.MouseWheelEnabled = true

	return &model{
		viewport: vp,
		doc:      doc,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		m.setSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.showHelp {
				m.showHelp = false
				m.setSize(m.width, m.height)

				return m, nil
			}

			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
			m.setSize(m.width, m.height)
		case "c":
			if m.doc.Raw != "" {
				termenv.Copy(m.doc.Raw)
				if err := clipboard.WriteAll(m.doc.Raw); err != nil {
					cmds = append(cmds, m.setStatusMessage(fmt.Sprintf("copy failed: %v", err)))
				} else {
					cmds = append(cmds, m.setStatusMessage("Copied raw comment"))
				}
			}
		case "down", "j":
			m.viewport.ScrollDown(1)
		case "up", "k":
			m.viewport.ScrollUp(1)
		case "pgdown", "f", " ", "space":
			m.viewport.PageDown()
		case "pgup", "b":
			m.viewport.PageUp()
		case "g", "home":
			m.viewport.GotoTop()
		case "G", "end":
			m.viewport.GotoBottom()
		}

	case statusMsgTimeoutMsg:
		m.statusMessage = ""
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) View() string {
	if !m.ready {
		return "Loading pager…"
	}

	var b strings.Builder

	b.WriteString(m.viewport.View())
	b.WriteRune('\n')
	b.WriteString(m.statusBar())
	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.helpView())
	}

	return b.String()
}

func (m *model) statusBar() string {
	width := m.viewport.Width
	if width <= 0 {
		width = lipgloss.Width(m.viewport.View())
	}

	percent := int(math.Round(math.Max(0, math.Min(1, m.viewport.ScrollPercent())) * 100))
	right := fmt.Sprintf(" %3d%%  ? Help ", percent)

	label := strings.TrimSpace(m.doc.Label)
	if label == "" {
		label = "xmldoc-cli"
	}
	if m.statusMessage != "" {
		label = m.statusMessage
	}

	logo := logoStyle.Render(logoText)
	available := max(width-lipgloss.Width(logo), 0)
	left := " " + label + " "
	padding := max(available-lipgloss.Width(left)-lipgloss.Width(right), 0)

	return logo + statusBarStyle.Render(left+strings.Repeat(" ", padding)+right)
}

func (m *model) helpView() string {
	lines := make([]string, 0, len(helpEntries))
	for _, entry := range helpEntries {
		lines = append(lines, fmt.Sprintf("%-12s %s", entry.keys, entry.desc))
	}

	content := strings.Join(lines, "\n")

	return helpStyle.Width(max(m.viewport.Width, lipgloss.Width(content))).Render(content)
}

func (m *model) setSize(width, height int) {
	m.viewport.Width = width

	contentHeight := height - statusBarHeight
	if m.showHelp {
		contentHeight -= len(helpEntries) + 2
	}

	if contentHeight < 1 {
		contentHeight = 1
	}

	m.viewport.Height = contentHeight
}

func (m *model) setStatusMessage(msg string) tea.Cmd {
	m.statusMessage = msg

	return tea.Tick(statusMsgDur, func(time.Time) tea.Msg {
		return statusMsgTimeoutMsg{}
	})
}
