package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kwsdr/gridmenu/internal/logging"
	"github.com/kwsdr/gridmenu/internal/menu"
	"github.com/kwsdr/gridmenu/internal/remote"
	"github.com/kwsdr/gridmenu/internal/surface"
)

// RemoteEventMsg delivers one event from the remote input bridge into the
// update loop.
type RemoteEventMsg struct {
	Event remote.Event
}

// keyMap defines the simulator key bindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Accept  key.Binding
	Cancel  key.Binding
	Display key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Accept, k.Cancel, k.Display, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Accept, k.Cancel},
		{k.Display, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Display: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "display on/off"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the simulator: a menu controller, the buffer it draws into, and
// the chrome around it.
type Model struct {
	ctrl  *menu.Controller
	buf   *surface.Buffer
	title string

	keys keyMap
	help help.Model

	width  int
	height int
}

// New creates a simulator model for a controller drawing into buf.
func New(ctrl *menu.Controller, buf *surface.Buffer, title string) Model {
	return Model{
		ctrl:  ctrl,
		buf:   buf,
		title: title,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
}

// Init implements tea.Model. The menu takes the display on startup.
func (m Model) Init() tea.Cmd {
	m.ctrl.Activate()
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case RemoteEventMsg:
		m.dispatch(msg.Event)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			logging.LogInputEvent("keyboard", string(remote.EventUp))
			m.ctrl.Up()
		case key.Matches(msg, m.keys.Down):
			logging.LogInputEvent("keyboard", string(remote.EventDown))
			m.ctrl.Down()
		case key.Matches(msg, m.keys.Accept):
			logging.LogInputEvent("keyboard", string(remote.EventAccept))
			m.ctrl.Accept()
		case key.Matches(msg, m.keys.Cancel):
			logging.LogInputEvent("keyboard", string(remote.EventCancel))
			m.ctrl.Cancel()
		case key.Matches(msg, m.keys.Display):
			if m.ctrl.Active() {
				m.ctrl.Deactivate()
				m.buf.Clear()
			} else {
				m.ctrl.Activate()
			}
		}
	}
	return m, nil
}

// dispatch feeds one remote event into the controller.
func (m Model) dispatch(e remote.Event) {
	switch e {
	case remote.EventUp:
		m.ctrl.Up()
	case remote.EventDown:
		m.ctrl.Down()
	case remote.EventAccept:
		m.ctrl.Accept()
	case remote.EventCancel:
		m.ctrl.Cancel()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(PanelStyle.Render(m.renderPanel()))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderPanel turns the buffer's cells into styled terminal text. Runs of
// identically-colored cells share one style call so the plain characters
// stay contiguous in the output.
func (m Model) renderPanel() string {
	var b strings.Builder
	for y := 0; y < m.buf.Rows(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}

		var run strings.Builder
		var runFG, runBG surface.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(termColor(runFG)).
				Background(termColor(runBG))
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}

		for x := 0; x < m.buf.Cols(); x++ {
			cell := m.buf.CellAt(x, y)
			if run.Len() > 0 && (cell.FG != runFG || cell.BG != runBG) {
				flush()
			}
			runFG, runBG = cell.FG, cell.BG
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return b.String()
}

func (m Model) statusLine() string {
	if !m.ctrl.Active() {
		return StatusStyle.Render("display off")
	}
	if m.ctrl.Editing() {
		return EditingStyle.Render("editing")
	}
	return StatusStyle.Render("browsing")
}
