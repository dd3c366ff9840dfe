package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/castle-adventure/internal/engine"
	"github.com/tatianab/castle-adventure/internal/logger"
	"github.com/tatianab/castle-adventure/internal/narration"
	"github.com/tatianab/castle-adventure/internal/world"
)

type sessionState int

const (
	stateTitle sessionState = iota
	statePlaying
	stateWon
)

const prompt = ">"

type model struct {
	state     sessionState
	engine    *engine.Engine
	session   *engine.Session
	textInput textinput.Model
	viewport  viewport.Model
	ready     bool
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	emphasisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

func NewModel(eng *engine.Engine) model {
	ti := textinput.New()
	ti.Prompt = prompt + " "
	ti.Placeholder = "look, go <direction>, take <item>, use <item>"
	ti.CharLimit = 156
	ti.Width = 40

	return model{
		state:     stateTitle,
		engine:    eng,
		textInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			switch m.state {
			case stateTitle:
				return m.start(), textinput.Blink
			case stateWon:
				return m.restart(), nil
			case statePlaying:
				return m.submit()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.logWidth(), msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = m.logWidth()
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.gameLog)
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// start opens a new session and shows its intro.
func (m model) start() model {
	m.session = m.engine.NewSession()
	m.state = statePlaying
	m.gameLog = ""
	m.appendNarration(m.session.Start())
	m.textInput.Reset()
	m.textInput.Focus()
	return m
}

func (m model) restart() model {
	m.session = nil
	m.state = stateTitle
	m.gameLog = ""
	m.viewport.SetContent("")
	m.textInput.Reset()
	m.textInput.Blur()
	return m
}

// submit sends the typed line to the session. Empty lines are echoed but
// never reach the engine.
func (m model) submit() (tea.Model, tea.Cmd) {
	action := strings.TrimSpace(m.textInput.Value())
	m.textInput.Reset()

	switch action {
	case "/quit":
		return m, tea.Quit
	case "/restart":
		return m.restart(), nil
	}

	m.appendAction(action)
	if action == "" {
		return m, nil
	}

	m.appendNarration(m.session.Input(action))
	if m.session.Won() {
		m.state = stateWon
		m.textInput.Blur()
	}
	return m, nil
}

// appendAction echoes the player's line as typed, without markup rendering.
func (m *model) appendAction(action string) {
	m.gameLog += "\n\n" + userStyle.Width(m.logWidth()).Render(prompt+" "+action) + "\n\n"
	m.refresh()
}

func (m *model) appendNarration(text string) {
	wrapped := narration.Wrap(text, m.logWidth())
	m.gameLog += gameStyle.Render(narration.Render(wrapped, emphasisStyle)) + "\n"
	m.refresh()
}

func (m *model) refresh() {
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateTitle:
		title := m.engine.World().Title()
		if title == "" {
			title = "Adventure"
		}
		s = fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			titleStyle.Render(title),
			"Press Enter to begin.",
			helpStyle.Render("Esc quits at any time."),
		)

	case statePlaying, stateWon:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)

		help := helpStyle.Render("Commands: look, go <direction>, take <item>, use <item>, /restart, /quit")
		input := m.textInput.View()
		if m.state == stateWon {
			help = helpStyle.Render("Press Enter to play again or Esc to quit.")
			input = ""
		}

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+input,
			"\n"+help,
		)
	}

	return "\n" + s + "\n"
}

func (m model) renderState() string {
	if m.session == nil {
		return ""
	}

	location := titleStyle.Render("LOCATION") + "\n" + m.session.Location() + "\n\n"

	exitsTitle := titleStyle.Render("EXITS") + "\n"
	exits := ""
	if room, ok := m.engine.World().Room(m.session.Location()); ok {
		for _, exit := range room.Exits() {
			exits += fmt.Sprintf("%s: %s\n", exit.Direction, exit.Destination)
		}
	}
	exits += "\n"

	invTitle := titleStyle.Render("INVENTORY") + "\n"
	inventory := ""
	items := m.session.Inventory()
	if len(items) == 0 {
		inventory = "(empty)"
	} else {
		for _, item := range items {
			inventory += "- " + item + "\n"
		}
	}

	content := location + exitsTitle + exits + invTitle + inventory

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

// Run plays eng's world until the player quits.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start plays the built-in castle with logging switched off.
func Start() error {
	w, err := world.Castle()
	if err != nil {
		return err
	}
	return Run(engine.NewEngine(w, logger.Discard()))
}
