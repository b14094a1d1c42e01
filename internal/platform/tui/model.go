// Package tui provides the Bubble Tea front end for the rover.
// It maps keys and typed commands onto a single engine and draws the grid.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-rover/internal/rover"
)

// Options controls presentation of the rover screen.
type Options struct {
	HistorySize int  // Number of recent operations shown
	ShowPath    bool // Mark the cells visited by the last operation
	Width       int  // Initial terminal width
	Height      int  // Initial terminal height
}

// Model is the Bubble Tea model for driving a rover.
type Model struct {
	engine *rover.Engine
	logger *log.Logger
	opts   Options

	keys   KeyMap
	help   help.Model
	prompt textinput.Model

	prompting bool
	history   []string
	lastPath  []rover.Position
	status    string
	statusErr bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model around an engine.
func NewModel(engine *rover.Engine, logger *log.Logger, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "N,E,E  or  goto 5 7"
	ti.CharLimit = 256

	h := help.New()
	h.ShowAll = false
	if opts.Width > 0 {
		h.Width = opts.Width
	}

	return Model{
		engine: engine,
		logger: logger,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		prompt: ti,
		status: "Ready. Press : to enter commands.",
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width
		m.opts.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input outside the prompt.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Prompt):
		m.prompting = true
		m.prompt.Reset()
		return m, m.prompt.Focus()
	}

	if d, ok := m.keys.Direction(msg); ok {
		m.runCommands(d.String(), rover.Directions{d})
	}
	return m, nil
}

// handlePromptKey processes keyboard input while the command prompt is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closePrompt()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		line := m.prompt.Value()
		m.closePrompt()
		m.submit(line)
		return m, nil
	case msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.Reset()
}

// submit interprets a prompt line: "goto X Y" moves to a target,
// anything else is a comma-delimited command list.
func (m *Model) submit(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	fields := strings.Fields(line)
	if fields[0] == "goto" || fields[0] == "g" {
		x, y, err := parseTarget(fields[1:])
		if err != nil {
			m.fail(line, err)
			return
		}
		m.moveTo(x, y)
		return
	}

	m.runCommands(line, rover.Text(line))
}

func (m *Model) runCommands(label string, input rover.CommandInput) {
	from := m.engine.Position()
	dirs, err := rover.Normalize(input)
	if err != nil {
		m.fail(label, err)
		return
	}
	if err := m.engine.ParseCommands(dirs); err != nil {
		m.fail(label, err)
		return
	}
	m.record(label, from, dirs)
}

func (m *Model) moveTo(x, y int) {
	label := fmt.Sprintf("goto %d %d", x, y)
	from := m.engine.Position()
	path, err := m.engine.Plan(x, y)
	if err != nil {
		m.fail(label, err)
		return
	}
	if err := m.engine.MoveTo(x, y); err != nil {
		m.fail(label, err)
		return
	}
	m.record(label+" ["+path.String()+"]", from, path)
}

func (m *Model) record(label string, from rover.Position, dirs rover.Directions) {
	pos, power := m.engine.Position(), m.engine.PowerUsed()
	if m.opts.ShowPath {
		m.lastPath = PathCells(m.engine.Grid(), from, dirs)
	}

	entry := fmt.Sprintf("%s -> %s, power %d", label, pos, power)
	m.status = entry
	m.statusErr = false
	m.pushHistory(entry)

	if m.logger != nil {
		m.logger.Debug("applied commands", "input", label, "steps", len(dirs), "position", pos.String(), "power", power)
	}
}

func (m *Model) fail(label string, err error) {
	m.status = err.Error()
	m.statusErr = true
	m.pushHistory(fmt.Sprintf("%s -> rejected", label))

	if m.logger != nil {
		m.logger.Warn("rejected commands", "input", label, "error", err)
	}
}

func (m *Model) pushHistory(entry string) {
	if m.opts.HistorySize <= 0 {
		return
	}
	m.history = append(m.history, entry)
	if len(m.history) > m.opts.HistorySize {
		m.history = m.history[len(m.history)-m.opts.HistorySize:]
	}
}

// parseTarget reads "X Y" or "X,Y" from the arguments of a goto command.
func parseTarget(args []string) (int, int, error) {
	if len(args) == 1 {
		args = strings.Split(args[0], ",")
	}
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("goto expects two coordinates, e.g. goto 5 7")
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("goto: invalid x %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("goto: invalid y %q", args[1])
	}
	return x, y, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	pos := m.engine.Position()
	grid := m.engine.Grid()

	sb.WriteString(titleStyle.Render("Grid Rover"))
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("  %dx%d", grid.Size(), grid.Size())))
	sb.WriteString("\n\n")

	sb.WriteString(RenderScreen(DrawGrid(grid, pos, m.lastPath)))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Position %s   Power used %d\n", pos, m.engine.PowerUsed()))
	if m.statusErr {
		sb.WriteString(errorStyle.Render(m.status))
	} else {
		sb.WriteString(statusStyle.Render(m.status))
	}
	sb.WriteString("\n")

	if len(m.history) > 0 {
		sb.WriteString("\n")
		for _, entry := range m.history {
			sb.WriteString(mutedStyle.Render("  " + entry))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	if m.prompting {
		sb.WriteString(m.prompt.View())
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for the given engine.
func Run(engine *rover.Engine, logger *log.Logger, opts Options) error {
	model := NewModel(engine, logger, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
