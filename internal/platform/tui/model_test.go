package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-rover/internal/rover"
)

func newTestModel(t *testing.T, opts ...rover.Option) (Model, *rover.Engine) {
	t.Helper()
	engine, err := rover.New(opts...)
	if err != nil {
		t.Fatalf("rover.New() failed: %v", err)
	}
	return NewModel(engine, nil, Options{HistorySize: 3, ShowPath: true}), engine
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func TestKeysStepRover(t *testing.T) {
	m, engine := newTestModel(t)

	keys := []tea.KeyMsg{
		{Type: tea.KeyUp},
		{Type: tea.KeyRight},
		runes("k"),
		runes("e"),
		{Type: tea.KeyLeft},
	}
	for _, k := range keys {
		m = update(t, m, k)
	}

	if engine.Position() != (rover.Position{X: 1, Y: 2}) {
		t.Errorf("Position() = %v, expected (1, 2)", engine.Position())
	}
	if engine.PowerUsed() != 5 {
		t.Errorf("PowerUsed() = %d, expected 5", engine.PowerUsed())
	}
	if len(m.history) != 3 {
		t.Errorf("history length = %d, expected 3 (capped)", len(m.history))
	}
}

func TestKeyIntoEdgeIsFree(t *testing.T) {
	m, engine := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	if engine.PowerUsed() != 0 {
		t.Errorf("PowerUsed() = %d, expected 0", engine.PowerUsed())
	}
	if m.statusErr {
		t.Errorf("clamped step should not be an error, status %q", m.status)
	}
}

func TestPromptCommands(t *testing.T) {
	m, engine := newTestModel(t)

	m = update(t, m, runes(":"))
	if !m.prompting {
		t.Fatal("expected prompt to open on ':'")
	}

	// Keys typed into the prompt must not move the rover or quit.
	m = update(t, m, runes("N,N,E,E"))
	m = update(t, m, runes("q"))
	if engine.PowerUsed() != 0 {
		t.Fatal("typing in the prompt moved the rover")
	}
	if m.quitting {
		t.Fatal("typing q in the prompt should not quit")
	}

	m.prompt.SetValue("N,N,E,E")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.prompting {
		t.Error("prompt should close after enter")
	}
	if engine.Position() != (rover.Position{X: 2, Y: 2}) || engine.PowerUsed() != 4 {
		t.Errorf("engine = %v, expected position (2, 2), power 4", engine)
	}
}

func TestPromptCancel(t *testing.T) {
	m, engine := newTestModel(t)

	m = update(t, m, runes(":"))
	m.prompt.SetValue("E,E")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.prompting {
		t.Error("prompt should close on esc")
	}
	if engine.PowerUsed() != 0 {
		t.Error("cancelled prompt should not run commands")
	}
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantPos   rover.Position
		wantPower int
		wantErr   string
	}{
		{"goto", "goto 5 7", rover.Position{X: 5, Y: 7}, 12, ""},
		{"goto short form with comma", "g 3,1", rover.Position{X: 3, Y: 1}, 4, ""},
		{"commands", "N,E,N,E,N", rover.Position{X: 2, Y: 3}, 5, ""},
		{"blank", "   ", rover.Position{}, 0, ""},
		{"goto out of bounds", "goto 10 0", rover.Position{}, 0, "out of bounds"},
		{"goto bad number", "goto five 7", rover.Position{}, 0, "invalid x"},
		{"goto missing coordinate", "goto 5", rover.Position{}, 0, "two coordinates"},
		{"invalid commands", "N,X,Y", rover.Position{}, 0, `"X", "Y"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, engine := newTestModel(t)
			m.submit(tc.line)

			if engine.Position() != tc.wantPos || engine.PowerUsed() != tc.wantPower {
				t.Errorf("engine = %v, expected position %v, power %d", engine, tc.wantPos, tc.wantPower)
			}
			if tc.wantErr == "" {
				if m.statusErr {
					t.Errorf("unexpected error status %q", m.status)
				}
				return
			}
			if !m.statusErr || !strings.Contains(m.status, tc.wantErr) {
				t.Errorf("status = %q, expected error containing %q", m.status, tc.wantErr)
			}
		})
	}
}

func TestViewShowsState(t *testing.T) {
	m, _ := newTestModel(t)
	m.submit("goto 5 7")

	view := m.View()
	if !strings.Contains(view, "Position (5, 7)") {
		t.Errorf("view missing position:\n%s", view)
	}
	if !strings.Contains(view, "Power used 12") {
		t.Errorf("view missing power:\n%s", view)
	}
	if len(m.lastPath) != 12 {
		t.Errorf("lastPath has %d cells, expected 12", len(m.lastPath))
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	next, cmd := m.Update(runes("q"))

	if !next.(Model).quitting {
		t.Error("expected quitting after q")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
