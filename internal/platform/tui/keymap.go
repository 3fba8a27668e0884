package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// KeyMap defines the key bindings for the runner.
type KeyMap struct {
	Jump       key.Binding
	Duck       key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Duck, k.Pause, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Duck, k.Pause},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down", "duck"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Action translates a key message to a game action. Keys that only matter
// to the platform (help, screenshot) map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Duck):
		return core.ActionDuck
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// InputBuffer collects key presses between ticks and hands them to the game
// as one InputFrame.
//
// Terminals report no key-up events, so duck counts as held while the most
// recent duck press is younger than the hold window. Key auto-repeat keeps
// it fresh for as long as the key is down.
type InputBuffer struct {
	pressed    map[core.Action]bool
	lastDuck   time.Time
	holdWindow time.Duration
}

// NewInputBuffer creates an empty buffer.
func NewInputBuffer(holdWindow time.Duration) *InputBuffer {
	return &InputBuffer{
		pressed:    make(map[core.Action]bool),
		holdWindow: holdWindow,
	}
}

// Press records an action at the given time.
func (b *InputBuffer) Press(a core.Action, at time.Time) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionDuck:
		b.lastDuck = at
	}
	b.pressed[a] = true
}

// Frame drains the presses queued since the last call and snapshots the
// held set at now.
func (b *InputBuffer) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a := range b.pressed {
		in.Press(a)
		delete(b.pressed, a)
	}
	if !b.lastDuck.IsZero() && now.Sub(b.lastDuck) < b.holdWindow {
		in.Hold(core.ActionDuck)
	}
	return in
}
