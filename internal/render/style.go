package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// Styler turns a Screen into styled terminal output. Each session gets its
// own, since SSH clients can have different color profiles.
type Styler struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewStyler creates a styler for the given renderer. A nil renderer uses
// the default one bound to stdout.
func NewStyler(r *lipgloss.Renderer) *Styler {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styler{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

func (st *Styler) style(p colorPair) lipgloss.Style {
	if s, ok := st.styles[p]; ok {
		return s
	}
	s := st.renderer.NewStyle()
	if !p.fg.IsDefault() {
		s = s.Foreground(lipgloss.Color(p.fg.Hex()))
	}
	if !p.bg.IsDefault() {
		s = s.Background(lipgloss.Color(p.bg.Hex()))
	}
	st.styles[p] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (st *Styler) Render(s *core.Screen) string {
	var sb strings.Builder
	// Half blocks are three bytes; leave room for escapes as well
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.FG, cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(st.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
