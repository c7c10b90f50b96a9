package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/rollingdie/dice"
	"github.com/katalvlaran/rollingdie/grid"
	"github.com/katalvlaran/rollingdie/statespace"
)

// PathSymbol marks cells the die has already occupied.
const PathSymbol = '#'

// Renderer draws boards and dice with a fixed set of styles.
type Renderer struct {
	styles Styles
}

// New returns a Renderer using st.
func New(st Styles) *Renderer {
	return &Renderer{styles: st}
}

// Board draws g northernmost row first, cells separated by a space. The
// cells of path[0..upto] are overlaid with PathSymbol; a negative upto draws
// the bare layout.
func (r *Renderer) Board(g *grid.Grid, path []statespace.State, upto int) string {
	overlay := make(map[grid.Cell]bool, len(path))
	for i := 0; i <= upto && i < len(path); i++ {
		overlay[path[i].Cell] = true
	}

	var b strings.Builder
	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			c := grid.Cell{X: x, Y: y}
			if overlay[c] {
				b.WriteString(r.styles.Path.Render(string(PathSymbol)))
				continue
			}
			sym, _ := g.Symbol(c) // c is in bounds by construction
			b.WriteString(r.cellStyle(sym).Render(string(sym)))
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func (r *Renderer) cellStyle(sym rune) lipgloss.Style {
	switch sym {
	case grid.ObstacleSymbol:
		return r.styles.Obstacle
	case grid.StartSymbol:
		return r.styles.Start
	case grid.GoalSymbol:
		return r.styles.Goal
	default:
		return r.styles.Floor
	}
}

// Dice draws the unfolded die: north face above, south face below, and the
// middle row "left - top / bottom - right".
func (r *Renderer) Dice(d dice.Dice) string {
	top := r.styles.Top.Render(fmt.Sprint(d.Top))
	middle := fmt.Sprintf("%d - %s / %d - %d", d.Left(), top, d.Bottom(), d.Right)
	pad := strings.Repeat(" ", 4)
	lines := []string{
		pad + fmt.Sprint(d.North),
		pad + "|",
		middle,
		pad + "|",
		pad + fmt.Sprint(d.South()),
	}

	return strings.Join(lines, "\n")
}

// Frame places a board and a die side by side inside the box style.
func (r *Renderer) Frame(board, die string) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, board, "    ", die)
	return r.styles.Box.Render(body)
}

// Walkthrough writes the starting board and die followed by one frame per
// move of path. An empty path writes nothing.
func (r *Renderer) Walkthrough(w io.Writer, g *grid.Grid, path []statespace.State) error {
	if len(path) == 0 {
		return nil
	}

	sections := []string{
		r.styles.Title.Render("STARTING MAZE"),
		r.Board(g, nil, -1),
		r.styles.Title.Render("STARTING DICE ORIENTATION"),
		r.Dice(path[0].Dice),
	}
	for i, s := range path {
		sections = append(sections,
			r.styles.Title.Render(fmt.Sprintf("MOVE %d  %v", i, s.Cell)),
			r.Frame(r.Board(g, path, i), r.Dice(s.Dice)),
		)
	}

	if _, err := io.WriteString(w, strings.Join(sections, "\n\n")+"\n"); err != nil {
		return fmt.Errorf("render: write walkthrough: %w", err)
	}

	return nil
}
