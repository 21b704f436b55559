package ui

import (
	"fmt"
	"io"
	"strings"

	"connect4/game"

	"github.com/muesli/termenv"
)

// Renderer draws boards to a terminal, colouring markers when the output
// supports it.
type Renderer struct {
	out   *termenv.Output
	clear bool
}

type Option func(r *Renderer)

// WithClear clears the screen before every board.
func WithClear() Option {
	return func(r *Renderer) {
		r.clear = true
	}
}

// WithProfile forces a colour profile instead of detecting one from w.
func WithProfile(profile termenv.Profile) Option {
	return func(r *Renderer) {
		r.out = termenv.NewOutput(r.out.Writer(), termenv.WithProfile(profile))
	}
}

func NewRenderer(w io.Writer, options ...Option) *Renderer {
	r := &Renderer{out: termenv.NewOutput(w)}
	for _, option := range options {
		option(r)
	}
	return r
}

// Render writes state's board followed by the 1-based column numbers.
func (r *Renderer) Render(state *game.State) {
	if r.clear {
		r.out.ClearScreen()
	}
	fmt.Fprint(r.out, r.Format(state))
}

// Format returns the rendered board without writing it.
func (r *Renderer) Format(state *game.State) string {
	var sb strings.Builder
	cells := state.Cells()
	for row := 0; row < game.Rows; row++ {
		markers := make([]string, game.Columns)
		for column := 0; column < game.Columns; column++ {
			markers[column] = r.marker(cells[row][column])
		}
		sb.WriteString(strings.Join(markers, " "))
		sb.WriteString("\n")
	}

	numbers := make([]string, game.Columns)
	for column := range numbers {
		numbers[column] = fmt.Sprint(column + 1)
	}
	sb.WriteString(strings.Join(numbers, " "))
	sb.WriteString("\n")
	return sb.String()
}

// Outcome announces the end of a game.
func (r *Renderer) Outcome(result game.Marker) {
	if result == game.Draw {
		fmt.Fprintln(r.out, r.out.String("It's a draw!").Bold())
		return
	}
	fmt.Fprintln(r.out, r.out.String(fmt.Sprintf("Player %s wins!", result)).Bold())
}

func (r *Renderer) marker(m game.Marker) string {
	switch m {
	case game.X:
		return r.out.String(m.String()).Foreground(r.out.Color("9")).Bold().String()
	case game.O:
		return r.out.String(m.String()).Foreground(r.out.Color("11")).Bold().String()
	default:
		return r.out.String(m.String()).Faint().String()
	}
}
