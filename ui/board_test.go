package ui

import (
	"bytes"
	"strings"
	"testing"

	"connect4/game"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestRenderer(t *testing.T) {
	players := [2]game.Player{{Marker: game.X}, {Marker: game.O}}

	t.Run("matching the plain board without colours", func(t *testing.T) {
		state := game.NewState(players[0], players[1])
		state.Advance(3)
		state.Advance(3)

		var buf bytes.Buffer
		r := NewRenderer(&buf, WithProfile(termenv.Ascii))
		r.Render(state)

		require.Equal(t, state.String(), buf.String())
	})

	t.Run("colouring markers on a colour terminal", func(t *testing.T) {
		state := game.NewState(players[0], players[1])
		state.Advance(0)

		var buf bytes.Buffer
		r := NewRenderer(&buf, WithProfile(termenv.ANSI))
		out := r.Format(state)

		require.Contains(t, out, "\x1b[")
		require.Contains(t, out, "X")
		require.True(t, strings.HasSuffix(out, "1 2 3 4 5 6 7\n"))
	})

	t.Run("announcing the outcome", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(&buf, WithProfile(termenv.Ascii))
		r.Outcome(game.O)
		r.Outcome(game.Draw)

		require.Equal(t, "Player O wins!\nIt's a draw!\n", buf.String())
	})
}
