package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connect4/game"
)

type humanAgent struct {
	marker game.Marker
	in     *bufio.Scanner
	out    io.Writer
}

// NewHuman returns an agent that reads 1-based columns from in, prompting on
// out until it gets a legal one. It returns NoMove once in is exhausted.
func NewHuman(marker game.Marker, in io.Reader, out io.Writer) Agent {
	return &humanAgent{marker: marker, in: bufio.NewScanner(in), out: out}
}

func (h *humanAgent) Decide(state *game.State) int {
	for {
		fmt.Fprintf(h.out, "Player %s's turn. Choose a column (1-%d): ", h.marker, game.Columns)
		if !h.in.Scan() {
			fmt.Fprintln(h.out)
			return NoMove
		}

		choice, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err != nil {
			fmt.Fprintln(h.out, "Please enter a number.")
			continue
		}
		column := choice - 1
		if !state.IsLegal(column) {
			fmt.Fprintf(h.out, "Invalid column. Please choose a column between 1 and %d, and ensure it's not full.\n", game.Columns)
			continue
		}
		return column
	}
}
