package game

import "fmt"

// Parse builds a state from top-to-bottom rows of markers, e.g. "--XO---".
// a moves next when both players have the same number of pieces, b when a
// is one ahead.
func Parse(a, b Player, rows ...string) (*State, error) {
	if len(rows) != Rows {
		return nil, fmt.Errorf("expected %d rows, got %d", Rows, len(rows))
	}

	s := NewState(a, b)
	counts := map[Marker]int{}
	for row, line := range rows {
		if len(line) != Columns {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", row, Columns, len(line))
		}
		for col := 0; col < Columns; col++ {
			cell := Marker(line[col])
			if cell != Empty && cell != a.Marker && cell != b.Marker {
				return nil, fmt.Errorf("row %d column %d: unknown marker %q", row, col, cell)
			}
			s.board[row][col] = cell
			counts[cell]++
		}
	}

	for col := 0; col < Columns; col++ {
		for row := 1; row < Rows; row++ {
			if s.board[row-1][col] != Empty && s.board[row][col] == Empty {
				return nil, fmt.Errorf("column %d: floating marker at row %d", col, row-1)
			}
		}
	}

	switch counts[a.Marker] - counts[b.Marker] {
	case 0:
		s.turn = 0
	case 1:
		s.turn = 1
	default:
		return nil, fmt.Errorf("unbalanced position: %d %s against %d %s",
			counts[a.Marker], a.Marker, counts[b.Marker], b.Marker)
	}

	s.terminal = s.CheckWin(a.Marker) || s.CheckWin(b.Marker)
	return s, nil
}
