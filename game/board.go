package game

// Board is a Rows x Columns grid, row 0 at the top. Being an array, plain
// assignment copies it.
type Board [Rows][Columns]Marker

// Window is four cells in a straight line.
type Window [WinLength]Marker

type direction struct {
	dRow, dCol int
}

// Horizontal, vertical, ascending and descending diagonals
var directions = [...]direction{{0, 1}, {1, 0}, {-1, 1}, {1, 1}}

func NewBoard() Board {
	var b Board
	for row := range b {
		for col := range b[row] {
			b[row][col] = Empty
		}
	}
	return b
}

func (b *Board) IsLegal(column int) bool {
	return column >= 0 && column < Columns && b[0][column] == Empty
}

// Drop places marker in the lowest empty cell of column and returns the row
// it landed on, or -1 when the column is full or out of range.
func (b *Board) Drop(column int, marker Marker) int {
	if !b.IsLegal(column) {
		return -1
	}
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			b[row][column] = marker
			return row
		}
	}
	return -1
}

func (b *Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if b[0][col] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.IsLegal(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

// EachWindow calls fn for every window on the board, one direction at a
// time, until fn returns false.
func (b *Board) EachWindow(fn func(w Window) bool) {
	for _, d := range directions {
		for row := 0; row < Rows; row++ {
			for col := 0; col < Columns; col++ {
				endRow := row + (WinLength-1)*d.dRow
				endCol := col + (WinLength-1)*d.dCol
				if endRow < 0 || endRow >= Rows || endCol >= Columns {
					continue
				}
				var w Window
				for i := range w {
					w[i] = b[row+i*d.dRow][col+i*d.dCol]
				}
				if !fn(w) {
					return
				}
			}
		}
	}
}

func (b *Board) CheckWin(marker Marker) bool {
	if marker == Empty {
		return false
	}
	won := false
	b.EachWindow(func(w Window) bool {
		if w.Count(marker) == WinLength {
			won = true
		}
		return !won
	})
	return won
}

func (w Window) Count(marker Marker) int {
	n := 0
	for _, cell := range w {
		if cell == marker {
			n++
		}
	}
	return n
}
