package game

const (
	Rows      = 6
	Columns   = 7
	WinLength = 4
)

// NoMove is returned by deciders when no legal column exists.
const NoMove = -1

// Marker identifies the owner of a cell.
type Marker byte

const (
	Empty Marker = '-'
	X     Marker = 'X'
	O     Marker = 'O'
)

// Draw is the result of a finished game without a winning line.
const Draw = Empty

func (m Marker) String() string {
	return string(m)
}

// Player pairs a marker with the tag of the strategy controlling it.
type Player struct {
	Marker Marker
	Kind   string
}
