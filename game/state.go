package game

import "strings"

// State is a game in progress: the board, the two players, whose turn it
// is and whether the game is over.
type State struct {
	board    Board
	players  [2]Player
	turn     int  // Index into players of the player to act
	terminal bool // Set once a win or draw has been detected
}

// NewState returns an empty board with a to move first.
func NewState(a, b Player) *State {
	return &State{
		board:   NewBoard(),
		players: [2]Player{a, b},
	}
}

// Copy returns an independent snapshot; moves played on it never reach s.
func (s *State) Copy() *State {
	c := *s
	return &c
}

func (s *State) Board() Board {
	return s.board
}

// Cells returns the row-major view of the board, row 0 at the top.
func (s *State) Cells() [Rows][Columns]Marker {
	return s.board
}

func (s *State) Players() [2]Player {
	return s.players
}

func (s *State) Turn() int {
	return s.turn
}

// Current is the player to act.
func (s *State) Current() Player {
	return s.players[s.turn]
}

// Previous is the player who made the last move.
func (s *State) Previous() Player {
	return s.players[(s.turn+1)%2]
}

// Opponent returns the other player's marker.
func (s *State) Opponent(marker Marker) Marker {
	if s.players[0].Marker == marker {
		return s.players[1].Marker
	}
	return s.players[0].Marker
}

// NextTurn passes the turn to the other player.
func (s *State) NextTurn() {
	s.turn = (s.turn + 1) % 2
}

// SetTerminal marks the game as over.
func (s *State) SetTerminal() {
	s.terminal = true
}

func (s *State) IsLegal(column int) bool {
	return s.board.IsLegal(column)
}

// ApplyMove drops marker into column. It reports false and leaves the state
// untouched when the column is full, out of range or the game is over.
func (s *State) ApplyMove(column int, marker Marker) bool {
	if s.terminal {
		return false
	}
	return s.board.Drop(column, marker) >= 0
}

// Advance plays column for the current player, flags the state terminal on a
// win for either player or a draw, and passes the turn. The turn passes even
// after a winning move, so Previous is always the player who moved last.
func (s *State) Advance(column int) bool {
	if !s.ApplyMove(column, s.Current().Marker) {
		return false
	}
	s.terminal = s.CheckWin(s.players[0].Marker) || s.CheckWin(s.players[1].Marker) || s.IsDraw()
	s.NextTurn()
	return true
}

func (s *State) CheckWin(marker Marker) bool {
	return s.board.CheckWin(marker)
}

// IsDraw reports a full board without a winning line for either player.
func (s *State) IsDraw() bool {
	return s.board.IsFull() && !s.CheckWin(s.players[0].Marker) && !s.CheckWin(s.players[1].Marker)
}

// LegalMoves lists the playable columns in ascending order.
func (s *State) LegalMoves() []int {
	return s.board.LegalMoves()
}

// IsTerminal reports whether the game has been flagged over or is drawn. It
// does not scan for wins: whoever applies a winning move sets the flag,
// either through Advance or SetTerminal.
func (s *State) IsTerminal() bool {
	return s.terminal || s.IsDraw()
}

// Result returns the winning marker, or Draw. Only meaningful on a terminal
// state.
func (s *State) Result() Marker {
	for _, p := range s.players {
		if s.CheckWin(p.Marker) {
			return p.Marker
		}
	}
	return Draw
}

// String renders the board as rows of markers followed by 1-based column
// numbers.
func (s *State) String() string {
	var sb strings.Builder
	for _, row := range s.board {
		for col, cell := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte(cell))
		}
		sb.WriteByte('\n')
	}
	for col := 1; col <= Columns; col++ {
		if col > 1 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('0' + col))
	}
	sb.WriteByte('\n')
	return sb.String()
}
