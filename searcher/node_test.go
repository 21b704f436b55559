package searcher

import (
	"testing"

	"connect4/game"

	"github.com/stretchr/testify/require"
)

var (
	playerX = game.Player{Marker: game.X, Kind: "test"}
	playerO = game.Player{Marker: game.O, Kind: "test"}
)

func parse(t *testing.T, rows ...string) *game.State {
	t.Helper()
	state, err := game.Parse(playerX, playerO, rows...)
	require.NoError(t, err)
	return state
}

/**
Tests the search tree phases on an arena of nodes
- expansion: pops unexplored moves last-in-first-out, advances a copy of the state
- selection: unvisited children first, then max UCT, stops at terminal or expandable nodes
- backup: visits on the whole path, wins credited to the player who moved into a node
*/

func TestTreeExpand(t *testing.T) {
	t.Run("expanding the last unexplored move", func(t *testing.T) {
		root := game.NewState(playerX, playerO)
		tr := newTree(root)

		child, ok := tr.expand(0)

		require.True(t, ok)
		require.Equal(t, 1, child, "Child should be appended to the arena")
		require.Equal(t, 6, tr.nodes[child].move, "Last legal move should be expanded first")
		require.Equal(t, []int{0, 1, 2, 3, 4, 5}, tr.nodes[0].unexplored)
		require.Equal(t, []int{child}, tr.nodes[0].children)
		require.Equal(t, 0, tr.nodes[child].parent)
		require.Equal(t, game.O, tr.nodes[child].state.Current().Marker, "Turn should pass after expansion")
		require.Equal(t, game.X, tr.nodes[child].state.Cells()[game.Rows-1][6])
		require.Equal(t, game.NewBoard(), root.Board(), "Caller state should not change")
	})

	t.Run("flagging a winning expansion terminal", func(t *testing.T) {
		tr := newTree(parse(t,
			"-------",
			"-------",
			"-------",
			"-------",
			"OO-----",
			"XXX---O",
		))
		tr.nodes[0].unexplored = []int{3}

		child, ok := tr.expand(0)

		require.True(t, ok)
		require.True(t, tr.isTerminal(child))
		require.True(t, tr.isFullyExpanded(0))
	})

	t.Run("skipping expansion without unexplored moves", func(t *testing.T) {
		tr := newTree(game.NewState(playerX, playerO))
		tr.nodes[0].unexplored = nil

		_, ok := tr.expand(0)

		require.False(t, ok)
		require.Len(t, tr.nodes, 1)
	})
}

func TestTreeBestChild(t *testing.T) {
	newRoot := func() *tree {
		tr := newTree(game.NewState(playerX, playerO))
		for i := 0; i < 3; i++ {
			tr.expand(0)
		}
		return tr
	}

	t.Run("preferring unvisited children", func(t *testing.T) {
		tr := newRoot()
		tr.nodes[1].visits, tr.nodes[1].wins = 10, 10
		tr.nodes[2].visits, tr.nodes[2].wins = 10, 10

		require.Equal(t, 3, tr.bestChild(0, DefaultExploration))
	})

	t.Run("maximizing win rate without exploration", func(t *testing.T) {
		tr := newRoot()
		tr.nodes[1].visits, tr.nodes[1].wins = 10, 2
		tr.nodes[2].visits, tr.nodes[2].wins = 4, 3
		tr.nodes[3].visits, tr.nodes[3].wins = 20, 10

		require.Equal(t, 2, tr.bestChild(0, 0))
	})

	t.Run("breaking ties by visits", func(t *testing.T) {
		tr := newRoot()
		tr.nodes[1].visits, tr.nodes[1].wins = 2, 1
		tr.nodes[2].visits, tr.nodes[2].wins = 8, 4
		tr.nodes[3].visits, tr.nodes[3].wins = 4, 2

		require.Equal(t, 2, tr.bestChild(0, 0))
	})

	t.Run("exploring rarely visited children", func(t *testing.T) {
		tr := newRoot()
		tr.nodes[1].visits, tr.nodes[1].wins = 100, 60
		tr.nodes[2].visits, tr.nodes[2].wins = 2, 1
		tr.nodes[3].visits, tr.nodes[3].wins = 100, 60

		require.Equal(t, 2, tr.bestChild(0, DefaultExploration))
	})

	t.Run("returning none without children", func(t *testing.T) {
		tr := newTree(game.NewState(playerX, playerO))

		require.Equal(t, none, tr.bestChild(0, DefaultExploration))
	})
}

func TestTreeSelectLeaf(t *testing.T) {
	t.Run("stopping at an expandable root", func(t *testing.T) {
		tr := newTree(game.NewState(playerX, playerO))

		require.Equal(t, 0, tr.selectLeaf(DefaultExploration))
	})

	t.Run("descending into a fully expanded root", func(t *testing.T) {
		tr := newTree(game.NewState(playerX, playerO))
		for len(tr.nodes[0].unexplored) > 0 {
			child, _ := tr.expand(0)
			tr.backup(child, game.Draw)
		}
		tr.nodes[4].wins = 1

		require.Equal(t, 4, tr.selectLeaf(0), "Should select the child with the best win rate")
	})

	t.Run("stopping at a terminal root", func(t *testing.T) {
		tr := newTree(parse(t,
			"-------",
			"-------",
			"-------",
			"-------",
			"OOO----",
			"XXXX--O",
		))
		// Terminal roots may still list legal moves
		require.NotEmpty(t, tr.nodes[0].unexplored)

		require.Equal(t, 0, tr.selectLeaf(DefaultExploration))
	})
}

func TestTreeBackup(t *testing.T) {
	tr := newTree(game.NewState(playerX, playerO))
	child, _ := tr.expand(0)          // X moved into child
	grandChild, _ := tr.expand(child) // O moved into grandChild

	t.Run("crediting the player who moved into each node", func(t *testing.T) {
		tr.backup(grandChild, game.X)

		require.Equal(t, 1, tr.nodes[0].visits)
		require.Equal(t, 0, tr.nodes[0].wins, "Root has no incoming move to credit")
		require.Equal(t, 1, tr.nodes[child].visits)
		require.Equal(t, 1, tr.nodes[child].wins, "X made the move into child")
		require.Equal(t, 1, tr.nodes[grandChild].visits)
		require.Equal(t, 0, tr.nodes[grandChild].wins, "O made the move into grandChild")
	})

	t.Run("crediting nobody on a draw", func(t *testing.T) {
		tr.backup(grandChild, game.Draw)

		require.Equal(t, 2, tr.nodes[0].visits)
		require.Equal(t, 1, tr.nodes[child].wins)
		require.Equal(t, 0, tr.nodes[grandChild].wins)
	})

	t.Run("crediting the second player", func(t *testing.T) {
		tr.backup(grandChild, game.O)

		require.Equal(t, 3, tr.nodes[child].visits)
		require.Equal(t, 1, tr.nodes[child].wins)
		require.Equal(t, 1, tr.nodes[grandChild].wins)
	})
}
