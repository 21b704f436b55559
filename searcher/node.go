package searcher

import "connect4/game"

const none = -1

// node is addressed by its index in the tree arena. Parent links are plain
// indices, so the whole tree is released together when the search ends.
type node struct {
	state      *game.State
	parent     int
	move       int // Column played to reach this node from its parent
	children   []int
	unexplored []int
	visits     int
	wins       int // Playouts won by the player who moved into this node
}

type tree struct {
	nodes []node
}

func newTree(root *game.State) *tree {
	t := &tree{}
	t.add(none, game.NoMove, root.Copy())
	return t
}

func (t *tree) add(parent, move int, state *game.State) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{
		state:      state,
		parent:     parent,
		move:       move,
		unexplored: state.LegalMoves(),
	})
	if parent != none {
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}
	return id
}

func (t *tree) isTerminal(id int) bool {
	return t.nodes[id].state.IsTerminal()
}

func (t *tree) isFullyExpanded(id int) bool {
	return len(t.nodes[id].unexplored) == 0
}

// selectLeaf descends from the root by UCT until it reaches a terminal node
// or one with unexplored moves.
func (t *tree) selectLeaf(c float64) int {
	id := 0
	for !t.isTerminal(id) && t.isFullyExpanded(id) {
		child := t.bestChild(id, c)
		if child == none {
			break
		}
		id = child
	}
	return id
}

// expand pops the last unexplored move of id and adds the resulting child.
func (t *tree) expand(id int) (int, bool) {
	n := &t.nodes[id]
	if len(n.unexplored) == 0 {
		return none, false
	}
	last := len(n.unexplored) - 1
	move := n.unexplored[last]
	n.unexplored = n.unexplored[:last]

	state := n.state.Copy()
	if !state.Advance(move) {
		return none, false
	}
	return t.add(id, move, state), true
}

// bestChild returns the child of id with the highest UCT score, preferring
// more visits on ties, or none when id has no children.
func (t *tree) bestChild(id int, c float64) int {
	children := t.nodes[id].children
	total := 0
	for _, child := range children {
		total += t.nodes[child].visits
	}
	policy := newUCT(c, total)

	best := none
	bestScore := 0.0
	for _, child := range children {
		n := &t.nodes[child]
		score := policy.evaluate(n.wins, n.visits)
		if best == none || score > bestScore || (score == bestScore && n.visits > t.nodes[best].visits) {
			best = child
			bestScore = score
		}
	}
	return best
}

// backup records a playout result on id and every ancestor.
func (t *tree) backup(id int, result game.Marker) {
	for id != none {
		n := &t.nodes[id]
		n.visits++
		if n.parent != none && credits(result, n.state.Previous().Marker) {
			n.wins++
		}
		id = n.parent
	}
}

func (t *tree) rootStats() []ChildStats {
	children := t.nodes[0].children
	stats := make([]ChildStats, 0, len(children))
	for _, child := range children {
		n := t.nodes[child]
		stats = append(stats, ChildStats{Move: n.move, Visits: n.visits, Wins: n.wins})
	}
	return stats
}
