package searcher

import (
	"math"

	"quoridor/game"
)

const noParent = -1

// root is the arena index of the tree's root node.
const root int32 = 0

// node records a move and the statistics of the pawn that played it.
// Nodes keep moves only; states are rebuilt by replaying from the root.
type node struct {
	move     game.Move
	parent   int32
	children []int32
	sims     int
	wins     int
	inflight int // rollouts selected through this node but not yet backed up
	terminal bool
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

func (n *node) isNew() bool {
	return n.sims == 0
}

func (n *node) winRate() float64 {
	return float64(n.wins) / float64(n.sims)
}

// tree is an arena of nodes addressed by index. Parents are indices, so the
// tree holds no reference cycles.
type tree struct {
	nodes []node
}

func newTree() *tree {
	return &tree{nodes: []node{{parent: noParent}}}
}

// node returns a pointer that stays valid until the next expand.
func (t *tree) node(i int32) *node {
	return &t.nodes[i]
}

func (t *tree) size() int {
	return len(t.nodes)
}

// expand attaches one child per move to leaf i.
func (t *tree) expand(i int32, moves []game.Move) {
	first := int32(len(t.nodes))
	children := make([]int32, len(moves))
	for k, m := range moves {
		t.nodes = append(t.nodes, node{move: m, parent: i})
		children[k] = first + int32(k)
	}
	t.nodes[i].children = children
}

// descend follows max-UCT children from the root until it reaches a leaf or
// a terminal node.
func (t *tree) descend() int32 {
	i := root
	for {
		n := &t.nodes[i]
		if n.terminal || n.isLeaf() {
			return i
		}
		i = t.selectChild(i)
	}
}

// selectChild returns the child of i with the highest UCT. Unvisited children
// score +Inf, so the first one found wins outright.
func (t *tree) selectChild(i int32) int32 {
	parent := &t.nodes[i]
	policy := newUCT(CSquared, parent.sims+parent.inflight)

	best := int32(noParent)
	maxScore := math.Inf(-1)
	for _, c := range parent.children {
		child := &t.nodes[c]
		score := policy.evaluate(child.wins, child.sims+child.inflight)
		if score == math.Inf(1) {
			return c
		}
		if score > maxScore {
			maxScore = score
			best = c
		}
	}
	return best
}

// moves lists the moves from the root down to i, root excluded, in play order.
func (t *tree) moves(i int32) []game.Move {
	var stack []game.Move
	for ; t.nodes[i].parent != noParent; i = t.nodes[i].parent {
		stack = append(stack, t.nodes[i].move)
	}
	for l, r := 0, len(stack)-1; l < r; l, r = l+1, r-1 {
		stack[l], stack[r] = stack[r], stack[l]
	}
	return stack
}

// applyLoss marks a pending rollout on i and its ancestors so that concurrent
// selections spread out.
func (t *tree) applyLoss(i int32) {
	for ; i != noParent; i = t.nodes[i].parent {
		t.nodes[i].inflight++
	}
}

// backup records one simulation from i up to the root. owner is the pawn that
// played i's move; ownership alternates with each level.
func (t *tree) backup(i int32, owner, winner int, pending bool) {
	for ; i != noParent; i = t.nodes[i].parent {
		n := &t.nodes[i]
		if pending {
			n.inflight--
		}
		n.sims++
		if winner == owner {
			n.wins++
		}
		owner = (owner + 1) % 2
	}
}

// bestChild returns the sampled child of i with the highest win rate.
func (t *tree) bestChild(i int32) (int32, bool) {
	best := int32(noParent)
	maxRate := -1.0
	for _, c := range t.nodes[i].children {
		child := &t.nodes[c]
		if child.isNew() {
			continue
		}
		if rate := child.winRate(); rate > maxRate {
			maxRate = rate
			best = c
		}
	}
	return best, best != noParent
}

// policy returns each root child's share of the root's simulations.
func (t *tree) policy() map[game.Move]float64 {
	r := &t.nodes[root]
	policy := make(map[game.Move]float64, len(r.children))
	if r.sims == 0 {
		return policy
	}
	for _, c := range r.children {
		child := &t.nodes[c]
		policy[child.move] = float64(child.sims) / float64(r.sims)
	}
	return policy
}

func (t *tree) maxDepth() int {
	depth := make([]int, len(t.nodes))
	deepest := 0
	// Children are always appended after their parent.
	for i := 1; i < len(t.nodes); i++ {
		depth[i] = depth[t.nodes[i].parent] + 1
		if depth[i] > deepest {
			deepest = depth[i]
		}
	}
	return deepest
}
