// Package search implements the UCT (Upper Confidence bound applied to
// Trees) engine: a time-bounded loop of selection, expansion, rollout and
// backup over an arena-backed node pool, and best-move extraction.
//
// Tree (tree.go) is the search tree:
//
//   - Nodes live in a single growable slice; children are stored as
//     indices, never pointers, so a node's index stays valid when the
//     slice grows, and no node is freed during a search.
//   - Descendant-first append means a node's parent index is always
//     less than its own index.
//
// Engine (uct.go) drives the search loop itself:
//
//   - Tree policy: descend while expandable-or-not, expanding the first
//     unexpanded child it finds.
//   - Default policy: a uniformly random rollout to terminality.
//   - Backup: negamax propagation of a scalar reward up the parent chain.
//
// This mirrors, in shape, the teacher's engine.Engine (Options, Stats,
// Logger, time control) even though the search algorithm itself (MCTS/UCT
// over Ataxx rather than alpha-beta over chess) is entirely different.
package search

import (
	"github.com/go-ataxx/ataxxcore/ataxx"
)

// noParent marks the root node, which has no parent.
const noParent = -1

// node is one entry in the Tree's arena. Its index within Tree.nodes is
// its identity; Parent and Children reference other nodes by that same
// index.
type node struct {
	parent     int
	children   []int
	visits     int
	totalValue float64
	position   ataxx.Position
	fromAction ataxx.Move
}

// Tree is an append-only arena of search nodes, created fresh for each
// search call and discarded when the call returns. The root always has
// index 0 and no parent.
type Tree struct {
	nodes []node
}

// reserveHint is a starting capacity for the node slice, sized so that a
// typical search never triggers a reallocation; growing past it is
// correct, just not free. The source engine pre-reserves an arena sized
// from a fixed memory budget (order of 2GB); we treat that as the
// optimization it is, not a correctness requirement, and grow on demand.
const reserveHint = 1 << 16

// NewTree creates a tree rooted at pos.
func NewTree(pos ataxx.Position) *Tree {
	t := &Tree{nodes: make([]node, 0, reserveHint)}
	t.nodes = append(t.nodes, node{
		parent:     noParent,
		position:   pos,
		fromAction: ataxx.NullMove,
	})
	return t
}

// Root returns the root node's index (always 0).
func (t *Tree) Root() int {
	return 0
}

func (t *Tree) isTerminal(idx int) bool {
	return t.nodes[idx].position.IsTerminal()
}

// legalMoveCount regenerates moves for the node's position. Regeneration
// (rather than caching the move list) keeps node struct size small and is
// cheap: move generation is a handful of bitboard operations.
func (t *Tree) legalMoveCount(idx int) int {
	pos := t.nodes[idx].position
	return ataxx.GenerateMoves(&pos).Len()
}

func (t *Tree) isExpandable(idx int) bool {
	return len(t.nodes[idx].children) < t.legalMoveCount(idx)
}

func (t *Tree) isExpanded(idx int) bool {
	return len(t.nodes[idx].children) > 0
}

// expand creates the next unexplored child of the node at idx: it
// regenerates moves for idx's position, takes the k-th move (k = current
// child count), applies it to a copy of the position, and appends a new
// node with zero visits and value. Returns the new child's index.
//
// This progressive, deterministic expansion order depends on move
// generation being pure and stably ordered (see ataxx.GenerateMoves): the
// k-th call always yields the k-th move in that order.
func (t *Tree) expand(idx int) int {
	k := len(t.nodes[idx].children)

	childPos := t.nodes[idx].position
	moves := ataxx.GenerateMoves(&childPos)
	mv := moves.At(k)
	ataxx.MakeMove(&childPos, mv)

	childIdx := len(t.nodes)
	t.nodes = append(t.nodes, node{
		parent:     idx,
		position:   childPos,
		fromAction: mv,
	})

	// The append above may have moved the backing array; index t.nodes
	// afresh rather than holding a stale pointer into it across the push.
	t.nodes[idx].children = append(t.nodes[idx].children, childIdx)

	return childIdx
}

// VerifyInvariant checks, for every visited node in the tree, that
// visits == 1 + sum(child visits) — the negamax backup's bookkeeping
// invariant. A node with zero visits (possible only for the root of a
// search that never completed a single iteration) is skipped. This is a
// debugging / test aid, not exercised on the hot path.
func (t *Tree) VerifyInvariant() error {
	for i := range t.nodes {
		if t.nodes[i].visits == 0 {
			continue
		}
		sum := 0
		for _, c := range t.nodes[i].children {
			sum += t.nodes[c].visits
		}
		if t.nodes[i].visits != sum+1 {
			return invariantError(i, t.nodes[i].visits, sum+1)
		}
	}
	return nil
}
