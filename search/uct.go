package search

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-ataxx/ataxxcore/ataxx"
)

// explorationConstant is UCB1's C, sqrt(2). Unexported, like the teacher's
// tuning constants (checkDepthExtension, futilityMargin, ...) in
// engine/engine.go — a host that needs to override it goes through
// Config, mirroring the teacher's Options struct.
const explorationConstant = math.Sqrt2

// infinity stands in for a +Inf UCB1 score: an unvisited child always
// wins selection, because progressive expansion means any parent with
// unexpanded moves expands rather than reaching UCB1 at all (see
// Tree.isExpandable and Engine.treePolicy).
const infinity = math.MaxFloat64

// progressInterval is how many tree-policy/rollout/backup cycles elapse
// between Logger.Progress calls.
const progressInterval = 1000

// Config holds the UCT engine's tunable parameters, mirroring the
// teacher's engine.Options.
type Config struct {
	// Exploration is UCB1's C. Zero means "use the default", sqrt(2).
	Exploration float64
	// Logger receives search progress events. Nil means NopLogger.
	Logger Logger
	// Rand is the rollout/selection randomness source. Nil means a
	// process-owned generator seeded from the current time. Tests that
	// need determinism should inject a seeded *rand.Rand here (see
	// SPEC_FULL.md, Domain Stack).
	Rand *rand.Rand
}

// Engine runs UCT searches. It holds no search-specific state between
// calls — a fresh Tree is built per Search call and discarded when it
// returns — only the configuration that's stable across calls.
type Engine struct {
	exploration float64
	log         Logger
	rng         *rand.Rand
}

// NewEngine returns an Engine configured by cfg (the zero Config is valid
// and uses every default).
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		exploration: cfg.Exploration,
		log:         cfg.Logger,
		rng:         cfg.Rand,
	}
	if e.exploration == 0 {
		e.exploration = explorationConstant
	}
	if e.log == nil {
		e.log = NopLogger{}
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// Search returns the best move found for pos within moveTimeMS
// milliseconds. Preconditions: pos is not terminal, and generating moves
// for pos is non-empty (always true for a non-terminal position — Pass is
// always available as a fallback).
//
// If pos has exactly one legal move, Search returns it immediately
// without consulting the clock. Otherwise it loops tree-policy /
// default-policy / backup until the deadline, then returns the root
// child with the highest empirical mean. If the deadline was too short
// for even one full iteration, Search returns ataxx.NullMove; callers
// must treat that as "use an arbitrary legal move".
func (e *Engine) Search(pos ataxx.Position, moveTimeMS int64) ataxx.Move {
	e.log.BeginSearch(pos.ToFEN(), moveTimeMS)

	moves := ataxx.GenerateMoves(&pos)
	if moves.Len() == 1 {
		best := moves.At(0)
		e.log.EndSearch(Stats{NodesUsed: 1}, best.String())
		return best
	}

	tree := NewTree(pos)
	clk := newClock(time.Duration(moveTimeMS) * time.Millisecond)

	var iterations uint64
	var maxDepth int
	for !clk.expired() {
		leaf, depth := e.treePolicy(tree, tree.Root())
		reward := e.rollout(tree, leaf)
		e.backup(tree, leaf, reward)
		iterations++
		if depth > maxDepth {
			maxDepth = depth
		}
		if iterations%progressInterval == 0 {
			e.log.Progress(Stats{Iterations: iterations, NodesUsed: len(tree.nodes), MaxDepth: maxDepth})
		}
	}

	best := e.bestMove(tree)
	stats := Stats{Iterations: iterations, NodesUsed: len(tree.nodes), MaxDepth: maxDepth}
	e.log.EndSearch(stats, best.String())
	return best
}

// treePolicy descends from root until it reaches a terminal node or
// expands a new child, returning the selected/new node's index and its
// depth from root. Expansion is always preferred over UCB1 descent: a
// node with remaining unexpanded moves expands rather than selecting
// among its visited children (see Tree.isExpandable).
func (e *Engine) treePolicy(tree *Tree, idx int) (leaf, depth int) {
	for !tree.isTerminal(idx) {
		if tree.isExpandable(idx) {
			idx = tree.expand(idx)
			depth++
			return idx, depth
		}
		idx = e.selectChild(tree, idx)
		depth++
	}
	return idx, depth
}

// selectChild picks the parent's child with the highest UCB1 score. Ties
// are broken by first-seen (> not >=), so the earliest child index wins
// and an unvisited child (score +infinity) is always chosen over any
// visited one.
func (e *Engine) selectChild(tree *Tree, parent int) int {
	best := -infinity
	bestChild := -1
	for _, c := range tree.nodes[parent].children {
		score := e.ucb1(tree, parent, c)
		if score > best {
			best = score
			bestChild = c
		}
	}
	return bestChild
}

// ucb1 returns child c's UCB1 score under parent p:
//
//	score = total_value/visits + C * sqrt(2*ln(parent.visits)/visits)
//
// or +infinity if c has never been visited.
func (e *Engine) ucb1(tree *Tree, parent, c int) float64 {
	child := &tree.nodes[c]
	if child.visits == 0 {
		return infinity
	}
	exploitation := child.totalValue / float64(child.visits)
	exploration := e.exploration * math.Sqrt(2*math.Log(float64(tree.nodes[parent].visits))/float64(child.visits))
	return exploitation + exploration
}

// rollout runs a uniformly random playout from leaf's position to
// terminality and returns the reward from the perspective of the side to
// move at leaf (not any fixed global orientation): win 1.0, draw 0.5,
// loss 0.0.
func (e *Engine) rollout(tree *Tree, leaf int) float64 {
	pos := tree.nodes[leaf].position
	sideToMove := pos.Turn

	for !pos.IsTerminal() {
		moves := ataxx.GenerateMoves(&pos)
		mv := moves.At(e.rng.Intn(moves.Len()))
		ataxx.MakeMove(&pos, mv)
	}

	outcome := pos.Winner()
	var reward float64
	switch outcome {
	case ataxx.Draw:
		reward = 0.5
	case ataxx.BlackWin:
		if sideToMove == ataxx.Black {
			reward = 1.0
		} else {
			reward = 0.0
		}
	case ataxx.WhiteWin:
		if sideToMove == ataxx.White {
			reward = 1.0
		} else {
			reward = 0.0
		}
	}
	return reward
}

// backup propagates reward up the parent chain from leaf to the root,
// replacing the value v with 1 - v at each level (negamax convention over
// rewards in [0, 1]: a win for the
// child's mover is a loss for the parent's mover). Root is updated
// inclusive.
func (e *Engine) backup(tree *Tree, leaf int, reward float64) {
	idx := leaf
	delta := reward
	for {
		n := &tree.nodes[idx]
		n.visits++
		n.totalValue += delta
		delta = 1 - delta
		if idx == tree.Root() {
			return
		}
		idx = n.parent
	}
}

// bestMove picks the root child with the highest empirical mean
// total_value/visits. Returns ataxx.NullMove if the root has no expanded
// children (the deadline was too short to complete a single iteration);
// callers must ensure a nonzero deadline.
func (e *Engine) bestMove(tree *Tree) ataxx.Move {
	root := &tree.nodes[tree.Root()]
	best := -infinity
	bestMove := ataxx.NullMove
	for _, c := range root.children {
		child := &tree.nodes[c]
		if child.visits == 0 {
			continue
		}
		mean := child.totalValue / float64(child.visits)
		if mean > best {
			best = mean
			bestMove = child.fromAction
		}
	}
	return bestMove
}
