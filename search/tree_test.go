package search

import (
	"testing"

	"github.com/go-ataxx/ataxxcore/ataxx"
)

func TestNewTreeRootHasNoParent(t *testing.T) {
	tr := NewTree(ataxx.DefaultPosition())
	root := tr.Root()
	if root != 0 {
		t.Fatalf("Root() = %d, want 0", root)
	}
	if tr.nodes[root].parent != noParent {
		t.Errorf("root.parent = %d, want %d", tr.nodes[root].parent, noParent)
	}
	if tr.nodes[root].visits != 0 {
		t.Errorf("root.visits = %d, want 0 before any search", tr.nodes[root].visits)
	}
}

func TestIsExpandableBeforeAndAfterFullExpansion(t *testing.T) {
	tr := NewTree(ataxx.DefaultPosition())
	root := tr.Root()
	legal := tr.legalMoveCount(root)

	for i := 0; i < legal; i++ {
		if !tr.isExpandable(root) {
			t.Fatalf("expected root expandable before child %d/%d", i, legal)
		}
		tr.expand(root)
	}
	if tr.isExpandable(root) {
		t.Error("expected root not expandable after all children created")
	}
	if len(tr.nodes[root].children) != legal {
		t.Errorf("root has %d children, want %d", len(tr.nodes[root].children), legal)
	}
}

func TestExpandAppliesTheKthMove(t *testing.T) {
	tr := NewTree(ataxx.DefaultPosition())
	root := tr.Root()

	rootPos := tr.nodes[root].position
	moves := ataxx.GenerateMoves(&rootPos)

	childIdx := tr.expand(root)
	child := tr.nodes[childIdx]

	if child.fromAction != moves.At(0) {
		t.Errorf("first expansion used move %v, want %v", child.fromAction, moves.At(0))
	}
	if child.parent != root {
		t.Errorf("child.parent = %d, want %d", child.parent, root)
	}
	if child.visits != 0 || child.totalValue != 0 {
		t.Errorf("freshly expanded child must start at zero visits/value")
	}

	childIdx2 := tr.expand(root)
	child2 := tr.nodes[childIdx2]
	if child2.fromAction != moves.At(1) {
		t.Errorf("second expansion used move %v, want %v", child2.fromAction, moves.At(1))
	}
}

func TestVerifyInvariantHoldsAfterManualBackup(t *testing.T) {
	tr := NewTree(ataxx.DefaultPosition())
	root := tr.Root()
	c0 := tr.expand(root)
	c1 := tr.expand(root)

	tr.nodes[c0].visits = 3
	tr.nodes[c1].visits = 4
	tr.nodes[root].visits = 1 + 3 + 4

	if err := tr.VerifyInvariant(); err != nil {
		t.Errorf("VerifyInvariant() = %v, want nil", err)
	}
}

func TestVerifyInvariantCatchesMismatch(t *testing.T) {
	tr := NewTree(ataxx.DefaultPosition())
	root := tr.Root()
	c0 := tr.expand(root)

	tr.nodes[c0].visits = 2
	tr.nodes[root].visits = 1 // should be 1 + 2 = 3

	if err := tr.VerifyInvariant(); err == nil {
		t.Error("VerifyInvariant() = nil, want an error for the mismatched bookkeeping")
	}
}

func TestVerifyInvariantSkipsUnvisitedRoot(t *testing.T) {
	tr := NewTree(ataxx.DefaultPosition())
	if err := tr.VerifyInvariant(); err != nil {
		t.Errorf("VerifyInvariant() on a fresh tree = %v, want nil", err)
	}
}

func TestIsExpandedReflectsChildPresence(t *testing.T) {
	tr := NewTree(ataxx.DefaultPosition())
	root := tr.Root()
	if tr.isExpanded(root) {
		t.Error("fresh root must not be expanded")
	}
	tr.expand(root)
	if !tr.isExpanded(root) {
		t.Error("root with one child must be expanded")
	}
}
