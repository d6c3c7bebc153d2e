package ataxx

import (
	"testing"

	"github.com/go-ataxx/ataxxcore/bitboard"
)

func TestDefaultPosition(t *testing.T) {
	p := DefaultPosition()

	if p.Black.Count() != 2 || p.White.Count() != 2 {
		t.Fatalf("expected 2 stones per side, got black=%d white=%d", p.Black.Count(), p.White.Count())
	}
	if p.Turn != Black {
		t.Errorf("expected Black to move first, got %v", p.Turn)
	}
	if p.HalfMoves != 0 {
		t.Errorf("HalfMoves = %d, want 0", p.HalfMoves)
	}
	if p.FullMoves != 1 {
		t.Errorf("FullMoves = %d, want 1", p.FullMoves)
	}
	if p.Black&p.White != 0 {
		t.Error("Black and White overlap")
	}
}

func TestIsTerminalOneSideWiped(t *testing.T) {
	p := DefaultPosition()
	p.Black = 0
	if !p.IsTerminal() {
		t.Error("expected terminal when Black has no stones")
	}
	if p.Winner() != WhiteWin {
		t.Errorf("Winner() = %v, want WhiteWin", p.Winner())
	}
}

func TestIsTerminalHalfMoveClock(t *testing.T) {
	p := DefaultPosition()
	p.HalfMoves = 100
	if !p.IsTerminal() {
		t.Error("expected terminal at 100 half-moves")
	}
}

func TestIsTerminalNoReachableEmpty(t *testing.T) {
	// Black and White fill the board except a couple of squares the
	// other side's gaps wall off from one another but not necessarily
	// from every empty square, so this uses an explicit constructed
	// position: a single unreachable empty square surrounded by gaps.
	p := Position{
		Black: bitboard.Square(0),
		White: bitboard.Square(48),
		Gaps:  bitboard.Full &^ (bitboard.Square(0) | bitboard.Square(24) | bitboard.Square(48)),
		Turn:  Black,
	}
	if !p.IsTerminal() {
		t.Error("expected terminal when no empty square is reachable by either side")
	}
}

func TestIsTerminalMidGame(t *testing.T) {
	p := DefaultPosition()
	if p.IsTerminal() {
		t.Error("starting position must not be terminal")
	}
}

func TestWinnerDraw(t *testing.T) {
	p := Position{
		Black: bitboard.Square(0) | bitboard.Square(1),
		White: bitboard.Square(2) | bitboard.Square(3),
		Gaps:  bitboard.Full &^ (bitboard.Square(0) | bitboard.Square(1) | bitboard.Square(2) | bitboard.Square(3)),
	}
	if p.Winner() != Draw {
		t.Errorf("Winner() = %v, want Draw", p.Winner())
	}
}

func TestStringRendersSevenLines(t *testing.T) {
	p := DefaultPosition()
	s := p.String()
	lines := 0
	for _, c := range s {
		if c == '\n' {
			lines++
		}
	}
	if lines != 7 {
		t.Errorf("expected 7 lines, got %d in %q", lines, s)
	}
}
