// Package ataxx implements the Ataxx position model: bitboard-backed game
// state, legal move generation, make-move with capture flood, terminal
// detection and FEN (de)serialization.
//
// Position (position.go) uses:
//
//   - Bitboards for representation, via package bitboard.
//   - The "singles"/"doubles" spread operators for one-step and
//     two-step reach, shared by move generation and capture flood.
//
// Move generation and application (move.go) produce a bounded,
// deterministically ordered move list: growths before jumps, each group in
// bitboard iteration order. Perft (perft.go) counts leaves of the legal
// move tree as a correctness oracle. FEN encoding (fen.go) round-trips
// through the four-field grammar described on FromFEN.
package ataxx

import "github.com/go-ataxx/ataxxcore/bitboard"

// Side identifies which player is to move.
type Side uint8

const (
	Black Side = iota
	White
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == Black {
		return White
	}
	return Black
}

func (s Side) String() string {
	if s == Black {
		return "x"
	}
	return "o"
}

// Outcome is the result of a terminal position.
type Outcome uint8

const (
	BlackWin Outcome = iota
	WhiteWin
	Draw
)

// Position is an immutable-by-value Ataxx game state. Every mutator (see
// MakeMove) overwrites the receiver with the result rather than returning a
// new value, but callers are free to copy a Position cheaply (six small
// fields) and treat copies as independent snapshots.
type Position struct {
	Black, White bitboard.Bitboard // disjoint stone bitboards
	Gaps         bitboard.Bitboard // disjoint blocked-square bitboard

	Turn Side

	HalfMoves int // plies played; MakeMove increments it on every move and never resets it
	FullMoves int
}

// Default squares for the two players in the starting position.
const (
	blackCorner1 = 6  // bottom-right
	blackCorner2 = 42 // top-left
	whiteCorner1 = 0  // bottom-left
	whiteCorner2 = 48 // top-right
)

// DefaultPosition returns the standard Ataxx starting position.
func DefaultPosition() Position {
	return Position{
		Black:     bitboard.Square(blackCorner1) | bitboard.Square(blackCorner2),
		White:     bitboard.Square(whiteCorner1) | bitboard.Square(whiteCorner2),
		Gaps:      0,
		Turn:      Black,
		HalfMoves: 0,
		FullMoves: 1,
	}
}

// EmptySquares returns the board squares occupied by neither player nor a gap.
func (p *Position) EmptySquares() bitboard.Bitboard {
	return (p.Black | p.White | p.Gaps).Not()
}

// ColoredSquares returns the stones belonging to side.
func (p *Position) ColoredSquares(side Side) bitboard.Bitboard {
	if side == Black {
		return p.Black
	}
	return p.White
}

// BothSides returns the union of both players' stones.
func (p *Position) BothSides() bitboard.Bitboard {
	return p.Black | p.White
}

// moverOpponent returns pointers to the mover's and the opponent's
// bitboards, in that order, so make-move can update both atomically.
func (p *Position) moverOpponent() (mover, opponent *bitboard.Bitboard) {
	if p.Turn == Black {
		return &p.Black, &p.White
	}
	return &p.White, &p.Black
}

// IsTerminal reports whether the game is over: one side has no stones,
// the 100-ply half-move clock has fired, or neither side has a reachable
// empty square.
func (p *Position) IsTerminal() bool {
	if p.Black == 0 || p.White == 0 {
		return true
	}
	if p.HalfMoves >= 100 {
		return true
	}
	empty := p.EmptySquares()
	if bitboard.Reach(p.BothSides())&empty != 0 {
		return false
	}
	return true
}

// Winner returns the outcome of a terminal position. Behavior is undefined
// if the position is not terminal; callers must check IsTerminal first.
func (p *Position) Winner() Outcome {
	if p.Black == 0 {
		return WhiteWin
	}
	if p.White == 0 {
		return BlackWin
	}
	bc, wc := p.Black.Count(), p.White.Count()
	switch {
	case bc > wc:
		return BlackWin
	case wc > bc:
		return WhiteWin
	default:
		return Draw
	}
}

// String renders the position as seven ranks, top rank first, one
// character per square: 'x' Black, 'o' White, '#' gap, '-' empty.
func (p *Position) String() string {
	buf := make([]byte, 0, 56)
	for rank := 6; rank >= 0; rank-- {
		for file := 0; file < 7; file++ {
			sq := bitboard.FromFileRank(file, rank)
			switch {
			case p.Black&sq != 0:
				buf = append(buf, 'x')
			case p.White&sq != 0:
				buf = append(buf, 'o')
			case p.Gaps&sq != 0:
				buf = append(buf, '#')
			default:
				buf = append(buf, '-')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
