package ataxx

import "github.com/go-ataxx/ataxxcore/bitboard"

// nullSquare is the sentinel square index used by Move.Null and Move.Pass:
// one past the last valid board index (0..48), so it can never collide
// with a real square.
const nullSquare = 49

// Move is a compact (from, to) pair. A growth has From == To. A jump has
// From != To at Chebyshev distance 2. Two sentinel values are reserved:
// NullMove ("no move", never passed to MakeMove) and PassMove (legal when
// and only when the side to move has no growth or jump available but the
// game is not yet over).
type Move struct {
	From, To uint8
}

// NullMove denotes "no move". Used in APIs and test scaffolding.
var NullMove = Move{From: nullSquare, To: nullSquare}

// PassMove is the literal pass.
var PassMove = Move{From: nullSquare, To: nullSquare + 1}

// NewMove returns a growth (from == to) or jump (from != to) move.
func NewMove(from, to int) Move {
	return Move{From: uint8(from), To: uint8(to)}
}

// IsNull reports whether m is the null sentinel.
func (m Move) IsNull() bool {
	return m == NullMove
}

// IsPass reports whether m is the pass sentinel.
func (m Move) IsPass() bool {
	return m == PassMove
}

// IsGrowth reports whether m places a new stone (From == To), excluding
// the pass/null sentinels.
func (m Move) IsGrowth() bool {
	return !m.IsNull() && !m.IsPass() && m.From == m.To
}

// String renders m in the engine's move-string format: two characters
// (file, rank) for a growth, four for a jump (from-square, to-square), or
// the literal "0000" for a pass.
func (m Move) String() string {
	if m.IsPass() {
		return "0000"
	}
	if m.IsNull() {
		return "null"
	}
	if m.From == m.To {
		return squareString(int(m.To))
	}
	return squareString(int(m.From)) + squareString(int(m.To))
}

func squareString(sq int) string {
	file := sq % 7
	rank := sq / 7
	return string([]byte{byte('a' + file), byte('1' + rank)})
}

// MaxMoves bounds the move list, matching the source engine's cap of 256.
// 128 is not enough: a 7x7 position can have more than 150 legal moves. A
// stack-allocatable fixed-capacity array backs MoveList rather than a
// heap-growing slice.
const MaxMoves = 256

// MoveList is a bounded, ordered list of legal moves.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.n
}

// At returns the k-th move in generation order.
func (ml *MoveList) At(k int) Move {
	return ml.moves[k]
}

// Slice returns the moves as a plain slice, sharing no backing array with ml.
func (ml *MoveList) Slice() []Move {
	out := make([]Move, ml.n)
	copy(out, ml.moves[:ml.n])
	return out
}

func (ml *MoveList) push(mv Move) {
	ml.moves[ml.n] = mv
	ml.n++
}

// GenerateMoves enumerates the legal moves for a non-terminal position.
// Behavior is undefined if p is terminal; callers must check IsTerminal
// first.
//
// If the side to move has no reachable empty square the sole legal move is
// Pass. Otherwise generation proceeds in two passes, growths before jumps,
// each group ordered by the underlying bitboard's low-to-high iteration:
//
//  1. Growths: for each square s in Singles(mover) & empty, emit (s, s).
//  2. Jumps: for each source square in mover (bitboard order), for each
//     destination in Doubles({source}) & empty (bitboard order), emit
//     (source, destination).
func GenerateMoves(p *Position) MoveList {
	var ml MoveList

	mover := p.ColoredSquares(p.Turn)
	empty := p.EmptySquares()

	growths := bitboard.Singles(mover) & empty
	for growths != 0 {
		var sq int
		sq, growths = growths.Pop()
		ml.push(NewMove(sq, sq))
	}

	sources := mover
	for sources != 0 {
		var src int
		src, sources = sources.Pop()
		dests := bitboard.Doubles(bitboard.Square(src)) & empty
		for dests != 0 {
			var dst int
			dst, dests = dests.Pop()
			ml.push(NewMove(src, dst))
		}
	}

	if ml.n == 0 {
		ml.push(PassMove)
	}

	return ml
}

// MakeMove applies mv to p in place. mv must not be NullMove.
//
// The stones move (and captures flood) under the side to move *before*
// the turn flips; the half-move clock always increments, regardless of
// whether mv is a growth, a jump or a pass: the 100-ply rule is the
// engine's only use of the counter (see Design Notes in the package's
// companion documentation). The full-move counter increments whenever the
// new side to move is White.
func MakeMove(p *Position, mv Move) {
	if !mv.IsPass() {
		mover, opponent := p.moverOpponent()
		from := bitboard.Square(int(mv.From))
		to := bitboard.Square(int(mv.To))
		*mover ^= from | to

		captured := bitboard.Singles(to) & *opponent
		*opponent ^= captured
		*mover |= captured
	}

	p.Turn = p.Turn.Other()
	p.HalfMoves++
	if p.Turn == White {
		p.FullMoves++
	}
}
