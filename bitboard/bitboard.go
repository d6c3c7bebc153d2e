// Package bitboard implements the 49-bit board-sized bitset used by the
// Ataxx position model, together with the directional "singles" and
// "doubles" spread operators move generation is built on.
//
// Square indices run 0..49 with index = file + 7*rank (file 0 is the
// leftmost column, rank 0 is the bottom row). Bits 49..63 of the
// underlying uint64 are always zero; every operator that can set a stray
// high bit masks the result with Full so the invariant holds for the next
// caller.
package bitboard

import "math/bits"

// Bitboard is a 64-bit word whose low 49 bits represent the 7x7 board.
type Bitboard uint64

const (
	// Full is the set of all 49 board squares.
	Full Bitboard = 0x1ffffffffffff

	// fileA is the leftmost column (file 0): squares 0, 7, 14, ..., 42.
	fileA Bitboard = 0x40810204081
	fileB Bitboard = fileA << 1
	fileF Bitboard = fileA << 5
	// fileG is the rightmost column (file 6).
	fileG Bitboard = fileA << 6
)

// neighborOffsets are the 8 king-step (file, rank) deltas used by Singles.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// jumpOffsets are the 16 Chebyshev-distance-2 (file, rank) deltas used by Doubles.
var jumpOffsets = [16][2]int{
	{-2, -2}, {-2, -1}, {-2, 0}, {-2, 1}, {-2, 2},
	{-1, -2}, {-1, 2},
	{0, -2}, {0, 2},
	{1, -2}, {1, 2},
	{2, -2}, {2, -1}, {2, 0}, {2, 1}, {2, 2},
}

// Square returns a single-bit board with the given square set.
func Square(idx int) Bitboard {
	return Bitboard(1) << uint(idx)
}

// FromFileRank returns a single-bit board for the square at (file, rank).
func FromFileRank(file, rank int) Bitboard {
	return Square(file + 7*rank)
}

// Index returns the lowest-index set square, or 49 if b is empty.
func (b Bitboard) Index() int {
	if b == 0 {
		return 49
	}
	return bits.TrailingZeros64(uint64(b))
}

// Pop returns the lowest-index set square and the board with that bit cleared.
func (b Bitboard) Pop() (int, Bitboard) {
	sq := b.Index()
	return sq, b & (b - 1)
}

// Count returns the number of set squares (population count).
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Not returns the complement of b within the 49-bit board mask.
func (b Bitboard) Not() Bitboard {
	return ^b & Full
}

// shiftDir shifts every set bit of b by (df, dr) in (file, rank) space and
// masks away bits that wrapped around the board edge. File wraparound is
// detected purely from df's sign and magnitude: a +1 shift can only spill
// into file A, a +2 shift can spill into file A or file B (and
// symmetrically -1/-2 spill into file G, or file F and G). Rank overflow
// and underflow fall out of the raw uint64 shift for free: bits shifted
// past position 0 or past position 63 simply vanish.
func shiftDir(b Bitboard, df, dr int) Bitboard {
	s := df + 7*dr

	var shifted uint64
	if s >= 0 {
		shifted = uint64(b) << uint(s)
	} else {
		shifted = uint64(b) >> uint(-s)
	}

	switch df {
	case 1:
		shifted &^= uint64(fileA)
	case -1:
		shifted &^= uint64(fileG)
	case 2:
		shifted &^= uint64(fileA | fileB)
	case -2:
		shifted &^= uint64(fileF | fileG)
	}

	return Bitboard(shifted) & Full
}

// Singles returns every square reachable by a single king-style step (N,
// S, E, W, NE, NW, SE, SW) from some square in b. This is the "1-step
// reach" used both for capture flood and for enumerating growth targets.
func Singles(b Bitboard) Bitboard {
	var out Bitboard
	for _, d := range neighborOffsets {
		out |= shiftDir(b, d[0], d[1])
	}
	return out
}

// Doubles returns every square at Chebyshev distance exactly 2 from some
// square in b: the 16 outer-ring offsets. File masking is done per
// direction by shiftDir; an implementation that masks only one file when
// shifting two columns silently wraps the board.
func Doubles(b Bitboard) Bitboard {
	var out Bitboard
	for _, d := range jumpOffsets {
		out |= shiftDir(b, d[0], d[1])
	}
	return out
}

// Reach returns every square a player controlling b can target in one move.
func Reach(b Bitboard) Bitboard {
	return Singles(b) | Doubles(b)
}
