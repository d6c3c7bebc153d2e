package bitboard

import "testing"

func TestSingles(t *testing.T) {
	data := []struct {
		in, want Bitboard
	}{
		{0, 0},
		{0x200, 0x3850e},
		{0x1, 0x182},
		{0x100, 0x1c287},
	}
	for _, d := range data {
		if got := Singles(d.in); got != d.want {
			t.Errorf("Singles(%#x) = %#x, want %#x", uint64(d.in), uint64(got), uint64(d.want))
		}
	}
}

func TestDoubles(t *testing.T) {
	data := []struct {
		in, want Bitboard
	}{
		{0, 0},
		{0x1, 0x1c204},
		{0x100, 0x1e20408},
		{0x400000000000, 0x11227c0000000},
	}
	for _, d := range data {
		if got := Doubles(d.in); got != d.want {
			t.Errorf("Doubles(%#x) = %#x, want %#x", uint64(d.in), uint64(got), uint64(d.want))
		}
	}
}

func TestNot(t *testing.T) {
	if got := Bitboard(0).Not().Not(); got != 0 {
		t.Errorf("not-not of 0 = %#x, want 0", uint64(got))
	}
	if Full.Not() != 0 {
		t.Errorf("Full.Not() = %#x, want 0", uint64(Full.Not()))
	}
	if b := Bitboard(0x1234); b.Not()&b != 0 {
		t.Errorf("b.Not() & b = %#x, want 0", uint64(b.Not()&b))
	}
}

func TestNoWrapOutsideBoard(t *testing.T) {
	for i := 0; i < 49; i++ {
		b := Square(i)
		if s := Singles(b); s&^Full != 0 {
			t.Errorf("Singles(square %d) set a bit outside the board: %#x", i, uint64(s))
		}
		if d := Doubles(b); d&^Full != 0 {
			t.Errorf("Doubles(square %d) set a bit outside the board: %#x", i, uint64(d))
		}
	}
}

func TestSinglesCardinality(t *testing.T) {
	data := []struct {
		sq   int
		want int
	}{
		{0, 3},  // corner (0,0)
		{6, 3},  // corner (6,0)
		{42, 3}, // corner (0,6)
		{48, 3}, // corner (6,6)
		{3, 5},  // edge (3,0)
		{7, 5},  // edge (0,1)
		{24, 8}, // interior (3,3)
	}
	for _, d := range data {
		if got := Singles(Square(d.sq)).Count(); got != d.want {
			t.Errorf("Singles(square %d) cardinality = %d, want %d", d.sq, got, d.want)
		}
	}
}

func TestDoublesCardinality(t *testing.T) {
	// Corner: 5 squares at Chebyshev distance exactly 2 are reachable on a
	// 7x7 board from (0,0): (0,2), (1,2), (2,2), (2,1), (2,0); the other 11
	// ring offsets fall off the board.
	got := Doubles(FromFileRank(0, 0)).Count()
	if got != 5 {
		t.Errorf("Doubles(corner) cardinality = %d, want 5", got)
	}
	got = Doubles(FromFileRank(3, 3)).Count()
	if got != 16 {
		t.Errorf("Doubles(interior) cardinality = %d, want 16", got)
	}
}

func TestPopAndCount(t *testing.T) {
	b := Square(0) | Square(5) | Square(48)
	if b.Count() != 3 {
		t.Errorf("Count() = %d, want 3", b.Count())
	}
	var got []int
	for b != 0 {
		var sq int
		sq, b = b.Pop()
		got = append(got, sq)
	}
	want := []int{0, 5, 48}
	if len(got) != len(want) {
		t.Fatalf("Pop sequence length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pop order[%d] = %d, want %d (iteration must be lowest-index first)", i, got[i], want[i])
		}
	}
}

func TestFromFileRank(t *testing.T) {
	for r := 0; r < 7; r++ {
		for f := 0; f < 7; f++ {
			b := FromFileRank(f, r)
			idx := b.Index()
			if idx != f+7*r {
				t.Errorf("FromFileRank(%d, %d) index = %d, want %d", f, r, idx, f+7*r)
			}
		}
	}
}
