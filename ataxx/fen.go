package ataxx

import (
	"strconv"
	"strings"

	"github.com/go-ataxx/ataxxcore/bitboard"
	"github.com/pkg/errors"
)

// FenError is a typed FEN parsing failure. No partial position is ever
// returned alongside a non-nil FenError.
type FenError struct {
	Kind FenErrorKind
	// cause carries the error message (the kind name followed by the
	// offending token or field), built with github.com/pkg/errors.Errorf.
	// Error returns only that message; the cause itself is not exposed.
	cause error
}

// FenErrorKind names the four regimes of FEN validation failure.
type FenErrorKind uint8

const (
	// Illegal covers a board field that is malformed, or a FEN string
	// that does not split into exactly four whitespace-separated fields.
	Illegal FenErrorKind = iota
	// Turn covers a turn field that is neither "x" nor "o".
	Turn
	// HalfMoves covers a half-move field outside 0..=100 or unparsable.
	HalfMoves
	// FullMoves covers a full-move field that is negative or unparsable.
	FullMoves
)

func (k FenErrorKind) String() string {
	switch k {
	case Illegal:
		return "illegal"
	case Turn:
		return "turn"
	case HalfMoves:
		return "half_moves"
	case FullMoves:
		return "full_moves"
	default:
		return "unknown"
	}
}

func (e *FenError) Error() string {
	return e.cause.Error()
}

func fenErr(kind FenErrorKind, format string, args ...interface{}) *FenError {
	return &FenError{Kind: kind, cause: errors.Errorf(kind.String()+": "+format, args...)}
}

// FromFEN parses a four-field FEN string: board, turn, half_moves,
// full_moves. The board field holds seven '/'-separated rank strings, top
// rank (rank 6) first, each rank a left-to-right sequence of tokens: 'x'
// Black, 'o' White, '-' gap, digit 1..7 that many empty squares.
func FromFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 4 {
		return Position{}, fenErr(Illegal, "expected 4 fields, got %d", len(fields))
	}

	var pos Position
	if err := parseBoard(&pos, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "x":
		pos.Turn = Black
	case "o":
		pos.Turn = White
	default:
		return Position{}, fenErr(Turn, "got %q", fields[1])
	}

	half, err := strconv.Atoi(fields[2])
	if err != nil || half < 0 || half > 100 {
		return Position{}, fenErr(HalfMoves, "got %q", fields[2])
	}
	pos.HalfMoves = half

	full, err := strconv.Atoi(fields[3])
	if err != nil || full < 0 {
		return Position{}, fenErr(FullMoves, "got %q", fields[3])
	}
	pos.FullMoves = full

	return pos, nil
}

func parseBoard(pos *Position, board string) error {
	ranks := strings.Split(board, "/")
	if len(ranks) != 7 {
		return fenErr(Illegal, "expected 7 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 6 - i
		file := 0
		for _, c := range rankStr {
			if file > 7 {
				return fenErr(Illegal, "rank %q overflows 7 files", rankStr)
			}
			switch {
			case c == 'x':
				pos.Black |= bitboard.FromFileRank(file, rank)
				file++
			case c == 'o':
				pos.White |= bitboard.FromFileRank(file, rank)
				file++
			case c == '-':
				pos.Gaps |= bitboard.FromFileRank(file, rank)
				file++
			case c >= '1' && c <= '7':
				file += int(c - '0')
			default:
				return fenErr(Illegal, "unexpected token %q", c)
			}
		}
		if file != 7 {
			return fenErr(Illegal, "rank %q does not cover 7 files", rankStr)
		}
	}
	return nil
}

// ToFEN is the inverse of FromFEN: empties coalesce into digits, ranks
// separated by '/' top-first, followed by turn/half/full.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 6; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 7; file++ {
			sq := bitboard.FromFileRank(file, rank)
			switch {
			case p.Black&sq != 0:
				flushEmpty(&sb, &empty)
				sb.WriteByte('x')
			case p.White&sq != 0:
				flushEmpty(&sb, &empty)
				sb.WriteByte('o')
			case p.Gaps&sq != 0:
				flushEmpty(&sb, &empty)
				sb.WriteByte('-')
			default:
				empty++
			}
		}
		flushEmpty(&sb, &empty)
		if rank != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.Turn.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoves))

	return sb.String()
}

// flushEmpty writes the pending empty-square run as a digit and resets the
// counter, or does nothing if the run is empty.
func flushEmpty(sb *strings.Builder, empty *int) {
	if *empty > 0 {
		sb.WriteString(strconv.Itoa(*empty))
		*empty = 0
	}
}
