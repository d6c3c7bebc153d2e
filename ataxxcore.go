// Package ataxxcore is the top-level facade a host program embeds: it
// wires together the bitboard, ataxx and search packages behind the small
// contract a driver needs — start a game, feed it moves, ask it to think.
//
// Mirrors the shape of the teacher's zurichess command package (which
// wired engine.Engine behind a UCI loop), trimmed to a direct library API
// since this module has no protocol/CLI layer of its own (see
// SPEC_FULL.md, Non-goals).
package ataxxcore

import (
	"github.com/pkg/errors"

	"github.com/go-ataxx/ataxxcore/ataxx"
	"github.com/go-ataxx/ataxxcore/search"
)

// Engine is a ready-to-use Ataxx decision engine bound to one Config.
type Engine struct {
	uct *search.Engine
}

// Config configures a new Engine. The zero Config is valid and selects
// every default: UCB1's standard exploration constant, no logging, and a
// time-seeded rollout generator.
type Config struct {
	Exploration float64
	Logger      search.Logger
}

// NewEngine returns an Engine ready to search.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		uct: search.NewEngine(search.Config{
			Exploration: cfg.Exploration,
			Logger:      cfg.Logger,
		}),
	}
}

// DefaultPosition returns the standard Ataxx starting position: empty
// 7x7 board, Black and White each holding their two starting corners,
// Black to move.
func DefaultPosition() ataxx.Position {
	return ataxx.DefaultPosition()
}

// ParseFEN parses a four-field position string (board/turn/half-move
// clock/full-move counter) into a Position.
func ParseFEN(fen string) (ataxx.Position, error) {
	return ataxx.FromFEN(fen)
}

// Play applies mv to pos in place. Callers should generate mv via
// LegalMoves (or otherwise ensure mv is legal); MakeMove performs no
// legality checking of its own.
func Play(pos *ataxx.Position, mv ataxx.Move) {
	ataxx.MakeMove(pos, mv)
}

// LegalMoves returns every legal move in pos, including a synthesized
// Pass when pos has no growths or jumps available.
func LegalMoves(pos ataxx.Position) []ataxx.Move {
	ml := ataxx.GenerateMoves(&pos)
	return ml.Slice()
}

// Think searches pos for up to moveTimeMS milliseconds and returns the
// move it judges best. pos must not be terminal (see
// ataxx.Position.IsTerminal); calling Think on a terminal position
// returns an error instead of a move.
func (e *Engine) Think(pos ataxx.Position, moveTimeMS int64) (ataxx.Move, error) {
	if pos.IsTerminal() {
		return ataxx.NullMove, errors.New("ataxxcore: cannot search a terminal position")
	}
	return e.uct.Search(pos, moveTimeMS), nil
}
