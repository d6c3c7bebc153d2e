package search

import (
	"os"

	"github.com/rs/zerolog"
)

// Stats stores statistics about a single search call, mirroring the
// teacher's engine.Stats (Nodes, Depth, ...) scaled to what a UCT search
// can report: there is no search depth in the alpha-beta sense, so the
// analogous figures are node count and tree depth reached.
type Stats struct {
	Iterations uint64 // number of tree-policy/rollout/backup cycles completed
	NodesUsed  int    // number of nodes allocated in the arena
	MaxDepth   int    // deepest node reached from the root during selection
}

// Logger logs search progress. Mirrors the teacher's engine.Logger
// interface (BeginSearch/EndSearch/PrintPV), renamed to this engine's
// vocabulary: there is no principal variation to print, only a best move
// once the search concludes, and no fixed search depth to report mid-search
// — only the iteration count so far.
type Logger interface {
	// BeginSearch signals a new search is starting.
	BeginSearch(pos string, budgetMS int64)
	// Progress reports accumulated stats partway through a search still in
	// progress. Called at most once per progressInterval iterations.
	Progress(stats Stats)
	// EndSearch signals the search has concluded.
	EndSearch(stats Stats, best string)
}

// NopLogger is a Logger that does nothing, the default when a caller does
// not supply one — mirrors the teacher's NulLogger.
type NopLogger struct{}

func (NopLogger) BeginSearch(string, int64) {}
func (NopLogger) Progress(Stats)            {}
func (NopLogger) EndSearch(Stats, string)   {}

// ZerologLogger is the concrete Logger for callers who want output:
// structured, leveled logging via github.com/rs/zerolog. The teacher reaches for the bare
// standard library "log" package (see zurichess/main.go's
// log.SetPrefix/log.SetFlags); zerolog is this module's domain-stack
// upgrade for that same concern (see SPEC_FULL.md, Ambient Stack).
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger returns a Logger that writes structured events to
// os.Stderr.
func NewZerologLogger() *ZerologLogger {
	return &ZerologLogger{log: zerolog.New(os.Stderr).With().Timestamp().Logger()}
}

func (l *ZerologLogger) BeginSearch(pos string, budgetMS int64) {
	l.log.Info().Str("position", pos).Int64("budget_ms", budgetMS).Msg("search started")
}

func (l *ZerologLogger) Progress(stats Stats) {
	l.log.Debug().
		Uint64("iterations", stats.Iterations).
		Int("nodes", stats.NodesUsed).
		Int("max_depth", stats.MaxDepth).
		Msg("search progress")
}

func (l *ZerologLogger) EndSearch(stats Stats, best string) {
	l.log.Info().
		Uint64("iterations", stats.Iterations).
		Int("nodes", stats.NodesUsed).
		Int("max_depth", stats.MaxDepth).
		Str("best_move", best).
		Msg("search finished")
}
