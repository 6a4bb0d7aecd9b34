package checkers

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type recordingSink struct {
	events []Event
}

func (r *recordingSink) Notify(e Event) { r.events = append(r.events, e) }

func (r *recordingSink) kinds() []EventKind {
	out := make([]EventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

func (r *recordingSink) last(kind EventKind) (Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i], true
		}
	}
	return Event{}, false
}

func mustPosition(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := DecodePosition(fen)
	require.NoError(t, err, fen)
	return pos
}

// newTestGame 按 FEN 建局并进入第一个回合。
func newTestGame(t *testing.T, fen string) (*GameState, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	g := NewGameState(Options{
		Position: mustPosition(t, fen),
		Sink:     sink,
		Logger:   zaptest.NewLogger(t).Sugar(),
	})
	g.ToggleTurnPlayer()
	return g, sink
}

func dumpBoard(g *GameState) string {
	pos := g.Position()
	return pos.Encode() + "\n" + spew.Sdump(g.Discovery().Hints())
}

func sq(row, col int) int { return IndexOf(row, col) }
