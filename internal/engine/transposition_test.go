package engine

import (
	"testing"

	"github.com/ethereal-go/ethereal/internal/board"
)

func TestTTRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1) // 1MB

	hash := uint64(0x1234_5678_9abc_def0)
	move := board.NewMove(board.E2, board.E4)

	tt.Store(hash, 8, 123, TTExact, move, true)

	entry, found := tt.Probe(hash)
	if !found {
		t.Fatalf("expected hit after store")
	}
	if entry.BestMove != move || entry.Score != 123 || entry.Depth != 8 || entry.Flag != TTExact || !entry.IsPV {
		t.Errorf("round-trip mismatch: got %+v", entry)
	}
}

func TestTTMiss(t *testing.T) {
	tt := NewTranspositionTable(1)

	if _, found := tt.Probe(0xdead_beef); found {
		t.Errorf("expected miss on empty table")
	}
}

func TestTTKeepsMoveOnMovelessStore(t *testing.T) {
	tt := NewTranspositionTable(1)

	hash := uint64(0x1234_5678_9abc_def0)
	move := board.NewMove(board.E2, board.E4)

	tt.Store(hash, 8, 50, TTExact, move, false)
	tt.Store(hash, 6, 10, TTUpperBound, board.NoMove, false)

	entry, found := tt.Probe(hash)
	if !found {
		t.Fatalf("expected hit after second store")
	}
	if entry.BestMove != move {
		t.Errorf("expected best move to be preserved across a moveless store, got %v", entry.BestMove)
	}
	if entry.Depth != 6 || entry.Score != 10 || entry.Flag != TTUpperBound {
		t.Errorf("second store's own fields weren't applied: got %+v", entry)
	}
}

func TestTTNewSearchAgesGeneration(t *testing.T) {
	tt := NewTranspositionTable(1)

	if tt.gen != 0 {
		t.Fatalf("expected fresh table to start at generation 0, got %d", tt.gen)
	}
	tt.NewSearch()
	if tt.gen != ttGenCycle {
		t.Errorf("expected generation to advance by %d, got %d", ttGenCycle, tt.gen)
	}
}

func TestAdjustScoreRoundTrip(t *testing.T) {
	ply := 4
	score := MateScore - 10
	stored := AdjustScoreToTT(score, ply)
	if got := AdjustScoreFromTT(stored, ply); got != score {
		t.Errorf("mate score didn't round-trip through TT adjustment: got %d, want %d", got, score)
	}
}
