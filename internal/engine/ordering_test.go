package engine

import (
	"testing"

	"github.com/ethereal-go/ethereal/internal/board"
)

func TestContinuationHistoryUpdateAndLookup(t *testing.T) {
	mo := NewMoveOrderer()

	prevPiece := board.WhiteKnight
	prevTo := board.F3
	piece := board.WhitePawn
	toSq := board.E4

	mo.UpdateContinuationHistory(prevPiece, prevTo, piece, toSq, 4, 1, true)

	table := mo.GetContinuationHistoryTable(prevPiece, prevTo)
	if table == nil {
		t.Fatalf("expected a continuation history table for a real piece")
	}
	if table[piece][toSq] <= 0 {
		t.Errorf("expected a positive bonus after a good-move update, got %d", table[piece][toSq])
	}

	if got := mo.GetContinuationHistoryTable(board.NoPiece, prevTo); got != nil {
		t.Errorf("expected nil table for NoPiece, got %+v", got)
	}
}

func TestLowPlyHistory(t *testing.T) {
	mo := NewMoveOrderer()
	move := board.NewMove(board.D2, board.D4)

	if score := mo.GetLowPlyHistoryScore(move, 0); score != 0 {
		t.Errorf("expected zero score before any update, got %d", score)
	}

	mo.UpdateLowPlyHistory(move, 0, 6, true)
	if score := mo.GetLowPlyHistoryScore(move, 0); score <= 0 {
		t.Errorf("expected a positive score after a good-move update, got %d", score)
	}
}

func TestSharedHistoryGetUpdate(t *testing.T) {
	sh := NewSharedHistory()

	if got := sh.Get(int(board.E2), int(board.E4)); got != 0 {
		t.Errorf("expected zero on a fresh table, got %d", got)
	}

	sh.Update(int(board.E2), int(board.E4), 500)
	if got := sh.Get(int(board.E2), int(board.E4)); got != 500 {
		t.Errorf("expected 500 after update, got %d", got)
	}

	sh.Update(int(board.E2), int(board.E4), -200)
	if got := sh.Get(int(board.E2), int(board.E4)); got != 300 {
		t.Errorf("expected 300 after a negative update, got %d", got)
	}
}

func TestSharedHistoryClear(t *testing.T) {
	sh := NewSharedHistory()
	sh.Update(int(board.A2), int(board.A4), 1000)
	sh.Clear()

	if got := sh.Get(int(board.A2), int(board.A4)); got != 0 {
		t.Errorf("expected zero after Clear, got %d", got)
	}
}
