package engine

import (
	"sync/atomic"

	"github.com/ethereal-go/ethereal/internal/board"
)

// Search constants
const (
	Infinity  = 30000
	MateScore = 29000
	MaxPly    = 128
)

// PVTable stores the principal variation.
type PVTable struct {
	length [MaxPly]int
	moves  [MaxPly][MaxPly]board.Move
}

// Searcher drives a single-threaded search, used for Multi-PV analysis where
// root moves must be excluded one at a time between passes. It owns a
// private Worker rather than duplicating negamax/quiescence: Worker already
// carries every heuristic (continuation history, correction history, NNUE,
// tablebase probing) the full Lazy-SMP search uses, and a second copy of
// that logic here would drift out of sync with it.
type Searcher struct {
	worker   *Worker
	stopFlag atomic.Bool
}

// NewSearcher creates a new searcher backed by the given transposition table.
func NewSearcher(tt *TranspositionTable) *Searcher {
	s := &Searcher{}
	s.worker = NewWorker(-1, tt, NewPawnTable(1), NewSharedHistory(), &s.stopFlag)
	return s
}

// Stop signals the search to stop.
func (s *Searcher) Stop() {
	s.stopFlag.Store(true)
}

// IsStopped reports whether Stop has been called since the last Reset.
func (s *Searcher) IsStopped() bool {
	return s.stopFlag.Load()
}

// Reset resets the searcher for a new search.
func (s *Searcher) Reset() {
	s.stopFlag.Store(false)
	s.worker.Reset()
}

// ClearOrderer clears the move ordering tables between games.
func (s *Searcher) ClearOrderer() {
	s.worker.orderer.Clear()
}

// SetRootHistory sets the game's position history for repetition detection.
func (s *Searcher) SetRootHistory(hashes []uint64) {
	s.worker.SetRootHistory(hashes)
}

// SetExcludedMoves excludes the given root moves, used to find successive
// principal variations for Multi-PV output.
func (s *Searcher) SetExcludedMoves(moves []board.Move) {
	s.worker.SetExcludedMoves(moves)
}

// Nodes returns the number of nodes searched.
func (s *Searcher) Nodes() uint64 {
	return s.worker.Nodes()
}

// Search runs a single full-window search at the given depth (no iterative
// deepening) and returns the best move and its score.
func (s *Searcher) Search(pos *board.Position, depth int) (board.Move, int) {
	s.worker.InitSearch(pos.Copy())
	return s.worker.SearchDepth(depth, -Infinity, Infinity)
}

// GetPV returns the principal variation from the last search.
func (s *Searcher) GetPV() []board.Move {
	return s.worker.GetPV()
}
