package engine

import (
	"github.com/ethereal-go/ethereal/internal/board"
)

// TTFlag indicates the type of bound stored in the transposition table.
type TTFlag uint8

const (
	TTNone       TTFlag = iota
	TTExact             // Exact score
	TTLowerBound        // Failed high (beta cutoff)
	TTUpperBound        // Failed low
)

// ttSlotSize is kept a power of 2 so a bucket is exactly 32 bytes: four
// 8-byte slots. This mirrors the bucketed cluster design used by the
// reference engine's master branch rather than the older one-entry-per-slot
// layout: a bucket gives Store() a choice of replacement candidates, which
// keeps high-depth entries alive far longer under heavy hash pressure.
const ttSlotSize = 8

// ttMaxStoreDepth is the deepest depth value a ttSlot's int8 field can hold.
// Tablebase hits are stored at maximum confidence but must be clamped to this
// rather than MaxPly (128), which overflows int8 and wraps to -128 — making
// the entry look like the shallowest possible result instead of the deepest.
const ttMaxStoreDepth = 127

// ttSlot is the packed, on-disk (in-bucket) representation of one entry.
// genBoundPV folds generation, bound, and the PV flag into a single byte so
// the slot stays 8 bytes: Key16(2) + BestMove(2) + Score(2) + Depth(1) +
// genBoundPV(1).
type ttSlot struct {
	key16      uint16
	bestMove   board.Move
	score      int16
	depth      int8
	genBoundPV uint8
}

const (
	ttBoundMask = 0b0000_0110
	ttPVMask    = 0b0000_0001
	ttGenMask   = 0b1111_1000
	ttGenCycle  = 1 << 3 // generation wraps every 32 NewSearch() calls
)

func (s *ttSlot) flag() TTFlag {
	return TTFlag((s.genBoundPV & ttBoundMask) >> 1)
}

func (s *ttSlot) isPV() bool {
	return s.genBoundPV&ttPVMask != 0
}

func (s *ttSlot) generation() uint8 {
	return s.genBoundPV & ttGenMask
}

func packGenBoundPV(gen uint8, flag TTFlag, isPV bool) uint8 {
	b := gen & ttGenMask
	b |= uint8(flag) << 1
	if isPV {
		b |= ttPVMask
	}
	return b
}

// TTEntry is the unpacked view of a slot returned by Probe, with the bound
// and PV flag already split out into plain fields for callers.
type TTEntry struct {
	BestMove board.Move
	Score    int16
	Depth    int8
	Flag     TTFlag
	IsPV     bool
}

// ttBucket is a cache-line-sized cluster of candidate slots for one hash index.
type ttBucket struct {
	slots [4]ttSlot
}

// TranspositionTable is a bucketed hash table for storing search results.
type TranspositionTable struct {
	buckets []ttBucket
	mask    uint64
	gen     uint8

	hits   uint64
	probes uint64
}

// NewTranspositionTable creates a transposition table with the given size in MB.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	bucketSize := uint64(ttSlotSize * 4)
	numBuckets := (uint64(sizeMB) * 1024 * 1024) / bucketSize
	numBuckets = roundDownToPowerOf2(numBuckets)
	if numBuckets == 0 {
		numBuckets = 1
	}

	return &TranspositionTable{
		buckets: make([]ttBucket, numBuckets),
		mask:    numBuckets - 1,
	}
}

// roundDownToPowerOf2 rounds n down to the nearest power of 2.
func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

func ttKey16(hash uint64) uint16 {
	return uint16(hash >> 48)
}

// Probe looks up a position in the transposition table.
// Returns the matching entry and true if found, otherwise a zero entry and false.
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	tt.probes++

	bucket := &tt.buckets[hash&tt.mask]
	key16 := ttKey16(hash)

	for i := range bucket.slots {
		s := &bucket.slots[i]
		if s.key16 == key16 && s.flag() != TTNone {
			tt.hits++
			return TTEntry{
				BestMove: s.bestMove,
				Score:    s.score,
				Depth:    s.depth,
				Flag:     s.flag(),
				IsPV:     s.isPV(),
			}, true
		}
	}

	return TTEntry{}, false
}

// Store saves a position in the transposition table, choosing the weakest
// slot in the bucket to evict when the key isn't already present: prefer an
// empty slot, then the slot with the lowest replacement score (older
// generation and/or shallower depth).
func (tt *TranspositionTable) Store(hash uint64, depth int, score int, flag TTFlag, bestMove board.Move, isPV bool) {
	bucket := &tt.buckets[hash&tt.mask]
	key16 := ttKey16(hash)

	var target *ttSlot
	for i := range bucket.slots {
		s := &bucket.slots[i]
		if s.flag() == TTNone || s.key16 == key16 {
			target = s
			break
		}
		if target == nil || replacementScore(s, tt.gen) < replacementScore(target, tt.gen) {
			target = s
		}
	}

	// Keep the existing move if the new store has none and the slot already
	// matches this position, the way a depth-preferred cutoff re-store does.
	if target.key16 == key16 && bestMove == board.NoMove {
		bestMove = target.bestMove
	}

	// A shallow non-exact re-search must not clobber a much deeper entry for
	// the same position: skip the store if the existing slot is a match and
	// more than 3 plies deeper than what we're about to write.
	if target.key16 == key16 && flag != TTExact && int(target.depth) > depth+3 {
		return
	}

	target.key16 = key16
	target.bestMove = bestMove
	target.score = int16(score)
	target.depth = int8(depth)
	target.genBoundPV = packGenBoundPV(tt.gen, flag, isPV)
}

// replacementScore ranks slots for eviction: lower is more replaceable.
// Entries are sticky in proportion to depth, and each generation of age
// costs a slot 8 plies of depth, so a stale entry outlasts a fresh one only
// when it is much deeper.
func replacementScore(s *ttSlot, currentGen uint8) int {
	age := int((currentGen - s.generation()) & ttGenMask >> 3)
	return int(s.depth) - 8*age
}

// NewSearch advances the generation counter for a new search, used to age
// out stale entries during replacement without a full clear.
func (tt *TranspositionTable) NewSearch() {
	tt.gen = (tt.gen + ttGenCycle) & ttGenMask
}

// Clear clears the transposition table.
func (tt *TranspositionTable) Clear() {
	for i := range tt.buckets {
		tt.buckets[i] = ttBucket{}
	}
	tt.gen = 0
	tt.hits = 0
	tt.probes = 0
}

// HashFull returns the permille (parts per thousand) of the table that is used.
func (tt *TranspositionTable) HashFull() int {
	sampleSize := 1000
	if uint64(sampleSize) > uint64(len(tt.buckets)) {
		sampleSize = len(tt.buckets)
	}

	used := 0
	for i := 0; i < sampleSize; i++ {
		for j := range tt.buckets[i].slots {
			s := &tt.buckets[i].slots[j]
			if s.flag() != TTNone && s.generation() == tt.gen {
				used++
			}
		}
	}

	return (used * 1000) / (sampleSize * 4)
}

// HitRate returns the cache hit rate as a percentage.
func (tt *TranspositionTable) HitRate() float64 {
	if tt.probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(tt.probes) * 100
}

// Size returns the number of entries (4 slots per bucket) in the table.
func (tt *TranspositionTable) Size() uint64 {
	return uint64(len(tt.buckets)) * 4
}

// AdjustScoreFromTT adjusts a score read from the transposition table back
// into ply-relative terms. Mate scores are stored relative to the node that
// stored them (AdjustScoreToTT adds the ply), so they must be rebiased by the
// ply at which they're being read.
func AdjustScoreFromTT(score int, ply int) int {
	if score > MateScore-MaxPly {
		return score - ply
	}
	if score < -MateScore+MaxPly {
		return score + ply
	}
	return score
}

// AdjustScoreToTT adjusts a score for storage in the transposition table.
func AdjustScoreToTT(score int, ply int) int {
	if score > MateScore-MaxPly {
		return score + ply
	}
	if score < -MateScore+MaxPly {
		return score - ply
	}
	return score
}
