package engine

// Search feature flags. Each pruning/extension technique in negamax checks
// its flag before firing, so a single knob can isolate it during tuning or
// debugging without touching the search loop itself.
var (
	EnableRFP              = true
	EnableRazoring         = true
	EnableNMP              = true
	EnableProbcut          = true
	EnableMulticut         = true
	EnableFutilityPruning  = true
	EnableSEEPruning       = true
	EnableLMP              = true
	EnableHistoryPruning   = true
	EnableSingularExt      = true
	EnableThreatExt        = true
	EnableHindsightDepth   = true
)

// Depth/threshold tunables for the pruning and extension techniques above.
const (
	probcutDepth           = 5
	multicutDepth          = 6
	multicutMoves          = 6 // candidate moves sampled for the multi-cut probe
	multicutRequired       = 3 // cutoffs among those candidates needed to prune
	threatExtensionMinDepth = 4
	threatExtensionThreshold = RookValue // hanging piece must be worth at least this to extend

	historyPruningThreshold = -2000

	// lazyEvalMargin gates the cheap material-only quiescence cutoff: if the
	// material count alone clears beta (or falls short of alpha) by this much,
	// skip the full evaluation.
	lazyEvalMargin = 400
)

// lmpThreshold caps the number of quiet moves tried per depth before Late
// Move Pruning skips the rest, indexed by depth (0 unused).
var lmpThreshold = [8]int{0, 5, 8, 13, 20, 28, 37, 47}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
