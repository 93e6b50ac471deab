package engine

import "time"

// TimeBudget carries the clock portion of a go command.
type TimeBudget struct {
	WTimeMs    int64
	BTimeMs    int64
	WIncMs     int64
	BIncMs     int64
	MoveTimeMs int64
	Infinite   bool
}

// TimeHandler turns a budget into a single deadline. The deadline is fixed
// once per move request; Expired is one clock read so the hot path can poll
// it cheaply.
type TimeHandler struct {
	deadline  time.Time
	unbounded bool
}

const (
	overheadMs int64 = 30
	minMoveMs  int64 = 5
)

func (t *TimeHandler) Start(budget TimeBudget, whiteToMove bool, halfmoves int) {
	if budget.Infinite {
		t.unbounded = true
		return
	}
	t.unbounded = false
	t.deadline = time.Now().Add(time.Duration(allocMillis(budget, whiteToMove, halfmoves)) * time.Millisecond)
}

func (t *TimeHandler) Expired() bool {
	if t.unbounded {
		return false
	}
	return time.Now().After(t.deadline)
}

// allocMillis spreads the remaining clock over the expected game length:
// capped early on, a flat fraction past move 110, and an even split of what
// is left in between.
func allocMillis(budget TimeBudget, whiteToMove bool, halfmoves int) int64 {
	if budget.MoveTimeMs > 0 {
		return max(budget.MoveTimeMs-overheadMs, minMoveMs)
	}
	remaining, inc := budget.WTimeMs, budget.WIncMs
	if !whiteToMove {
		remaining, inc = budget.BTimeMs, budget.BIncMs
	}
	if remaining <= 0 {
		return minMoveMs
	}
	var alloc int64
	switch {
	case halfmoves < 10:
		alloc = min(int64(5000), remaining/2)
	case halfmoves > 220:
		alloc = remaining / 20
	default:
		alloc = 2 * remaining / int64(220-halfmoves)
	}
	upper := max(remaining*7/10, minMoveMs)
	return clamp(alloc+inc-overheadMs, minMoveMs, upper)
}
