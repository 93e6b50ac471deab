package engine

import "github.com/dylhunn/dragontoothmg"

// State is a snapshot pushed for every position reached, game moves and
// search moves alike, so repetition detection sees the whole line.
type State struct {
	Hash   uint64
	Rule50 uint8
}

type stateStack struct {
	states []State
}

func (s *stateStack) push(hash uint64, rule50 uint8) {
	s.states = append(s.states, State{Hash: hash, Rule50: rule50})
}

func (s *stateStack) pop() {
	s.states = s.states[:len(s.states)-1]
}

func (s *stateStack) clear() {
	s.states = s.states[:0]
}

// isRepetition walks back through same-side positions until an irreversible
// move cuts the line off. A single earlier occurrence counts as a draw; the
// search has no reason to distinguish two-fold from three-fold.
func (s *stateStack) isRepetition(hash uint64) bool {
	for i := len(s.states) - 2; i >= 0; i -= 2 {
		if s.states[i].Hash == hash {
			return true
		}
		if s.states[i].Rule50 == 0 {
			break
		}
	}
	return false
}

// RecordPosition notes a played game position so the search detects
// repetitions that span the game/search boundary.
func RecordPosition(b *dragontoothmg.Board) {
	posStack.push(b.Hash(), b.Halfmoveclock)
}

// ClearHistory drops the recorded game positions.
func ClearHistory() {
	posStack.clear()
}

func isDraw(b *dragontoothmg.Board) bool {
	if b.Halfmoveclock >= 100 {
		return true
	}
	return posStack.isRepetition(b.Hash())
}
