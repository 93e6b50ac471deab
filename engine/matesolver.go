package engine

import "github.com/dylhunn/dragontoothmg"

const mateTTSizeMB = 16

// FindForcedMate looks for a mate the side to move can force within
// maxPlies half moves, considering only checking moves for the attacker
// (plus evasions when already in check) and every reply for the defender.
// On success it returns the forcing line, attacker moving first.
//
// Results go through mateTT, never the main table: a "no mate within N"
// fact is not a search score and must not leak into ordinary probes.
func FindForcedMate(b *dragontoothmg.Board, maxPlies int) ([]dragontoothmg.Move, bool) {
	if maxPlies <= 0 {
		return nil, false
	}
	if mateTT.size == 0 {
		mateTT.Init(mateTTSizeMB)
	}
	mateTT.Clear()
	return mateAttack(b, maxPlies)
}

// mateAttack tries every forcing move and keeps the shortest proven mate,
// shrinking the bound as shorter mates turn up. Failures are cached with
// the bound they were proven at.
func mateAttack(b *dragontoothmg.Board, bound int) ([]dragontoothmg.Move, bool) {
	if bound <= 0 {
		return nil, false
	}
	hash := b.Hash()
	if entry, ok := mateTT.Probe(hash); ok && int(entry.Depth) >= bound {
		return nil, false
	}

	inCheck := b.OurKingInCheck()
	var best []dragontoothmg.Move
	found := false
	for _, move := range b.GenerateLegalMoves() {
		if !inCheck && !givesCheck(b, move) {
			continue
		}
		unapply := b.Apply(move)
		cont, mated := mateDefend(b, bound-1)
		unapply()
		if !mated {
			continue
		}
		line := make([]dragontoothmg.Move, 0, len(cont)+1)
		line = append(line, move)
		line = append(line, cont...)
		if !found || len(line) < len(best) {
			best, found = line, true
			if len(best) == 1 {
				break
			}
			bound = len(best) - 1
		}
	}
	if !found {
		mateTT.Store(hash, int8(bound), 0, AlphaFlag, 0, 0)
	}
	return best, found
}

// mateDefend succeeds only when every legal reply is mated within the
// bound. It reports the longest resistance so the returned line is the one
// the defender would actually choose.
func mateDefend(b *dragontoothmg.Board, bound int) ([]dragontoothmg.Move, bool) {
	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			return nil, true
		}
		return nil, false // stalemate escapes
	}
	if bound <= 0 {
		return nil, false
	}
	var longest []dragontoothmg.Move
	for _, move := range moves {
		unapply := b.Apply(move)
		cont, mated := mateAttack(b, bound-1)
		unapply()
		if !mated {
			return nil, false
		}
		line := make([]dragontoothmg.Move, 0, len(cont)+1)
		line = append(line, move)
		line = append(line, cont...)
		if len(line) > len(longest) {
			longest = line
		}
	}
	return longest, true
}
