package engine

import "github.com/dylhunn/dragontoothmg"

// KillerStruct remembers quiet moves that caused a beta cutoff, two per ply.
// Only ordering reads it, so a stale entry costs nothing but a worse sort.
type KillerStruct struct {
	KillerMoves [MaxPly + 1][2]dragontoothmg.Move
}

// InsertKiller displaces the older slot; re-inserting the current first
// killer is a no-op so both slots stay distinct.
func (k *KillerStruct) InsertKiller(move dragontoothmg.Move, ply int8) {
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

func (k *KillerStruct) IsKiller(move dragontoothmg.Move, ply int8) bool {
	return move == k.KillerMoves[ply][0] || move == k.KillerMoves[ply][1]
}

func (k *KillerStruct) Clear() {
	for ply := range k.KillerMoves {
		k.KillerMoves[ply][0] = 0
		k.KillerMoves[ply][1] = 0
	}
}
