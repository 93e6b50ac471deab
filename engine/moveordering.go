package engine

import "github.com/dylhunn/dragontoothmg"

type moveList struct {
	moves  []dragontoothmg.Move
	scores []int32
}

func newMoveList(moves []dragontoothmg.Move) moveList {
	return moveList{moves: moves, scores: make([]int32, len(moves))}
}

// Ordering tiers: hash move, killers, captures, checks, the rest. Within
// the capture tier MVV-LVA spreads the scores.
const (
	ttMoveScore  int32 = 1 << 30
	killerScore  int32 = 1 << 28
	captureScore int32 = 1 << 26
	checkScore   int32 = 1 << 24
)

// mvvLva[victim][attacker], filled in by init.
var mvvLva [7][7]int32

func scoreMovesList(b *dragontoothmg.Board, list *moveList, ttMove dragontoothmg.Move, killers *KillerStruct, ply int8) {
	for i, move := range list.moves {
		switch {
		case move == ttMove && ttMove != 0:
			list.scores[i] = ttMoveScore
		case killers.IsKiller(move, ply):
			list.scores[i] = killerScore
		case dragontoothmg.IsCapture(move, b):
			victim := pieceTypeAt(b, dragontoothmg.Square(move.To()))
			if victim == 0 {
				victim = int(dragontoothmg.Pawn) // en passant
			}
			attacker := pieceTypeAt(b, dragontoothmg.Square(move.From()))
			list.scores[i] = captureScore + mvvLva[victim][attacker]
		case givesCheck(b, move):
			list.scores[i] = checkScore
		default:
			list.scores[i] = 0
		}
	}
}

// orderNextMove selection-sorts the best remaining move into position idx.
// Cutoffs usually come early, so fully sorting the list up front would be
// wasted work.
func orderNextMove(idx int, list *moveList) {
	best := idx
	for i := idx + 1; i < len(list.moves); i++ {
		if list.scores[i] > list.scores[best] {
			best = i
		}
	}
	if best != idx {
		list.moves[idx], list.moves[best] = list.moves[best], list.moves[idx]
		list.scores[idx], list.scores[best] = list.scores[best], list.scores[idx]
	}
}

func pieceTypeAt(b *dragontoothmg.Board, sq dragontoothmg.Square) int {
	mask := uint64(1) << sq
	for _, side := range [2]*dragontoothmg.Bitboards{&b.White, &b.Black} {
		switch {
		case side.Pawns&mask != 0:
			return int(dragontoothmg.Pawn)
		case side.Knights&mask != 0:
			return int(dragontoothmg.Knight)
		case side.Bishops&mask != 0:
			return int(dragontoothmg.Bishop)
		case side.Rooks&mask != 0:
			return int(dragontoothmg.Rook)
		case side.Queens&mask != 0:
			return int(dragontoothmg.Queen)
		case side.Kings&mask != 0:
			return int(dragontoothmg.King)
		}
	}
	return 0
}
