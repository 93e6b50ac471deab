package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// PieceValue is indexed by dragontoothmg piece type.
var PieceValue = [7]int32{0, 100, 320, 330, 500, 900, 0}

const (
	centerMask    uint64 = 0x0000001818000000 // d4 e4 d5 e5
	extCenterMask uint64 = 0x00003c3c3c3c0000 // c3..f6 box
)

// Evaluation scores the position from the side to move's point of view:
// material plus a small central-occupancy term, with the cannot-win
// adjustment applied last.
func Evaluation(b *dragontoothmg.Board) int32 {
	white := materialScore(&b.White) + centerScore(b.White.All)
	black := materialScore(&b.Black) + centerScore(b.Black.All)

	score := white - black
	if !b.Wtomove {
		score = -score
	}

	stmCanWin, oppCanWin := canWin(&b.White), canWin(&b.Black)
	if !b.Wtomove {
		stmCanWin, oppCanWin = oppCanWin, stmCanWin
	}
	switch {
	case !stmCanWin && !oppCanWin:
		return DrawScore
	case stmCanWin && !oppCanWin:
		score += drawSteerBonus
	case !stmCanWin && oppCanWin:
		score -= drawSteerBonus
	}
	return score
}

func materialScore(bb *dragontoothmg.Bitboards) int32 {
	return int32(bits.OnesCount64(bb.Pawns))*PieceValue[dragontoothmg.Pawn] +
		int32(bits.OnesCount64(bb.Knights))*PieceValue[dragontoothmg.Knight] +
		int32(bits.OnesCount64(bb.Bishops))*PieceValue[dragontoothmg.Bishop] +
		int32(bits.OnesCount64(bb.Rooks))*PieceValue[dragontoothmg.Rook] +
		int32(bits.OnesCount64(bb.Queens))*PieceValue[dragontoothmg.Queen]
}

func centerScore(all uint64) int32 {
	return int32(bits.OnesCount64(all&centerMask))*10 +
		int32(bits.OnesCount64(all&extCenterMask))*3
}
