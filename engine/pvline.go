package engine

import (
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// PVLine holds the principal variation collected while searching.
type PVLine struct {
	Moves []dragontoothmg.Move
}

func (pv *PVLine) Clear() {
	pv.Moves = pv.Moves[:0]
}

// Update replaces the line with move followed by the child's line.
func (pv *PVLine) Update(move dragontoothmg.Move, childPV *PVLine) {
	pv.Clear()
	pv.Moves = append(pv.Moves, move)
	pv.Moves = append(pv.Moves, childPV.Moves...)
}

func (pv *PVLine) BestMove() dragontoothmg.Move {
	if len(pv.Moves) == 0 {
		return 0
	}
	return pv.Moves[0]
}

func (pv *PVLine) Clone() PVLine {
	cp := make([]dragontoothmg.Move, len(pv.Moves))
	copy(cp, pv.Moves)
	return PVLine{Moves: cp}
}

func (pv *PVLine) String() string {
	var sb strings.Builder
	for i, move := range pv.Moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(move.String())
	}
	return sb.String()
}
