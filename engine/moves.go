package engine

import (
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// applyMoveWithState plays a move, pushes repetition bookkeeping, and
// returns the function that takes both back.
func applyMoveWithState(b *dragontoothmg.Board, move dragontoothmg.Move) func() {
	posStack.push(b.Hash(), b.Halfmoveclock)
	unapply := b.Apply(move)
	return func() {
		unapply()
		posStack.pop()
	}
}

// applyNullMove hands the move to the opponent. The movegen library does not
// expose a null move, so the board is rebuilt from its FEN with the side to
// move flipped and the en passant square cleared.
func applyNullMove(b *dragontoothmg.Board) func() {
	saved := *b
	fields := strings.Fields(b.ToFen())
	if len(fields) >= 2 {
		if fields[1] == "w" {
			fields[1] = "b"
		} else {
			fields[1] = "w"
		}
	}
	if len(fields) >= 4 {
		fields[3] = "-"
	}
	*b = dragontoothmg.ParseFen(strings.Join(fields, " "))
	return func() {
		*b = saved
	}
}

// givesCheck reports whether the move leaves the opponent in check.
func givesCheck(b *dragontoothmg.Board, move dragontoothmg.Move) bool {
	unapply := b.Apply(move)
	check := b.OurKingInCheck()
	unapply()
	return check
}

// sideHasPieces reports whether the side to move has anything beyond king
// and pawns. Null move pruning stays off without it: zugzwang territory.
func sideHasPieces(b *dragontoothmg.Board) bool {
	bb := &b.White
	if !b.Wtomove {
		bb = &b.Black
	}
	return bb.Knights|bb.Bishops|bb.Rooks|bb.Queens != 0
}

// canWin reports whether a side retains enough material to ever deliver
// mate: a pawn, a rook, a queen, or at least two minor pieces.
func canWin(bb *dragontoothmg.Bitboards) bool {
	if bb.Pawns|bb.Rooks|bb.Queens != 0 {
		return true
	}
	return bits.OnesCount64(bb.Knights|bb.Bishops) >= 2
}

func containsMove(moves []dragontoothmg.Move, m dragontoothmg.Move) bool {
	for _, x := range moves {
		if x == m {
			return true
		}
	}
	return false
}

func gameHalfmoves(b *dragontoothmg.Board) int {
	h := (int(b.Fullmoveno) - 1) * 2
	if !b.Wtomove {
		h++
	}
	if h < 0 {
		h = 0
	}
	return h
}
