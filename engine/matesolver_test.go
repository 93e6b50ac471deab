package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestFindForcedMateInOne(t *testing.T) {
	b := dragontoothmg.ParseFen("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	line, found := FindForcedMate(&b, 1)
	if !found {
		t.Fatalf("mate in one not found")
	}
	if len(line) != 1 || line[0].String() != "e1e8" {
		t.Fatalf("expected [e1e8], got %v", line)
	}
}

func TestFindForcedMateInThree(t *testing.T) {
	b := dragontoothmg.ParseFen("8/R5P1/5P2/3kBp2/3p1P2/1K1P1P2/8/8 w - - 1 3")
	line, found := FindForcedMate(&b, 5)
	if !found {
		t.Fatalf("forced mate not found within 5 plies")
	}
	if len(line)%2 != 1 {
		t.Fatalf("forcing line must end on the attacker's move, got %d plies", len(line))
	}
	if len(line) > 5 {
		t.Fatalf("line of %d plies exceeds the bound", len(line))
	}
	// Replay the line and confirm it really ends in checkmate.
	for _, move := range line {
		if !containsMove(b.GenerateLegalMoves(), move) {
			t.Fatalf("line contains illegal move %s", move.String())
		}
		b.Apply(move)
	}
	if len(b.GenerateLegalMoves()) != 0 || !b.OurKingInCheck() {
		t.Fatalf("line does not end in checkmate: %s", b.ToFen())
	}
}

func TestNoForcedMateFromStartpos(t *testing.T) {
	b := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	if _, found := FindForcedMate(&b, 3); found {
		t.Fatalf("claimed a forced mate from the starting position")
	}
}

func TestFindForcedMateZeroBound(t *testing.T) {
	b := dragontoothmg.ParseFen("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	if _, found := FindForcedMate(&b, 0); found {
		t.Fatalf("found a mate within zero plies")
	}
}
