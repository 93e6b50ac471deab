package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func mustMove(t *testing.T, s string) dragontoothmg.Move {
	t.Helper()
	m, err := dragontoothmg.ParseMove(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return m
}

func scoreOf(t *testing.T, list *moveList, s string) int32 {
	t.Helper()
	for i, m := range list.moves {
		if m.String() == s {
			return list.scores[i]
		}
	}
	t.Fatalf("move %s not in list", s)
	return 0
}

func TestScoreMovesListTiers(t *testing.T) {
	b := dragontoothmg.ParseFen("4k3/3p4/8/8/8/8/8/3QK3 w - - 0 1")
	list := newMoveList(b.GenerateLegalMoves())

	var killers KillerStruct
	killers.InsertKiller(mustMove(t, "d1d3"), 0)
	ttMove := mustMove(t, "e1e2")
	scoreMovesList(&b, &list, ttMove, &killers, 0)

	tt := scoreOf(t, &list, "e1e2")   // hash move, a quiet king step
	killer := scoreOf(t, &list, "d1d3")
	capture := scoreOf(t, &list, "d1d7") // queen takes the d7 pawn
	check := scoreOf(t, &list, "d1h5")   // quiet check on the diagonal
	quiet := scoreOf(t, &list, "d1c1")

	if !(tt > killer && killer > capture && capture > check && check > quiet) {
		t.Fatalf("tier order broken: tt=%d killer=%d capture=%d check=%d quiet=%d",
			tt, killer, capture, check, quiet)
	}
	if capture < captureScore {
		t.Fatalf("capture scored below its tier: %d", capture)
	}
}

func TestOrderNextMoveSortsDescending(t *testing.T) {
	b := dragontoothmg.ParseFen("4k3/3p4/8/8/8/8/8/3QK3 w - - 0 1")
	list := newMoveList(b.GenerateLegalMoves())
	var killers KillerStruct
	scoreMovesList(&b, &list, 0, &killers, 0)

	for i := 0; i < len(list.moves); i++ {
		orderNextMove(i, &list)
		if i > 0 && list.scores[i] > list.scores[i-1] {
			t.Fatalf("scores out of order at %d: %d after %d", i, list.scores[i], list.scores[i-1])
		}
	}
}

func TestMvvLvaPrefersBigVictimCheapAttacker(t *testing.T) {
	pawnTakesQueen := mvvLva[dragontoothmg.Queen][dragontoothmg.Pawn]
	queenTakesPawn := mvvLva[dragontoothmg.Pawn][dragontoothmg.Queen]
	if pawnTakesQueen <= queenTakesPawn {
		t.Fatalf("pawn takes queen (%d) should outrank queen takes pawn (%d)",
			pawnTakesQueen, queenTakesPawn)
	}
}

func TestKillerDisplacement(t *testing.T) {
	var k KillerStruct
	m1 := mustMove(t, "a2a3")
	m2 := mustMove(t, "b2b3")
	m3 := mustMove(t, "c2c3")

	k.InsertKiller(m1, 4)
	k.InsertKiller(m2, 4)
	if !k.IsKiller(m1, 4) || !k.IsKiller(m2, 4) {
		t.Fatalf("both recent killers should be kept")
	}
	k.InsertKiller(m2, 4) // re-inserting the head must not clone it
	if k.KillerMoves[4][0] != m2 || k.KillerMoves[4][1] != m1 {
		t.Fatalf("re-insert reordered slots: %v", k.KillerMoves[4])
	}
	k.InsertKiller(m3, 4)
	if k.IsKiller(m1, 4) {
		t.Fatalf("oldest killer should be displaced")
	}
	if k.IsKiller(m1, 5) || k.IsKiller(m2, 5) {
		t.Fatalf("killers leaked across plies")
	}
	k.Clear()
	if k.IsKiller(m2, 4) {
		t.Fatalf("Clear left entries behind")
	}
}
