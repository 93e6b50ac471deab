package engine

import "math"

// lmrTable[depth][moveIndex] is the reduction applied to late quiet moves.
var lmrTable [MaxDepth + 1][64]int8

func init() {
	initMvvLva()
	initLMRTable()
}

func initMvvLva() {
	for victim := 1; victim <= 6; victim++ {
		for attacker := 1; attacker <= 6; attacker++ {
			mvvLva[victim][attacker] = int32(victim*100 - attacker*10)
		}
	}
}

func initLMRTable() {
	for depth := 1; depth <= int(MaxDepth); depth++ {
		for moves := 1; moves < 64; moves++ {
			r := 0.5 + math.Log(float64(depth))*math.Log(float64(moves))/2.5
			lmrTable[depth][moves] = int8(r)
		}
	}
}
