package engine

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dylhunn/dragontoothmg"
)

// InfoWriter receives the per-depth info lines. The UCI loop points it at
// its own output stream; everything else inherits stdout.
var InfoWriter io.Writer = os.Stdout

var (
	TT     TransTable
	mateTT TransTable

	killerMoves KillerStruct
	timeHandler TimeHandler
	posStack    stateStack
	stats       searchStats

	// GlobalStop is the external kill switch; searchShouldStop is the
	// internal latch set once the deadline passes. Both are only polled.
	GlobalStop       bool
	searchShouldStop bool
	nodesChecked     uint64

	prevPVLine PVLine
)

// Stop requests cooperative cancellation of the running search.
func Stop() {
	GlobalStop = true
}

// ResetForNewGame drops everything learned from previous searches.
func ResetForNewGame() {
	TT.Init(Settings.TTSizeMB)
	mateTT.Init(mateTTSizeMB)
	killerMoves.Clear()
	posStack.clear()
	prevPVLine.Clear()
	GlobalStop = false
	searchShouldStop = false
}

// LastPV returns the principal variation of the last completed depth.
func LastPV() PVLine {
	return prevPVLine.Clone()
}

// BestMove runs an iterative deepening search within the budget and returns
// the move to play, or 0 when the side to move has no legal move.
func BestMove(b *dragontoothmg.Board, budget TimeBudget) dragontoothmg.Move {
	timeHandler.Start(budget, b.Wtomove, gameHalfmoves(b))
	searchShouldStop = false
	GlobalStop = false
	nodesChecked = 0
	stats.reset()
	killerMoves.Clear()
	prevPVLine.Clear()
	if Settings.UseTranspositionTable {
		TT.NextGeneration()
	}

	legal := b.GenerateLegalMoves()
	if len(legal) == 0 {
		return 0
	}
	bestMove := legal[0]

	maxDepth := Settings.MaxDepth
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	var prevScore int32
	start := time.Now()
	for depth := int8(1); depth <= maxDepth; depth++ {
		score, completed := rootSearch(b, depth, prevScore)
		if !completed {
			break
		}
		prevScore = score
		if prevPVLine.BestMove() != 0 {
			bestMove = prevPVLine.BestMove()
		}
		fmt.Fprintf(InfoWriter, "info depth %d score %s nodes %d time %d pv %s\n",
			depth, getMateOrCPScore(score), nodesChecked,
			time.Since(start).Milliseconds(), prevPVLine.String())
		stats.dump(depth)
		if score > Checkmate {
			break
		}
	}
	return bestMove
}

// rootSearch runs one aspiration-window iteration at the given depth and
// reports whether the depth completed before the deadline.
func rootSearch(b *dragontoothmg.Board, depth int8, prevScore int32) (int32, bool) {
	alpha, beta := -MaxScore, MaxScore
	delta := aspirationDelta
	if Settings.AspirationWindow && depth > 3 {
		alpha = max(prevScore-delta, -MaxScore)
		beta = min(prevScore+delta, MaxScore)
	}
	for {
		var pv PVLine
		score := alphabeta(b, alpha, beta, depth, 0, &pv, false, -1)
		if searchShouldStop || GlobalStop {
			return 0, false
		}
		if score <= alpha {
			stats.aspirationRetries++
			alpha = max(alpha-delta, -MaxScore)
			delta *= 2
			continue
		}
		if score >= beta {
			stats.aspirationRetries++
			beta = min(beta+delta, MaxScore)
			delta *= 2
			continue
		}
		prevPVLine = pv.Clone()
		return score, true
	}
}

// alphabeta is a fail-soft negamax search. lastCapSq carries the target
// square of the move that led here, -1 for a quiet move; at the horizon it
// bounds the recapture resolution to that one square.
func alphabeta(b *dragontoothmg.Board, alpha, beta int32, depth, ply int8, pv *PVLine, didNull bool, lastCapSq int8) int32 {
	if depth < 0 {
		panic("search: negative depth")
	}
	nodesChecked++
	stats.nodes++
	if nodesChecked&4095 == 0 {
		if GlobalStop || timeHandler.Expired() {
			searchShouldStop = true
		}
	}
	if searchShouldStop || GlobalStop {
		return 0
	}

	if ply > 0 && isDraw(b) {
		return DrawScore
	}
	if ply >= MaxPly {
		return Evaluation(b)
	}

	inCheck := b.OurKingInCheck()
	if inCheck && ply > 0 && depth < MaxDepth {
		depth++
	}

	hash := b.Hash()
	var ttMove dragontoothmg.Move
	if Settings.UseTranspositionTable {
		if entry, ok := TT.Probe(hash); ok {
			stats.ttHits++
			ttMove = entry.Best
			if ply > 0 && entry.Depth >= depth {
				score := adjustedScore(entry.Score, ply)
				switch entry.Flag {
				case ExactFlag:
					stats.ttCutoffs++
					return score
				case BetaFlag:
					if score >= beta {
						stats.ttCutoffs++
						return score
					}
				case AlphaFlag:
					if score <= alpha {
						stats.ttCutoffs++
						return score
					}
				}
			}
		}
	}

	if depth == 0 {
		if lastCapSq >= 0 {
			return resolveCapture(b, alpha, beta, dragontoothmg.Square(lastCapSq), ply)
		}
		return Evaluation(b)
	}

	if Settings.NullMovePruning && !didNull && !inCheck && ply > 0 &&
		depth >= 3 && sideHasPieces(b) {
		reduction := 2 + depth/6
		reduced := depth - 1 - reduction
		if reduced < 0 {
			reduced = 0
		}
		undo := applyNullMove(b)
		var line PVLine
		score := -alphabeta(b, -beta, -beta+1, reduced, ply+1, &line, true, -1)
		undo()
		if searchShouldStop || GlobalStop {
			return 0
		}
		if score >= beta && score < Checkmate {
			stats.nullCutoffs++
			return beta
		}
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if inCheck {
			return -MaxScore + int32(ply)
		}
		return DrawScore
	}

	// A stored move may come from a colliding hash. Only a move that is
	// legal right now may steer ordering.
	if ttMove != 0 && !containsMove(moves, ttMove) {
		ttMove = 0
	}

	list := newMoveList(moves)
	scoreMovesList(b, &list, ttMove, &killerMoves, ply)

	ttFlag := AlphaFlag
	bestScore := -MaxScore
	var bestMove dragontoothmg.Move
	var childPV PVLine

	for i := 0; i < len(list.moves); i++ {
		orderNextMove(i, &list)
		move := list.moves[i]
		isCapture := dragontoothmg.IsCapture(move, b)
		capSq := int8(-1)
		if isCapture {
			capSq = int8(move.To())
		}
		unapply := applyMoveWithState(b, move)

		childPV.Clear()
		newDepth := depth - 1
		var score int32
		if Settings.LateMoveReduction && i > 1 && depth >= 3 &&
			!inCheck && !isCapture && move.Promote() == 0 {
			idx := i
			if idx > 63 {
				idx = 63
			}
			reduced := newDepth - lmrTable[depth][idx]
			if reduced < 1 {
				reduced = 1
			}
			if reduced < newDepth {
				stats.lmrReductions++
			}
			score = -alphabeta(b, -beta, -alpha, reduced, ply+1, &childPV, false, capSq)
			if score > alpha && reduced < newDepth {
				stats.lmrResearches++
				childPV.Clear()
				score = -alphabeta(b, -beta, -alpha, newDepth, ply+1, &childPV, false, capSq)
			}
		} else {
			score = -alphabeta(b, -beta, -alpha, newDepth, ply+1, &childPV, false, capSq)
		}
		unapply()

		if searchShouldStop || GlobalStop {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
			ttFlag = ExactFlag
			pv.Update(move, &childPV)
		}
		if alpha >= beta {
			ttFlag = BetaFlag
			stats.betaCutoffs++
			if !isCapture {
				killerMoves.InsertKiller(move, ply)
			}
			break
		}
	}

	// Never store results of an aborted node.
	if Settings.UseTranspositionTable && !searchShouldStop && !GlobalStop {
		TT.Store(hash, depth, bestScore, ttFlag, bestMove, ply)
	}
	return bestScore
}

// resolveCapture settles the exchange on one square before the horizon eval
// is trusted. Only captures landing on sq are searched, so the extension
// stays a short capture chain rather than a full quiescence search.
func resolveCapture(b *dragontoothmg.Board, alpha, beta int32, sq dragontoothmg.Square, ply int8) int32 {
	nodesChecked++
	stats.recaptureNodes++
	if nodesChecked&4095 == 0 {
		if GlobalStop || timeHandler.Expired() {
			searchShouldStop = true
		}
	}
	if searchShouldStop || GlobalStop {
		return 0
	}
	if ply >= MaxPly {
		return Evaluation(b)
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			return -MaxScore + int32(ply)
		}
		return DrawScore
	}

	standPat := Evaluation(b)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	best := standPat
	for _, move := range moves {
		if dragontoothmg.Square(move.To()) != sq || !dragontoothmg.IsCapture(move, b) {
			continue
		}
		unapply := b.Apply(move)
		score := -resolveCapture(b, -beta, -alpha, sq, ply+1)
		unapply()
		if searchShouldStop || GlobalStop {
			return 0
		}
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
