package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"

	"grebe/engine"
)

const (
	engineName   = "Grebe"
	engineAuthor = "the grebe authors"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger()

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

func uciLoop(in io.Reader, out io.Writer) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	engine.InfoWriter = out
	engine.ResetForNewGame()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 1<<20), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "uci":
			fmt.Fprintf(out, "id name %s\n", engineName)
			fmt.Fprintf(out, "id author %s\n", engineAuthor)
			fmt.Fprintln(out, "option name Hash type spin default 64 min 1 max 1024")
			fmt.Fprintln(out, "option name NullMovePruning type check default true")
			fmt.Fprintln(out, "option name LateMoveReduction type check default false")
			fmt.Fprintln(out, "option name AspirationWindow type check default true")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
			engine.ResetForNewGame()
		case "setoption":
			handleSetOption(fields)
		case "position":
			board = handlePosition(fields)
		case "go":
			handleGo(out, &board, fields)
		case "stop":
			engine.Stop()
		case "quit":
			return
		default:
			log.Warn().Str("command", fields[0]).Msg("unknown command")
		}
	}
}

func handleSetOption(fields []string) {
	var name, value string
	for i := 0; i < len(fields)-1; i++ {
		switch fields[i] {
		case "name":
			name = fields[i+1]
		case "value":
			value = fields[i+1]
		}
	}
	switch name {
	case "Hash":
		if mb, err := strconv.Atoi(value); err == nil {
			engine.Settings.TTSizeMB = clampInt(mb, 1, 1024)
			engine.TT.Init(engine.Settings.TTSizeMB)
		}
	case "NullMovePruning":
		engine.Settings.NullMovePruning = value == "true"
	case "LateMoveReduction":
		engine.Settings.LateMoveReduction = value == "true"
	case "AspirationWindow":
		engine.Settings.AspirationWindow = value == "true"
	default:
		log.Warn().Str("option", name).Msg("unknown option")
	}
}

func handlePosition(fields []string) dragontoothmg.Board {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	movesAt := -1
	for i, f := range fields {
		if f == "moves" {
			movesAt = i
			break
		}
	}
	if len(fields) > 2 && fields[1] == "fen" {
		end := len(fields)
		if movesAt >= 0 {
			end = movesAt
		}
		board = dragontoothmg.ParseFen(strings.Join(fields[2:end], " "))
	}
	engine.ClearHistory()
	if movesAt >= 0 {
		for _, ms := range fields[movesAt+1:] {
			move, err := dragontoothmg.ParseMove(ms)
			if err != nil {
				log.Warn().Str("move", ms).Err(err).Msg("skipping unparsable move")
				continue
			}
			engine.RecordPosition(&board)
			board.Apply(move)
		}
	}
	return board
}

func handleGo(out io.Writer, board *dragontoothmg.Board, fields []string) {
	var budget engine.TimeBudget
	mateIn := 0
	depth := 0
	sawClock := false
	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "infinite":
			budget.Infinite = true
		case "wtime":
			budget.WTimeMs = int64(intArg(fields, i))
			sawClock = true
		case "btime":
			budget.BTimeMs = int64(intArg(fields, i))
			sawClock = true
		case "winc":
			budget.WIncMs = int64(intArg(fields, i))
		case "binc":
			budget.BIncMs = int64(intArg(fields, i))
		case "movetime":
			budget.MoveTimeMs = int64(intArg(fields, i))
			sawClock = true
		case "depth":
			depth = intArg(fields, i)
		case "mate":
			mateIn = intArg(fields, i)
		}
	}

	if mateIn > 0 {
		line, found := engine.FindForcedMate(board, 2*mateIn-1)
		if found {
			fmt.Fprintf(out, "info score mate %d pv %s\n", (len(line)+1)/2, moveLine(line))
			fmt.Fprintf(out, "bestmove %s\n", line[0].String())
			return
		}
		fmt.Fprintf(out, "info string no mate in %d found\n", mateIn)
		// fall through to a normal search so a move still comes back
	}

	if depth > 0 {
		budget.Infinite = true
	}
	if !sawClock && !budget.Infinite {
		budget.MoveTimeMs = 3000
	}

	saved := engine.Settings.MaxDepth
	if depth > 0 {
		engine.Settings.MaxDepth = int8(clampInt(depth, 1, int(engine.MaxDepth)))
	}
	move := engine.BestMove(board, budget)
	engine.Settings.MaxDepth = saved

	if move == 0 {
		fmt.Fprintln(out, "bestmove 0000")
		return
	}
	fmt.Fprintf(out, "bestmove %s\n", move.String())
}

func intArg(fields []string, i int) int {
	if i+1 >= len(fields) {
		return 0
	}
	v, err := strconv.Atoi(fields[i+1])
	if err != nil {
		return 0
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func moveLine(moves []dragontoothmg.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
