package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"grebe/engine"
)

// bench runs a fixed-budget search over an EPD-style file of positions with
// a bm operation in coordinate form, e.g.
//
//	6k1/5ppp/8/8/8/8/8/4R1K1 w - - bm e1e8;
//
// and reports the solve rate.
type fixture struct {
	fen  string
	best map[string]bool
}

func main() {
	var (
		file     = flag.String("epd", "", "EPD file of positions, bm in coordinate form")
		moveTime = flag.Int("movetime", 1000, "milliseconds per position")
		depth    = flag.Int("depth", 0, "fixed depth instead of movetime")
		workers  = flag.Int("workers", 4, "concurrent position loaders")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	if *file == "" {
		logger.Fatal().Msg("-epd is required")
	}
	fixtures, err := readEPD(*file)
	if err != nil {
		logger.Fatal().Err(err).Msg("reading epd file")
	}

	engine.ResetForNewGame()
	if *depth > 0 {
		engine.Settings.MaxDepth = depthLimit(*depth)
	}

	// Search state is package scoped, so the searches themselves serialize
	// on searchMu; the pool only overlaps parsing and reporting.
	var (
		searchMu sync.Mutex
		statMu   sync.Mutex
		solved   int
	)
	var g errgroup.Group
	g.SetLimit(*workers)
	start := time.Now()
	for _, fx := range fixtures {
		fx := fx
		g.Go(func() error {
			b := dragontoothmg.ParseFen(fx.fen)
			budget := engine.TimeBudget{MoveTimeMs: int64(*moveTime)}
			if *depth > 0 {
				budget = engine.TimeBudget{Infinite: true}
			}
			searchMu.Lock()
			move := engine.BestMove(&b, budget)
			searchMu.Unlock()
			ok := fx.best[move.String()]
			statMu.Lock()
			if ok {
				solved++
			}
			statMu.Unlock()
			logger.Info().
				Str("fen", fx.fen).
				Str("got", move.String()).
				Bool("solved", ok).
				Msg("position done")
			return nil
		})
	}
	_ = g.Wait()
	fmt.Printf("solved %d/%d in %s\n", solved, len(fixtures),
		time.Since(start).Round(time.Millisecond))
}

func depthLimit(d int) int8 {
	if d > int(engine.MaxDepth) {
		return engine.MaxDepth
	}
	return int8(d)
}

func readEPD(path string) ([]fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fixtures []fixture
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fx, err := parseEPD(line)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, fx)
	}
	return fixtures, scanner.Err()
}

func parseEPD(line string) (fixture, error) {
	parts := strings.SplitN(line, " bm ", 2)
	if len(parts) != 2 {
		return fixture{}, fmt.Errorf("no bm operation in %q", line)
	}
	fen := strings.TrimSpace(parts[0])
	if len(strings.Fields(fen)) == 4 {
		fen += " 0 1"
	}
	rest := strings.TrimSpace(parts[1])
	if i := strings.IndexByte(rest, ';'); i >= 0 {
		rest = rest[:i]
	}
	fx := fixture{fen: fen, best: make(map[string]bool)}
	for _, m := range strings.Fields(rest) {
		fx.best[m] = true
	}
	if len(fx.best) == 0 {
		return fixture{}, fmt.Errorf("empty bm operation in %q", line)
	}
	return fx, nil
}
