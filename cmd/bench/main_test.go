package main

import (
	"testing"

	"grebe/engine"
)

func TestDepthLimitClamps(t *testing.T) {
	if got := depthLimit(200); got != engine.MaxDepth {
		t.Fatalf("depthLimit(200) = %d, want %d", got, engine.MaxDepth)
	}
	if got := depthLimit(5); got != 5 {
		t.Fatalf("depthLimit(5) = %d, want 5", got)
	}
}

func TestParseEPD(t *testing.T) {
	fx, err := parseEPD("6k1/5ppp/8/8/8/8/8/4R1K1 w - - bm e1e8; id \"mate\"")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if fx.fen != "6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1" {
		t.Fatalf("four-field fen not padded: %q", fx.fen)
	}
	if !fx.best["e1e8"] || len(fx.best) != 1 {
		t.Fatalf("bm moves wrong: %v", fx.best)
	}

	fx, err = parseEPD("8/8/8/8/8/8/8/8 w - - 0 1 bm a1a2 b1b2;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !fx.best["a1a2"] || !fx.best["b1b2"] {
		t.Fatalf("multiple bm moves lost: %v", fx.best)
	}

	if _, err := parseEPD("8/8/8/8/8/8/8/8 w - - 0 1"); err == nil {
		t.Fatalf("expected an error for a line without bm")
	}
}
