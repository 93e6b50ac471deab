package engine

import "testing"

func TestStoreProbeRoundTrip(t *testing.T) {
	var tt TransTable
	tt.Init(1)
	tt.Store(0xdeadbeef, 7, 123, ExactFlag, 42, 0)
	entry, ok := tt.Probe(0xdeadbeef)
	if !ok {
		t.Fatalf("entry not found after store")
	}
	if entry.Depth != 7 || entry.Score != 123 || entry.Flag != ExactFlag || entry.Best != 42 {
		t.Fatalf("entry mangled: %+v", entry)
	}
	if _, ok := tt.Probe(0xcafe); ok {
		t.Fatalf("probe hit for a hash never stored")
	}
}

func TestMateScorePlyShift(t *testing.T) {
	var tt TransTable
	tt.Init(1)
	// Mate found 5 plies from the root, stored from a node at ply 2.
	score := MaxScore - 5
	tt.Store(0x1234, 10, score, ExactFlag, 0, 2)
	entry, _ := tt.Probe(0x1234)
	if entry.Score != score+2 {
		t.Fatalf("stored score %d, want node-relative %d", entry.Score, score+2)
	}
	if got := adjustedScore(entry.Score, 2); got != score {
		t.Fatalf("adjusted score %d, want %d", got, score)
	}
	// Probing from a different ply keeps the distance-to-mate consistent.
	if got := adjustedScore(entry.Score, 4); got != score-2 {
		t.Fatalf("adjusted score at deeper ply %d, want %d", got, score-2)
	}
}

func TestSameHashOverwritesInPlace(t *testing.T) {
	var tt TransTable
	tt.Init(1)
	tt.Store(0x42, 9, 100, ExactFlag, 1, 0)
	tt.Store(0x42, 2, -50, AlphaFlag, 2, 0)
	entry, ok := tt.Probe(0x42)
	if !ok {
		t.Fatalf("entry missing")
	}
	if entry.Depth != 2 || entry.Score != -50 || entry.Flag != AlphaFlag {
		t.Fatalf("same-hash store did not overwrite: %+v", entry)
	}
}

func TestReplacementEvictsShallowest(t *testing.T) {
	var tt TransTable
	tt.Init(1)
	base := uint64(12345)
	hashAt := func(i int) uint64 { return base + uint64(i)*tt.size }
	for i := 0; i < ClusterSize; i++ {
		tt.Store(hashAt(i), int8(5+i), 100, ExactFlag, 0, 0)
	}
	tt.Store(hashAt(ClusterSize), 20, 200, ExactFlag, 0, 0)
	if _, ok := tt.Probe(hashAt(ClusterSize)); !ok {
		t.Fatalf("new deep entry was not stored")
	}
	if _, ok := tt.Probe(hashAt(0)); ok {
		t.Fatalf("shallowest entry survived a full cluster")
	}
	for i := 1; i < ClusterSize; i++ {
		if _, ok := tt.Probe(hashAt(i)); !ok {
			t.Fatalf("deeper entry %d was evicted", i)
		}
	}
}

func TestReplacementPrefersOlderGeneration(t *testing.T) {
	var tt TransTable
	tt.Init(1)
	base := uint64(999)
	hashAt := func(i int) uint64 { return base + uint64(i)*tt.size }
	tt.Store(hashAt(0), 30, 100, ExactFlag, 0, 0) // deep but old
	tt.NextGeneration()
	for i := 1; i < ClusterSize; i++ {
		tt.Store(hashAt(i), 10, 100, ExactFlag, 0, 0)
	}
	tt.Store(hashAt(ClusterSize), 1, 100, ExactFlag, 0, 0)
	if _, ok := tt.Probe(hashAt(0)); ok {
		t.Fatalf("old-generation entry survived over current shallow ones")
	}
	for i := 1; i <= ClusterSize; i++ {
		if _, ok := tt.Probe(hashAt(i)); !ok {
			t.Fatalf("current-generation entry %d was evicted", i)
		}
	}
}

func TestClearAndResize(t *testing.T) {
	var tt TransTable
	tt.Init(1)
	tt.Store(0x77, 5, 10, ExactFlag, 0, 0)
	tt.Clear()
	if _, ok := tt.Probe(0x77); ok {
		t.Fatalf("entry survived Clear")
	}
	before := tt.size
	tt.Init(2)
	if tt.size <= before {
		t.Fatalf("doubling the size budget did not grow the table")
	}
}
