package engine

import (
	"unsafe"

	"github.com/dylhunn/dragontoothmg"
)

// Bound flags. Zero marks an empty slot.
const (
	AlphaFlag uint8 = iota + 1 // upper bound, score failed low
	BetaFlag                   // lower bound, score failed high
	ExactFlag
)

type SearchEntry struct {
	Hash  uint64
	Score int32
	Best  dragontoothmg.Move
	Gen   uint16
	Depth int8
	Flag  uint8
}

const ClusterSize = 4

type Cluster [ClusterSize]SearchEntry

// TransTable is a fixed-capacity clustered hash table. Probes never lock;
// the search is single-threaded.
type TransTable struct {
	entries []Cluster
	size    uint64
	gen     uint16
}

func (tt *TransTable) Init(sizeMB int) {
	byteSize := uint64(sizeMB) * 1024 * 1024
	n := byteSize / uint64(unsafe.Sizeof(Cluster{}))
	if n == 0 {
		n = 1
	}
	tt.size = n
	tt.entries = make([]Cluster, n)
	tt.gen = 0
}

func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = Cluster{}
	}
	tt.gen = 0
}

// NextGeneration ages every stored entry by one search.
func (tt *TransTable) NextGeneration() {
	tt.gen++
}

// Probe returns the stored entry for hash, if any. The caller still has to
// re-validate the stored move: two positions can share a slot.
func (tt *TransTable) Probe(hash uint64) (SearchEntry, bool) {
	if tt.size == 0 {
		return SearchEntry{}, false
	}
	cluster := &tt.entries[hash%tt.size]
	for i := range cluster {
		if cluster[i].Flag != 0 && cluster[i].Hash == hash {
			return cluster[i], true
		}
	}
	return SearchEntry{}, false
}

// Store writes an entry, preferring in order: the slot already holding this
// hash, an empty slot, a slot from an older generation, the shallowest slot.
func (tt *TransTable) Store(hash uint64, depth int8, score int32, flag uint8, best dragontoothmg.Move, ply int8) {
	if tt.size == 0 {
		return
	}
	// Mate scores go in relative to this node, not the root.
	if score > Checkmate {
		score += int32(ply)
	} else if score < -Checkmate {
		score -= int32(ply)
	}
	cluster := &tt.entries[hash%tt.size]
	victim := -1
	for i := range cluster {
		if cluster[i].Flag == 0 || cluster[i].Hash == hash {
			victim = i
			break
		}
	}
	if victim < 0 {
		victim = 0
		for i := 1; i < ClusterSize; i++ {
			if replaceRank(&cluster[i], tt.gen) < replaceRank(&cluster[victim], tt.gen) {
				victim = i
			}
		}
	}
	cluster[victim] = SearchEntry{
		Hash:  hash,
		Score: score,
		Best:  best,
		Gen:   tt.gen,
		Depth: depth,
		Flag:  flag,
	}
}

// replaceRank orders eviction candidates: older generations go first, then
// shallower depths.
func replaceRank(e *SearchEntry, gen uint16) int32 {
	rank := int32(e.Depth)
	if e.Gen == gen {
		rank += 1000
	}
	return rank
}

// adjustedScore converts a stored mate score back to a root-relative one.
func adjustedScore(score int32, ply int8) int32 {
	if score > Checkmate {
		return score - int32(ply)
	}
	if score < -Checkmate {
		return score + int32(ply)
	}
	return score
}
