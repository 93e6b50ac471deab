package engine

// Config collects the knobs the search responds to. Everything here is
// reachable over UCI setoption; changing a field takes effect on the next
// search.
type Config struct {
	MaxDepth              int8
	NullMovePruning       bool
	LateMoveReduction     bool
	AspirationWindow      bool
	UseTranspositionTable bool
	TTSizeMB              int
}

func DefaultConfig() Config {
	return Config{
		MaxDepth:              MaxDepth,
		NullMovePruning:       true,
		LateMoveReduction:     false,
		AspirationWindow:      true,
		UseTranspositionTable: true,
		TTSizeMB:              64,
	}
}

var Settings = DefaultConfig()
