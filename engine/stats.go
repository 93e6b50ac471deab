package engine

// searchStats counts what the pruning machinery actually did during one
// search. Dumped at debug level per completed depth.
type searchStats struct {
	nodes             uint64
	recaptureNodes    uint64
	ttHits            uint64
	ttCutoffs         uint64
	nullCutoffs       uint64
	betaCutoffs       uint64
	lmrReductions     uint64
	lmrResearches     uint64
	aspirationRetries uint64
}

func (s *searchStats) reset() {
	*s = searchStats{}
}

func (s *searchStats) dump(depth int8) {
	log.Debug().
		Int8("depth", depth).
		Uint64("nodes", s.nodes).
		Uint64("recapture_nodes", s.recaptureNodes).
		Uint64("tt_hits", s.ttHits).
		Uint64("tt_cutoffs", s.ttCutoffs).
		Uint64("null_cutoffs", s.nullCutoffs).
		Uint64("beta_cutoffs", s.betaCutoffs).
		Uint64("lmr_reductions", s.lmrReductions).
		Uint64("lmr_researches", s.lmrResearches).
		Uint64("aspiration_retries", s.aspirationRetries).
		Msg("depth complete")
}
