// internal/pipeline/sim.go
package pipeline

import (
	"primerscan/internal/engine"
	"primerscan/internal/sequence"
)

// Matcher is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Matcher interface {
	MatchAndBuild(contig, primer sequence.Record) ([]engine.Hit, error)
}

// Progress receives one Start per dispatch and one Done per finished unit.
type Progress interface {
	Start(total int)
	Done()
}
