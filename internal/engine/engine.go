package engine

import (
	"errors"
	"fmt"

	"primerscan/internal/sequence"
)

// ErrInvalidPrimer is returned for primer sequences holding anything other
// than letters. Such a primer cannot be matched against a nucleotide contig.
var ErrInvalidPrimer = errors.New("invalid primer sequence")

type Engine struct{}

func New() *Engine { return &Engine{} }

// MatchAndBuild finds every occurrence of primer in contig and returns the
// hits ordered by start offset. No hits yields a nil slice.
func (e *Engine) MatchAndBuild(contig, primer sequence.Record) ([]Hit, error) {
	if i := invalidAt(primer.Seq); i >= 0 {
		return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidPrimer, primer.Seq[i], i)
	}
	matches := FindMatches(primer.Seq, contig.Seq)
	if len(matches) == 0 {
		return nil, nil
	}
	out := make([]Hit, 0, len(matches))
	for _, m := range matches {
		end := m.Start + m.Length
		out = append(out, Hit{
			ContigName: contig.Name,
			PrimerName: primer.Name,
			Start:      m.Start,
			End:        end,
			Length:     m.Length,
			Requested:  primer.Seq,
			Located:    contig.Seq[m.Start:end],
		})
	}
	return out, nil
}

// invalidAt returns the index of the first non A-Z byte, or -1.
func invalidAt(s string) int {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 'A' || c > 'Z' {
			return i
		}
	}
	return -1
}
