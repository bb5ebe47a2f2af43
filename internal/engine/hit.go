// internal/engine/hit.go
package engine

import "strconv"

// Hit is one located primer occurrence inside a contig. Start/End are
// half-open, 0-based offsets into the contig sequence.
type Hit struct {
	ContigName string
	PrimerName string
	Start      int
	End        int
	Length     int
	Requested  string
	// Located is the substring actually found. It equals Requested for exact
	// search.
	Located string
}

// Columns is the fixed result table header, in output order.
var Columns = []string{"contig name", "primer", "start", "end", "length", "requested", "located"}

// Fields renders h in Columns order.
func (h Hit) Fields() []string {
	return []string{
		h.ContigName,
		h.PrimerName,
		strconv.Itoa(h.Start),
		strconv.Itoa(h.End),
		strconv.Itoa(h.Length),
		h.Requested,
		h.Located,
	}
}
