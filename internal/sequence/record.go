// Package sequence defines the named sequence shared by primer and contig
// collections.
package sequence

import "strings"

// Marker starts a record header in FASTA-style sources.
const Marker = '>'

// Record is immutable after New.
type Record struct {
	Name string
	Seq  string
}

// New strips a leading marker from name and upper-cases seq, so matching is
// case-insensitive by construction.
func New(name, seq string) Record {
	name = strings.TrimPrefix(name, string(Marker))
	return Record{Name: name, Seq: strings.ToUpper(seq)}
}

// Collection is an ordered set of records read from one source.
type Collection struct {
	Source  string
	Records []Record
}

func (c Collection) Len() int { return len(c.Records) }
