// Package table accumulates the hits of one primer collection across all
// contigs and encodes them as a delimited result table.
package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"primerscan/internal/engine"
)

// DefaultPrefix is prepended to the primer file's base name.
const DefaultPrefix = "hits_"

// Table is the result of one primer collection. It is not safe for
// concurrent use; the orchestrator appends one contig at a time.
type Table struct {
	Name   string
	Source string
	hits   []engine.Hit
}

// ErrDuplicateName is returned by CheckNames when two sources would write
// the same table.
var ErrDuplicateName = errors.New("duplicate table name")

// NameFor is the table name of a primer collection source.
func NameFor(source, prefix string) string { return prefix + filepath.Base(source) }

// New names the table deterministically from the primer collection source.
func New(source, prefix string) *Table {
	return &Table{Name: NameFor(source, prefix), Source: source}
}

// CheckNames fails if two sources map to the same table name, since the
// later table would silently replace the earlier one in any sink.
func CheckNames(sources []string, prefix string) error {
	seen := make(map[string]string, len(sources))
	for _, src := range sources {
		name := NameFor(src, prefix)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s and %s both map to %q", ErrDuplicateName, prev, src, name)
		}
		seen[name] = src
	}
	return nil
}

// Add appends one contig's ordered hits.
func (t *Table) Add(hits []engine.Hit) {
	t.hits = append(t.hits, hits...)
}

func (t *Table) Hits() []engine.Hit { return t.hits }

func (t *Table) Len() int { return len(t.hits) }

// Encode writes the header row and one row per hit.
func (t *Table) Encode(w io.Writer, delim rune) error {
	cw := csv.NewWriter(w)
	if delim != 0 {
		cw.Comma = delim
	}
	if err := cw.Write(engine.Columns); err != nil {
		return err
	}
	for _, h := range t.hits {
		if err := cw.Write(h.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Bytes is Encode into memory.
func (t *Table) Bytes(delim rune) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Encode(&buf, delim); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
