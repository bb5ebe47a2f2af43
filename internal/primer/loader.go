// internal/primer/loader.go
package primer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"primerscan/internal/errs"
	"primerscan/internal/sequence"
)

// Column names required in the header row.
const (
	NameColumn     = "probe"
	SequenceColumn = "sequence"
)

// DefaultDelimiter separates primer columns unless configured otherwise.
const DefaultDelimiter = ';'

// Load reads the primer collection at path. Rows missing a probe name or a
// sequence are skipped silently; undecodable rows are skipped and returned
// as malformed so the caller can report them.
func Load(path string, delim rune) (sequence.Collection, []*errs.MalformedRowError, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return sequence.Collection{}, nil, errs.NotFound(path, err)
		}
		return sequence.Collection{}, nil, err
	}
	defer func() { _ = fh.Close() }()

	recs, bad, err := Read(fh, path, delim)
	if err != nil {
		return sequence.Collection{}, nil, err
	}
	return sequence.Collection{Source: path, Records: recs}, bad, nil
}

// Read parses delimited primer rows from r. name labels malformed rows.
func Read(r io.Reader, name string, delim rune) ([]sequence.Record, []*errs.MalformedRowError, error) {
	if delim == 0 {
		delim = DefaultDelimiter
	}
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: header: %w", name, err)
	}
	nameIdx, seqIdx := -1, -1
	for i, col := range header {
		col = strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))
		switch col {
		case NameColumn:
			if nameIdx < 0 {
				nameIdx = i
			}
		case SequenceColumn:
			if seqIdx < 0 {
				seqIdx = i
			}
		}
	}

	var (
		list []sequence.Record
		bad  []*errs.MalformedRowError
	)
	if nameIdx < 0 || seqIdx < 0 {
		bad = append(bad, &errs.MalformedRowError{
			Path: name, Line: 1,
			Reason: fmt.Sprintf("header lacks %q and/or %q column", NameColumn, SequenceColumn),
		})
		return nil, bad, nil
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				bad = append(bad, &errs.MalformedRowError{Path: name, Line: pe.StartLine, Reason: pe.Err.Error()})
				continue
			}
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)
		pname := field(row, nameIdx)
		pseq := field(row, seqIdx)
		if pname == "" || pseq == "" {
			continue
		}
		if !utf8.ValidString(pseq) || !utf8.ValidString(pname) {
			bad = append(bad, &errs.MalformedRowError{Path: name, Line: line, Reason: "not valid UTF-8 text"})
			continue
		}
		list = append(list, sequence.New(pname, pseq))
	}
	return list, bad, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
