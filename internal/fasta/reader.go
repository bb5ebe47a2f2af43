// Package fasta loads contig collections from marker-delimited text.
//
// A line starting with '>' opens a record whose name is the rest of that
// line. Following lines are trimmed and concatenated into its sequence.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"primerscan/internal/sequence"
)

// ReadCtx scans r and calls emit once per record, in source order.
//
// Records with an empty sequence are kept when they had a header. Sequence
// lines seen before the first header form one unnamed record; blank input
// yields nothing.
func ReadCtx(ctx context.Context, r io.Reader, emit func(sequence.Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		name   string
		seq    = make([]byte, 0, 1<<16)
		opened bool // a header (or orphan sequence) is pending
	)

	flush := func() error {
		if !opened {
			return nil
		}
		opened = false
		return emit(sequence.New(name, string(seq)))
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == sequence.Marker {
			if err := flush(); err != nil {
				return err
			}
			name = string(bytes.TrimSpace(line[1:]))
			seq = seq[:0]
			opened = true
			continue
		}
		seq = append(seq, line...)
		opened = true
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// Read is ReadCtx with a background context, collecting every record.
func Read(r io.Reader) ([]sequence.Record, error) {
	var out []sequence.Record
	err := ReadCtx(context.Background(), r, func(rec sequence.Record) error {
		out = append(out, rec)
		return nil
	})
	return out, err
}

// Load reads the contig collection at path ("-" for stdin, gzip accepted).
func Load(ctx context.Context, path string) (sequence.Collection, error) {
	rc, err := openReader(path)
	if err != nil {
		return sequence.Collection{}, err
	}
	defer func() { _ = rc.Close() }()

	coll := sequence.Collection{Source: path}
	err = ReadCtx(ctx, rc, func(rec sequence.Record) error {
		coll.Records = append(coll.Records, rec)
		return nil
	})
	if err != nil {
		return sequence.Collection{}, fmt.Errorf("%s: %w", path, err)
	}
	return coll, nil
}
