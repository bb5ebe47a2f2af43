package errs

import (
	"errors"
	"io"
	"os"
	"testing"
)

func TestKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind error
	}{
		{"notfound", NotFound("x.csv", os.ErrNotExist), ErrNotFound},
		{"malformed", &MalformedRowError{Path: "p.csv", Line: 3, Reason: "bad"}, ErrMalformed},
		{"unit", &UnitError{Contig: "c", Primer: "p", Err: io.ErrUnexpectedEOF}, ErrWorkUnit},
		{"write", &WriteError{Table: "t", Err: io.ErrShortWrite}, ErrWrite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.kind) {
				t.Fatalf("%v is not %v", tc.err, tc.kind)
			}
		})
	}
}

func TestCauseIsKept(t *testing.T) {
	err := NotFound("x.csv", os.ErrNotExist)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("cause lost: %v", err)
	}
	uerr := &UnitError{Err: io.ErrUnexpectedEOF}
	if !errors.Is(uerr, io.ErrUnexpectedEOF) {
		t.Fatalf("unit cause lost: %v", uerr)
	}
}
