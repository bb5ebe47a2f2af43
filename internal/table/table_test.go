package table

import (
	"errors"
	"testing"

	"primerscan/internal/engine"
)

func TestNewName(t *testing.T) {
	tb := New("/data/primer/primer1collection.csv", DefaultPrefix)
	if tb.Name != "hits_primer1collection.csv" {
		t.Fatalf("name = %q", tb.Name)
	}
}

func TestCheckNames(t *testing.T) {
	tests := []struct {
		name    string
		sources []string
		dup     bool
	}{
		{"distinct", []string{"a/p1.csv", "a/p2.csv"}, false},
		{"same base in different dirs", []string{"runA/p.csv", "runB/p.csv"}, true},
		{"empty", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckNames(tc.sources, DefaultPrefix)
			if got := errors.Is(err, ErrDuplicateName); got != tc.dup {
				t.Fatalf("CheckNames(%v) = %v, want duplicate=%v", tc.sources, err, tc.dup)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tb := New("p.csv", DefaultPrefix)
	tb.Add([]engine.Hit{{ContigName: "seq1", PrimerName: "P1", Start: 0, End: 4, Length: 4, Requested: "ACGT", Located: "ACGT"}})
	tb.Add(nil)
	tb.Add([]engine.Hit{{ContigName: "seq2", PrimerName: "P1", Start: 8, End: 12, Length: 4, Requested: "ACGT", Located: "ACGT"}})

	b, err := tb.Bytes(';')
	if err != nil {
		t.Fatal(err)
	}
	want := "contig name;primer;start;end;length;requested;located\n" +
		"seq1;P1;0;4;4;ACGT;ACGT\n" +
		"seq2;P1;8;12;4;ACGT;ACGT\n"
	if string(b) != want {
		t.Fatalf("got\n%s\nwant\n%s", b, want)
	}
	if tb.Len() != 2 {
		t.Fatalf("len = %d", tb.Len())
	}
}

func TestEncodeHeaderOnly(t *testing.T) {
	b, err := New("p.csv", "").Bytes('\t')
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "contig name\tprimer\tstart\tend\tlength\trequested\tlocated\n" {
		t.Fatalf("got %q", b)
	}
}

func TestEncodeQuotesDelimiterInName(t *testing.T) {
	tb := New("p.csv", "")
	tb.Add([]engine.Hit{{ContigName: "a;b", PrimerName: "P", Requested: "A", Located: "A", End: 1, Length: 1}})
	b, err := tb.Bytes(';')
	if err != nil {
		t.Fatal(err)
	}
	if want := "\"a;b\";P;0;1;1;A;A\n"; string(b[len(b)-len(want):]) != want {
		t.Fatalf("got %q", b)
	}
}
