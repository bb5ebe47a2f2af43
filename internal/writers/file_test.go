package writers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"primerscan/internal/engine"
	"primerscan/internal/table"
)

func sampleTable(name string, n int) *table.Table {
	t := table.New(name, table.DefaultPrefix)
	for i := 0; i < n; i++ {
		t.Add([]engine.Hit{{ContigName: "seq1", PrimerName: "P1", Start: 4 * i, End: 4*i + 4, Length: 4, Requested: "ACGT", Located: "ACGT"}})
	}
	return t
}

func TestFileSinkReplaces(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "final")
	s, err := Open(context.Background(), dir, Options{Delimiter: ';'})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.WriteTable(context.Background(), sampleTable("p.csv", 3)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.WriteTable(context.Background(), sampleTable("p.csv", 1)); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "hits_p.csv"))
	if err != nil {
		t.Fatal(err)
	}
	want := "contig name;primer;start;end;length;requested;located\nseq1;P1;0;4;4;ACGT;ACGT\n"
	if string(b) != want {
		t.Fatalf("got %q want %q", b, want)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestFileSinkClean(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "stale.csv")
	if err := os.WriteFile(stale, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileSink(dir, Options{Clean: true}); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatalf("stale file survived clean: %v", err)
	}
}

func TestFileSinkWriteFailure(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSink(dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	// a directory squatting on the destination name makes rename fail
	if err := os.Mkdir(filepath.Join(dir, "hits_p.csv"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "hits_p.csv", "keep"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteTable(context.Background(), sampleTable("p.csv", 1)); err == nil {
		t.Fatal("expected write failure")
	}
}

func TestOpenUnknownScheme(t *testing.T) {
	if _, err := Open(context.Background(), "ftp://x/y", Options{}); err == nil {
		t.Fatal("expected unknown scheme error")
	}
}
