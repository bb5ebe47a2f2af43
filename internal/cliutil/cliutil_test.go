package cliutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	_ = os.WriteFile(b, []byte("probe;sequence\n"), 0o644)
	_ = os.WriteFile(a, []byte("probe;sequence\n"), 0o644)
	got, err := ExpandGlobs([]string{filepath.Join(dir, "*.csv"), a, "literal.csv"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != "literal.csv" {
		t.Fatalf("unexpected expansion %v", got)
	}
}

func TestExpandGlobsNoMatch(t *testing.T) {
	if _, err := ExpandGlobs([]string{filepath.Join(t.TempDir(), "*.csv")}); err == nil {
		t.Fatal("expected no-match error")
	}
}
