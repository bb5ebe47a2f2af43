package writers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"primerscan/internal/table"
)

func init() {
	Register("file", func(_ context.Context, u *url.URL, o Options) (Sink, error) {
		return NewFileSink(u.Path, o)
	})
}

// FileSink writes each table as one file inside a directory. Writes go to a
// temp file in the same directory and are renamed over the destination.
type FileSink struct {
	dir   string
	delim rune
	permF os.FileMode
}

// NewFileSink creates dir (after emptying it when o.Clean is set).
func NewFileSink(dir string, o Options) (*FileSink, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory required")
	}
	if o.Clean {
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("clean %s: %w", dir, err)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return &FileSink{dir: dir, delim: o.Delimiter, permF: 0o644}, nil
}

func (s *FileSink) Location(name string) string { return filepath.Join(s.dir, filepath.Base(name)) }

func (s *FileSink) WriteTable(ctx context.Context, t *table.Table) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	var buf bytes.Buffer
	if err := t.Encode(&buf, s.delim); err != nil {
		return err
	}
	return s.writeAtomic(s.Location(t.Name), &buf)
}

func (s *FileSink) writeAtomic(dest string, r io.Reader) error {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, s.permF)

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

func (s *FileSink) Close() error { return nil }
