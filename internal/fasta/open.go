// internal/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"primerscan/internal/errs"
)

var gzipMagic = []byte{0x1f, 0x8b}

// source is a possibly decompressed contig stream plus what must be closed
// with it.
type source struct {
	io.Reader
	gz   *gzip.Reader
	file io.Closer
}

func (s *source) Close() error {
	var err error
	if s.gz != nil {
		err = s.gz.Close()
	}
	if s.file != nil {
		if cerr := s.file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// decompress sniffs r for the gzip magic without seeking, so piped input
// is handled the same as files. forceGzip skips the sniff.
func decompress(r io.Reader, forceGzip bool) (*source, error) {
	br := bufio.NewReader(r)
	if !forceGzip {
		head, _ := br.Peek(len(gzipMagic))
		forceGzip = string(head) == string(gzipMagic)
	}
	if !forceGzip {
		return &source{Reader: br}, nil
	}
	gz, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	return &source{Reader: gz, gz: gz}, nil
}

// openReader opens path ("-" is stdin) and unwraps gzip. A missing path is
// reported as errs.ErrNotFound.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return decompress(os.Stdin, false)
	}
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NotFound(path, err)
		}
		return nil, err
	}
	src, err := decompress(fh, strings.HasSuffix(path, ".gz"))
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	src.file = fh
	return src, nil
}
