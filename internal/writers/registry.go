// internal/writers/registry.go
package writers

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"primerscan/internal/table"
)

// Sink stores result tables.
type Sink interface {
	// WriteTable replaces the stored table named t.Name with t.
	WriteTable(ctx context.Context, t *table.Table) error
	// Location reports where a table of that name ends up.
	Location(name string) string
	Close() error
}

// Options shared by every sink.
type Options struct {
	Delimiter rune
	// Clean empties the destination before the run (directory and sqlite
	// sinks; ignored for object storage).
	Clean bool
}

// Opener builds a sink for a parsed target.
type Opener func(ctx context.Context, target *url.URL, o Options) (Sink, error)

// Sink registry (scheme → opener). Register in init() blocks from the sink files.
var openers = map[string]Opener{}

// Register is idempotent, last wins.
func Register(scheme string, fn Opener) { openers[scheme] = fn }

// Open resolves target to a sink. Anything without a scheme is a directory.
func Open(ctx context.Context, target string, o Options) (Sink, error) {
	scheme := "file"
	u := &url.URL{Scheme: scheme, Path: target}
	if strings.Contains(target, "://") {
		parsed, err := url.Parse(target)
		if err != nil {
			return nil, fmt.Errorf("bad output %q: %w", target, err)
		}
		u, scheme = parsed, parsed.Scheme
		if scheme == "file" {
			u.Path = u.Host + u.Path
		}
	}
	fn, ok := openers[scheme]
	if !ok {
		return nil, fmt.Errorf("unknown output scheme %q (no sink registered)", scheme)
	}
	return fn(ctx, u, o)
}
