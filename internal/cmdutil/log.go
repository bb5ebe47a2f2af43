// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// NewLogger returns a text logger on dst. quiet keeps only errors.
func NewLogger(dst io.Writer, level string, quiet bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	if quiet {
		lvl = log.ErrorLevel
	}
	l := log.New()
	l.SetOutput(dst)
	l.SetLevel(lvl)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true, DisableQuote: true})
	return l, nil
}
