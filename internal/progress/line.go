package progress

import (
	"fmt"
	"io"
	"time"
)

const lineWidth = 80

// LineRenderer rewrites a single status line with '\r'.
type LineRenderer struct {
	w io.Writer
}

func NewLineRenderer(w io.Writer) *LineRenderer { return &LineRenderer{w: w} }

func (l *LineRenderer) Begin(int) {}

func (l *LineRenderer) Update(processed, total int, eta time.Duration) {
	msg := fmt.Sprintf("primer calculated %d / %d - est. runtime: %.2fs", processed, total, eta.Seconds())
	_, _ = fmt.Fprintf(l.w, "\r%-*s", lineWidth, msg)
}

func (l *LineRenderer) Finish(processed, total int, elapsed time.Duration) {
	msg := fmt.Sprintf("primer calculated %d / %d - total runtime: %.2fs", processed, total, elapsed.Seconds())
	_, _ = fmt.Fprintf(l.w, "\r%-*s\n", lineWidth, msg)
}

func (l *LineRenderer) Close() error { return nil }
