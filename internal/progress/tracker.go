// Package progress tracks completed work units for one dispatch window and
// renders a running ETA.
package progress

import (
	"sync"
	"time"
)

// Renderer displays tracker state. Calls are serialized by the Tracker.
type Renderer interface {
	Begin(total int)
	Update(processed, total int, eta time.Duration)
	Finish(processed, total int, elapsed time.Duration)
	Close() error
}

// State is a snapshot of one progress window.
type State struct {
	Total     int
	Processed int
	Start     time.Time
}

// Tracker is safe for concurrent use. A nil or disabled Tracker is a no-op.
type Tracker struct {
	mu      sync.Mutex
	enabled bool
	r       Renderer
	now     func() time.Time
	st      State
}

type Option func(*Tracker)

// WithClock replaces time.Now (tests).
func WithClock(now func() time.Time) Option { return func(t *Tracker) { t.now = now } }

func New(enabled bool, r Renderer, opts ...Option) *Tracker {
	t := &Tracker{enabled: enabled && r != nil, r: r, now: time.Now}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Start opens a fresh window of total units, discarding the previous one.
func (t *Tracker) Start(total int) {
	if t == nil || !t.enabled {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.st = State{Total: total, Start: t.now()}
	t.r.Begin(total)
}

// Done records one completed unit. While units remain it renders the
// estimate elapsed*(total-processed)/processed; the last unit renders the
// final line. Calls past total are ignored.
func (t *Tracker) Done() {
	if t == nil || !t.enabled {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.st.Processed >= t.st.Total {
		return
	}
	t.st.Processed++
	p, n := t.st.Processed, t.st.Total
	elapsed := t.now().Sub(t.st.Start)
	if p < n {
		eta := time.Duration(float64(elapsed) * float64(n-p) / float64(p))
		t.r.Update(p, n, eta)
		return
	}
	t.r.Finish(p, n, elapsed)
}

func (t *Tracker) Snapshot() State {
	if t == nil {
		return State{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.st
}

// Close releases the renderer.
func (t *Tracker) Close() error {
	if t == nil || t.r == nil {
		return nil
	}
	return t.r.Close()
}
