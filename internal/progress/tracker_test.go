package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTrackerLine(t *testing.T) {
	var buf bytes.Buffer
	clk := &fakeClock{t: time.Unix(0, 0)}
	tr := New(true, NewLineRenderer(&buf), WithClock(clk.now))

	tr.Start(3)
	clk.advance(time.Second)
	tr.Done()
	if !strings.Contains(buf.String(), "primer calculated 1 / 3 - est. runtime: 2.00s") {
		t.Fatalf("first update: %q", buf.String())
	}
	clk.advance(time.Second)
	tr.Done()
	if !strings.Contains(buf.String(), "primer calculated 2 / 3 - est. runtime: 1.00s") {
		t.Fatalf("second update: %q", buf.String())
	}
	clk.advance(time.Second)
	tr.Done()
	if !strings.Contains(buf.String(), "primer calculated 3 / 3 - total runtime: 3.00s") {
		t.Fatalf("final line: %q", buf.String())
	}
	if n := strings.Count(buf.String(), "\n"); n != 1 {
		t.Fatalf("want exactly one final newline, got %d", n)
	}

	before := buf.Len()
	tr.Done()
	if buf.Len() != before {
		t.Fatalf("calls past total must not render")
	}
	if s := tr.Snapshot(); s.Processed != 3 || s.Total != 3 {
		t.Fatalf("snapshot %+v", s)
	}
}

func TestTrackerFirstCallSingleUnit(t *testing.T) {
	var buf bytes.Buffer
	clk := &fakeClock{t: time.Unix(0, 0)}
	tr := New(true, NewLineRenderer(&buf), WithClock(clk.now))
	tr.Start(1)
	tr.Done() // zero elapsed, processed==total
	if !strings.Contains(buf.String(), "1 / 1 - total runtime: 0.00s") {
		t.Fatalf("got %q", buf.String())
	}
	if strings.Contains(buf.String(), "est. runtime") {
		t.Fatalf("no estimate expected for a single unit")
	}
}

func TestTrackerResetWindow(t *testing.T) {
	var buf bytes.Buffer
	tr := New(true, NewLineRenderer(&buf))
	tr.Start(2)
	tr.Done()
	tr.Start(4)
	if s := tr.Snapshot(); s.Processed != 0 || s.Total != 4 {
		t.Fatalf("window not reset: %+v", s)
	}
}

func TestTrackerDisabled(t *testing.T) {
	var buf bytes.Buffer
	tr := New(false, NewLineRenderer(&buf))
	tr.Start(2)
	tr.Done()
	tr.Done()
	if buf.Len() != 0 {
		t.Fatalf("disabled tracker wrote %q", buf.String())
	}
	var nilTr *Tracker
	nilTr.Start(1)
	nilTr.Done()
}

func TestTrackerConcurrent(t *testing.T) {
	var buf bytes.Buffer
	tr := New(true, NewLineRenderer(&buf))
	const n = 500
	tr.Start(n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Done()
		}()
	}
	wg.Wait()
	if s := tr.Snapshot(); s.Processed != n {
		t.Fatalf("lost updates: %+v", s)
	}
	if c := strings.Count(buf.String(), "total runtime"); c != 1 {
		t.Fatalf("want one final line, got %d", c)
	}
}

func TestBarRenderer(t *testing.T) {
	var buf bytes.Buffer
	tr := New(true, NewBarRenderer(&buf))
	tr.Start(2)
	tr.Done()
	tr.Done()
	if err := tr.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if s := tr.Snapshot(); s.Processed != 2 {
		t.Fatalf("snapshot %+v", s)
	}
}

func TestBarRendererOneBarPerWindow(t *testing.T) {
	var buf bytes.Buffer
	b := NewBarRenderer(&buf)
	tr := New(true, b)

	tr.Start(2)
	tr.Done()
	tr.Done()
	first := b.bar
	if first == nil || !first.Completed() {
		t.Fatalf("first window bar should be complete")
	}

	tr.Start(3)
	tr.Done()
	second := b.bar
	if second == first {
		t.Fatalf("a new window must get a new bar")
	}
	// superseded before completion
	tr.Start(1)
	if !second.Aborted() {
		t.Fatalf("unfinished bar should be aborted when the next window starts")
	}
	tr.Done()
	if err := tr.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
