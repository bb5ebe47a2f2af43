package progress

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// BarRenderer draws one mpb bar per window. A finished or superseded bar is
// removed, so only the current window stays on screen.
type BarRenderer struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func NewBarRenderer(w io.Writer) *BarRenderer {
	return &BarRenderer{p: mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))}
}

func (b *BarRenderer) Begin(total int) {
	if b.bar != nil && !b.bar.Completed() {
		b.bar.Abort(true)
	}
	b.bar = nil
	if total <= 0 {
		return
	}
	b.bar = b.p.AddBar(int64(total),
		mpb.BarRemoveOnComplete(),
		mpb.PrependDecorators(
			decor.Name("primer calculated ", decor.WC{W: len("primer calculated "), C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO), "done"),
		),
	)
}

func (b *BarRenderer) Update(processed, _ int, _ time.Duration) {
	if b.bar != nil {
		b.bar.SetCurrent(int64(processed))
	}
}

func (b *BarRenderer) Finish(processed, _ int, _ time.Duration) {
	if b.bar != nil {
		b.bar.SetCurrent(int64(processed))
	}
}

// Close waits for the last bar to render.
func (b *BarRenderer) Close() error {
	if b.bar != nil && !b.bar.Completed() {
		b.bar.Abort(false)
	}
	b.p.Wait()
	return nil
}
