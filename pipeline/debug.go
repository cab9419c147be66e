package pipeline

import (
	"fmt"
	"io"
)

// DebugEmitter prints every frame's raw bytes and decoded rendition
// alongside the sampler position.
type DebugEmitter struct {
	w io.Writer
}

// NewDebugEmitter writes per-frame decode traces to w.
func NewDebugEmitter(w io.Writer) *DebugEmitter {
	return &DebugEmitter{w: w}
}

func (e *DebugEmitter) Consume(ev Event) error {
	if !ev.Sample.OK {
		_, err := fmt.Fprintf(e.w, "%d skip - no preamble\n", ev.Frame)
		return err
	}
	_, err := fmt.Fprintf(e.w, "%d (%d,%d) - bytes: 0x%02x 0x%02x : %s\n",
		ev.Frame, ev.Sample.Offset, ev.Sample.Row,
		ev.Sample.B1, ev.Sample.B2, ev.Symbol.Text)
	return err
}
