package pipeline

import (
	"fmt"
	"io"
)

// RawEmitter prints one diagnostic line per frame: text (optionally
// merged into runs), control codes with the sampler position, and skip
// markers for frames without a preamble.
type RawEmitter struct {
	w         io.Writer
	mergeText bool
	buff      string
}

// NewRawEmitter writes raw diagnostics to w. With mergeText set, runs
// of printable text collect into a single line flushed by the next
// decoded pair that is not text (a control-class code or padding);
// frames without a preamble leave the run pending.
func NewRawEmitter(w io.Writer, mergeText bool) *RawEmitter {
	return &RawEmitter{w: w, mergeText: mergeText}
}

func (e *RawEmitter) Consume(ev Event) error {
	if !ev.Sample.OK {
		_, err := fmt.Fprintf(e.w, "%d skip - no preamble\n", ev.Frame)
		return err
	}
	sym := ev.Symbol
	control := isControlClass(sym)

	if sym.Text != "" && !control {
		if e.mergeText {
			e.buff += sym.Text
		} else if _, err := fmt.Fprintf(e.w, "%d (%d,%d) - Text:%s\n",
			ev.Frame, ev.Sample.Offset, ev.Sample.Row, sym.Text); err != nil {
			return err
		}
	} else if e.buff != "" {
		if _, err := fmt.Fprintf(e.w, "%d (%d,%d) - Text:%s\n",
			ev.Frame, ev.Sample.Offset, ev.Sample.Row, e.buff); err != nil {
			return err
		}
		e.buff = ""
	}
	if control {
		_, err := fmt.Fprintf(e.w, "%d (%d,%d) - %s\n",
			ev.Frame, ev.Sample.Offset, ev.Sample.Row, sym.Text)
		return err
	}
	return nil
}
