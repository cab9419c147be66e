// Package pipeline wires a frame source, the line-21 sampler and one
// output emitter into a decode loop, and implements the emitters
// themselves: pop-on SRT, drop-frame SCC, raw and debug dumps, and XDS
// packet reassembly.
package pipeline

import (
	"github.com/CordySmith/cc-decoder/eia608"
	"github.com/CordySmith/cc-decoder/line21"
)

// Event is what every emitter sees once per frame: the frame index,
// the sampling outcome (including raw bytes and the sampler position),
// and the decoded symbol when a signal was present.
type Event struct {
	Frame  int
	Sample line21.Result

	// Symbol is meaningful only when Sample.OK.
	Symbol eia608.Symbol
}

// Emitter is a state machine over the per-frame symbol stream. Emitters
// hold mutable buffers across frames and are not reentrant.
type Emitter interface {
	Consume(ev Event) error
}

// isControlClass reports whether a symbol is one of the table-coded
// pairs (control, preamble or mid-row) as opposed to printable text.
func isControlClass(sym eia608.Symbol) bool {
	switch sym.Kind {
	case eia608.Control, eia608.Preamble, eia608.MidRow:
		return true
	}
	return false
}
