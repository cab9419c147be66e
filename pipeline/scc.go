package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/CordySmith/cc-decoder/eia608"
)

// sccHeader is the literal first line of a Scenarist SCC file.
const sccHeader = "Scenarist_SCC V1.0"

// SCCEmitter re-encodes the byte-pair stream as Scenarist SCC with
// 29.97 fps drop-frame timecodes. Pairs accumulate (with odd parity
// restored) from the first non-empty pair; the doubled End of Caption /
// Erase Displayed Memory transmission flushes one line.
type SCCEmitter struct {
	w          io.Writer
	buff       strings.Builder
	startFrame int

	prev      string
	prevValid bool
}

// NewSCCEmitter writes an SCC stream to w, starting with the format
// header.
func NewSCCEmitter(w io.Writer) (*SCCEmitter, error) {
	if _, err := fmt.Fprintf(w, "%s\n\n", sccHeader); err != nil {
		return nil, fmt.Errorf("pipeline: scc header: %w", err)
	}
	return &SCCEmitter{w: w}, nil
}

func (e *SCCEmitter) Consume(ev Event) error {
	if !ev.Sample.OK {
		e.prevValid = false
		return nil
	}
	b1, b2 := ev.Sample.B1, ev.Sample.B2
	if b1 != 0 || b2 != 0 {
		if e.buff.Len() == 0 {
			e.startFrame = ev.Frame
		}
		fmt.Fprintf(&e.buff, "%02x%02x ", eia608.WithOddParity(b1), eia608.WithOddParity(b2))

		if ev.Symbol.IsEndCode() && e.prevValid && ev.Symbol.Text == e.prev {
			_, err := fmt.Fprintf(e.w, "%s\t%s\n", dropFrameTimecode(e.startFrame), e.buff.String())
			e.buff.Reset()
			if err != nil {
				return fmt.Errorf("pipeline: scc write: %w", err)
			}
		}
	}
	e.prev, e.prevValid = ev.Symbol.Text, true
	return nil
}
