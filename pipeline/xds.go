package pipeline

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/CordySmith/cc-decoder/xds"
)

// XDSEmitter reassembles XDS packets from the byte-pair stream and
// prints one described line per completed packet. Gathering starts at
// a class byte (0x01..0x0E) and ends at the 0x0F checksum pair.
type XDSEmitter struct {
	w   io.Writer
	log *slog.Logger

	packet []xds.Pair
	gather bool
}

// NewXDSEmitter writes described XDS packets to w. Malformed packets
// are logged and discarded; a nil logger uses the default.
func NewXDSEmitter(w io.Writer, log *slog.Logger) *XDSEmitter {
	if log == nil {
		log = slog.Default()
	}
	return &XDSEmitter{w: w, log: log}
}

func (e *XDSEmitter) Consume(ev Event) error {
	if !ev.Sample.OK {
		return nil
	}
	b1, b2 := ev.Sample.B1, ev.Sample.B2
	if b1 == 0 && b2 == 0 { // stuffing
		return nil
	}
	if b1 >= 0x01 && b1 <= 0x0E {
		e.gather = true
	}
	if e.gather {
		e.packet = append(e.packet, xds.Pair{B1: b1, B2: b2})
	}
	if b1 == 0x0F {
		e.gather = false
		desc, err := xds.Describe(e.packet)
		e.packet = nil
		if err != nil {
			// Recoverable: drop the packet, keep the stream.
			e.log.Warn("discarding malformed XDS packet", "error", err)
			return nil
		}
		if _, err := fmt.Fprintln(e.w, desc); err != nil {
			return err
		}
	}
	return nil
}
