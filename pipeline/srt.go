package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/CordySmith/cc-decoder/eia608"
)

// SRTEmitter assembles pop-on captions into SRT entries. Text
// accumulates in an offscreen buffer; End of Caption flips it onscreen
// and stamps the start frame; Erase Displayed Memory emits the entry.
type SRTEmitter struct {
	w      io.Writer
	fps    float64
	filter eia608.Channel // ChannelNone passes both channels

	offscreen  strings.Builder
	onscreen   string
	startFrame int

	// channel is the implied channel of plain text, inherited from the
	// most recent preamble or mid-row code.
	channel eia608.Channel

	// prev tracks the previous frame's rendition so the mandated
	// transmission doubling of control codes acts once.
	prev      string
	prevValid bool
}

// NewSRTEmitter writes SRT entries to w. ccfilter selects a caption
// channel: 0 passes everything, 1 or 2 restricts text to CC1 or CC2.
func NewSRTEmitter(w io.Writer, fps float64, ccfilter int) *SRTEmitter {
	e := &SRTEmitter{w: w, fps: fps, channel: eia608.CC1}
	switch ccfilter {
	case 1:
		e.filter = eia608.CC1
	case 2:
		e.filter = eia608.CC2
	}
	return e
}

func (e *SRTEmitter) Consume(ev Event) error {
	if !ev.Sample.OK {
		e.prevValid = false
		return nil
	}
	sym := ev.Symbol

	switch {
	case !isControlClass(sym):
		if e.wantChannel(sym) {
			e.offscreen.WriteString(sym.Text)
		}
	case !e.prevValid || sym.Text != e.prev:
		if err := e.control(sym, ev.Frame); err != nil {
			return err
		}
	}

	if sym.Kind == eia608.Preamble || sym.Kind == eia608.MidRow {
		e.channel = sym.Channel
	}
	e.prev, e.prevValid = sym.Text, true
	return nil
}

func (e *SRTEmitter) control(sym eia608.Symbol, frame int) error {
	switch {
	case sym.Kind == eia608.Control && sym.Control == eia608.EndOfCaption:
		e.onscreen = e.offscreen.String()
		e.offscreen.Reset()
		e.startFrame = frame
	case sym.Kind == eia608.Control && sym.Control == eia608.EraseDisplayedMemory && e.onscreen != "":
		if err := e.flush(frame); err != nil {
			return err
		}
		e.onscreen = ""
	default:
		// Some other command code mid-caption; treat it as a line
		// break.
		if s := e.offscreen.String(); s != "" && !strings.HasSuffix(s, "\n") {
			e.offscreen.WriteString("\n")
		}
	}
	return nil
}

func (e *SRTEmitter) flush(endFrame int) error {
	_, err := fmt.Fprintf(e.w, "%s --> %s\n%s\n\n",
		srtTimestamp(e.startFrame, e.fps),
		srtTimestamp(endFrame, e.fps),
		sanitizeSRT(e.onscreen))
	return err
}

// wantChannel applies the channel filter to a text-class symbol, using
// the symbol's own channel when it has one (special characters) and the
// inherited channel otherwise.
func (e *SRTEmitter) wantChannel(sym eia608.Symbol) bool {
	if e.filter == eia608.ChannelNone {
		return true
	}
	ch := sym.Channel
	if ch == eia608.ChannelNone {
		ch = e.channel
	}
	return ch == e.filter
}

// sanitizeSRT keeps the timestamp separator out of caption bodies,
// where it would corrupt the entry framing.
func sanitizeSRT(text string) string {
	return strings.ReplaceAll(text, "-->", "-- >")
}

// SRTRollEmitter is the roll-up variant selected by the srtroll format.
// Roll-up-specific flushing is not implemented yet for lack of sample
// media; it currently behaves exactly like the pop-on emitter.
type SRTRollEmitter struct {
	*SRTEmitter
}

// NewSRTRollEmitter writes roll-up captions to w as SRT.
func NewSRTRollEmitter(w io.Writer, fps float64, ccfilter int) *SRTRollEmitter {
	return &SRTRollEmitter{SRTEmitter: NewSRTEmitter(w, fps, ccfilter)}
}
