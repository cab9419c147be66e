// Package eia608 decodes EIA-608 ("line 21") byte pairs into caption
// symbols: printable text, two-byte special characters, mid-row style
// codes, preamble address codes, and caption control codes, attributed
// to channel CC1 or CC2.
//
// The decoder is a pure function of the two 7-bit payload bytes. The
// full 2^14 pair space is precomputed at package init so per-frame
// decoding is a single table read.
package eia608

import "fmt"

// Channel identifies which caption channel a control, preamble, mid-row
// or special-character pair belongs to, derived from the high byte
// (0x10-0x17 for CC1, 0x18-0x1F for CC2).
type Channel uint8

const (
	// ChannelNone marks symbols that carry no channel attribution
	// (plain text and padding).
	ChannelNone Channel = iota
	CC1
	CC2
)

func (c Channel) String() string {
	switch c {
	case CC1:
		return "CC1"
	case CC2:
		return "CC2"
	default:
		return "CC?"
	}
}

// Kind tags the variant of a decoded Symbol.
type Kind uint8

const (
	// Empty is the padding pair (0x00, 0x00).
	Empty Kind = iota
	// Text is one or two printable characters from the basic table.
	Text
	// Special is a two-byte extended character (single rune).
	Special
	// MidRow is a mid-row attribute change.
	MidRow
	// Preamble is a preamble address code (row + attributes).
	Preamble
	// Control is a caption control code.
	Control
	// Unknown is a pair with at least one byte outside every table,
	// rendered with ????(xx) placeholders.
	Unknown
)

// ControlCode enumerates the caption control operations.
type ControlCode uint8

const (
	ResumeCaptionLoading ControlCode = iota
	Backspace
	AlarmOff
	AlarmOn
	DeleteToEndOfRow
	RollUp2
	RollUp3
	RollUp4
	FlashOn
	ResumeDirectCaptioning
	TextRestart
	ResumeTextDisplay
	EraseDisplayedMemory
	CarriageReturn
	EraseNonDisplayedMemory
	EndOfCaption
	TabOffset1
	TabOffset2
	TabOffset3
)

// Color is a caption foreground color carried by mid-row and preamble
// codes.
type Color uint8

const (
	White Color = iota
	Green
	Blue
	Cyan
	Red
	Yellow
	Magenta
	NoColor
)

var colorNames = [...]string{"White", "Green", "Blue", "Cyan", "Red", "Yellow", "Magenta", ""}

func (c Color) String() string { return colorNames[c] }

// Symbol is one decoded byte pair. Kind selects which payload fields are
// meaningful. Text always carries the human-readable rendition used by
// the raw and debug emitters, and B1/B2 keep the raw pair for emitters
// that re-encode (SCC) or display bytes (debug).
type Symbol struct {
	Kind    Kind
	Channel Channel

	// Text is the printable characters for Text/Special/Unknown, and
	// the description string for MidRow/Preamble/Control.
	Text string

	// Control payload.
	Control ControlCode

	// Preamble payload: Row is 1..15, Indent is 0,4,..28 or -1 when the
	// code carries a color instead of an indent.
	Row    int
	Indent int

	// Style flags shared by MidRow and Preamble.
	Color     Color
	Underline bool
	Italics   bool

	B1, B2 byte
}

// IsEndCode reports whether the symbol is one of the two codes that end
// a displayed caption: End of Caption or Erase Displayed Memory.
func (s Symbol) IsEndCode() bool {
	return s.Kind == Control &&
		(s.Control == EndOfCaption || s.Control == EraseDisplayedMemory)
}

// placeholder renders an untranslatable byte the way the raw output
// shows it, e.g. ????(ff).
func placeholder(b byte) string {
	return fmt.Sprintf("????(%02x)", b)
}
