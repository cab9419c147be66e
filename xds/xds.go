// Package xds parses Extended Data Services packets carried in the
// second field of line 21: program identification, content advisories,
// audio and caption service descriptors, copy management, and station
// information.
//
// A packet is the ordered byte pairs from its opening class byte
// (0x01..0x0E) through the terminating pair whose first byte is 0x0F,
// which also carries the checksum. Describe validates the checksum and
// renders one human-readable line per packet.
package xds

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CordySmith/cc-decoder/eia608"
)

// Pair is one XDS byte pair, parity already stripped.
type Pair struct {
	B1, B2 byte
}

// ErrMalformed reports a packet that ends before a sub-decoder has the
// pairs it needs, or whose CGMS packet carries an analogue-protection
// index outside the table. It is recoverable: the caller discards the packet and
// continues with the next one.
var ErrMalformed = errors.New("xds: malformed packet")

// Checksum reports whether the packet sums to zero modulo 128 under
// 7-bit two's-complement interpretation of every byte, including the
// terminating checksum pair. An empty packet is invalid.
func Checksum(pairs []Pair) bool {
	if len(pairs) == 0 {
		return false
	}
	sum := 0
	for _, p := range pairs {
		sum += twosComplement(p.B1) + twosComplement(p.B2)
	}
	return sum&0x7F == 0
}

func twosComplement(v byte) int {
	if v&0x7F != 0 {
		return 128 - int(v)
	}
	return int(v)
}

// reader consumes pairs front-to-back, failing with ErrMalformed when
// a decoder asks for more than the packet holds.
type reader struct {
	pairs []Pair
}

func (r *reader) require(n int) error {
	if len(r.pairs) < n {
		return ErrMalformed
	}
	return nil
}

func (r *reader) pop() (Pair, error) {
	if len(r.pairs) == 0 {
		return Pair{}, ErrMalformed
	}
	p := r.pairs[0]
	r.pairs = r.pairs[1:]
	return p, nil
}

func (r *reader) remaining() bool { return len(r.pairs) > 0 }

// decodeString consumes pairs until the 0x0F terminator, rendering each
// pair through the caption character tables.
func decodeString(r *reader) string {
	var b strings.Builder
	for r.remaining() {
		p, _ := r.pop()
		if p.B1 == 0x0F {
			break
		}
		b.WriteString(eia608.DecodePair(p.B1, p.B2).Text)
	}
	return b.String()
}

// minutesHours consumes one pair carrying minutes in the first byte and
// hours in the second. Short-form hours (program start, tape delay)
// mask to five bits.
func minutesHours(r *reader, short bool) (minutes, hours int, err error) {
	if err := r.require(1); err != nil {
		return 0, 0, err
	}
	p, _ := r.pop()
	minutes = int(p.B1 & 63)
	if short {
		hours = int(p.B2 & 31)
	} else {
		hours = int(p.B2 & 63)
	}
	return minutes, hours, nil
}

// contentAdvisory renders a V-chip content advisory pair. The rating
// system selector shares its low bits with the rating code itself, so
// only a subset of the nominal code space is reachable per system.
func contentAdvisory(r *reader) (string, error) {
	if err := r.require(1); err != nil {
		return "", err
	}
	p, _ := r.pop()
	ca1, ca2 := p.B1, p.B2
	var rating string
	switch ca1 & 3 {
	case 0, 2: // MPA
		rating = mpaRatings[ca1&7]
	case 1: // US TV Parental Guidelines
		code := ca1 & 7
		rating = usTVRatings[code]
		switch {
		case code == 2:
			if ca2&32 != 0 {
				rating += " Fantasy Violence"
			}
		case code >= 4 && code <= 6:
			if ca2&32 != 0 {
				rating += " Violence"
			}
			if ca2&16 != 0 {
				rating += " Sexual Situations"
			}
			if ca2&8 != 0 {
				rating += " Adult Language"
			}
			if ca1&32 != 0 {
				rating += " Sexually Suggestive Dialogue"
			}
		}
	case 3: // International
		switch (ca1 & 1) + (ca2 & 2) {
		case 1: // Canadian English
			rating = canadianEnglishRatings[ca2&7]
		case 2: // Canadian French
			rating = canadianFrenchRatings[ca2&7]
		default:
			rating = fmt.Sprintf("International reserved code (%d, %d)", ca1, ca2)
		}
	}
	return fmt.Sprintf("XDS Rating: %s", rating), nil
}

// Describe renders a complete packet as one line of text. Checksum
// failures and empty packets produce their own marker lines rather than
// errors; ErrMalformed is returned only when a packet is cut short
// mid-decode or a CGMS packet has an out-of-range protection index.
func Describe(pairs []Pair) (string, error) {
	if len(pairs) == 0 {
		return "XDS - Empty Packet", nil
	}
	if !Checksum(pairs) {
		return "XDS Rejected Packet - Incorrect Checksum", nil
	}
	b1, b2 := pairs[0].B1, pairs[0].B2
	r := &reader{pairs: pairs[1:]}

	if b1 >= 0x01 && b1 <= 0x02 && b2 <= 0x03 {
		pref := [2]string{"Current", "Next Program"}[b1-1]
		switch b2 {
		case 0x01: // Program identification number
			if err := r.require(2); err != nil {
				return "", err
			}
			minutes, hours, err := minutesHours(r, true)
			if err != nil {
				return "", err
			}
			dm, _ := r.pop()
			delay := ""
			if dm.B2&16 != 0 {
				delay = "(Tape Delayed)"
			}
			return fmt.Sprintf("XDS %s Scheduled Start Time: %02d:%02d on Day %02d of Month %02d %s",
				pref, hours, minutes, dm.B1&31, dm.B2&15, delay), nil
		case 0x02: // Length and elapsed time
			minutes, hours, err := minutesHours(r, false)
			if err != nil {
				return "", err
			}
			msg := fmt.Sprintf("XDS %s Length of Show: %02d:%02d", pref, hours, minutes)
			if r.remaining() {
				minutes, hours, err = minutesHours(r, false)
				if err != nil {
					return "", err
				}
				seconds := 0
				if r.remaining() {
					p, _ := r.pop()
					seconds = int(p.B1 & 63)
				}
				msg += fmt.Sprintf(" XDS %s Elapsed time: %02d:%02d:%02d", pref, hours, minutes, seconds)
			}
			return msg, nil
		case 0x03: // Program name
			return fmt.Sprintf("XDS %s Program Name: %s", pref, decodeString(r)), nil
		}
	}

	if b1 == 0x01 {
		switch {
		case b2 == 0x04: // Program type
			var genre strings.Builder
			for r.remaining() {
				p, _ := r.pop()
				if p.B1 == 0x0F {
					break
				}
				fmt.Fprintf(&genre, "%s %s ", genreCodes[p.B1], genreCodes[p.B2])
			}
			return fmt.Sprintf("XDS Program Genre: %s", genre.String()), nil
		case b2 == 0x05: // Content advisory (V-chip)
			return contentAdvisory(r)
		case b2 == 0x06: // Audio services
			p, err := r.pop()
			if err != nil {
				return "", err
			}
			main, sap := p.B1, p.B2
			return fmt.Sprintf("XDS Audio Services: Main:%s(%s) Sap:%s(%s)",
				audioLanguages[main&7], audioTypesMain[main&7],
				audioLanguages[sap&7], audioTypesSecondary[sap&7]), nil
		case b2 == 0x07:
			return "XDS Caption Services", nil
		case b2 == 0x08: // CGMS copy protection
			if err := r.require(1); err != nil {
				return "", err
			}
			p, _ := r.pop()
			if int(p.B1&7) >= len(cgmsAPSStates) {
				return "", ErrMalformed
			}
			return fmt.Sprintf("XDS Copy protection: %s %s",
				cgmsStates[p.B1&3], cgmsAPSStates[p.B1&7]), nil
		case b2 == 0x09: // Aspect ratio
			if err := r.require(1); err != nil {
				return "", err
			}
			p, _ := r.pop()
			anamorphic := "0"
			if r.remaining() {
				a, _ := r.pop()
				if a.B1&1 != 0 {
					anamorphic = "Anamorphic"
				}
			}
			return fmt.Sprintf("XDS Aspect Ratio: start line: %d end line: %d %s",
				22+int(p.B1&63), 262-int(p.B2&63), anamorphic), nil
		case b2 == 0x0C:
			return "Composite packet 1", nil
		case b2 == 0x0D:
			return "Composite packet 2", nil
		case b2 >= 0x10 && b2 <= 0x17: // Program description
			return fmt.Sprintf("XDS Program description line: %d :%s ", b2-0x0F, decodeString(r)), nil
		}
	}

	if b1 == 0x05 { // Channel information class
		switch b2 {
		case 0x01:
			return fmt.Sprintf("XDS Channel Name: %s", decodeString(r)), nil
		case 0x02:
			return fmt.Sprintf("XDS Channel Station Call-Sign: %s", decodeString(r)), nil
		case 0x03:
			minutes, hours, err := minutesHours(r, true)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("XDS Channel Tape Delay: %02d:%02d", hours, minutes), nil
		}
	}

	if b1 == 0x09 { // Public service class
		switch b2 {
		case 0x01: // WRSAME weather advisory, format still loosely specified
			return fmt.Sprintf("XDS Public Service - WRSAME message: %s", formatPairs(r.pairs)), nil
		case 0x02:
			return fmt.Sprintf("XDS Public Service - Weather: %s", decodeString(r)), nil
		}
	}

	return fmt.Sprintf("Could not decode ---> XDS describes: %02x %02x", b1, b2), nil
}

// formatPairs renders raw pairs for diagnostics, e.g. [(1, 2), (3, 4)].
func formatPairs(pairs []Pair) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%d, %d)", p.B1, p.B2)
	}
	b.WriteByte(']')
	return b.String()
}
