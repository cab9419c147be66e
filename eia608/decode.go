package eia608

import "strconv"

// pairTable holds a decoded Symbol for every 7-bit byte pair, indexed
// by b1<<7 | b2.
var pairTable = buildPairTable()

// DecodePair decodes one byte pair. It is total: every input yields a
// Symbol, with undefined pairs rendered as Unknown. Bytes are expected
// with parity already stripped; values above 0x7F fall outside every
// table and decode via the placeholder path.
func DecodePair(b1, b2 byte) Symbol {
	if b1 < 0x80 && b2 < 0x80 {
		return pairTable[int(b1)<<7|int(b2)]
	}
	return textSymbol(b1, b2)
}

// textSymbol renders a pair through the basic character table. It is
// the fallback for anything that is not a control, preamble, mid-row or
// special-character pair.
func textSymbol(b1, b2 byte) Symbol {
	s := Symbol{Kind: Text, B1: b1, B2: b2}
	if b1 == 0 && b2 == 0 {
		s.Kind = Empty
		return s
	}
	c1, ok1 := baseChars[b1]
	if !ok1 {
		c1 = placeholder(b1)
	}
	c2, ok2 := baseChars[b2]
	if !ok2 {
		c2 = placeholder(b2)
	}
	if !ok1 || !ok2 {
		s.Kind = Unknown
	}
	s.Text = c1 + c2
	return s
}

func buildPairTable() []Symbol {
	t := make([]Symbol, 1<<14)
	for i := range t {
		t[i] = textSymbol(byte(i>>7), byte(i&0x7F))
	}
	set := func(b1, b2 byte, s Symbol) {
		s.B1, s.B2 = b1, b2
		t[int(b1)<<7|int(b2)] = s
	}

	// Two-byte special characters.
	for low, ch := range specialChars {
		set(0x11, low, Symbol{Kind: Special, Channel: CC1, Text: ch})
		set(0x19, low, Symbol{Kind: Special, Channel: CC2, Text: ch})
	}

	// Mid-row style codes, underline on odd low bytes.
	for i, def := range midRowDefs {
		for _, ul := range []bool{false, true} {
			low := byte(0x20 + 2*i)
			name := def.name
			if ul {
				low++
				name += " Underline"
			}
			set(0x11, low, Symbol{
				Kind: MidRow, Channel: CC1, Text: "CC1 " + name,
				Color: def.color, Italics: def.italic, Underline: ul,
			})
			set(0x19, low, Symbol{
				Kind: MidRow, Channel: CC2, Text: "CC2 " + name,
				Color: def.color, Italics: def.italic, Underline: ul,
			})
		}
	}

	// Preamble address codes, generated across the 15 rows. Mid-row and
	// special-character pairs share high bytes with row 1/2 preambles
	// but occupy the 0x20..0x3F low range, so there is no collision
	// with the 0x40..0x7F preamble range.
	for row := 0; row < 15; row++ {
		base := byte(0x40)
		if rowUsesUpperCodes[row] {
			base = 0x60
		}
		for i, style := range preambleStyles {
			for _, ul := range []bool{false, true} {
				low := base + byte(2*i)
				name := style.name
				if ul {
					low++
					name += " Underline"
				}
				sym := Symbol{
					Kind:      Preamble,
					Row:       row + 1,
					Color:     style.color,
					Indent:    style.indent,
					Italics:   style.italic,
					Underline: ul,
				}
				sym.Channel = CC1
				sym.Text = pacText(CC1, name, row+1)
				set(cc1PreambleHigh[row], low, sym)
				sym.Channel = CC2
				sym.Text = pacText(CC2, name, row+1)
				set(cc1PreambleHigh[row]+8, low, sym)
			}
		}
	}

	// Control codes last; CC2 mirrors CC1 on shifted high bytes.
	for pair, def := range controlDefs {
		set(pair[0], pair[1], Symbol{
			Kind: Control, Channel: CC1, Control: def.code,
			Text: "CC1 " + def.name,
		})
		set(cc2ControlHigh(pair[0]), pair[1], Symbol{
			Kind: Control, Channel: CC2, Control: def.code,
			Text: "CC2 " + def.name,
		})
	}

	return t
}

func pacText(ch Channel, name string, row int) string {
	return ch.String() + " " + name + " row " + strconv.Itoa(row)
}
