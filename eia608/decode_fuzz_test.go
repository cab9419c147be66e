package eia608

import "testing"

func FuzzDecodePair(f *testing.F) {
	f.Add(byte(0x00), byte(0x00))
	f.Add(byte(0x14), byte(0x20))
	f.Add(byte(0x11), byte(0x40))
	f.Add(byte(0x19), byte(0x37))
	f.Add(byte(0xFF), byte(0xFF))
	f.Fuzz(func(t *testing.T, b1, b2 byte) {
		// The decoder must be total: a Symbol for every pair, never a
		// panic, and raw bytes preserved.
		sym := DecodePair(b1, b2)
		if sym.B1 != b1 || sym.B2 != b2 {
			t.Fatalf("raw bytes not preserved: got (%#02x, %#02x), want (%#02x, %#02x)",
				sym.B1, sym.B2, b1, b2)
		}
		if sym.Kind == Empty && (b1 != 0 || b2 != 0) {
			t.Fatalf("pair (%#02x, %#02x) decoded as Empty", b1, b2)
		}
	})
}
