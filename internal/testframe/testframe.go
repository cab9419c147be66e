// Package testframe provides synthetic frames for exercising the
// sampler and the emitters without real video: flat fields and frames
// that light up the sync preamble plus the bit cells of a chosen byte
// pair.
package testframe

import (
	"context"
	"io"

	"github.com/CordySmith/cc-decoder/frame"
	"github.com/CordySmith/cc-decoder/line21"
)

// Flat is a frame with the same luma everywhere. Useful as an
// all-black (no signal) or all-white (saturated) input.
type Flat struct {
	Value    float64
	W, H     int
	Released int
}

func NewFlat(value float64, height int) *Flat {
	return &Flat{Value: value, W: 720, H: height}
}

func (f *Flat) Width() int  { return f.W }
func (f *Flat) Height() int { return f.H }

func (f *Flat) Luma(x, y int) float64 {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return 0
	}
	return f.Value
}

func (f *Flat) Release() error {
	f.Released++
	return nil
}

// Signal is a frame carrying a well-formed line-21 waveform on one row
// (Row, default 0): sync high columns lit, sync low columns dark, and
// the bit cells of B1 and B2 lit according to their bit patterns. Lit
// pixels read 100, everything else 0.
type Signal struct {
	B1, B2 byte
	H      int
	Row    int

	// Shift moves the whole waveform right by that many pixels,
	// simulating horizontal misalignment of the transfer.
	Shift    int
	Released int
}

func NewSignal(b1, b2 byte) *Signal {
	return &Signal{B1: b1, B2: b2, H: 1}
}

func (f *Signal) Width() int  { return 720 }
func (f *Signal) Height() int { return f.H }

func (f *Signal) Luma(x, y int) float64 {
	if x < 0 || x >= 720 || y != f.Row {
		return 0
	}
	x -= f.Shift
	if near(x, line21.SyncHighCols, 0xFF) ||
		near(x, line21.Byte1Bits, f.B1) ||
		near(x, line21.Byte2Bits, f.B2) {
		return 100
	}
	return 0
}

// near reports whether x falls within 5 pixels of a column whose bit is
// set in val.
func near(x int, cols []int, val byte) bool {
	for i, col := range cols {
		if col-5 < x && x < col+5 && val&(1<<i) != 0 {
			return true
		}
	}
	return false
}

func (f *Signal) Release() error {
	f.Released++
	return nil
}

// Slice is a Source over a fixed list of frames.
type Slice struct {
	Frames []frame.Frame
	pos    int
}

func (s *Slice) Next(ctx context.Context) (frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pos >= len(s.Frames) {
		return nil, io.EOF
	}
	f := s.Frames[s.pos]
	s.pos++
	return f, nil
}

// Pairs builds a Source where frame i carries byte pair pairs[i].
func Pairs(pairs [][2]byte) *Slice {
	s := &Slice{}
	for _, p := range pairs {
		s.Frames = append(s.Frames, NewSignal(p[0], p[1]))
	}
	return s
}
