// Package line21 locates and samples the EIA-608 waveform burnt into
// the top scan lines of a frame, turning pixels into byte pairs.
//
// The geometry is fixed against a 720-pixel-wide frame: a sine-wave
// sync preamble at the left edge followed by two 8-bit bytes at 27
// pixels per bit. The sampler keeps two hints between frames (the last
// horizontal offset and row where the signal was found) so the common
// case is a single preamble check instead of a full scan; the hints
// affect performance only, never output.
package line21

import (
	"math"

	"github.com/CordySmith/cc-decoder/frame"
)

// Bit geometry on a 720-pixel-normalized row: 27-pixel bits, byte one
// starting at pixel 285, byte two immediately after. The rightmost bit
// of each byte is parity and is discarded on read.
var (
	Byte1Bits = bitCenters(0, 8)
	Byte2Bits = bitCenters(8, 16)

	// Sync preamble columns: alternating white and black at half-bit
	// spacing ahead of the data bits.
	SyncHighCols = syncCenters(28)
	SyncLowCols  = syncCenters(14)
)

func bitCenters(from, to int) []int {
	cols := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		cols = append(cols, 285+i*27)
	}
	return cols
}

func syncCenters(start int) []int {
	cols := make([]int, 7)
	for i := range cols {
		cols[i] = start + i*27
	}
	return cols
}

// Horizontal offsets tried when hunting for the preamble.
const (
	scanMin = -13
	scanMax = 29
)

// Defaults for the two tunable sampling knobs.
const (
	// DefaultThreshold is the luma level separating a 1 bit from a 0
	// bit. The standard implies roughly 97 (50 IRE); 80 copes better
	// with dim analog transfers.
	DefaultThreshold = 80

	// DefaultSampleSize is how many horizontal pixels are averaged per
	// bit to ride out dropouts and noise.
	DefaultSampleSize = 3
)

// Sampler extracts one byte pair per frame. It is stateful (the two
// search hints) and must not be shared across concurrent pipelines.
type Sampler struct {
	// Threshold is the luma bit-decision level on a 0..255 scale.
	Threshold float64

	// SampleSize is the horizontal averaging width per bit.
	SampleSize int

	hintOffset int
	hintRow    int
}

// NewSampler returns a Sampler with default threshold and sample width.
func NewSampler() *Sampler {
	return &Sampler{Threshold: DefaultThreshold, SampleSize: DefaultSampleSize}
}

// Result is the outcome of sampling one frame. When OK is false no
// preamble was found and B1/B2 are meaningless. Offset and Row record
// where the signal was read, for diagnostic output.
type Result struct {
	B1, B2 byte
	OK     bool
	Offset int
	Row    int
}

// ResetHints clears the cached search position, forcing the next
// Sample to hunt from scratch. Output is unaffected.
func (s *Sampler) ResetHints() {
	s.hintOffset = 0
	s.hintRow = 0
}

// LastOffset returns the horizontal offset of the most recent preamble
// detection.
func (s *Sampler) LastOffset() int { return s.hintOffset }

// LastRow returns the row of the most recent preamble detection.
func (s *Sampler) LastRow() int { return s.hintRow }

// Sample searches f for the caption waveform and decodes one byte
// pair. It tries the hinted row first and otherwise probes only the
// top row; the scan does not walk further down the strip.
func (s *Sampler) Sample(f frame.Frame) Result {
	if s.ccPresent(f, s.hintRow) {
		b1, b2 := s.decodeRow(f, s.hintRow)
		return Result{B1: b1, B2: b2, OK: true, Offset: s.hintOffset, Row: s.hintRow}
	}
	if s.ccPresent(f, 0) {
		s.hintRow = 0
		b1, b2 := s.decodeRow(f, 0)
		return Result{B1: b1, B2: b2, OK: true, Offset: s.hintOffset, Row: 0}
	}
	return Result{Offset: s.hintOffset, Row: s.hintRow}
}

// ccPresent looks for the sync preamble on one row: first at the
// hinted offset, then across the whole scan range. On a fresh match
// the offset hint is re-centered on the middle of the matching
// plateau, scanning forward up to 12 pixels for its right edge.
func (s *Sampler) ccPresent(f frame.Frame, row int) bool {
	if s.preambleAt(f, row, s.hintOffset) {
		return true
	}
	for off := scanMin; off <= scanMax; off++ {
		if !s.preambleAt(f, row, off) {
			continue
		}
		s.hintOffset = off
		for tweak := 0; tweak < 12; tweak++ {
			if !s.preambleAt(f, row, off+tweak) {
				s.hintOffset = int(math.Trunc(float64(off) + 0.5*float64(tweak)))
				break
			}
		}
		return true
	}
	return false
}

// preambleAt reports whether every sync-high column reads at or above
// the threshold and every sync-low column at or below it, shifted by
// the given horizontal offset.
func (s *Sampler) preambleAt(f frame.Frame, row, offset int) bool {
	for _, col := range SyncHighCols {
		if f.Luma(col+offset, row) < s.Threshold {
			return false
		}
	}
	for _, col := range SyncLowCols {
		if f.Luma(col+offset, row) > s.Threshold {
			return false
		}
	}
	return true
}

func (s *Sampler) decodeRow(f frame.Frame, row int) (byte, byte) {
	return s.decodeByte(f, Byte1Bits, row, s.hintOffset),
		s.decodeByte(f, Byte2Bits, row, s.hintOffset)
}

// decodeByte reads the seven payload bits of one byte, least
// significant first. Each bit is the mean of SampleSize pixels starting
// at the bit center, compared against the threshold. The eighth bit is
// parity and is not verified.
func (s *Sampler) decodeByte(f frame.Frame, cols []int, row, offset int) byte {
	var v byte
	for i := 0; i < 7; i++ {
		sum := 0.0
		for k := 0; k < s.SampleSize; k++ {
			sum += f.Luma(cols[i]+offset+k, row)
		}
		if sum/float64(s.SampleSize) > s.Threshold {
			v |= 1 << i
		}
	}
	return v
}
