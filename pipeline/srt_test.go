package pipeline_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CordySmith/cc-decoder/internal/testframe"
	"github.com/CordySmith/cc-decoder/pipeline"
)

// runPairs decodes a synthetic frame sequence carrying the given byte
// pairs and returns the emitter output.
func runPairs(t *testing.T, cfg pipeline.Config, pairs [][2]byte) string {
	t.Helper()
	var out strings.Builder
	p, err := pipeline.New(cfg, &out, nil)
	require.NoError(t, err)
	src := testframe.Pairs(pairs)
	require.NoError(t, p.Run(context.Background(), src))
	for i, f := range src.Frames {
		assert.Equal(t, 1, f.(*testframe.Signal).Released, "frame %d", i)
	}
	return out.String()
}

// A pop-on caption: load HELLO offscreen, flip it onscreen, erase it a
// few frames later. Exactly one SRT entry must come out.
func TestSRTPopOnCaption(t *testing.T) {
	pairs := [][2]byte{
		{0x14, 0x20},             // Resume Caption Loading
		{0x48, 0x45},             // HE
		{0x4C, 0x4C},             // LL
		{0x4F, 0x00},             // O
		{0x14, 0x2F},             // End of Caption
		{0x00, 0x00}, {0x00, 0x00}, // padding
		{0x14, 0x2C}, // Erase Displayed Memory
	}
	got := runPairs(t, pipeline.Config{Format: "srt", FPS: 30}, pairs)
	assert.Equal(t, "00:00:00,133 --> 00:00:00,233\nHELLO\n\n", got)
}

// Widening the gap between End of Caption and Erase Displayed Memory
// only stretches the entry duration.
func TestSRTDurationTracksEraseFrame(t *testing.T) {
	build := func(padding int) [][2]byte {
		pairs := [][2]byte{
			{0x14, 0x20}, {0x48, 0x49}, {0x14, 0x2F}, // HI, flip
		}
		for i := 0; i < padding; i++ {
			pairs = append(pairs, [2]byte{0x00, 0x00})
		}
		return append(pairs, [2]byte{0x14, 0x2C})
	}

	short := runPairs(t, pipeline.Config{Format: "srt", FPS: 30}, build(2))
	long := runPairs(t, pipeline.Config{Format: "srt", FPS: 30}, build(32))

	assert.Equal(t, "00:00:00,066 --> 00:00:00,166\nHI\n\n", short)
	assert.Equal(t, "00:00:00,066 --> 00:00:01,166\nHI\n\n", long)
}

// Control codes are transmitted twice; the repeat must not re-trigger
// the transition.
func TestSRTIgnoresDoubledControlCodes(t *testing.T) {
	pairs := [][2]byte{
		{0x14, 0x20}, {0x14, 0x20},
		{0x48, 0x49}, // HI
		{0x14, 0x2F}, {0x14, 0x2F},
		{0x14, 0x2C}, {0x14, 0x2C},
	}
	got := runPairs(t, pipeline.Config{Format: "srt", FPS: 30}, pairs)
	assert.Equal(t, "00:00:00,100 --> 00:00:00,166\nHI\n\n", got)
}

// An intervening control code mid-load becomes a line break.
func TestSRTControlBreaksLine(t *testing.T) {
	pairs := [][2]byte{
		{0x14, 0x20},
		{0x48, 0x49}, // HI
		{0x11, 0x40}, // preamble, next row
		{0x59, 0x4F}, // YO
		{0x14, 0x2F},
		{0x14, 0x2C},
	}
	got := runPairs(t, pipeline.Config{Format: "srt", FPS: 30}, pairs)
	assert.True(t, strings.HasSuffix(got, "HI\nYO\n\n"), "got %q", got)
}

// The channel filter drops text implied to belong to the other channel.
func TestSRTChannelFilter(t *testing.T) {
	pairs := [][2]byte{
		{0x14, 0x20},
		{0x19, 0x60}, // CC2 preamble
		{0x48, 0x49}, // HI (implied CC2)
		{0x11, 0x40}, // CC1 preamble
		{0x59, 0x4F}, // YO (implied CC1)
		{0x14, 0x2F},
		{0x14, 0x2C},
	}
	got := runPairs(t, pipeline.Config{Format: "srt", FPS: 30, CCFilter: 1}, pairs)
	assert.Contains(t, got, "YO")
	assert.NotContains(t, got, "HI")

	got = runPairs(t, pipeline.Config{Format: "srt", FPS: 30, CCFilter: 2}, pairs)
	assert.Contains(t, got, "HI")
	assert.NotContains(t, got, "YO")
}

// A caption never flushed by Erase Displayed Memory produces no entry.
func TestSRTUnterminatedCaptionIsDropped(t *testing.T) {
	pairs := [][2]byte{
		{0x14, 0x20}, {0x48, 0x49}, {0x14, 0x2F},
	}
	got := runPairs(t, pipeline.Config{Format: "srt", FPS: 30}, pairs)
	assert.Empty(t, got)
}

// Caption text containing the SRT separator must not break framing.
func TestSRTSanitizesSeparator(t *testing.T) {
	pairs := [][2]byte{
		{0x14, 0x20},
		{0x2D, 0x2D}, // --
		{0x3E, 0x00}, // >
		{0x14, 0x2F},
		{0x14, 0x2C},
	}
	got := runPairs(t, pipeline.Config{Format: "srt", FPS: 30}, pairs)
	body := strings.SplitN(got, "\n", 2)[1]
	assert.NotContains(t, body, "-->")
}
