package pipeline_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CordySmith/cc-decoder/pipeline"
)

func TestSCCHeader(t *testing.T) {
	var out strings.Builder
	_, err := pipeline.NewSCCEmitter(&out)
	require.NoError(t, err)
	assert.Equal(t, "Scenarist_SCC V1.0\n\n", out.String())
}

// A pop-on caption becomes one SCC line: parity-restored pairs from the
// first non-empty pair, flushed by the doubled End of Caption.
func TestSCCCaptionLine(t *testing.T) {
	pairs := [][2]byte{
		{0x00, 0x00},
		{0x14, 0x20}, {0x14, 0x20}, // Resume Caption Loading, doubled
		{0x48, 0x45}, // HE
		{0x4C, 0x4C}, // LL
		{0x4F, 0x00}, // O
		{0x14, 0x2F}, {0x14, 0x2F}, // End of Caption, doubled
	}
	got := runPairs(t, pipeline.Config{Format: "scc"}, pairs)

	want := "Scenarist_SCC V1.0\n\n" +
		"00:00:00;01\t9420 9420 c845 4c4c 4f80 942f 942f \n"
	assert.Equal(t, want, got)
}

// A single (undoubled) end code does not flush; the line keeps
// accumulating until a doubled one arrives.
func TestSCCRequiresDoubledEndCode(t *testing.T) {
	pairs := [][2]byte{
		{0x14, 0x20}, {0x48, 0x49}, {0x14, 0x2F},
	}
	got := runPairs(t, pipeline.Config{Format: "scc"}, pairs)
	assert.Equal(t, "Scenarist_SCC V1.0\n\n", got)
}

// Erase Displayed Memory is also an end-class code and flushes when
// doubled.
func TestSCCFlushesOnDoubledErase(t *testing.T) {
	pairs := [][2]byte{
		{0x14, 0x2C}, {0x14, 0x2C},
	}
	got := runPairs(t, pipeline.Config{Format: "scc"}, pairs)
	assert.Equal(t, "Scenarist_SCC V1.0\n\n00:00:00;00\t942c 942c \n", got)
}
