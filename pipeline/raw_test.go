package pipeline_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CordySmith/cc-decoder/frame"
	"github.com/CordySmith/cc-decoder/internal/testframe"
	"github.com/CordySmith/cc-decoder/pipeline"
)

func runFrames(t *testing.T, cfg pipeline.Config, frames []frame.Frame) string {
	t.Helper()
	var out strings.Builder
	p, err := pipeline.New(cfg, &out, nil)
	require.NoError(t, err)
	require.NoError(t, p.Run(context.Background(), &testframe.Slice{Frames: frames}))
	return out.String()
}

func TestRawOutput(t *testing.T) {
	frames := []frame.Frame{
		testframe.NewFlat(0, 1), // no signal
		testframe.NewSignal(0x14, 0x20),
		testframe.NewSignal(0x48, 0x49),
		testframe.NewSignal(0x11, 0x40),
	}
	got := runFrames(t, pipeline.Config{Format: "raw"}, frames)
	want := "0 skip - no preamble\n" +
		"1 (0,0) - CC1 Resume Caption Loading\n" +
		"2 (0,0) - Text:HI\n" +
		"3 (0,0) - CC1 Pre: White row 1\n"
	assert.Equal(t, want, got)
}

// With merged text, runs collect into one line flushed by the next
// control code.
func TestRawMergedText(t *testing.T) {
	frames := []frame.Frame{
		testframe.NewSignal(0x48, 0x45),
		testframe.NewSignal(0x4C, 0x4C),
		testframe.NewSignal(0x4F, 0x00),
		testframe.NewSignal(0x14, 0x2F),
	}
	got := runFrames(t, pipeline.Config{Format: "raw", MergeText: true}, frames)
	want := "3 (0,0) - Text:HELLO\n" +
		"3 (0,0) - CC1 End of Caption (flip memory)\n"
	assert.Equal(t, want, got)
}

func TestDebugOutput(t *testing.T) {
	frames := []frame.Frame{
		testframe.NewSignal(0x14, 0x20),
		testframe.NewFlat(0, 1),
		testframe.NewSignal(0x48, 0x49),
	}
	got := runFrames(t, pipeline.Config{Format: "debug"}, frames)
	want := "0 (0,0) - bytes: 0x14 0x20 : CC1 Resume Caption Loading\n" +
		"1 skip - no preamble\n" +
		"2 (0,0) - bytes: 0x48 0x49 : HI\n"
	assert.Equal(t, want, got)
}
