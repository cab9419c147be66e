package pipeline

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/CordySmith/cc-decoder/line21"
)

// Config carries every decoder option. Zero values mean "default";
// Normalize fills them in. The yaml tags allow loading the same
// structure from a config file.
type Config struct {
	// Format selects the emitter: srt, srtroll, scc, raw, debug or
	// xds.
	Format string `yaml:"format"`

	// FPS is the SRT timestamp base.
	FPS float64 `yaml:"fps"`

	// Lines is how many scan rows the extracted strip covers, starting
	// at StartLine. Consumed by the frame source.
	Lines     int `yaml:"lines"`
	StartLine int `yaml:"startLine"`

	// CCFilter restricts SRT text to one channel: 0 all, 1 CC1, 2 CC2.
	CCFilter int `yaml:"ccfilter"`

	// LumaThreshold is the bit decision level, 0..255.
	LumaThreshold float64 `yaml:"lumaThreshold"`

	// SampleSize is the per-bit horizontal averaging width.
	SampleSize int `yaml:"sampleSize"`

	// MergeText collects text runs in raw output.
	MergeText bool `yaml:"mergeText"`

	// KeepFrames disables releasing frames after consumption.
	KeepFrames bool `yaml:"keepFrames"`
}

// DefaultConfig returns the standard decoder settings.
func DefaultConfig() Config {
	return Config{
		Format:        "srt",
		FPS:           29.97,
		Lines:         3,
		StartLine:     0,
		LumaThreshold: line21.DefaultThreshold,
		SampleSize:    line21.DefaultSampleSize,
	}
}

// Normalize replaces unset numeric options with their defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.FPS <= 0 {
		c.FPS = def.FPS
	}
	if c.Lines <= 0 {
		c.Lines = def.Lines
	}
	if c.LumaThreshold <= 0 {
		c.LumaThreshold = def.LumaThreshold
	}
	if c.SampleSize <= 0 {
		c.SampleSize = def.SampleSize
	}
}

// newEmitter builds the emitter for cfg.Format writing to w. An
// unknown format is a configuration error.
func newEmitter(cfg Config, w io.Writer, log *slog.Logger) (Emitter, error) {
	switch cfg.Format {
	case "srt":
		return NewSRTEmitter(w, cfg.FPS, cfg.CCFilter), nil
	case "srtroll":
		return NewSRTRollEmitter(w, cfg.FPS, cfg.CCFilter), nil
	case "scc":
		return NewSCCEmitter(w)
	case "raw":
		return NewRawEmitter(w, cfg.MergeText), nil
	case "debug":
		return NewDebugEmitter(w), nil
	case "xds":
		return NewXDSEmitter(w, log), nil
	default:
		return nil, fmt.Errorf("pipeline: unknown output format %q (want srt, srtroll, scc, raw, debug or xds)", cfg.Format)
	}
}
