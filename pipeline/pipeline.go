package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/CordySmith/cc-decoder/eia608"
	"github.com/CordySmith/cc-decoder/frame"
	"github.com/CordySmith/cc-decoder/line21"
)

// Pipeline drives one decode pass: pull a frame, sample the caption
// row, decode the byte pair, hand the event to the emitter, release
// the frame. It is single-threaded and owns its sampler hints, so
// separate pipelines never share state.
type Pipeline struct {
	sampler    *line21.Sampler
	emitter    Emitter
	keepFrames bool
	log        *slog.Logger
}

// New builds a pipeline for cfg, writing emitter output to w. The
// configuration is normalized first; an unknown output format fails
// here, before any frame is read.
func New(cfg Config, w io.Writer, log *slog.Logger) (*Pipeline, error) {
	if log == nil {
		log = slog.Default()
	}
	cfg.Normalize()

	emitter, err := newEmitter(cfg, w, log)
	if err != nil {
		return nil, err
	}

	sampler := line21.NewSampler()
	sampler.Threshold = cfg.LumaThreshold
	sampler.SampleSize = cfg.SampleSize

	return &Pipeline{
		sampler:    sampler,
		emitter:    emitter,
		keepFrames: cfg.KeepFrames,
		log:        log.With("component", "pipeline"),
	}, nil
}

// Sampler exposes the pipeline's sampler, mainly so callers can read
// its position hints for diagnostics.
func (p *Pipeline) Sampler() *line21.Sampler { return p.sampler }

// Run consumes src to exhaustion. Unless KeepFrames is set, each frame
// is released once the emitter is done with it, before the next frame
// is requested, so the source can bound its working set. A source error aborts the run.
func (p *Pipeline) Run(ctx context.Context, src frame.Source) error {
	for n := 0; ; n++ {
		f, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			p.log.Debug("frame source exhausted", "frames", n)
			return nil
		}
		if err != nil {
			return fmt.Errorf("pipeline: frame source: %w", err)
		}

		ev := Event{Frame: n, Sample: p.sampler.Sample(f)}
		if ev.Sample.OK {
			ev.Symbol = eia608.DecodePair(ev.Sample.B1, ev.Sample.B2)
		}
		consumeErr := p.emitter.Consume(ev)

		if !p.keepFrames {
			if err := f.Release(); err != nil {
				p.log.Warn("failed to release frame", "frame", n, "error", err)
			}
		}
		if consumeErr != nil {
			return fmt.Errorf("pipeline: emitter: %w", consumeErr)
		}
	}
}
