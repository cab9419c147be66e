// Command ccdecode extracts burnt-in line-21 closed captions from a
// video file and writes them to stdout as SRT, SCC, XDS metadata, or
// raw decode traces. Frame extraction is delegated to ffmpeg.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/CordySmith/cc-decoder/ingest"
	"github.com/CordySmith/cc-decoder/pipeline"
)

var version = "dev"

func main() {
	var (
		ffmpegPath = pflag.String("ffmpeg", "", "path to the ffmpeg binary (default: found on PATH)")
		tempDir    = pflag.String("temp", "", "temporary working area for extracted frames (default: system temp)")
		format     = pflag.String("format", "srt", "output format: srt, srtroll, scc, raw, debug or xds")
		fps        = pflag.Float64("fps", 29.97, "frames per second for SRT timestamps")
		lines      = pflag.Int("lines", 3, "number of scan rows to search, counting from the start line")
		startLine  = pflag.Int("start-line", 0, "topmost scan row to extract (0 = first line)")
		ccfilter   = pflag.Int("ccfilter", 0, "caption channel filter for srt: 0=all, 1=CC1, 2=CC2")
		bitLevel   = pflag.Float64("bit-level", 80, "luma level read as a 1 bit; lower for dim source material")
		sampleSize = pflag.Int("sample-size", 3, "pixels averaged per bit")
		mergeText  = pflag.Bool("merge-text", false, "raw output: merge text runs into blocks")
		keepFrames = pflag.Bool("keep-frames", false, "do not delete extracted frame files after decoding")
		configPath = pflag.String("config", "", "YAML decoder config file (flags override it)")
		debug      = pflag.Bool("debug", false, "debug logging")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ccdecode [flags] <videofile>\n\nFlags:\n%s", pflag.CommandLine.FlagUsages())
	}
	pflag.Parse()

	level := slog.LevelInfo
	if *debug || os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	videoFile := pflag.Arg(0)

	cfg := pipeline.DefaultConfig()
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err == nil {
			err = yaml.Unmarshal(raw, &cfg)
		}
		if err != nil {
			slog.Error("failed to load config file", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}
	// Flags the user set win over the config file.
	override := map[string]func(){
		"format":      func() { cfg.Format = *format },
		"fps":         func() { cfg.FPS = *fps },
		"lines":       func() { cfg.Lines = *lines },
		"start-line":  func() { cfg.StartLine = *startLine },
		"ccfilter":    func() { cfg.CCFilter = *ccfilter },
		"bit-level":   func() { cfg.LumaThreshold = *bitLevel },
		"sample-size": func() { cfg.SampleSize = *sampleSize },
		"merge-text":  func() { cfg.MergeText = *mergeText },
		"keep-frames": func() { cfg.KeepFrames = *keepFrames },
	}
	for name, apply := range override {
		if pflag.CommandLine.Changed(name) {
			apply()
		}
	}

	p, err := pipeline.New(cfg, os.Stdout, slog.Default())
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Info("ccdecode starting",
		"version", version,
		"input", videoFile,
		"format", cfg.Format,
		"lines", cfg.Lines,
	)

	src, err := ingest.NewFFmpegSource(videoFile, ingest.Options{
		FFmpegPath: *ffmpegPath,
		TempDir:    *tempDir,
		Lines:      cfg.Lines,
		StartLine:  cfg.StartLine,
		Log:        slog.Default(),
	})
	if err != nil {
		slog.Error("failed to start frame extraction", "error", err)
		os.Exit(1)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer src.Close()
		return p.Run(ctx, src)
	})
	if err := g.Wait(); err != nil && ctx.Err() == nil {
		slog.Error("decode failed", "error", err)
		os.Exit(1)
	}
}
