// Package ingest produces the frame sequences the decoder consumes: an
// ffmpeg-driven source that extracts the top scan lines of a video
// into numbered image files, and a directory source for frames that
// were extracted ahead of time.
package ingest

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/CordySmith/cc-decoder/frame"

	_ "golang.org/x/image/tiff" // frame files written by ffmpeg
	_ "image/jpeg"
	_ "image/png"
)

// Options configures an FFmpegSource.
type Options struct {
	// FFmpegPath is the ffmpeg binary; empty means look it up on PATH.
	FFmpegPath string

	// TempDir is where the frame files are staged. Empty means the
	// system default. Throughput matters here: ffmpeg writes one small
	// file per frame.
	TempDir string

	// Lines and StartLine select the strip of scan rows to extract.
	Lines     int
	StartLine int

	Log *slog.Logger
}

// FFmpegSource runs ffmpeg over a video file, cropping each frame to
// the line-21 strip and scaling to 720 columns, and yields the frames
// in order as they appear on disk. Frame n is only yielded once frame
// n+1 exists (or ffmpeg has exited), since the n+1 file is the signal
// that n is fully written. Releasing a frame deletes its file.
type FFmpegSource struct {
	workdir string
	cmd     *exec.Cmd
	watcher *fsnotify.Watcher
	log     *slog.Logger

	next     int
	done     chan struct{}
	procErr  error
	finished bool
}

const framePattern = "ccdecode%07d.tif"

// NewFFmpegSource starts ffmpeg on videoPath and returns the source.
// Close must be called when done to reap the process and remove the
// staging directory.
func NewFFmpegSource(videoPath string, opts Options) (*FFmpegSource, error) {
	ffmpeg := opts.FFmpegPath
	if ffmpeg == "" {
		path, err := exec.LookPath("ffmpeg")
		if err != nil {
			return nil, fmt.Errorf("ingest: ffmpeg not found: %w", err)
		}
		ffmpeg = path
	}
	lines := opts.Lines
	if lines <= 0 {
		lines = 3
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "ingest")

	workdir, err := os.MkdirTemp(opts.TempDir, "ccdecode")
	if err != nil {
		return nil, fmt.Errorf("ingest: staging dir: %w", err)
	}

	cmd := exec.Command(ffmpeg,
		"-i", videoPath,
		"-vf", fmt.Sprintf("scale=720:ih, crop=iw:%d:0:%d", opts.StartLine+lines, opts.StartLine),
		"-pix_fmt", "rgb24",
		"-f", "image2",
		filepath.Join(workdir, framePattern),
	)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		err = watcher.Add(workdir)
	}
	if err != nil {
		os.RemoveAll(workdir)
		return nil, fmt.Errorf("ingest: watch staging dir: %w", err)
	}

	if err := cmd.Start(); err != nil {
		watcher.Close()
		os.RemoveAll(workdir)
		return nil, fmt.Errorf("ingest: start ffmpeg: %w", err)
	}
	log.Debug("ffmpeg started", "pid", cmd.Process.Pid, "workdir", workdir)

	s := &FFmpegSource{
		workdir: workdir,
		cmd:     cmd,
		watcher: watcher,
		log:     log,
		next:    1,
		done:    make(chan struct{}),
	}
	go func() {
		s.procErr = cmd.Wait()
		close(s.done)
	}()
	return s, nil
}

func (s *FFmpegSource) fileName(n int) string {
	return filepath.Join(s.workdir, fmt.Sprintf(framePattern, n))
}

func exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// Next yields the next frame, blocking until ffmpeg has produced it.
// It returns io.EOF after the last frame, or the ffmpeg error if the
// process failed.
func (s *FFmpegSource) Next(ctx context.Context) (frame.Frame, error) {
	for {
		name := s.fileName(s.next)
		switch {
		case exists(name) && (s.finished || exists(s.fileName(s.next+1))):
			s.next++
			return s.load(name)
		case s.finished && !exists(name):
			if s.procErr != nil {
				return nil, fmt.Errorf("ingest: ffmpeg: %w", s.procErr)
			}
			return nil, io.EOF
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.done:
			s.finished = true
		case _, ok := <-s.watcher.Events:
			if !ok {
				s.finished = true
			}
		case err, ok := <-s.watcher.Errors:
			if ok && err != nil {
				s.log.Warn("staging dir watch error", "error", err)
			}
		case <-time.After(250 * time.Millisecond):
			// Watch events can be coalesced away; poll as a backstop.
		}
	}
}

func (s *FFmpegSource) load(name string) (frame.Frame, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("ingest: open frame: %w", err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("ingest: decode frame %s: %w", filepath.Base(name), err)
	}
	return frame.NewImageFrame(img, func() error {
		return os.Remove(name)
	}), nil
}

// Close kills ffmpeg if it is still running and removes the staging
// directory with whatever frames remain in it.
func (s *FFmpegSource) Close() error {
	select {
	case <-s.done:
	default:
		if s.cmd.Process != nil {
			_ = s.cmd.Process.Kill()
		}
		<-s.done
	}
	s.watcher.Close()
	return os.RemoveAll(s.workdir)
}
