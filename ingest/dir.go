package ingest

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/CordySmith/cc-decoder/frame"
)

// DirSource yields pre-extracted frame images from a directory in
// lexical filename order. It exists for decoding strips produced by an
// external transcode step, and for driving the pipeline in tests.
type DirSource struct {
	// DeleteFiles removes each file when its frame is released.
	DeleteFiles bool

	files []string
	pos   int
}

// NewDirSource lists the image files (tif, tiff, png, jpg, jpeg) under
// dir. The listing is taken once; files added later are not seen.
func NewDirSource(dir string) (*DirSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ingest: read frame dir: %w", err)
	}
	s := &DirSource{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".tif", ".tiff", ".png", ".jpg", ".jpeg":
			s.files = append(s.files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(s.files)
	return s, nil
}

func (s *DirSource) Next(ctx context.Context) (frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pos >= len(s.files) {
		return nil, io.EOF
	}
	name := s.files[s.pos]
	s.pos++

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("ingest: open frame: %w", err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("ingest: decode frame %s: %w", filepath.Base(name), err)
	}

	release := func() error { return nil }
	if s.DeleteFiles {
		release = func() error { return os.Remove(name) }
	}
	return frame.NewImageFrame(img, release), nil
}
