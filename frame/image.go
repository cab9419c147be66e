package frame

import "image"

// NormalWidth is the pixel width all frames are normalized to before
// sampling; the line-21 bit geometry is defined against it.
const NormalWidth = 720

// ImageFrame adapts an image.Image to the Frame interface, averaging
// RGB into luma and normalizing the width to 720 columns by
// nearest-column resampling. Quality of the resample is irrelevant for
// a two-level signal.
type ImageFrame struct {
	img      image.Image
	srcWidth int
	height   int
	release  func() error
}

// NewImageFrame wraps img. The optional release hook runs exactly once
// when the frame is released; a nil hook makes Release a no-op.
func NewImageFrame(img image.Image, release func() error) *ImageFrame {
	b := img.Bounds()
	return &ImageFrame{
		img:      img,
		srcWidth: b.Dx(),
		height:   b.Dy(),
		release:  release,
	}
}

// Width returns the normalized width.
func (f *ImageFrame) Width() int { return NormalWidth }

func (f *ImageFrame) Height() int { return f.height }

// Luma returns the RGB mean at the normalized column x, row y.
func (f *ImageFrame) Luma(x, y int) float64 {
	if x < 0 || x >= NormalWidth || y < 0 || y >= f.height {
		return 0
	}
	if f.srcWidth != NormalWidth {
		x = x * f.srcWidth / NormalWidth
	}
	b := f.img.Bounds()
	r, g, bl, _ := f.img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	// RGBA returns 16-bit channels.
	return float64((r>>8)+(g>>8)+(bl>>8)) / 3
}

// Release runs the release hook, once.
func (f *ImageFrame) Release() error {
	if f.release == nil {
		return nil
	}
	rel := f.release
	f.release = nil
	return rel()
}
