// Package photo loads images for display in a viewport. Camera captures
// are decoded with their EXIF orientation applied, so the reported
// dimensions match what the user sees.
package photo

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/phanxgames/viewport"
)

// ErrEmptyImage is returned when a decoded image has no pixels.
var ErrEmptyImage = errors.New("photo: empty image")

// Photo is a decoded image at full resolution.
type Photo struct {
	Path  string
	Image image.Image
}

// Open decodes the image at path (JPEG, PNG, GIF, BMP, TIFF or WebP) with
// EXIF auto-orientation.
func Open(path string) (*Photo, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open photo %s: %w", path, err)
	}
	return newPhoto(path, img)
}

// Decode reads an image from r with EXIF auto-orientation.
func Decode(r io.Reader) (*Photo, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	return newPhoto("", img)
}

func newPhoto(path string, img image.Image) (*Photo, error) {
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return &Photo{Path: path, Image: img}, nil
}

// Dims returns the true pixel dimensions. These, not the size of any
// display copy, are what cover-fit mapping must use.
func (p *Photo) Dims() viewport.ImageDimensions {
	b := p.Image.Bounds()
	return viewport.ImageDimensions{Width: b.Dx(), Height: b.Dy()}
}

// Display returns a copy no larger than maxDim on either side for use as
// a texture. Images already within the limit are returned as is. A
// non-positive maxDim disables the limit.
func (p *Photo) Display(maxDim int) image.Image {
	b := p.Image.Bounds()
	if maxDim <= 0 || (b.Dx() <= maxDim && b.Dy() <= maxDim) {
		return p.Image
	}
	return imaging.Fit(p.Image, maxDim, maxDim, imaging.Lanczos)
}

// Region crops a size x size square of the full-resolution image centered
// on the pixel at pct. The square is clipped at the image edges.
func (p *Photo) Region(pct viewport.Percent, size int) *image.NRGBA {
	x, y := pct.ToPixel(p.Dims())
	side := max(size, 1)
	half := side / 2
	r := image.Rect(x-half, y-half, x-half+side, y-half+side)
	return imaging.Crop(p.Image, r.Add(p.Image.Bounds().Min))
}

// SaveRegion writes Region(pct, size) to path. The format follows the
// file extension.
func (p *Photo) SaveRegion(path string, pct viewport.Percent, size int) error {
	if err := imaging.Save(p.Region(pct, size), path); err != nil {
		return fmt.Errorf("save region %s: %w", path, err)
	}
	return nil
}
