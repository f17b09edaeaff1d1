package viewport

import "math"

// CoverFit returns the rectangle, in untransformed container coordinates,
// that an image of the given dimensions occupies when scaled to fill the
// container while preserving aspect ratio. The overflowing axis extends
// past the container symmetrically, so the rect origin may be negative.
// ok is false for an empty container or image.
func CoverFit(container Size, img ImageDimensions) (r Rect, ok bool) {
	if container.Empty() || img.Empty() {
		return Rect{}, false
	}
	containerAR := container.Width / container.Height
	imageAR := float64(img.Width) / float64(img.Height)

	if imageAR > containerAR {
		// Wider than the container: match heights, crop left and right.
		r.Height = container.Height
		r.Width = r.Height * imageAR
		r.X = (container.Width - r.Width) / 2
	} else {
		// Taller (or equal): match widths, crop top and bottom.
		r.Width = container.Width
		r.Height = r.Width / imageAR
		r.Y = (container.Height - r.Height) / 2
	}
	return r, true
}

// MapToImage converts an untransformed container point to a percentage
// position on the original image under cover fit. ok is false when the
// point falls outside the image or the geometry is degenerate; the result
// is never clamped into range.
func MapToImage(p Vec2, container Size, img ImageDimensions) (Percent, bool) {
	r, ok := CoverFit(container, img)
	if !ok {
		return Percent{}, false
	}
	xPct := (p.X - r.X) / r.Width * 100
	yPct := (p.Y - r.Y) / r.Height * 100
	if xPct < 0 || xPct > 100 || yPct < 0 || yPct > 100 || math.IsNaN(xPct) || math.IsNaN(yPct) {
		return Percent{}, false
	}
	return Percent{X: int(math.Round(xPct)), Y: int(math.Round(yPct))}, true
}

// MapFromImage is the inverse of MapToImage: it returns the untransformed
// container point that displays the given image percentage.
func MapFromImage(pct Percent, container Size, img ImageDimensions) (Vec2, bool) {
	r, ok := CoverFit(container, img)
	if !ok {
		return Vec2{}, false
	}
	return Vec2{
		X: r.X + float64(pct.X)/100*r.Width,
		Y: r.Y + float64(pct.Y)/100*r.Height,
	}, true
}

// ToPixel converts the percentage to a source pixel coordinate, clamped to
// the last row and column.
func (p Percent) ToPixel(img ImageDimensions) (x, y int) {
	if img.Empty() {
		return 0, 0
	}
	x = int(math.Round(float64(p.X) / 100 * float64(img.Width)))
	y = int(math.Round(float64(p.Y) / 100 * float64(img.Height)))
	return min(x, img.Width-1), min(y, img.Height-1)
}
