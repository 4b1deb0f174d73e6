package image

import (
	"errors"
	"image"

	"golang.org/x/image/draw"
)

var errBadScale = errors.New("image: scale must be at least 1")

// Scale enlarges m by a whole number factor n keeping pixels sharp
func Scale(m image.Image, n int) (image.Image, error) {
	if n < 1 {
		return nil, errBadScale
	}
	if n == 1 {
		return m, nil
	}

	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*n, b.Dy()*n))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)

	return dst, nil
}
