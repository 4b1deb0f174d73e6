package tile

import (
	"fmt"
	"image"
)

// Extract is the inverse of Compose, returning the color index of every
// pixel of m in tile order. The bounds of m must be a whole number of tiles.
func Extract(m *image.Paletted) ([]uint8, error) {
	b := m.Bounds()
	if b.Dx()%Width != 0 || b.Dy()%Height != 0 {
		return nil, fmt.Errorf("%w, got %dx%d", errBadBounds, b.Dx(), b.Dy())
	}
	tilesX, tilesY := b.Dx()/Width, b.Dy()/Height

	indices := make([]uint8, 0, b.Dx()*b.Dy())
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			for y := 0; y < Height; y++ {
				for x := 0; x < Width; x++ {
					indices = append(indices, m.ColorIndexAt(b.Min.X+tx*Width+x, b.Min.Y+ty*Height+y))
				}
			}
		}
	}

	return indices, nil
}
