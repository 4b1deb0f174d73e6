package tile

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Compose places pixels, Pixels at a time, onto a new raster tilesX by
// tilesY tiles in size. Any tiles not covered by pixels are left opaque
// black. More pixels than the grid can hold returns ErrRasterOverflow.
func Compose(pixels []color.RGBA, tilesX, tilesY int) (*image.RGBA, error) {
	if err := checkGrid(tilesX, tilesY); err != nil {
		return nil, err
	}
	if len(pixels)%Pixels != 0 {
		return nil, fmt.Errorf("%w: %d pixels", errPartialTile, len(pixels))
	}
	if n := len(pixels) / Pixels; n > tilesX*tilesY {
		return nil, fmt.Errorf("%w: %d tiles, room for %d", ErrRasterOverflow, n, tilesX*tilesY)
	}

	m := image.NewRGBA(image.Rect(0, 0, tilesX*Width, tilesY*Height))
	draw.Draw(m, m.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 0xff}), image.Point{}, draw.Src)

	for tile := 0; tile < len(pixels)/Pixels; tile++ {
		tx, ty := tile%tilesX, tile/tilesX
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				m.SetRGBA(tx*Width+x, ty*Height+y, pixels[tile*Pixels+y*Width+x])
			}
		}
	}

	return m, nil
}
