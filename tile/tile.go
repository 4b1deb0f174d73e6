/*
Package tile implements placing 8 by 8 pixel tiles onto a raster and taking
them back off again.

Tiles are laid out left to right, top to bottom so tile i of a grid that is
tilesX tiles wide sits at column i % tilesX and row i / tilesX. Within a tile
pixels are stored row by row.
*/
package tile

import (
	"errors"
	"fmt"
)

const (
	// Width is the width of a tile in pixels
	Width = 8
	// Height is the height of a tile in pixels
	Height = Width
	// Pixels is the number of pixels in a tile
	Pixels = Width * Height
)

var (
	// ErrRasterOverflow is returned when there are more tiles than the
	// raster has room for
	ErrRasterOverflow = errors.New("tile: too many tiles for raster")

	errPartialTile = errors.New("tile: pixel count is not a whole number of tiles")
	errBadGrid     = errors.New("tile: grid must be at least one tile in each direction")
	errBadBounds   = errors.New("tile: image is not a whole number of tiles")
)

func checkGrid(tilesX, tilesY int) error {
	if tilesX < 1 || tilesY < 1 {
		return fmt.Errorf("%w, got %dx%d", errBadGrid, tilesX, tilesY)
	}
	return nil
}
