/*
Package chr implements the NES PPU pattern table encoding.

A pattern table is 4096 bytes holding 256 tiles of 8 by 8 pixels. Each tile
is 16 bytes; the first 8 bytes are the low bitplane and the next 8 bytes are
the high bitplane, one byte per row with the leftmost pixel in the most
significant bit. Combining the two planes gives a 2-bit palette index for
every pixel.

See https://www.nesdev.org/wiki/PPU_pattern_tables
*/
package chr

import (
	"errors"
	"fmt"
)

const (
	// TileWidth is the width of a tile in pixels
	TileWidth = 8
	// TileHeight is the height of a tile in pixels
	TileHeight = TileWidth
	// TilePixels is the number of pixels, and so indices, in a tile
	TilePixels = TileWidth * TileHeight
	// TileSize is the number of bytes used to encode a tile
	TileSize  = planeSize * 2
	planeSize = TileHeight

	// NumTiles is the number of tiles in a pattern table
	NumTiles = 256
	// TableSize is the size in bytes of a pattern table
	TableSize = NumTiles * TileSize

	maxIndex = 3
)

var (
	// ErrMalformedTile is returned when the data ends part way through a
	// tile
	ErrMalformedTile = errors.New("chr: incomplete tile")
	// ErrTableSize is returned by CheckSize for anything other than a
	// whole pattern table
	ErrTableSize = errors.New("chr: pattern table must be exactly 4096 bytes")

	errBadIndex = errors.New("chr: pixel index out of range")
)

// Interleave combines the low and high bitplane bytes of one tile row into a
// 16-bit word holding eight 2-bit pixel indices. The leftmost pixel is in
// the top two bits and within each pair the high plane bit is the more
// significant.
func Interleave(low, high byte) uint16 {
	var w uint16
	for c := 0; c < TileWidth; c++ {
		w |= uint16(high>>(7-c)&1) << (15 - 2*c)
		w |= uint16(low>>(7-c)&1) << (14 - 2*c)
	}
	return w
}

func appendTile(dst []uint8, b []byte) []uint8 {
	for y := 0; y < TileHeight; y++ {
		w := Interleave(b[y], b[y+planeSize])
		for x := 0; x < TileWidth; x++ {
			dst = append(dst, uint8(w>>(14-2*x)&maxIndex))
		}
	}
	return dst
}

// Decode returns the pixel indices for every tile in b. Tiles are decoded in
// the order they appear and each contributes TilePixels indices, row by row
// from the top and left to right within a row. Any number of whole tiles is
// accepted; a trailing partial tile returns ErrMalformedTile.
func Decode(b []byte) ([]uint8, error) {
	if n := len(b) % TileSize; n != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedTile, n)
	}

	indices := make([]uint8, 0, len(b)/TileSize*TilePixels)
	for i := 0; i < len(b); i += TileSize {
		indices = appendTile(indices, b[i:i+TileSize])
	}

	return indices, nil
}

// CheckSize returns an error wrapping ErrTableSize unless b is exactly one
// pattern table.
func CheckSize(b []byte) error {
	if len(b) != TableSize {
		return fmt.Errorf("%w, got %d", ErrTableSize, len(b))
	}
	return nil
}

// Encode is the inverse of Decode. The number of indices must be a multiple
// of TilePixels and each index must be in the range 0 to 3.
func Encode(indices []uint8) ([]byte, error) {
	if n := len(indices) % TilePixels; n != 0 {
		return nil, fmt.Errorf("%w: %d trailing pixels", ErrMalformedTile, n)
	}

	b := make([]byte, 0, len(indices)/TilePixels*TileSize)
	for i := 0; i < len(indices); i += TilePixels {
		var planes [TileSize]byte
		for y := 0; y < TileHeight; y++ {
			for _, d := range indices[i+y*TileWidth : i+(y+1)*TileWidth] {
				if d > maxIndex {
					return nil, fmt.Errorf("%w: %d", errBadIndex, d)
				}
				planes[y] = planes[y]<<1 | d&1
				planes[y+planeSize] = planes[y+planeSize]<<1 | d>>1
			}
		}
		b = append(b, planes[:]...)
	}

	return b, nil
}
