/*
Package image implements an NES pattern table decoder and encoder.

A pattern table is read from a text dump of its 4096 bytes, one hexadecimal
byte per token, and rendered as a 128 by 128 pixel image of its 256 tiles
arranged sixteen to a row. Pixels are colored by looking up their 2-bit index
in a 4 slot palette of master palette colors.

Encoding goes the other way, reducing a 128 by 128 image to the 4 palette
colors and writing the resulting pattern table as a text dump.
*/
package image

import "github.com/bodgit/chr2png/chr"

const (
	tileX  = 16
	tileY  = chr.NumTiles / tileX
	pixelX = chr.TileWidth * tileX
	pixelY = chr.TileHeight * tileY
)
