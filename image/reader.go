package image

import (
	"fmt"
	"image"
	"io"
	"log"

	"github.com/bodgit/chr2png/chr"
	"github.com/bodgit/chr2png/hexdump"
	"github.com/bodgit/chr2png/palette"
	"github.com/bodgit/chr2png/tile"
)

// Decoder decodes pattern table dumps using a fixed palette
type Decoder struct {
	Palette palette.Palette

	// Lenient allows dumps that are not exactly one pattern table.
	// Whatever whole tiles are present are still rendered, and more than
	// the image can hold is still an error.
	Lenient bool

	// Logger, if set, receives a warning for each dump accepted only
	// because of Lenient.
	Logger *log.Logger
}

func (d *Decoder) read(r io.Reader) ([]byte, error) {
	if err := d.Palette.Validate(); err != nil {
		return nil, err
	}

	b, err := hexdump.Parse(r)
	if err != nil {
		return nil, err
	}

	if err := chr.CheckSize(b); err != nil {
		if !d.Lenient {
			return nil, err
		}
		if d.Logger != nil {
			d.Logger.Printf("%v, the image may be truncated or scrambled", err)
			d.Logger.Println("make sure to dump 0x0000 to 0x0FFF or 0x1000 to 0x1FFF")
		}
	}

	if n := len(b) % chr.TileSize; n != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", chr.ErrMalformedTile, n)
	}
	if n := len(b) / chr.TileSize; n > tileX*tileY {
		return nil, fmt.Errorf("%w: %d tiles, room for %d", tile.ErrRasterOverflow, n, tileX*tileY)
	}

	return b, nil
}

// Decode reads a pattern table dump from r and returns it as an image
func (d *Decoder) Decode(r io.Reader) (*image.RGBA, error) {
	b, err := d.read(r)
	if err != nil {
		return nil, err
	}

	indices, err := chr.Decode(b)
	if err != nil {
		return nil, err
	}

	return tile.Compose(d.Palette.Map(indices), tileX, tileY)
}

// DecodeConfig returns the color model and dimensions of a pattern table
// dump without rendering it.
func (d *Decoder) DecodeConfig(r io.Reader) (image.Config, error) {
	if _, err := d.read(r); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: d.Palette.Colors(),
		Width:      pixelX,
		Height:     pixelY,
	}, nil
}

// Decode reads a pattern table dump from r and returns it as an image.Image
// colored with palette p.
func Decode(r io.Reader, p palette.Palette) (image.Image, error) {
	d := Decoder{Palette: p}
	m, err := d.Decode(r)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeConfig returns the color model and dimensions of a pattern table dump
// without rendering it.
func DecodeConfig(r io.Reader, p palette.Palette) (image.Config, error) {
	d := Decoder{Palette: p}
	return d.DecodeConfig(r)
}
