package image

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/bodgit/chr2png/chr"
	"github.com/bodgit/chr2png/hexdump"
	"github.com/bodgit/chr2png/palette"
	"github.com/bodgit/chr2png/tile"
	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

var errWrongSize = errors.New("image: image is wrong size")

func countColors(m image.Image) int {
	colors := make(map[color.Color]struct{})
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			colors[m.At(x, y)] = struct{}{}
		}
	}
	return len(colors)
}

// Encode writes the Image m to w as a pattern table dump. Each pixel is
// matched to the closest of the colors in p, but an image with more than
// palette.Size colors is first reduced to that many.
func Encode(w io.Writer, m image.Image, p palette.Palette) error {
	if err := p.Validate(); err != nil {
		return err
	}

	b := m.Bounds()
	if b.Dx() != pixelX || b.Dy() != pixelY {
		return errWrongSize
	}

	if countColors(m) > palette.Size {
		q := quantize.MedianCutQuantizer{}
		tmp := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, palette.Size), m))
		draw.Draw(tmp, b, m, b.Min, draw.Src)
		m = tmp
	}

	pm := image.NewPaletted(b, p.Colors())
	draw.Draw(pm, b, m, b.Min, draw.Src)

	indices, err := tile.Extract(pm)
	if err != nil {
		return err
	}

	data, err := chr.Encode(indices)
	if err != nil {
		return err
	}

	return hexdump.Write(w, data)
}
