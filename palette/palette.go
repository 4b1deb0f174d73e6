/*
Package palette implements the 4 color palettes used to render NES pattern
tables.

A Palette does not hold colors directly, each of its slots names one of the 64
colors in the fixed master palette of the PPU.
*/
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Size is the number of slots in a palette
const Size = 4

// ErrInvalidSlot is returned, wrapped in a *SlotError, for any palette value
// that cannot be parsed or is outside the master palette.
var ErrInvalidSlot = errors.New("palette: invalid slot")

// SlotError records the offending value and its position in the palette.
type SlotError struct {
	Token string
	Index int
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("palette: invalid slot %q at position %d", e.Token, e.Index)
}

// Unwrap returns ErrInvalidSlot
func (e *SlotError) Unwrap() error {
	return ErrInvalidSlot
}

// Palette maps each 2-bit pixel index to a master palette slot
type Palette [Size]uint8

// Parse parses up to Size whitespace separated values, each either decimal
// or hexadecimal with a 0x or 0X prefix. Missing values are left as slot 0
// and any values after the first Size are ignored.
func Parse(s string) (Palette, error) {
	var p Palette
	for i, token := range strings.Fields(s) {
		if i == Size {
			break
		}

		var v uint64
		var err error
		if strings.HasPrefix(token, "0x") || strings.HasPrefix(token, "0X") {
			v, err = strconv.ParseUint(token[2:], 16, 8)
		} else {
			v, err = strconv.ParseUint(token, 10, 8)
		}
		if err != nil || v >= MasterSize {
			return Palette{}, &SlotError{Token: token, Index: i}
		}
		p[i] = uint8(v)
	}
	return p, nil
}

// Validate checks every slot is within the master palette
func (p Palette) Validate() error {
	for i, s := range p {
		if s >= MasterSize {
			return &SlotError{Token: strconv.Itoa(int(s)), Index: i}
		}
	}
	return nil
}

// Color returns the color for pixel index n
func (p Palette) Color(n uint8) color.RGBA {
	return Master(p[n])
}

// Colors returns the 4 colors of the palette in index order
func (p Palette) Colors() color.Palette {
	c := make(color.Palette, Size)
	for i := range p {
		c[i] = p.Color(uint8(i))
	}
	return c
}

// Map replaces each pixel index with its color. Every index must be less
// than Size and the palette must be valid.
func (p Palette) Map(indices []uint8) []color.RGBA {
	pixels := make([]color.RGBA, len(indices))
	for i, n := range indices {
		pixels[i] = p.Color(n)
	}
	return pixels
}

// Index returns the pixel index whose color is closest to c, preferring
// the lower index on a tie.
func (p Palette) Index(c color.Color) uint8 {
	return uint8(p.Colors().Index(c))
}

func (p Palette) String() string {
	s := make([]string, Size)
	for i, v := range p {
		s[i] = fmt.Sprintf("0x%02X", v)
	}
	return strings.Join(s, " ")
}
