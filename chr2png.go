/*
Package chr2png is a library for converting NES pattern table dumps to and
from PNG images.

Input dumps are text files of hexadecimal bytes, the simplest way to get one
is to open the game in FCEUX, open the PPU viewer and copy either the 0x0000
to 0x0FFF or 0x1000 to 0x1FFF memory region to a text file.
*/
package chr2png

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"io/ioutil"
	"log"
	"os"

	chrimage "github.com/bodgit/chr2png/image"
	"github.com/bodgit/chr2png/palette"
)

type Converter struct {
	palette palette.Palette
	logger  *log.Logger
	warn    *log.Logger

	// Scale enlarges the output image by a whole number factor
	Scale int

	// Lenient allows dumps that are not exactly one pattern table,
	// reporting them to the warning logger instead of failing.
	Lenient bool
}

// New returns a Converter using palette p. Progress is written to logger
// and any warnings to warn, either may be nil to discard them.
func New(p palette.Palette, logger, warn *log.Logger) (*Converter, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	if warn == nil {
		warn = log.New(ioutil.Discard, "", 0)
	}
	return &Converter{
		palette: p,
		logger:  logger,
		warn:    warn,
		Scale:   1,
	}, nil
}

type outputFile struct {
	*os.File
}

func create(file string) (outputFile, error) {
	f, err := os.Create(file)
	return outputFile{f}, err
}

// close closes the file, removing it if *err is set or closing fails
func (f outputFile) close(err *error) {
	if cerr := f.Close(); *err == nil {
		*err = cerr
	}
	if *err != nil {
		os.Remove(f.Name())
	}
}

func (c *Converter) decode(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d := chrimage.Decoder{
		Palette: c.palette,
		Lenient: c.Lenient,
		Logger:  log.New(c.warn.Writer(), fmt.Sprintf("%s%s: ", c.warn.Prefix(), file), c.warn.Flags()),
	}

	m, err := d.Decode(f)
	if err != nil {
		return nil, err
	}

	return chrimage.Scale(m, c.Scale)
}

// Convert renders the pattern table dump in file in as a PNG image written
// to out.
func (c *Converter) Convert(in, out string) (err error) {
	m, err := c.decode(in)
	if err != nil {
		return err
	}

	f, err := create(out)
	if err != nil {
		return err
	}
	defer f.close(&err)

	if err = png.Encode(f, m); err != nil {
		return err
	}

	c.logger.Printf("Converted \"%s\" to \"%s\" with palette %s\n", in, out, c.palette)

	return nil
}

// Encode reads the 128 by 128 image in file in and writes it to w as a
// pattern table dump.
func (c *Converter) Encode(in string, w io.Writer) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	if err := chrimage.Encode(w, m, c.palette); err != nil {
		return err
	}

	c.logger.Printf("Encoded \"%s\" with palette %s\n", in, c.palette)

	return nil
}

// EncodeFile is like Encode but writes the dump to file out, which is removed
// again if encoding fails.
func (c *Converter) EncodeFile(in, out string) (err error) {
	f, err := create(out)
	if err != nil {
		return err
	}
	defer f.close(&err)

	return c.Encode(in, f)
}
