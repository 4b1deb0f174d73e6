package chr2png

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/bodgit/chr2png/chr"
	"github.com/bodgit/chr2png/hexdump"
	"github.com/bodgit/chr2png/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = palette.Palette{0x0f, 0x00, 0x10, 0x30}

func writeDump(t *testing.T, file string, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i * 11)
	}

	f, err := os.Create(file)
	require.Nil(t, err)
	defer f.Close()

	require.Nil(t, hexdump.Write(f, b))

	return b
}

func readPNG(t *testing.T, file string) image.Image {
	f, err := os.Open(file)
	require.Nil(t, err)
	defer f.Close()

	m, err := png.Decode(f)
	require.Nil(t, err)

	return m
}

func newConverter(t *testing.T, warn *bytes.Buffer) *Converter {
	c, err := New(testPalette, log.New(ioutil.Discard, "", 0), log.New(warn, "warning: ", 0))
	require.Nil(t, err)
	return c
}

func TestNew(t *testing.T) {
	_, err := New(palette.Palette{0, 64}, log.New(ioutil.Discard, "", 0), log.New(ioutil.Discard, "", 0))
	assert.True(t, errors.Is(err, palette.ErrInvalidSlot))
}

func TestNewNilLoggers(t *testing.T) {
	dir, err := ioutil.TempDir("", "chr2png")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "short.txt")
	writeDump(t, in, chr.TableSize/2)

	c, err := New(testPalette, nil, nil)
	require.Nil(t, err)
	c.Lenient = true

	require.Nil(t, c.Convert(in, filepath.Join(dir, "short.png")))
}

func TestConvert(t *testing.T) {
	dir, err := ioutil.TempDir("", "chr2png")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	in, out := filepath.Join(dir, "smb.txt"), filepath.Join(dir, "smb.png")
	b := writeDump(t, in, chr.TableSize)

	c := newConverter(t, new(bytes.Buffer))
	require.Nil(t, c.Convert(in, out))

	m := readPNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 128, 128), m.Bounds())

	indices, err := chr.Decode(b)
	require.Nil(t, err)

	// Third pixel of the first row of tile 0
	r, g, bl, _ := m.At(2, 0).RGBA()
	want := testPalette.Color(indices[2])
	assert.Equal(t, []uint32{uint32(want.R) * 0x101, uint32(want.G) * 0x101, uint32(want.B) * 0x101}, []uint32{r, g, bl})
}

func TestConvertScale(t *testing.T) {
	dir, err := ioutil.TempDir("", "chr2png")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	in, out := filepath.Join(dir, "smb.txt"), filepath.Join(dir, "smb.png")
	writeDump(t, in, chr.TableSize)

	c := newConverter(t, new(bytes.Buffer))
	c.Scale = 2
	require.Nil(t, c.Convert(in, out))

	assert.Equal(t, image.Rect(0, 0, 256, 256), readPNG(t, out).Bounds())
}

func TestConvertTableSize(t *testing.T) {
	dir, err := ioutil.TempDir("", "chr2png")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	in, out := filepath.Join(dir, "short.txt"), filepath.Join(dir, "short.png")
	writeDump(t, in, chr.TableSize/2)

	warn := new(bytes.Buffer)
	c := newConverter(t, warn)

	err = c.Convert(in, out)
	assert.True(t, errors.Is(err, chr.ErrTableSize))
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, 0, warn.Len())

	c.Lenient = true
	require.Nil(t, c.Convert(in, out))
	assert.Contains(t, warn.String(), "warning: "+in+": ")

	// The bottom half was never drawn
	r, g, b, a := readPNG(t, out).At(127, 127).RGBA()
	assert.Equal(t, []uint32{0, 0, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestConvertMissing(t *testing.T) {
	c := newConverter(t, new(bytes.Buffer))
	err := c.Convert(filepath.Join(os.TempDir(), "chr2png-does-not-exist.txt"), filepath.Join(os.TempDir(), "chr2png.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestEncode(t *testing.T) {
	dir, err := ioutil.TempDir("", "chr2png")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	in, out := filepath.Join(dir, "smb.txt"), filepath.Join(dir, "smb.png")
	b := writeDump(t, in, chr.TableSize)

	c := newConverter(t, new(bytes.Buffer))
	require.Nil(t, c.Convert(in, out))

	buf := new(bytes.Buffer)
	require.Nil(t, c.Encode(out, buf))

	got, err := hexdump.Parse(buf)
	require.Nil(t, err)
	assert.Equal(t, b, got)
}

func TestEncodeWrongSize(t *testing.T) {
	dir, err := ioutil.TempDir("", "chr2png")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "small.png")
	f, err := os.Create(file)
	require.Nil(t, err)
	m := image.NewRGBA(image.Rect(0, 0, 16, 16))
	m.SetRGBA(0, 0, color.RGBA{0xff, 0, 0, 0xff})
	require.Nil(t, png.Encode(f, m))
	require.Nil(t, f.Close())

	c := newConverter(t, new(bytes.Buffer))
	assert.NotNil(t, c.Encode(file, new(bytes.Buffer)))
}

func TestEncodeFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "chr2png")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	in, img, out := filepath.Join(dir, "smb.txt"), filepath.Join(dir, "smb.png"), filepath.Join(dir, "smb2.txt")
	b := writeDump(t, in, chr.TableSize)

	c := newConverter(t, new(bytes.Buffer))
	require.Nil(t, c.Convert(in, img))
	require.Nil(t, c.EncodeFile(img, out))

	data, err := ioutil.ReadFile(out)
	require.Nil(t, err)
	got, err := hexdump.ParseString(string(data))
	require.Nil(t, err)
	assert.Equal(t, b, got)

	// A failed encode leaves nothing behind
	bad := filepath.Join(dir, "bad.txt")
	assert.NotNil(t, c.EncodeFile(in, bad))
	_, err = os.Stat(bad)
	assert.True(t, os.IsNotExist(err))
}

func TestBatch(t *testing.T) {
	dir, err := ioutil.TempDir("", "chr2png")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	names := []string{"a", "b", "c", "d", "e", "f"}
	for _, name := range names {
		writeDump(t, filepath.Join(dir, name+".txt"), chr.TableSize)
	}
	writeDump(t, filepath.Join(dir, ".hidden.txt"), chr.TableSize)
	require.Nil(t, ioutil.WriteFile(filepath.Join(dir, "notes.md"), []byte("zz"), 0644))
	require.Nil(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	writeDump(t, filepath.Join(dir, "sub", "g.txt"), chr.TableSize)

	c := newConverter(t, new(bytes.Buffer))
	require.Nil(t, c.Batch(dir, 3))

	for _, name := range names {
		assert.Equal(t, image.Rect(0, 0, 128, 128), readPNG(t, filepath.Join(dir, name+".png")).Bounds())
	}

	for _, file := range []string{".hidden.png", "notes.png", filepath.Join("sub", "g.png")} {
		_, err := os.Stat(filepath.Join(dir, file))
		assert.True(t, os.IsNotExist(err), file)
	}
}

func TestBatchError(t *testing.T) {
	dir, err := ioutil.TempDir("", "chr2png")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	writeDump(t, filepath.Join(dir, "good.txt"), chr.TableSize)
	require.Nil(t, ioutil.WriteFile(filepath.Join(dir, "bad.txt"), []byte("00 01 nope"), 0644))

	c := newConverter(t, new(bytes.Buffer))
	err = c.Batch(dir, 0)
	assert.True(t, errors.Is(err, hexdump.ErrSyntax))
	assert.Contains(t, err.Error(), "bad.txt")

	assert.NotNil(t, c.Batch(filepath.Join(dir, "good.txt"), 1))
}

func TestBatchErrorWaitsForWorkers(t *testing.T) {
	dir, err := ioutil.TempDir("", "chr2png")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	require.Nil(t, ioutil.WriteFile(filepath.Join(dir, "0bad.txt"), []byte("zz"), 0644))
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		writeDump(t, filepath.Join(dir, name+".txt"), chr.TableSize)
	}

	c := newConverter(t, new(bytes.Buffer))
	c.Scale = 16

	before := runtime.NumGoroutine()
	err = c.Batch(dir, 4)
	assert.True(t, errors.Is(err, hexdump.ErrSyntax))

	// Only goroutines already on their way out may remain
	for i := 0; i < 20 && runtime.NumGoroutine() > before; i++ {
		time.Sleep(10 * time.Millisecond)
	}
	assert.True(t, runtime.NumGoroutine() <= before, "goroutines still running after Batch returned")

	// Every image written is complete
	files, err := filepath.Glob(filepath.Join(dir, "*.png"))
	require.Nil(t, err)
	for _, file := range files {
		assert.Equal(t, image.Rect(0, 0, 2048, 2048), readPNG(t, file).Bounds(), file)
	}
}
