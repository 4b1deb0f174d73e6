/*
Package hexdump implements reading and writing of pattern table dumps in the
textual form produced by emulator memory viewers such as the FCEUX PPU viewer.

Each byte is written as a hexadecimal token of one or two digits and tokens
are separated by any amount of whitespace, including newlines.
*/
package hexdump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	maxDigits = 2
	maxShown  = 16

	// BytesPerLine is the number of tokens written on each line by Write
	BytesPerLine = 16
)

// ErrSyntax is returned, wrapped in a *SyntaxError, for any token that is not
// a one or two digit hexadecimal byte.
var ErrSyntax = errors.New("hexdump: invalid byte token")

// SyntaxError records the offending token and its position in the input.
type SyntaxError struct {
	Token string
	Index int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("hexdump: invalid byte token %q at position %d", e.Token, e.Index)
}

// Unwrap returns ErrSyntax
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func parseToken(token string) (byte, bool) {
	if len(token) > maxDigits {
		return 0, false
	}
	v, err := strconv.ParseUint(token, 16, 8)
	if err != nil {
		return 0, false
	}
	return byte(v), true
}

// scanTokens is bufio.ScanWords except that a token longer than maxShown is
// cut short rather than buffered in full as it can never be a valid byte.
func scanTokens(data []byte, atEOF bool) (int, []byte, error) {
	advance, token, err := bufio.ScanWords(data, atEOF)
	if token == nil && err == nil && len(data)-advance > maxShown {
		return len(data), data[advance : advance+maxShown], nil
	}
	return advance, token, err
}

// Parse reads whitespace separated hexadecimal tokens from r and returns the
// bytes in the order they were read. Input with no tokens yields an empty,
// non-nil slice.
func Parse(r io.Reader) ([]byte, error) {
	s := bufio.NewScanner(r)
	s.Split(scanTokens)

	b := make([]byte, 0, 0x1000)
	for i := 0; s.Scan(); i++ {
		v, ok := parseToken(s.Text())
		if !ok {
			return nil, &SyntaxError{Token: s.Text(), Index: i}
		}
		b = append(b, v)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return b, nil
}

// ParseString is like Parse but reads from a string
func ParseString(s string) ([]byte, error) {
	return Parse(strings.NewReader(s))
}

// Write writes b to w as uppercase two digit tokens, BytesPerLine to a line.
func Write(w io.Writer, b []byte) error {
	bw := bufio.NewWriter(w)
	for i, v := range b {
		sep := byte(' ')
		if i%BytesPerLine == BytesPerLine-1 || i == len(b)-1 {
			sep = '\n'
		}
		if _, err := fmt.Fprintf(bw, "%02X%c", v, sep); err != nil {
			return err
		}
	}
	return bw.Flush()
}
