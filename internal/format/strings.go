package format

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/jumpkit/internal/buf"
)

var (
	utf16LE  = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	codePage = charmap.Windows1252
)

// UTF16Counted decodes chars UTF-16 code units from the front of b and
// returns the string plus the number of bytes consumed.
func UTF16Counted(b []byte, chars int) (string, int, error) {
	n, ok := buf.AddOverflowSafe(chars, chars)
	if !ok {
		return "", 0, fmt.Errorf("utf16 string: %w", ErrTruncated)
	}
	raw, ok := buf.Slice(b, 0, n)
	if !ok {
		return "", 0, fmt.Errorf("utf16 string: %w", ErrTruncated)
	}
	s, err := utf16LE.NewDecoder().Bytes(raw)
	if err != nil {
		return "", 0, fmt.Errorf("utf16 string: %w", err)
	}
	return string(s), n, nil
}

// CodePageString decodes a NUL-padded fixed-width single-byte string, such
// as the DestList hostname field.
func CodePageString(b []byte) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	s, err := codePage.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("code page string: %w", err)
	}
	return string(s), nil
}
