// Package charset decodes text for the LED matrix: UTF-8 and the legacy 8-bit
// code pages that Czech text still turns up in.
package charset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Charset identifies a text encoding.
type Charset uint8

const (
	UTF8 Charset = iota
	ISO8859_2
	Windows1250
)

var ErrUnknown = errors.New("unknown charset")

func (c Charset) String() string {
	switch c {
	case UTF8:
		return "utf-8"
	case ISO8859_2:
		return "iso-8859-2"
	case Windows1250:
		return "windows-1250"
	}
	return fmt.Sprintf("charset(%d)", uint8(c))
}

// Parse maps a charset name (case-insensitive, common aliases accepted) to a
// Charset.
func Parse(name string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf8", "utf-8":
		return UTF8, nil
	case "latin2", "latin-2", "iso8859-2", "iso-8859-2":
		return ISO8859_2, nil
	case "cp1250", "windows1250", "windows-1250":
		return Windows1250, nil
	}
	return 0, fmt.Errorf("charset %q: %w", name, ErrUnknown)
}

// Decode appends the runes of b to dst. Invalid UTF-8 bytes decode to
// utf8.RuneError one byte at a time, so every input byte that is not part of
// a valid sequence still yields exactly one rune.
func Decode(dst []rune, b []byte, cs Charset) ([]rune, error) {
	switch cs {
	case UTF8:
		for len(b) > 0 {
			r, size := utf8.DecodeRune(b)
			dst = append(dst, r)
			b = b[size:]
		}
		return dst, nil
	case ISO8859_2:
		return decodeBytes(dst, b, charmap.ISO8859_2), nil
	case Windows1250:
		return decodeBytes(dst, b, charmap.Windows1250), nil
	}
	return dst, fmt.Errorf("decode %v: %w", cs, ErrUnknown)
}

func decodeBytes(dst []rune, b []byte, cm *charmap.Charmap) []rune {
	for _, c := range b {
		dst = append(dst, cm.DecodeByte(c))
	}
	return dst
}
