// Package textenc decodes exported files from their declared character
// encoding into UTF-8.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Lookup resolves an encoding name such as "windows-1252", "latin1" or
// "utf-8". A nil encoding with no error means UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	}

	enc, err := ianaindex.IANA.Encoding(n)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Decode converts raw bytes in the named encoding to a UTF-8 string.
// A leading UTF-8 byte order mark is removed. Bytes that are invalid
// UTF-8 under the "utf-8" encoding become U+FFFD.
func Decode(raw []byte, name string) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}

	if enc == nil {
		raw = bytes.TrimPrefix(raw, utf8BOM)
		if utf8.Valid(raw) {
			return string(raw), nil
		}
		return strings.ToValidUTF8(string(raw), "\uFFFD"), nil
	}

	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

// Encode returns text as UTF-8 bytes, optionally prefixed with a byte
// order mark for spreadsheet applications.
func Encode(text string, bom bool) []byte {
	if !bom {
		return []byte(text)
	}
	out := make([]byte, 0, len(utf8BOM)+len(text))
	out = append(out, utf8BOM...)
	return append(out, text...)
}
