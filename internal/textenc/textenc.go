// Package textenc turns raw file bytes into the single-byte text the INI
// scanner walks: it strips byte order marks and transcodes UTF-16LE and
// Windows-1252 input to UTF-8.
//
// Identifiers are ASCII, so any non-ASCII character that survives decoding
// is rejected by the parser as an illegal token.
package textenc

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	// EncodingUTF8 is the identifier for UTF-8 encoding (the default).
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding.
	EncodingUTF16LE = "UTF-16LE"

	// EncodingWindows1252 is the identifier for the Windows Latin-1 code page.
	EncodingWindows1252 = "WINDOWS-1252"
)

var (
	// UTF8BOM is the byte order mark for UTF-8.
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

	// UTF16LEBOM is the byte order mark for UTF-16 little-endian.
	UTF16LEBOM = []byte{0xFF, 0xFE}
)

// ErrUnsupportedEncoding indicates an encoding name Decode does not know.
var ErrUnsupportedEncoding = errors.New("textenc: unsupported encoding")

// Decode returns data as UTF-8. A BOM overrides enc. UTF-8 input without a
// BOM is returned as-is, without copying.
func Decode(data []byte, enc string) ([]byte, error) {
	if bytes.HasPrefix(data, UTF16LEBOM) {
		return decodeUTF16LE(data[len(UTF16LEBOM):])
	}
	if bytes.HasPrefix(data, UTF8BOM) {
		return data[len(UTF8BOM):], nil
	}

	switch normalize(enc) {
	case "", EncodingUTF8:
		return data, nil
	case EncodingUTF16LE:
		return decodeUTF16LE(data)
	case EncodingWindows1252:
		return transcode(data, charmap.Windows1252)
	default:
		return nil, ErrUnsupportedEncoding
	}
}

// Supported reports whether enc is accepted by Decode.
func Supported(enc string) bool {
	switch normalize(enc) {
	case "", EncodingUTF8, EncodingUTF16LE, EncodingWindows1252:
		return true
	}
	return false
}

func normalize(enc string) string {
	enc = strings.ToUpper(strings.TrimSpace(enc))
	switch enc {
	case "UTF8":
		return EncodingUTF8
	case "UTF16LE", "UTF-16":
		return EncodingUTF16LE
	case "CP1252", "LATIN1", "ISO-8859-1":
		return EncodingWindows1252
	}
	return enc
}

func decodeUTF16LE(data []byte) ([]byte, error) {
	// An odd trailing byte cannot form a UTF-16 code unit; drop it.
	if len(data)%2 == 1 {
		data = data[:len(data)-1]
	}
	return transcode(data, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))
}

func transcode(data []byte, enc encoding.Encoding) ([]byte, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, err
	}
	return out, nil
}
