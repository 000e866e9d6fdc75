package statement

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encoding names reported by Decode.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "iso-8859-1"
	EncodingWindows1252 = "windows-1252"
)

// Decode returns data as UTF-8. Input that is not valid UTF-8 is assumed to
// be ISO-8859-1, which is what older bank exports use. A leading byte order
// mark is dropped.
func Decode(data []byte) ([]byte, string, error) {
	return DecodeCharset(data, "")
}

// DecodeCharset is Decode with a declared charset for input that is not
// valid UTF-8. Windows-1252 names ("1252", "cp1252", "windows-1252") select
// that code page; anything else falls back to ISO-8859-1.
func DecodeCharset(data []byte, charset string) ([]byte, string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, EncodingUTF8, nil
	}

	cm, name := charmap.ISO8859_1, EncodingLatin1
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "1252", "cp1252", "windows-1252":
		cm, name = charmap.Windows1252, EncodingWindows1252
	}

	decoded, _, err := transform.Bytes(cm.NewDecoder(), data)
	if err != nil {
		return nil, "", err
	}
	return decoded, name, nil
}
