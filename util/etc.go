package util
import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

func FixUnicode(in string) string {
	return norm.NFC.String(in)
}

// ToSingleByte turns typed text into one byte per character (ISO-8859-1).
// Characters without a single-byte code are rejected.
func ToSingleByte(text string) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewEncoder().String(FixUnicode(text))
	if err != nil {
		return nil, fmt.Errorf("Message contains characters outside ISO-8859-1")
	}
	return []byte(out), nil
}

// FromSingleByte is the inverse of ToSingleByte.
func FromSingleByte(data []byte) string {
	// every byte maps to a rune, decoding cannot fail
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
	return string(out)
}

// HasExtension reports whether filename ends with one of extensions
// (given without the dot), ignoring case.
func HasExtension(filename string, extensions []string) bool {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" || filepath.Base(filename) == "."+ext {
		return false
	}
	for _, e := range extensions {
		if strings.EqualFold(ext, strings.TrimPrefix(e, ".")) {
			return true
		}
	}
	return false
}
