package core

import (
	"bytes"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText validates data as UTF-8 and returns it as a string. A leading
// BOM, which Windows tools commonly add, is dropped.
func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}
