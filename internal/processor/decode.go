package processor

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidEncoding is returned when a subtitle file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

// decodeUTF8 validates raw file content and drops a leading byte order mark.
// The x/text decoder substitutes U+FFFD for bad bytes instead of failing, so
// validity is checked first.
func decodeUTF8(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", ErrInvalidEncoding
	}

	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}
