// Package extract is the text-extractor boundary: it turns uploaded
// documents into the raw text or row data the parsers consume, and
// never interprets question structure itself.
package extract

import (
	"errors"
	"unicode/utf8"
)

// ErrUnreadable is the decode-level failure: the source could not be
// read as text at all. No partial bank is produced from it.
var ErrUnreadable = errors.New("source could not be decoded as text")

// PlainText validates an uploaded blob as UTF-8 text.
func PlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrUnreadable
	}
	return string(data), nil
}
