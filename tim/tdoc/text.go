package tdoc

import (
	"strings"

	"contraption/tim/terror"
	"golang.org/x/text/encoding/charmap"
)

// ToText maps raw header bytes onto Latin-1 runes, one rune per byte, so any
// byte sequence survives JSON.
func ToText(raw string) string {
	text, err := charmap.ISO8859_1.NewDecoder().String(raw)
	if err != nil {
		// every byte has a Latin-1 rune
		panic(terror.ErrUnreachableCode{Caller: "tdoc.ToText"})
	}
	return text
}

// FromText is the inverse of ToText. Runes above U+00FF and NUL have no
// place in a header string.
func FromText(key string, text string) (string, error) {
	raw, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return "", terror.ErrInvalidDocument{
			Caller: "tdoc.FromText",
			Key:    key,
			Reason: "text has characters outside Latin-1",
		}
	}
	if strings.IndexByte(raw, 0) >= 0 {
		return "", terror.ErrInvalidDocument{
			Caller: "tdoc.FromText",
			Key:    key,
			Reason: "text contains a NUL character",
		}
	}
	return raw, nil
}
