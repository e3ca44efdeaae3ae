// Package textutil guards terminal output against hostile file names.
package textutil

import (
	"strings"
	"unicode"
)

// Runes that reorder or hide surrounding text. They render as a visible
// placeholder instead of taking effect.
var invisibleFormattingRunes = map[rune]struct{}{
	0x061C: {}, // arabic letter mark
	0x200B: {}, 0x200C: {}, 0x200D: {}, 0x200E: {}, 0x200F: {},
	0x202A: {}, 0x202B: {}, 0x202C: {}, 0x202D: {}, 0x202E: {},
	0x2028: {}, 0x2029: {},
	0x00AD: {},
	0x2060: {},
	0x2066: {}, 0x2067: {}, 0x2068: {}, 0x2069: {},
	0xFEFF: {},
}

// SanitizeName replaces control and invisible formatting characters in a
// file name so user-controlled text cannot inject escape sequences or
// reorder what the terminal shows.
func SanitizeName(name string) string {
	for _, r := range name {
		if requiresSanitization(r) {
			return sanitize(name)
		}
	}
	return name
}

func requiresSanitization(r rune) bool {
	if unicode.IsControl(r) {
		return true
	}
	_, invisible := invisibleFormattingRunes[r]
	return invisible
}

func sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if requiresSanitization(r) {
			b.WriteRune('�')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
