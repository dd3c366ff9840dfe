package world

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const upperhex = "0123456789ABCDEF"

// Fold lowercases s for command and direction matching.
func Fold(s string) string {
	// A Caser holds state, so each call gets its own.
	return cases.Lower(language.Und).String(s)
}

// NormalizeItem turns a player-supplied item name into the key used for room
// items, effects and the inventory. The name is trimmed, folded and
// percent-escaped so it can be echoed back into narration safely.
func NormalizeItem(name string) string {
	return escapeComponent(Fold(strings.TrimSpace(name)))
}

// escapeComponent percent-encodes every byte outside the URI component
// unreserved set: A-Z a-z 0-9 - _ . ! ~ * ' ( )
func escapeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
