package model

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// customEmoji is the "name:id" form the reaction API takes for server emoji
var customEmoji = regexp.MustCompile(`^(a:)?[A-Za-z0-9_]{2,32}:[0-9]{17,20}$`)

const keycapMark = '⃣'

// IsEmoji reports whether s is a single unicode emoji or a custom "name:id" emoji
func IsEmoji(s string) bool {
	if customEmoji.MatchString(s) {
		return true
	}
	if uniseg.GraphemeClusterCount(s) != 1 {
		return false
	}

	// Keycaps start with a digit, # or *.
	if strings.ContainsRune(s, keycapMark) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.Is(unicode.So, r)
}
