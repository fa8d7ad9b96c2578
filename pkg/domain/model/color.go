package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Color is a 24-bit RGB embed color
type Color int

// DefaultEmbedColor is used when an embed request carries no color
const DefaultEmbedColor Color = 0x5865F2

// ParseColor parses "#RRGGBB" (the leading '#' is optional). An empty string yields DefaultEmbedColor.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultEmbedColor, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, goerr.New("embed color must be #RRGGBB",
			goerr.V("color", s), goerr.T(ErrTagValidation))
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, goerr.Wrap(err, "embed color must be #RRGGBB",
			goerr.V("color", s), goerr.T(ErrTagValidation))
	}
	return Color(v), nil
}

// Hex returns the "#RRGGBB" form
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", int(c))
}
