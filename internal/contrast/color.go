// Package contrast computes WCAG relative luminance and contrast ratios for sRGB hex colors.
package contrast

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat is returned when a hex string is not 3 or 6 hex digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

var hexDigits = regexp.MustCompile(`^(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// RGB is an sRGB color with 8-bit channels.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Reference colors for the ends of the luminance scale.
var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
)

// ParseHex decodes "#rgb", "#rrggbb" or the same without the leading '#'.
func ParseHex(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if !hexDigits.MatchString(digits) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	color, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, hex, err)
	}

	r, g, b := color.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex renders the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}
