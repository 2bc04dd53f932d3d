package utils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexToRGBA converts a color expressed in hexadecimal format to RGBA.
// Both the short (#rgb, #rgba) and the long (#rrggbb, #rrggbbaa) forms are accepted,
// with or without the leading hash.
func HexToRGBA(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3, 4:
		var sb strings.Builder
		for _, r := range hex {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		hex = sb.String()
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color: %q", hex)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
