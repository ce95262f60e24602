package gonumplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/plotutil"
)

// ParseColor accepts "#RRGGBB", "#RRGGBBAA", "#RGB" or "auto:N", where N indexes
// the plotutil default palette.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)

	if rest, ok := strings.CutPrefix(s, "auto:"); ok {
		i, err := strconv.Atoi(rest)
		if err != nil || i < 0 {
			return nil, fmt.Errorf("invalid palette index in color %q", s)
		}
		return plotutil.Color(i), nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, fmt.Errorf("invalid color %q: expected #RRGGBB or auto:N", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("invalid color %q: expected #RRGGBB or auto:N", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
