package stylesheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/drift/pkg/graphics"
)

// ParseColor parses #rgb, #rrggbb or #aarrggbb. Colors without alpha are
// opaque.
func ParseColor(s string) (graphics.Color, error) {
	trimmed := strings.TrimSpace(s)
	hex, ok := strings.CutPrefix(trimmed, "#")
	if !ok {
		return 0, fmt.Errorf("%w: %q must start with #", ErrInvalidColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	switch len(hex) {
	case 6:
		return graphics.Color(0xFF000000 | uint32(v)), nil
	case 8:
		return graphics.Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}

// FormatColor writes opaque colors as #rrggbb and others as #aarrggbb.
func FormatColor(c graphics.Color) string {
	if uint32(c)>>24 == 0xFF {
		return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
	}
	return fmt.Sprintf("#%08x", uint32(c))
}

func colorField(name string, s *string) (*graphics.Color, error) {
	if s == nil {
		return nil, nil
	}
	c, err := ParseColor(*s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &c, nil
}

func colorString(c graphics.Color) *string {
	s := FormatColor(c)
	return &s
}

func fontWeight(w *int) *graphics.FontWeight {
	if w == nil {
		return nil
	}
	fw := graphics.FontWeight(*w)
	return &fw
}
