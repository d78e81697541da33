package theme

import (
	"fmt"
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"
)

var hexColorRe = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// NormalizeHexColor validates a #rgb or #rrggbb color and returns it in
// lowercase #rrggbb form.
func NormalizeHexColor(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !hexColorRe.MatchString(s) {
		return "", false
	}
	s = strings.ToLower(s)
	if len(s) == 4 {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	return s, true
}

// InterpolateColor blends between two hex colors based on position (0.0 to 1.0)
func InterpolateColor(colorA, colorB string, pos float64) string {
	r1, g1, b1 := ParseHexColor(colorA)
	r2, g2, b2 := ParseHexColor(colorB)

	r := uint8(float64(r1)*(1-pos) + float64(r2)*pos)
	g := uint8(float64(g1)*(1-pos) + float64(g2)*pos)
	b := uint8(float64(b1)*(1-pos) + float64(b2)*pos)

	return FormatHexColor(r, g, b)
}

// ParseHexColor extracts RGB values from a hex color string. Short #rgb
// colors are expanded first; anything unparsable yields black.
func ParseHexColor(hex string) (uint8, uint8, uint8) {
	if norm, ok := NormalizeHexColor(hex); ok {
		hex = norm
	}
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b uint8
	if len(hex) == 6 {
		_, _ = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	}
	return r, g, b
}

// FormatHexColor converts RGB values to hex color string
func FormatHexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ApplyGradient colors each line of text with a horizontal gradient from
// colorA to colorB. Spaces are left unstyled.
func ApplyGradient(text, colorA, colorB string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) == 0 {
			continue
		}
		var sb strings.Builder
		for j, r := range runes {
			if r == ' ' {
				sb.WriteRune(r)
				continue
			}
			pos := 0.0
			if len(runes) > 1 {
				pos = float64(j) / float64(len(runes)-1)
			}
			style := lipgloss.NewStyle().Foreground(HexToColor(InterpolateColor(colorA, colorB, pos)))
			sb.WriteString(style.Render(string(r)))
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
