// Package colors builds RGB colors from 0...255 components and hex strings
// and adjusts their HSB brightness.
package colors

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an extended range sRGB color. R, G and B are not clamped, so
// values outside 0...1 are representable. A is kept within 0...1.
type Color struct {
	R, G, B float64
	A       float64
}

func clampUnit(v float64) float64 {
	return max(min(v, 1), 0)
}

// RGBA returns a color from unit components. Alpha is clamped to 0...1.
func RGBA(r, g, b, alpha float64) Color {
	return Color{R: r, G: g, B: b, A: clampUnit(alpha)}
}

// RGB255 returns a color from 0...255 components, e.g. RGB255(255, 0, 0, 1)
// for red. Components are not clamped.
func RGB255(r, g, b int, alpha float64) Color {
	return RGBA(float64(r)/255, float64(g)/255, float64(b)/255, alpha)
}

// Hex parses "#RRGGBB" or "#RGB". Text before the '#' is ignored. It
// reports false when there is no '#' or the digit count is not 3 or 6.
func Hex(s string, alpha float64) (Color, bool) {
	i := strings.IndexByte(s, '#')
	if i < 0 {
		return Color{}, false
	}
	digits := s[i+1:]
	if len(digits) != 3 && len(digits) != 6 {
		return Color{}, false
	}
	for _, r := range digits {
		if !isHexDigit(r) {
			return Color{}, false
		}
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, false
	}
	return Color{R: c.R, G: c.G, B: c.B, A: clampUnit(alpha)}, true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Hex6 returns "#RRGGBB" in upper case. Components are clamped to 0...1 and
// truncated to whole 0...255 steps.
func (c Color) Hex6() string {
	return fmt.Sprintf("#%02X%02X%02X", step(clampUnit(c.R)), step(clampUnit(c.G)), step(clampUnit(c.B)))
}

// step converts a unit component to 0...255, truncating. The epsilon keeps
// values such as 238/255*255 from landing one step low.
func step(v float64) int {
	return int(v*255 + 1e-9)
}

func (c Color) String() string { return c.Hex6() }

// RGB255 returns the components scaled to 0...255 and truncated.
func (c Color) RGB255() (r, g, b int) {
	return step(c.R), step(c.G), step(c.B)
}

// WithAlpha returns c with a different opacity.
func (c Color) WithAlpha(alpha float64) Color {
	c.A = clampUnit(alpha)
	return c
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// HSB returns hue, saturation and brightness. Hue is in 0...1.
func (c Color) HSB() (h, s, b float64) {
	h, s, b = c.colorful().Hsv()
	return h / 360, s, b
}

// FromHSB returns a color from hue in 0...1, saturation, brightness and
// alpha. Brightness above 1 yields extended range components.
func FromHSB(h, s, b, alpha float64) Color {
	c := colorful.Hsv(h*360, s, b)
	return Color{R: c.R, G: c.G, B: c.B, A: clampUnit(alpha)}
}

// Darkened scales brightness by 1-p. With clamp the brightness is limited
// to 0...1.
func (c Color) Darkened(p float64, clamp bool) Color {
	return c.adjustBrightness(-p, clamp)
}

// Lightened scales brightness by 1+p. With clamp the brightness is limited
// to 0...1.
func (c Color) Lightened(p float64, clamp bool) Color {
	return c.adjustBrightness(p, clamp)
}

func (c Color) adjustBrightness(p float64, clamp bool) Color {
	h, s, b := c.HSB()
	b *= 1 + p
	if clamp {
		b = clampUnit(b)
	}
	return FromHSB(h, s, b, c.A)
}

// Equal reports whether both colors match within one 0...255 step.
func (c Color) Equal(other Color) bool {
	const alphaDelta = 1.0 / 255
	return c.colorful().AlmostEqualRgb(other.colorful()) &&
		c.A-other.A < alphaDelta && other.A-c.A < alphaDelta
}

// RGBA implements image/color.Color. Components are clamped to the gamut
// and premultiplied by alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	scale := func(v float64) uint32 {
		return uint32(clampUnit(v)*c.A*0xffff + 0.5)
	}
	return scale(c.R), scale(c.G), scale(c.B), uint32(c.A*0xffff + 0.5)
}
