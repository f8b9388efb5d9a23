package style

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a straight-alpha RGBA color with float32 channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB builds an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA builds a color with explicit alpha.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
)

// ParseColor parses #rgb, #rgba, #rrggbb, #rrggbbaa, or a named SVG 1.1
// color like "steelblue".
func ParseColor(s string) (Color, bool) {
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return Color{}, false
	}
	return fromRGBA(c), true
}

func parseHex(hx string) (Color, bool) {
	nib := func(b byte) (float32, bool) {
		switch {
		case b >= '0' && b <= '9':
			return float32(b - '0'), true
		case b >= 'a' && b <= 'f':
			return float32(b-'a') + 10, true
		case b >= 'A' && b <= 'F':
			return float32(b-'A') + 10, true
		}
		return 0, false
	}
	byt := func(hi, lo byte) (float32, bool) {
		h, ok1 := nib(hi)
		l, ok2 := nib(lo)
		return (h*16 + l) / 255, ok1 && ok2
	}
	switch len(hx) {
	case 3, 4:
		var ch [4]float32
		ch[3] = 1
		for i := 0; i < len(hx); i++ {
			v, ok := nib(hx[i])
			if !ok {
				return Color{}, false
			}
			ch[i] = v * 17 / 255
		}
		return Color{ch[0], ch[1], ch[2], ch[3]}, true
	case 6, 8:
		var ch [4]float32
		ch[3] = 1
		for i := 0; i*2 < len(hx); i++ {
			v, ok := byt(hx[i*2], hx[i*2+1])
			if !ok {
				return Color{}, false
			}
			ch[i] = v
		}
		return Color{ch[0], ch[1], ch[2], ch[3]}, true
	}
	return Color{}, false
}

func fromRGBA(c color.RGBA) Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// Lerp interpolates per channel. t outside [0, 1] extrapolates.
func (c Color) Lerp(to Color, t float32) Color {
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// Fade returns the color with alpha scaled by a.
func (c Color) Fade(a float32) Color {
	c.A *= a
	return c
}

// RGBA8 converts to 8-bit channels, clamping to [0, 255].
func (c Color) RGBA8() color.RGBA {
	to8 := func(v float32) uint8 {
		v *= 255
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return uint8(v + 0.5)
	}
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func (c Color) String() string {
	r := c.RGBA8()
	if r.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r.R, r.G, r.B, r.A)
}
