package core

// Color is an RGBA color in world space. Entities declare their colors in
// full RGBA; presentation backends downsample as needed.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a color from individual channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colors for game elements.
var (
	ColorBlack = Color{0, 0, 0, 255}
	ColorWhite = Color{255, 255, 255, 255}
	ColorRed   = Color{255, 0, 0, 255}
	ColorGreen = Color{0, 255, 0, 255}
	ColorBlue  = Color{0, 0, 255, 255}
	ColorGray  = Color{128, 128, 128, 255}
)

// Transparent reports whether the color is fully transparent.
// Backends skip drawing transparent fills entirely.
func (c Color) Transparent() bool {
	return c.A == 0
}

// ANSI256 maps the color to the nearest ANSI 256-palette index using the
// 6x6x6 color cube. Grayscale shades map into the gray ramp.
func (c Color) ANSI256() uint8 {
	// Near-gray colors get better fidelity from the 24-step gray ramp.
	if isGrayish(c) {
		gray := (int(c.R) + int(c.G) + int(c.B)) / 3
		if gray < 8 {
			return 16 // cube black
		}
		if gray > 248 {
			return 231 // cube white
		}
		return uint8(232 + (gray-8)/10)
	}
	r := cubeIndex(c.R)
	g := cubeIndex(c.G)
	b := cubeIndex(c.B)
	return uint8(16 + 36*r + 6*g + b)
}

func cubeIndex(v uint8) int {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return int(v-35) / 40
}

func isGrayish(c Color) bool {
	max := Max(int(c.R), Max(int(c.G), int(c.B)))
	min := Min(int(c.R), Min(int(c.G), int(c.B)))
	return max-min < 16
}
