package core

import "fmt"

// Color is a 24-bit RGB color, or ColorDefault for the terminal's own color.
type Color int32

// ColorDefault leaves the terminal's foreground or background untouched.
const ColorDefault Color = -1

// RGB packs three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b))
}

// Channels returns the red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	if c == ColorDefault {
		return 0, 0, 0
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c) //#nosec G115 -- masked by the shift
}

// Hex returns the color as "#rrggbb", or "" for ColorDefault.
func (c Color) Hex() string {
	if c == ColorDefault {
		return ""
	}
	r, g, b := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Common colors used outside the game palette.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorRed   = RGB(255, 0, 0)
)
