package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// RGBA is a packed 0xRRGGBBAA color as used by world objects.
type RGBA uint32

// R, G, B and A return the individual channels.
func (c RGBA) R() uint8 { return uint8(c >> 24) }
func (c RGBA) G() uint8 { return uint8(c >> 16) }
func (c RGBA) B() uint8 { return uint8(c >> 8) }
func (c RGBA) A() uint8 { return uint8(c) }

// palette lists the approximate RGB value of every terminal color,
// used to pick the closest match for an RGBA value.
var palette = []struct {
	c       Color
	r, g, b int
}{
	{ColorRed, 170, 0, 0},
	{ColorGreen, 0, 170, 0},
	{ColorYellow, 170, 170, 0},
	{ColorBlue, 0, 0, 170},
	{ColorMagenta, 170, 0, 170},
	{ColorCyan, 0, 170, 170},
	{ColorWhite, 192, 192, 192},
	{ColorBrightRed, 255, 85, 85},
	{ColorBrightGreen, 85, 255, 85},
	{ColorBrightYellow, 255, 255, 85},
	{ColorBrightBlue, 85, 85, 255},
	{ColorBrightMagenta, 255, 85, 255},
	{ColorBrightCyan, 85, 255, 255},
	{ColorBrightWhite, 255, 255, 255},
	{ColorOrange, 255, 135, 0},
	{ColorGray, 138, 138, 138},
}

// Terminal returns the closest terminal color for c.
// Fully dark colors map to ColorGray so they stay visible.
func (c RGBA) Terminal() Color {
	r, g, b := int(c.R()), int(c.G()), int(c.B())
	if r+g+b < 48 {
		return ColorGray
	}
	best := ColorDefault
	bestDist := -1
	for _, p := range palette {
		dr, dg, db := r-p.r, g-p.g, b-p.b
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.c, d
		}
	}
	return best
}
