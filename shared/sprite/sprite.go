// Package sprite holds the character bitmap and the per-pixel helpers the
// renderer and the warp particles share. No rendering happens here.
package sprite

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// Transparent is the palette key for an empty cell.
const Transparent = '0'

// Blink keys: while blinking the eye cells are drawn with the skin colour.
const (
	EyeKey  = '4'
	SkinKey = '3'
)

// Leg rows swing while the character walks.
const (
	LegRowStart = 42
	LegRowEnd   = 47
	LegSwing    = 3.0
)

// PixelKey identifies a cell of the bitmap.
type PixelKey struct {
	Row, Col int
}

func (k PixelKey) String() string {
	return strconv.Itoa(k.Row) + "," + strconv.Itoa(k.Col)
}

// Pixel is an opaque cell with its resolved colour.
type Pixel struct {
	PixelKey
	Key   byte
	Color color.RGBA
}

// Sprite is a row-major character bitmap with a keyed palette.
type Sprite struct {
	Cols, Rows int
	Lines      []string
	Palette    map[byte]color.RGBA
}

// Key returns the palette key at (row, col). Out-of-range cells, including the
// tail of short rows, are transparent.
func (s *Sprite) Key(row, col int) byte {
	if row < 0 || row >= len(s.Lines) {
		return Transparent
	}
	line := s.Lines[row]
	if col < 0 || col >= len(line) {
		return Transparent
	}
	return line[col]
}

// Color resolves a key, applying the blink swap.
func (s *Sprite) Color(key byte, blinking bool) (color.RGBA, bool) {
	if key == Transparent {
		return color.RGBA{}, false
	}
	if blinking && key == EyeKey {
		key = SkinKey
	}
	c, ok := s.Palette[key]
	return c, ok
}

// Opaque lists every drawable cell in raster order.
func (s *Sprite) Opaque() []Pixel {
	var out []Pixel
	for row := 0; row < s.Rows && row < len(s.Lines); row++ {
		line := s.Lines[row]
		for col := 0; col < len(line) && col < s.Cols; col++ {
			c, ok := s.Color(line[col], false)
			if !ok {
				continue
			}
			out = append(out, Pixel{PixelKey: PixelKey{Row: row, Col: col}, Key: line[col], Color: c})
		}
	}
	return out
}

// LegOffset returns the horizontal swing for a cell while walking. Left and
// right legs move in opposite phase.
func (s *Sprite) LegOffset(row, col int, walkFrame float64, walking bool) float64 {
	if !walking || row < LegRowStart || row > LegRowEnd {
		return 0
	}
	step := math.Sin(walkFrame*0.3) * LegSwing
	if col < s.Cols/2 {
		return step
	}
	return -step
}

// BreathOffset is the vertical bob for the given breath timer.
func BreathOffset(breathTimer int) float64 {
	return math.Sin(float64(breathTimer)*0.03) * 1.5
}

// ParseHex converts "#rrggbb" to an opaque colour.
func ParseHex(hex string) (color.RGBA, error) {
	if len(hex) == 7 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustHex is ParseHex for compile-time constants.
func MustHex(hex string) color.RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}
