package colors

import (
	"image/color"
	"math"
	"strings"
)

// Palette selects the color ramp used for value heat mapping. The
// non-default ramps stay readable for common color vision deficiencies.
type Palette int

var SupportedPalettes = [...]string{
	Normal,
	Universal,
	Protanopia,
	Tritanopia,
	Deuteranomaly,
}

const (
	Normal        = "Normal"
	Universal     = "Universal"
	Protanopia    = "Protanopia"
	Tritanopia    = "Tritanopia"
	Deuteranomaly = "Deuteranomaly"
	Unknown       = "Unknown"
)

const (
	PaletteNormal        Palette = iota // Green → Yellow → Red
	PaletteUniversal                    // Blue → Gray → Orange
	PaletteProtanopia                   // Blue → White → Brown
	PaletteTritanopia                   // Teal → Gray → Red
	PaletteDeuteranomaly                // Blue → Beige → Brown
)

func (p Palette) String() string {
	switch p {
	case PaletteNormal:
		return Normal
	case PaletteUniversal:
		return Universal
	case PaletteProtanopia:
		return Protanopia
	case PaletteTritanopia:
		return Tritanopia
	case PaletteDeuteranomaly:
		return Deuteranomaly
	default:
		return Unknown
	}
}

func ParsePalette(s string) Palette {
	switch strings.Title(s) {
	case Normal:
		return PaletteNormal
	case Universal:
		return PaletteUniversal
	case Protanopia:
		return PaletteProtanopia
	case Tritanopia:
		return PaletteTritanopia
	case Deuteranomaly:
		return PaletteDeuteranomaly
	default:
		return PaletteNormal
	}
}

// Gradient maps value onto the palette's ramp. value is clamped to
// [min, max].
func Gradient(min, max, value float64, p Palette) color.RGBA {
	t := (value - min) / (max - min)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	if math.IsNaN(t) {
		return color.RGBA{128, 128, 128, 255}
	}

	var low, mid, high color.RGBA
	switch p {
	case PaletteNormal:
		// Green → Yellow → Red
		low = color.RGBA{0, 255, 0, 255}
		mid = color.RGBA{255, 255, 0, 255}
		high = color.RGBA{255, 0, 0, 255}

	case PaletteUniversal:
		// Blue → Gray → Orange
		low = color.RGBA{33, 102, 172, 255}  // #2166AC
		mid = color.RGBA{247, 247, 247, 255} // #F7F7F7
		high = color.RGBA{255, 165, 0, 255}  // #FFA500

	case PaletteProtanopia:
		// Blue → White → Brown
		low = color.RGBA{5, 113, 176, 255}   // #0571B0
		mid = color.RGBA{247, 247, 247, 255} // #F7F7F7
		high = color.RGBA{150, 75, 0, 255}   // #964B00

	case PaletteTritanopia:
		// Teal → Gray → Red
		low = color.RGBA{0, 128, 128, 255}   // #008080
		mid = color.RGBA{247, 247, 247, 255} // #F7F7F7
		high = color.RGBA{215, 48, 39, 255}  // #D73027

	case PaletteDeuteranomaly:
		// Blue → Beige → Brown
		low = color.RGBA{0x4A, 0x90, 0xE2, 255}  // #4A90E2 — medium blue
		mid = color.RGBA{0xF5, 0xE6, 0xB3, 255}  // #F5E6B3 — beige
		high = color.RGBA{0x8B, 0x45, 0x13, 255} // #8B4513 — dark brown

	default:
		low = color.RGBA{0, 255, 0, 255}
		mid = color.RGBA{255, 255, 0, 255}
		high = color.RGBA{255, 0, 0, 255}
	}

	const divider = 0.5
	if t < divider {
		return lerpColor(low, mid, t/divider)
	}
	return lerpColor(mid, high, (t-divider)/(1-divider))
}

// lerp helper
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// linear interpolation between two colors
func lerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(lerp(float64(c1.R), float64(c2.R), t)),
		G: uint8(lerp(float64(c1.G), float64(c2.G), t)),
		B: uint8(lerp(float64(c1.B), float64(c2.B), t)),
		A: 255,
	}
}
