package colors

import (
	"image/color"
	"testing"
)

func TestGradient(t *testing.T) {
	tests := []struct {
		name string // description of this test case
		min  float64
		max  float64
		val  float64
		want color.RGBA
	}{
		{
			name: "clamps below min",
			min:  0, max: 100, val: -5,
			want: color.RGBA{0, 255, 0, 255},
		},
		{
			name: "clamps above max",
			min:  0, max: 100, val: 250,
			want: color.RGBA{255, 0, 0, 255},
		},
		{
			name: "midpoint is the mid stop",
			min:  0, max: 100, val: 50,
			want: color.RGBA{255, 255, 0, 255},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gradient(tt.min, tt.max, tt.val, PaletteNormal)
			if got != tt.want {
				t.Errorf("Gradient() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGradientDegenerateRange(t *testing.T) {
	got := Gradient(5, 5, 5, PaletteNormal)
	want := color.RGBA{128, 128, 128, 255}
	if got != want {
		t.Errorf("Gradient() = %v, want %v", got, want)
	}
}

func TestForTopic(t *testing.T) {
	if got := ForTopic("demo.rpm"); got != (color.RGBA{33, 153, 243, 255}) {
		t.Errorf("ForTopic(demo.rpm) = %v, want the pinned color", got)
	}
	a := ForTopic("some.unknown.topic")
	b := ForTopic("some.unknown.topic")
	if a != b {
		t.Errorf("ForTopic() not stable: %v != %v", a, b)
	}
	if a.A != 255 {
		t.Errorf("ForTopic() alpha = %d, want opaque", a.A)
	}
}

func TestParsePalette(t *testing.T) {
	for _, name := range SupportedPalettes {
		if got := ParsePalette(name).String(); got != name {
			t.Errorf("ParsePalette(%q).String() = %q", name, got)
		}
	}
	if got := ParsePalette("nonsense"); got != PaletteNormal {
		t.Errorf("ParsePalette(nonsense) = %v, want PaletteNormal", got)
	}
}
