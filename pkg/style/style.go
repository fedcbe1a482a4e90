// Package style holds the component kit's style model: a typed replacement
// for loose style dictionaries. A Style lists theme color and size overrides
// that apply to a component's root subtree, and a package-level stylesheet
// maps component type names to shared styles.
package style

import (
	"encoding/json"
	"fmt"
	"image/color"
	"sort"
	"sync"

	"fyne.io/fyne/v2"
)

// Style overrides selected theme colors and sizes below a component root.
// A nil Style means "inherit everything".
type Style struct {
	Colors map[fyne.ThemeColorName]color.Color
	Sizes  map[fyne.ThemeSizeName]float32
}

// New returns an empty style ready to be filled in.
func New() *Style {
	return &Style{
		Colors: make(map[fyne.ThemeColorName]color.Color),
		Sizes:  make(map[fyne.ThemeSizeName]float32),
	}
}

// Clone returns a deep copy of s. Clone of nil is nil.
func (s *Style) Clone() *Style {
	if s == nil {
		return nil
	}
	out := New()
	for k, v := range s.Colors {
		out.Colors[k] = v
	}
	for k, v := range s.Sizes {
		out.Sizes[k] = v
	}
	return out
}

// Merge overlays o on top of s and returns s. Nil maps are created on demand
// so Merge can be chained onto New().
func (s *Style) Merge(o *Style) *Style {
	if o == nil {
		return s
	}
	if s.Colors == nil {
		s.Colors = make(map[fyne.ThemeColorName]color.Color)
	}
	if s.Sizes == nil {
		s.Sizes = make(map[fyne.ThemeSizeName]float32)
	}
	for k, v := range o.Colors {
		s.Colors[k] = v
	}
	for k, v := range o.Sizes {
		s.Sizes[k] = v
	}
	return s
}

type styleJSON struct {
	Colors map[string]string  `json:"colors,omitempty"`
	Sizes  map[string]float32 `json:"sizes,omitempty"`
}

// MarshalJSON encodes colors as #RRGGBBAA strings so stylesheets survive in
// presets and on disk.
func (s *Style) MarshalJSON() ([]byte, error) {
	out := styleJSON{}
	if len(s.Colors) > 0 {
		out.Colors = make(map[string]string, len(s.Colors))
		for k, v := range s.Colors {
			out.Colors[string(k)] = FormatColor(v)
		}
	}
	if len(s.Sizes) > 0 {
		out.Sizes = make(map[string]float32, len(s.Sizes))
		for k, v := range s.Sizes {
			out.Sizes[string(k)] = v
		}
	}
	return json.Marshal(out)
}

func (s *Style) UnmarshalJSON(data []byte) error {
	var in styleJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s.Colors = make(map[fyne.ThemeColorName]color.Color, len(in.Colors))
	s.Sizes = make(map[fyne.ThemeSizeName]float32, len(in.Sizes))
	for k, v := range in.Colors {
		c, err := ParseColor(v)
		if err != nil {
			return fmt.Errorf("color %q: %w", k, err)
		}
		s.Colors[fyne.ThemeColorName(k)] = c
	}
	for k, v := range in.Sizes {
		s.Sizes[fyne.ThemeSizeName(k)] = v
	}
	return nil
}

// ParseColor reads #RGB, #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (color.Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	hex := s[1:]
	var r, g, b uint8
	a := uint8(0xff)
	switch len(hex) {
	case 3:
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("invalid color %q", s)
		}
		r, g, b = r*0x11, g*0x11, b*0x11
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("invalid color %q", s)
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return nil, fmt.Errorf("invalid color %q", s)
		}
	default:
		return nil, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// FormatColor renders c as #RRGGBBAA.
func FormatColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

var (
	sheetMu sync.RWMutex
	sheet   = make(map[string]*Style)
)

// Register stores s in the stylesheet under name, replacing any previous
// entry. Component roots look their style up by type name unless an explicit
// style or an override name is set.
func Register(name string, s *Style) {
	sheetMu.Lock()
	defer sheetMu.Unlock()
	if s == nil {
		delete(sheet, name)
		return
	}
	sheet[name] = s
}

// Lookup returns the registered style for name, or nil.
func Lookup(name string) *Style {
	sheetMu.RLock()
	defer sheetMu.RUnlock()
	return sheet[name]
}

// Names lists the registered stylesheet entries in order.
func Names() []string {
	sheetMu.RLock()
	defer sheetMu.RUnlock()
	names := make([]string, 0, len(sheet))
	for name := range sheet {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset drops every stylesheet entry and installs the given set. Used by the
// hot-reload watcher when a stylesheet file changes.
func Reset(styles map[string]*Style) {
	sheetMu.Lock()
	defer sheetMu.Unlock()
	sheet = make(map[string]*Style, len(styles))
	for name, s := range styles {
		if s != nil {
			sheet[name] = s
		}
	}
}
