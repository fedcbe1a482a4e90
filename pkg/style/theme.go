package style

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme overlays s on top of base. Anything the style does not name falls
// through to base. A nil base follows the running application's theme, so
// the overlay stays correct when the app theme changes at runtime. A nil
// style is a pure passthrough.
func Theme(base fyne.Theme, s *Style) fyne.Theme {
	return &overlayTheme{base: base, style: s}
}

type overlayTheme struct {
	base  fyne.Theme
	style *Style
}

func (t *overlayTheme) fallback() fyne.Theme {
	if t.base != nil {
		return t.base
	}
	if app := fyne.CurrentApp(); app != nil {
		if th := app.Settings().Theme(); th != nil {
			return th
		}
	}
	return theme.DefaultTheme()
}

func (t *overlayTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.style != nil {
		if c, ok := t.style.Colors[name]; ok {
			return c
		}
	}
	return t.fallback().Color(name, variant)
}

func (t *overlayTheme) Size(name fyne.ThemeSizeName) float32 {
	if t.style != nil {
		if v, ok := t.style.Sizes[name]; ok {
			return v
		}
	}
	return t.fallback().Size(name)
}

func (t *overlayTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.fallback().Icon(name)
}

func (t *overlayTheme) Font(s fyne.TextStyle) fyne.Resource {
	return t.fallback().Font(s)
}
