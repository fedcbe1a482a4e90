// Package theme carries the dark theme of the component lab.
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/heavyai/omni-component/pkg/assets"
)

type KitTheme struct{}

func (t KitTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 0x16, G: 0x17, B: 0x19, A: 0xFF}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0x21, G: 0x99, B: 0xF3, A: 0xFF}
	case fyne.ThemeColorName("primary-hover"):
		return color.RGBA{R: 0x42, G: 0xA9, B: 0xF5, A: 0xFF}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

var logoRes = &fyne.StaticResource{
	StaticName:    "logo.svg",
	StaticContent: assets.LogoBytes,
}

func (t KitTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	switch name {
	case fyne.ThemeIconName("kit-logo"):
		return theme.NewThemedResource(logoRes)
	default:
		return theme.DefaultTheme().Icon(name)
	}
}

func (t KitTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t KitTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 1
	case theme.SizeNameInlineIcon:
		return 20
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 4
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameScrollBarSmall:
		return 4
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 17
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputBorder:
		return 1
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameSelectionRadius:
		return 3
	default:
		return theme.DefaultTheme().Size(name)
	}
}
