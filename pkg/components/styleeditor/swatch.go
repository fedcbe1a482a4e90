package styleeditor

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"
)

// swatch is a tappable color square. Tapping opens a picker in a modal and
// reports the chosen color.
type swatch struct {
	widget.BaseWidget
	rect     *canvas.Rectangle
	name     fyne.ThemeColorName
	onPicked func(fyne.ThemeColorName, color.Color)
}

func newSwatch(name fyne.ThemeColorName, onPicked func(fyne.ThemeColorName, color.Color)) *swatch {
	s := &swatch{
		rect:     canvas.NewRectangle(color.RGBA{0x80, 0x80, 0x80, 0xFF}),
		name:     name,
		onPicked: onPicked,
	}
	s.ExtendBaseWidget(s)
	return s
}

func (s *swatch) setColor(c color.Color) {
	s.rect.FillColor = c
	s.rect.Refresh()
}

func (s *swatch) Tapped(*fyne.PointEvent) {
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return
	}
	cv := app.Driver().CanvasForObject(s)
	if cv == nil {
		return
	}

	picker := colorpicker.New(200, colorpicker.StyleHue)
	picker.SetOnChanged(func(c color.Color) {
		s.setColor(c)
		if s.onPicked != nil {
			s.onPicked(s.name, c)
		}
	})

	var modal *widget.PopUp
	modal = widget.NewModalPopUp(container.NewVBox(
		picker,
		widget.NewButton("Close", func() {
			modal.Hide()
		}),
	), cv)
	modal.Show()
}

func (s *swatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.rect)
}
