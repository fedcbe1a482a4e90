// Package styleeditor edits named stylesheet entries live. Changes land in
// the shared stylesheet on Apply, the host decides which components to
// re-render through the OnApply hook.
package styleeditor

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/heavyai/omni-component/pkg/colors"
	"github.com/heavyai/omni-component/pkg/component"
	"github.com/heavyai/omni-component/pkg/style"
)

// editableColors is the subset of theme colors the editor exposes.
var editableColors = []fyne.ThemeColorName{
	theme.ColorNameBackground,
	theme.ColorNameForeground,
	theme.ColorNamePrimary,
	theme.ColorNameButton,
	theme.ColorNameInputBackground,
}

type Editor struct {
	component.Component
	Target  string
	OnApply func(name string, s *style.Style)

	working  *style.Style
	selector *widget.Select
	saveName *widget.Entry
	textSize *widget.Slider
	swatches map[fyne.ThemeColorName]*swatch
}

func New(target string, onApply func(string, *style.Style)) *Editor {
	e := &Editor{Target: target, OnApply: onApply}
	e.ExtendBaseComponent(e)
	e.Render()
	return e
}

func (e *Editor) Render() error {
	root := e.Root(component.VStack, component.RootConfig{})
	if e.selector == nil {
		e.build()
	}
	e.selector.Options = style.Names()
	e.selector.SetSelected(e.Target)

	rows := container.NewVBox()
	for _, name := range editableColors {
		sw := e.swatches[name]
		sw.setColor(e.colorFor(name))
		rows.Add(container.NewBorder(nil, nil, nil,
			container.NewGridWrap(fyne.NewSize(24, 24), sw),
			widget.NewLabel(string(name)),
		))
	}

	root.Add(
		e.selector,
		rows,
		container.NewBorder(nil, nil, widget.NewLabel("text size"), nil, e.textSize),
		widget.NewButton("Apply", e.apply),
		container.NewBorder(nil, nil, nil, widget.NewButton("Save as", e.saveAs), e.saveName),
	)
	return nil
}

func (e *Editor) build() {
	e.load(e.Target)

	e.selector = widget.NewSelect(style.Names(), func(name string) {
		if name == e.Target {
			return
		}
		e.Target = name
		e.load(name)
		e.Update()
	})

	e.saveName = widget.NewEntry()
	e.saveName.SetPlaceHolder("new style name")

	e.textSize = widget.NewSlider(8, 24)
	e.textSize.Step = 1
	e.textSize.OnChanged = func(v float64) {
		e.working.Sizes[theme.SizeNameText] = float32(v)
	}

	e.swatches = make(map[fyne.ThemeColorName]*swatch, len(editableColors))
	for _, name := range editableColors {
		e.swatches[name] = newSwatch(name, func(n fyne.ThemeColorName, c color.Color) {
			e.working.Colors[n] = c
		})
	}
}

// load resets the working copy from the stylesheet entry called name.
func (e *Editor) load(name string) {
	if s := style.Lookup(name); s != nil {
		e.working = s.Clone()
	} else {
		e.working = style.New()
	}
	if e.textSize != nil {
		if v, ok := e.working.Sizes[theme.SizeNameText]; ok {
			e.textSize.Value = float64(v)
		} else {
			e.textSize.Value = 14
		}
	}
}

// colorFor falls back to a stable placeholder per color name so unset
// swatches stay tellable apart.
func (e *Editor) colorFor(name fyne.ThemeColorName) color.Color {
	if c, ok := e.working.Colors[name]; ok {
		return c
	}
	return colors.ForTopic(string(name))
}

func (e *Editor) apply() {
	if e.Target == "" {
		return
	}
	style.Register(e.Target, e.working.Clone())
	if e.OnApply != nil {
		e.OnApply(e.Target, e.working.Clone())
	}
}

func (e *Editor) saveAs() {
	name := e.saveName.Text
	if name == "" {
		return
	}
	style.Register(name, e.working.Clone())
	e.Target = name
	e.Update()
	if e.OnApply != nil {
		e.OnApply(name, e.working.Clone())
	}
}
