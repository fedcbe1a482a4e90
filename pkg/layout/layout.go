// Package layout provides the custom fyne layouts the component kit builds
// its containers with: fixed sizing for component roots, uniform padding and
// the tile grid used by dashboards.
package layout

import (
	"fyne.io/fyne/v2"
)

// Sized delegates to Inner but forces the minimum size to Width/Height where
// those are > 0. Component roots use it to honor declared width/height props
// regardless of content.
type Sized struct {
	Width, Height float32
	Inner         fyne.Layout
}

func (l *Sized) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	l.Inner.Layout(objects, size)
}

func (l *Sized) MinSize(objects []fyne.CanvasObject) fyne.Size {
	min := l.Inner.MinSize(objects)
	if l.Width > 0 {
		min.Width = l.Width
	}
	if l.Height > 0 {
		min.Height = l.Height
	}
	return min
}

// Padded insets every child by Pad on all sides. Unlike the theme padded
// layout the amount is explicit, so container construction can pass arbitrary
// padding through.
type Padded struct {
	Pad   float32
	Inner fyne.Layout
}

func (l *Padded) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	inset := fyne.NewSize(size.Width-2*l.Pad, size.Height-2*l.Pad)
	if inset.Width < 0 {
		inset.Width = 0
	}
	if inset.Height < 0 {
		inset.Height = 0
	}
	l.Inner.Layout(objects, inset)
	for _, o := range objects {
		o.Move(o.Position().Add(fyne.NewPos(l.Pad, l.Pad)))
	}
}

func (l *Padded) MinSize(objects []fyne.CanvasObject) fyne.Size {
	min := l.Inner.MinSize(objects)
	return fyne.NewSize(min.Width+2*l.Pad, min.Height+2*l.Pad)
}
