package layout

import (
	"fyne.io/fyne/v2"
)

// Grid lays components out as equally sized tiles, top-left first. Rows is a
// minimum; when more tiles arrive than Cols*Rows the grid grows extra rows
// instead of clipping.
type Grid struct {
	Cols, Rows int
	Padding    float32
}

// NewGrid creates a tile grid with at least the given number of columns and
// rows.
func NewGrid(cols, rows int, padding float32) *Grid {
	return &Grid{
		Cols:    max(cols, 1),
		Rows:    max(rows, 1),
		Padding: padding,
	}
}

func (g *Grid) rows(count int) int {
	rows := (count + g.Cols - 1) / g.Cols
	return max(rows, g.Rows)
}

func (g *Grid) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	rows := g.rows(len(objects))
	pad2 := g.Padding * 2
	cellWidth := (size.Width - float32(g.Cols)*pad2) / float32(g.Cols)
	cellHeight := (size.Height - float32(rows)*pad2) / float32(rows)

	for i, obj := range objects {
		row := i / g.Cols
		col := i % g.Cols
		obj.Move(fyne.NewPos(
			float32(col)*(cellWidth+pad2)+g.Padding,
			float32(row)*(cellHeight+pad2)+g.Padding,
		))
		obj.Resize(fyne.Size{Width: cellWidth, Height: cellHeight})
	}
}

func (g *Grid) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var w, h float32
	for _, obj := range objects {
		min := obj.MinSize()
		if min.Width > w {
			w = min.Width
		}
		if min.Height > h {
			h = min.Height
		}
	}
	rows := g.rows(len(objects))
	return fyne.NewSize(
		(w+2*g.Padding)*float32(g.Cols),
		(h+2*g.Padding)*float32(rows),
	)
}
