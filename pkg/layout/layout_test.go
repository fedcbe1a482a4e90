package layout_test

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	fynelayout "fyne.io/fyne/v2/layout"

	"github.com/heavyai/omni-component/pkg/layout"
)

func box(w, h float32) fyne.CanvasObject {
	r := canvas.NewRectangle(nil)
	r.SetMinSize(fyne.NewSize(w, h))
	return r
}

func TestSizedMinSize(t *testing.T) {
	tests := []struct {
		name string // description of this test case
		// Named input parameters for target function.
		width  float32
		height float32
		want   fyne.Size
	}{
		{
			name:   "both fixed",
			width:  200,
			height: 80,
			want:   fyne.NewSize(200, 80),
		},
		{
			name: "neither fixed keeps content min",
			want: fyne.NewSize(50, 20),
		},
		{
			name:  "width only",
			width: 300,
			want:  fyne.NewSize(300, 20),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &layout.Sized{Width: tt.width, Height: tt.height, Inner: fynelayout.NewVBoxLayout()}
			got := l.MinSize([]fyne.CanvasObject{box(50, 20)})
			if got != tt.want {
				t.Errorf("MinSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPadded(t *testing.T) {
	l := &layout.Padded{Pad: 10, Inner: fynelayout.NewStackLayout()}
	child := box(30, 30)

	min := l.MinSize([]fyne.CanvasObject{child})
	if min != fyne.NewSize(50, 50) {
		t.Errorf("MinSize() = %v, want 50x50", min)
	}

	l.Layout([]fyne.CanvasObject{child}, fyne.NewSize(100, 100))
	if got := child.Position(); got != fyne.NewPos(10, 10) {
		t.Errorf("child position = %v, want 10,10", got)
	}
	if got := child.Size(); got != fyne.NewSize(80, 80) {
		t.Errorf("child size = %v, want 80x80", got)
	}
}

func TestGridGrowsRows(t *testing.T) {
	g := layout.NewGrid(2, 1, 0)

	objects := []fyne.CanvasObject{box(10, 10), box(10, 10), box(10, 10)}
	g.Layout(objects, fyne.NewSize(100, 100))

	// three tiles over two columns makes two rows
	if got := objects[2].Position().Y; got <= objects[0].Position().Y {
		t.Errorf("third tile Y = %v, want below first row", got)
	}
	if objects[0].Size() != objects[2].Size() {
		t.Errorf("tiles differ in size: %v vs %v", objects[0].Size(), objects[2].Size())
	}
}

func TestGridMinSize(t *testing.T) {
	g := layout.NewGrid(3, 2, 5)
	objects := []fyne.CanvasObject{box(40, 20)}
	got := g.MinSize(objects)
	want := fyne.NewSize((40+10)*3, (20+10)*2)
	if got != want {
		t.Errorf("MinSize() = %v, want %v", got, want)
	}
}
