package component

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	xlayout "github.com/heavyai/omni-component/pkg/layout"
	"github.com/heavyai/omni-component/pkg/style"
)

// RootConfig carries the options a root factory honors. Zero values mean
// "unset": no fixed size, no padding, no style override, visible.
type RootConfig struct {
	Width   float32
	Height  float32
	Padding float32
	Style   *style.Style
	Name    string
	Hidden  bool
}

// RootFactory builds the container a component renders into. VStack,
// HStack and ZStack cover the common cases, custom factories can wrap any
// fyne.Layout via NewRoot.
type RootFactory func(RootConfig) *Root

func VStack(cfg RootConfig) *Root { return NewRoot(layout.NewVBoxLayout(), cfg) }
func HStack(cfg RootConfig) *Root { return NewRoot(layout.NewHBoxLayout(), cfg) }
func ZStack(cfg RootConfig) *Root { return NewRoot(layout.NewStackLayout(), cfg) }

// Grid returns a factory for a fixed column grid.
func Grid(cols int) RootFactory {
	return func(cfg RootConfig) *Root {
		return NewRoot(xlayout.NewGrid(cols, 1, cfg.Padding), cfg)
	}
}

// Root is the canvas object a component owns for its lifetime. It stays
// put in whatever container the host placed it in while the component
// clears and repopulates it on every render.
type Root struct {
	widget.BaseWidget

	name     string
	content  *fyne.Container
	override *container.ThemeOverride
	disabled bool
}

// NewRoot wraps lay according to cfg and returns the finished root.
func NewRoot(lay fyne.Layout, cfg RootConfig) *Root {
	if cfg.Padding > 0 {
		lay = &xlayout.Padded{Pad: cfg.Padding, Inner: lay}
	}
	if cfg.Width > 0 || cfg.Height > 0 {
		lay = &xlayout.Sized{Width: cfg.Width, Height: cfg.Height, Inner: lay}
	}
	r := &Root{
		name:    cfg.Name,
		content: container.New(lay),
	}
	r.override = container.NewThemeOverride(r.content, style.Theme(nil, cfg.Style))
	r.ExtendBaseWidget(r)
	if cfg.Hidden {
		r.Hide()
	}
	return r
}

// Name reports the identifier given at construction, empty if none.
func (r *Root) Name() string {
	return r.name
}

// Add appends objects to the root. Children picked up while the root is
// disabled are disabled on the way in.
func (r *Root) Add(objects ...fyne.CanvasObject) {
	for _, o := range objects {
		if o == nil {
			continue
		}
		if r.disabled {
			setDisabled(o, true)
		}
		r.content.Add(o)
	}
	r.Refresh()
}

// Objects returns the current children.
func (r *Root) Objects() []fyne.CanvasObject {
	return r.content.Objects
}

// Clear removes every child while the root itself keeps its place in the
// widget tree.
func (r *Root) Clear() {
	r.content.RemoveAll()
}

// SetStyle swaps the style overlay applied to the root's subtree. A nil
// style falls back to the application theme.
func (r *Root) SetStyle(s *style.Style) {
	r.override.SetTheme(style.Theme(nil, s))
	r.Refresh()
}

// Disable greys out and deactivates every disableable child, including
// ones added afterwards.
func (r *Root) Disable() {
	r.setRootDisabled(true)
}

// Enable restores input on the subtree.
func (r *Root) Enable() {
	r.setRootDisabled(false)
}

// Disabled reports whether Disable was called last.
func (r *Root) Disabled() bool {
	return r.disabled
}

func (r *Root) setRootDisabled(disabled bool) {
	if r.disabled == disabled {
		return
	}
	r.disabled = disabled
	for _, o := range r.content.Objects {
		setDisabled(o, disabled)
	}
	r.Refresh()
}

// setDisabled walks o. Disableable widgets flip directly, containers
// recurse. A nested Root flips through its own Disable so its later
// children inherit the state.
func setDisabled(o fyne.CanvasObject, disabled bool) {
	switch t := o.(type) {
	case fyne.Disableable:
		if disabled {
			t.Disable()
		} else {
			t.Enable()
		}
	case *fyne.Container:
		for _, child := range t.Objects {
			setDisabled(child, disabled)
		}
	}
}

func (r *Root) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.override)
}
