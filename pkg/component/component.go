// Package component provides the base type UI building blocks embed to get
// declarative props, a stable render target and scheduling helpers on top
// of fyne. A component owns a single Root container for its lifetime and
// rebuilds the root's children on every render, so re-rendering never
// moves the component inside the host layout.
package component

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"github.com/heavyai/omni-component/pkg/style"
)

// DefaultDebounce is the delay UpdateDebounced collapses bursts with.
const DefaultDebounce = 200 * time.Millisecond

// Renderable is the contract concrete components fulfil. Render builds or
// rebuilds the widget tree inside the component's root.
type Renderable interface {
	Render() error
}

// Object is the surface a fully assembled component presents to hosts:
// renderable, placeable and destroyable. Every type embedding Component
// satisfies it.
type Object interface {
	Renderable
	CanvasObject() fyne.CanvasObject
	Destroy()
}

// Component is the embeddable base. The exported fields are its declared
// props, every embedder inherits them on top of its own.
//
// A minimal component looks like this:
//
//	type Badge struct {
//		component.Component
//		Text string
//	}
//
//	func NewBadge(text string) *Badge {
//		b := &Badge{Text: text}
//		b.ExtendBaseComponent(b)
//		return b
//	}
//
//	func (b *Badge) Render() error {
//		root := b.Root(component.VStack, component.RootConfig{})
//		root.Add(widget.NewLabel(b.Text))
//		return nil
//	}
type Component struct {
	Style             *style.Style
	Width             float32
	Height            float32
	Name              string
	StyleTypeOverride string

	mu         sync.Mutex
	impl       Renderable
	root       *Root
	debounce   *time.Timer
	destroyers []func()
	destroyed  bool
}

type hasBase interface {
	base() *Component
}

func (c *Component) base() *Component { return c }

// ExtendBaseComponent ties the base to its outer type so Render and style
// lookups dispatch to the concrete component. Call it once from the
// constructor, before the first render. Repeated calls keep the first
// binding.
func (c *Component) ExtendBaseComponent(r Renderable) {
	if r == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.impl != nil {
		return
	}
	c.impl = r
}

func (c *Component) renderable() Renderable {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.impl
}

// Render on the base only reports that the embedder forgot to implement
// it. Concrete components always override this.
func (c *Component) Render() error {
	return ErrRenderNotImplemented
}

func (c *Component) render() error {
	if r := c.renderable(); r != nil {
		return r.Render()
	}
	return ErrRenderNotImplemented
}

// Root returns the component's root container, building it on first use
// and clearing it on every call after that. The root object is the same
// across renders, so whatever container the host put it in keeps it in
// place.
//
// The component's own props win over cfg: a non-zero Width, Height, Style,
// Name or StyleTypeOverride on the component replaces the corresponding
// cfg field. When neither sets a style the stylesheet is consulted, first
// under StyleTypeOverride, then under the concrete type name. The lookup
// happens on every render, so stylesheet edits land on the next Update.
func (c *Component) Root(build RootFactory, cfg RootConfig) *Root {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.root != nil {
		c.root.Clear()
		c.root.SetStyle(c.resolveStyleLocked(cfg))
		return c.root
	}
	if c.Width > 0 {
		cfg.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Height = c.Height
	}
	if c.Name != "" {
		cfg.Name = c.Name
	}
	cfg.Style = c.resolveStyleLocked(cfg)
	if build == nil {
		build = VStack
	}
	c.root = build(cfg)
	return c.root
}

func (c *Component) resolveStyleLocked(cfg RootConfig) *style.Style {
	if c.Style != nil {
		return c.Style
	}
	if cfg.Style != nil {
		return cfg.Style
	}
	if c.StyleTypeOverride != "" {
		return style.Lookup(c.StyleTypeOverride)
	}
	return style.Lookup(c.typeNameLocked())
}

// Rendered reports whether the component has built its root.
func (c *Component) Rendered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root != nil
}

// CanvasObject exposes the root for placing the component in a container,
// nil before the first render.
func (c *Component) CanvasObject() fyne.CanvasObject {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.root == nil {
		return nil
	}
	return c.root
}

// Visible reports whether the component is currently shown. A component
// that has not rendered yet is not visible.
func (c *Component) Visible() bool {
	c.mu.Lock()
	root := c.root
	c.mu.Unlock()
	if root == nil {
		return false
	}
	return root.Visible()
}

// SetVisible shows or hides the root. It returns ErrNotRendered when the
// component has no root yet, visibility only exists once rendered.
func (c *Component) SetVisible(visible bool) error {
	c.mu.Lock()
	root := c.root
	c.mu.Unlock()
	if root == nil {
		return ErrNotRendered
	}
	if visible {
		root.Show()
	} else {
		root.Hide()
	}
	return nil
}

// Enabled reports the enabled state and whether that state exists at all.
// Before the first render there is nothing to enable, so ok is false.
func (c *Component) Enabled() (enabled, ok bool) {
	c.mu.Lock()
	root := c.root
	c.mu.Unlock()
	if root == nil {
		return false, false
	}
	return !root.Disabled(), true
}

// SetEnabled flips input handling for the whole subtree. Calls before the
// first render are dropped.
func (c *Component) SetEnabled(enabled bool) {
	c.mu.Lock()
	root := c.root
	c.mu.Unlock()
	if root == nil {
		return
	}
	if enabled {
		root.Enable()
	} else {
		root.Disable()
	}
}

// RenderAsync queues the render behind the work already scheduled on the
// UI loop and waits for it, returning the render's error.
func (c *Component) RenderAsync() error {
	var err error
	CurrentDispatcher().DoAndWait(func() {
		err = c.render()
	})
	return err
}

// Update schedules a render on the UI loop and returns immediately. The
// dispatcher is resolved at call time, so an Update captured in a closure
// follows dispatcher swaps instead of the dispatcher that existed when
// the closure was made. Render errors are reported through fyne's log.
func (c *Component) Update() {
	c.UpdateOn(nil)
}

// UpdateOn is Update against an explicit dispatcher. A nil d uses the
// current one.
func (c *Component) UpdateOn(d Dispatcher) {
	if d == nil {
		d = CurrentDispatcher()
	}
	d.Do(func() {
		if err := c.render(); err != nil {
			fyne.LogError("component render failed", err)
		}
	})
}

// UpdateDebounced is UpdateDebounce with DefaultDebounce.
func (c *Component) UpdateDebounced() {
	c.UpdateDebounce(DefaultDebounce)
}

// UpdateDebounce schedules a render after delay, replacing any render
// still pending from an earlier call. A burst of calls lands as a single
// render once the calls stop for delay.
func (c *Component) UpdateDebounce(delay time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}
	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.debounce = time.AfterFunc(delay, c.Update)
}

// OnDestroy registers fn to run when Destroy is called, after hooks that
// were registered later. The returned cancel removes the hook again. A
// hook added after Destroy runs immediately.
func (c *Component) OnDestroy(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		fn()
		return func() {}
	}
	idx := len(c.destroyers)
	c.destroyers = append(c.destroyers, fn)
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if idx < len(c.destroyers) {
			c.destroyers[idx] = nil
		}
	}
}

// Destroy cancels any pending debounced render and runs the registered
// hooks in reverse registration order. The base holds no other resources,
// components that subscribe to buses or open files release them through
// OnDestroy or their own Destroy override. Callers own teardown, nothing
// here runs from a finalizer.
func (c *Component) Destroy() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.destroyed = true
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
	hooks := c.destroyers
	c.destroyers = nil
	c.mu.Unlock()
	for i := len(hooks) - 1; i >= 0; i-- {
		if hooks[i] != nil {
			hooks[i]()
		}
	}
}

// Destroyed reports whether Destroy has run.
func (c *Component) Destroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}

func (c *Component) typeNameLocked() string {
	if c.impl == nil {
		return ""
	}
	return typeName(c.impl)
}

// Construct builds a component dynamically: it binds the base, applies
// props and renders once. Preset loading uses this path, code written
// against a concrete type calls its constructor instead.
func Construct(r Renderable, props map[string]any) error {
	if err := ConstructDeferred(r, props); err != nil {
		return err
	}
	return r.Render()
}

// ConstructDeferred is Construct without the initial render, for callers
// that stage components before showing them.
func ConstructDeferred(r Renderable, props map[string]any) error {
	b, ok := r.(hasBase)
	if !ok {
		return ErrNotExtended
	}
	b.base().ExtendBaseComponent(r)
	return ApplyProps(r, props)
}
