package component_test

import (
	"errors"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/heavyai/omni-component/pkg/component"
)

func TestMain(m *testing.M) {
	test.NewApp()
	os.Exit(m.Run())
}

// inlineDispatcher runs everything on the calling goroutine and counts the
// jobs it saw, standing in for the fyne event loop.
type inlineDispatcher struct {
	jobs atomic.Int32
}

func (d *inlineDispatcher) Do(fn func()) {
	d.jobs.Add(1)
	fn()
}

func (d *inlineDispatcher) DoAndWait(fn func()) {
	d.jobs.Add(1)
	fn()
}

func withInlineDispatcher(t *testing.T) *inlineDispatcher {
	t.Helper()
	d := &inlineDispatcher{}
	prev := component.SetDispatcher(d)
	t.Cleanup(func() { component.SetDispatcher(prev) })
	return d
}

func TestBaseRenderNotImplemented(t *testing.T) {
	b := &bare{}
	b.ExtendBaseComponent(b)
	if err := b.Render(); !errors.Is(err, component.ErrRenderNotImplemented) {
		t.Fatalf("Render() error = %v, want ErrRenderNotImplemented", err)
	}
}

func TestRootIdentityAcrossRenders(t *testing.T) {
	b := newBadge("one")
	if err := b.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	root := b.CanvasObject()
	if root == nil {
		t.Fatal("CanvasObject() returned nil after render")
	}

	host := container.NewStack(root)

	b.Text = "two"
	if err := b.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if b.CanvasObject() != root {
		t.Error("root changed identity across renders")
	}
	if host.Objects[0] != root {
		t.Error("root lost its place in the host container")
	}
	if got := b.label.Text; got != "two" {
		t.Errorf("label text = %q, want %q", got, "two")
	}
	if n := len(root.(*component.Root).Objects()); n != 1 {
		t.Errorf("root has %d children after re-render, want 1", n)
	}
}

func TestRootClearedOnEachRender(t *testing.T) {
	f := &form{}
	f.ExtendBaseComponent(f)
	for i := 0; i < 3; i++ {
		if err := f.Render(); err != nil {
			t.Fatalf("Render() failed: %v", err)
		}
	}
	root := f.CanvasObject().(*component.Root)
	if n := len(root.Objects()); n != 1 {
		t.Errorf("root has %d children after repeated renders, want 1", n)
	}
}

func TestVisibleBeforeRender(t *testing.T) {
	b := newBadge("x")
	if b.Visible() {
		t.Error("Visible() = true before render")
	}
	if err := b.SetVisible(true); !errors.Is(err, component.ErrNotRendered) {
		t.Errorf("SetVisible() error = %v, want ErrNotRendered", err)
	}
}

func TestVisibleAfterRender(t *testing.T) {
	b := newBadge("x")
	if err := b.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if !b.Visible() {
		t.Error("Visible() = false after render")
	}
	if err := b.SetVisible(false); err != nil {
		t.Fatalf("SetVisible() failed: %v", err)
	}
	if b.Visible() {
		t.Error("Visible() = true after hide")
	}
	if err := b.SetVisible(true); err != nil {
		t.Fatalf("SetVisible() failed: %v", err)
	}
	if !b.Visible() {
		t.Error("Visible() = false after show")
	}
}

func TestEnabledBeforeRender(t *testing.T) {
	f := &form{}
	f.ExtendBaseComponent(f)
	if _, ok := f.Enabled(); ok {
		t.Error("Enabled() ok = true before render")
	}
	f.SetEnabled(false) // dropped, nothing to disable yet
	if err := f.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if enabled, ok := f.Enabled(); !ok || !enabled {
		t.Errorf("Enabled() = %v, %v after render, want true, true", enabled, ok)
	}
}

func TestEnabledCascades(t *testing.T) {
	f := &form{}
	f.ExtendBaseComponent(f)
	if err := f.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	f.SetEnabled(false)
	if enabled, ok := f.Enabled(); !ok || enabled {
		t.Errorf("Enabled() = %v, %v, want false, true", enabled, ok)
	}
	if !f.submit.Disabled() {
		t.Error("child button still enabled after SetEnabled(false)")
	}

	late := widget.NewButton("late", func() {})
	f.CanvasObject().(*component.Root).Add(late)
	if !late.Disabled() {
		t.Error("child added to a disabled root is not disabled")
	}

	f.SetEnabled(true)
	if f.submit.Disabled() || late.Disabled() {
		t.Error("children still disabled after SetEnabled(true)")
	}
}

func TestRenderAsync(t *testing.T) {
	withInlineDispatcher(t)

	b := newBadge("async")
	if err := b.RenderAsync(); err != nil {
		t.Fatalf("RenderAsync() failed: %v", err)
	}
	if !b.Rendered() {
		t.Error("RenderAsync() did not build the root")
	}

	u := &bare{}
	u.ExtendBaseComponent(u)
	if err := u.RenderAsync(); !errors.Is(err, component.ErrRenderNotImplemented) {
		t.Errorf("RenderAsync() error = %v, want ErrRenderNotImplemented", err)
	}
}

func TestUpdateUsesCurrentDispatcher(t *testing.T) {
	first := &inlineDispatcher{}
	prev := component.SetDispatcher(first)
	t.Cleanup(func() { component.SetDispatcher(prev) })

	c := &counter{}
	c.ExtendBaseComponent(c)
	update := c.Update // captured before the dispatcher swap

	second := &inlineDispatcher{}
	component.SetDispatcher(second)

	update()

	if got := first.jobs.Load(); got != 0 {
		t.Errorf("stale dispatcher ran %d jobs, want 0", got)
	}
	if got := second.jobs.Load(); got != 1 {
		t.Errorf("current dispatcher ran %d jobs, want 1", got)
	}
	if got := c.renders.Load(); got != 1 {
		t.Errorf("renders = %d, want 1", got)
	}
}

func TestUpdateOn(t *testing.T) {
	withInlineDispatcher(t)

	c := &counter{}
	c.ExtendBaseComponent(c)
	d := &inlineDispatcher{}
	c.UpdateOn(d)
	if got := d.jobs.Load(); got != 1 {
		t.Errorf("explicit dispatcher ran %d jobs, want 1", got)
	}
	if got := c.renders.Load(); got != 1 {
		t.Errorf("renders = %d, want 1", got)
	}
}

func TestUpdateDebounceCollapsesBursts(t *testing.T) {
	withInlineDispatcher(t)

	c := &counter{}
	c.ExtendBaseComponent(c)

	for i := 0; i < 5; i++ {
		c.UpdateDebounce(40 * time.Millisecond)
		time.Sleep(5 * time.Millisecond)
	}

	deadline := time.Now().Add(2 * time.Second)
	for c.renders.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	// allow a straggler to prove there is none
	time.Sleep(150 * time.Millisecond)

	if got := c.renders.Load(); got != 1 {
		t.Errorf("renders = %d after burst, want 1", got)
	}

	c.UpdateDebounce(10 * time.Millisecond)
	deadline = time.Now().Add(2 * time.Second)
	for c.renders.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := c.renders.Load(); got != 2 {
		t.Errorf("renders = %d after second schedule, want 2", got)
	}
}

func TestDestroyCancelsPendingDebounce(t *testing.T) {
	withInlineDispatcher(t)

	c := &counter{}
	c.ExtendBaseComponent(c)
	c.UpdateDebounce(50 * time.Millisecond)
	c.Destroy()

	time.Sleep(200 * time.Millisecond)
	if got := c.renders.Load(); got != 0 {
		t.Errorf("renders = %d after destroy, want 0", got)
	}
}

func TestDestroyRunsHooksInReverse(t *testing.T) {
	b := newBadge("x")
	var order []string
	b.OnDestroy(func() { order = append(order, "first") })
	b.OnDestroy(func() { order = append(order, "second") })
	cancel := b.OnDestroy(func() { order = append(order, "cancelled") })
	cancel()

	b.Destroy()
	b.Destroy() // second call is a no-op

	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("hook order = %v, want [second first]", order)
	}
	if !b.Destroyed() {
		t.Error("Destroyed() = false after Destroy")
	}
}

func TestOnDestroyAfterDestroyRunsImmediately(t *testing.T) {
	b := newBadge("x")
	b.Destroy()
	ran := false
	b.OnDestroy(func() { ran = true })
	if !ran {
		t.Error("hook registered after Destroy did not run")
	}
}

func TestConstructDeferredSkipsRender(t *testing.T) {
	b := &badge{}
	if err := component.ConstructDeferred(b, map[string]any{"Text": "later"}); err != nil {
		t.Fatalf("ConstructDeferred() failed: %v", err)
	}
	if b.Rendered() {
		t.Error("ConstructDeferred() rendered")
	}
	if err := b.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if b.label.Text != "later" {
		t.Errorf("label text = %q, want %q", b.label.Text, "later")
	}
}
