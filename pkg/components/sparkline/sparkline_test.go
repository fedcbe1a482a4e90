package sparkline_test

import (
	"os"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/heavyai/omni-component/pkg/component"
	"github.com/heavyai/omni-component/pkg/components/sparkline"
)

func TestMain(m *testing.M) {
	test.NewApp()
	os.Exit(m.Run())
}

type inlineDispatcher struct{}

func (inlineDispatcher) Do(fn func())        { fn() }
func (inlineDispatcher) DoAndWait(fn func()) { fn() }

func TestPushKeepsCapacity(t *testing.T) {
	prev := component.SetDispatcher(inlineDispatcher{})
	t.Cleanup(func() { component.SetDispatcher(prev) })

	s := &sparkline.Sparkline{Capacity: 10}
	if err := component.Construct(s, nil); err != nil {
		t.Fatalf("Construct() failed: %v", err)
	}
	t.Cleanup(s.Destroy)
	for i := 0; i < 25; i++ {
		s.Push(float64(i))
	}
	got := s.Values()
	if len(got) != 10 {
		t.Fatalf("len(Values()) = %d, want 10", len(got))
	}
	if got[0] != 15 || got[9] != 24 {
		t.Errorf("Values() window = [%v..%v], want [15..24]", got[0], got[9])
	}
}

func TestRenderBuildsImage(t *testing.T) {
	prev := component.SetDispatcher(inlineDispatcher{})
	t.Cleanup(func() { component.SetDispatcher(prev) })

	s := sparkline.New("")
	t.Cleanup(s.Destroy)
	s.Push(1)
	s.Push(5)
	s.Push(3)
	if err := s.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if s.CanvasObject() == nil {
		t.Fatal("CanvasObject() = nil after render")
	}
	if got := len(s.Values()); got != 3 {
		t.Errorf("len(Values()) = %d, want 3", got)
	}
}
