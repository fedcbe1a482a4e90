package valuelabel_test

import (
	"os"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/heavyai/omni-component/pkg/component"
	"github.com/heavyai/omni-component/pkg/components/valuelabel"
	"github.com/heavyai/omni-component/pkg/ebus"
)

func TestMain(m *testing.M) {
	test.NewApp()
	os.Exit(m.Run())
}

type inlineDispatcher struct{}

func (inlineDispatcher) Do(fn func())        { fn() }
func (inlineDispatcher) DoAndWait(fn func()) { fn() }

func TestFollowsTopic(t *testing.T) {
	prev := component.SetDispatcher(inlineDispatcher{})
	t.Cleanup(func() { component.SetDispatcher(prev) })

	v := valuelabel.New("valuelabel.follow", "rpm", 1)
	t.Cleanup(v.Destroy)
	ebus.Publish("valuelabel.follow", 1234.5)

	deadline := time.Now().Add(2 * time.Second)
	for v.Value() != 1234.5 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := v.Value(); got != 1234.5 {
		t.Fatalf("Value() = %v, want 1234.5", got)
	}
}

func TestDestroyUnsubscribes(t *testing.T) {
	prev := component.SetDispatcher(inlineDispatcher{})
	t.Cleanup(func() { component.SetDispatcher(prev) })

	v := valuelabel.New("valuelabel.destroy", "", 0)
	ebus.Publish("valuelabel.destroy", 1)

	deadline := time.Now().Add(2 * time.Second)
	for v.Value() != 1 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if v.Value() != 1 {
		t.Fatal("first sample never arrived")
	}

	v.Destroy()
	time.Sleep(100 * time.Millisecond) // let the unsubscribe drain

	ebus.Publish("valuelabel.destroy", 2)
	time.Sleep(200 * time.Millisecond)
	if got := v.Value(); got != 1 {
		t.Errorf("Value() = %v after Destroy, want 1", got)
	}
}
