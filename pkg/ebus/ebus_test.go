package ebus_test

import (
	"testing"
	"time"

	"github.com/heavyai/omni-component/pkg/ebus"
)

func TestPublish(t *testing.T) {
	tests := []struct {
		name string // description of this test case
		// Named input parameters for target function.
		topic   string
		value   float64
		wantErr bool
	}{
		{
			name:  "accepts a sample",
			topic: "publish.accepts",
			value: 1.23,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr := ebus.Publish(tt.topic, tt.value)
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("Publish() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("Publish() succeeded unexpectedly")
			}
		})
	}
}

func TestSubscribe(t *testing.T) {
	ch := ebus.Subscribe("subscribe.basic")
	if ch == nil {
		t.Fatal("Subscribe() returned nil channel")
	}
	ebus.Publish("subscribe.basic", 3.14)
	select {
	case v := <-ch:
		if v != 3.14 {
			t.Errorf("Subscribe() got %v, want 3.14", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Subscribe() timed out waiting for sample")
	}
	ebus.Unsubscribe(ch)
}

func TestSubscribeReplaysLastValue(t *testing.T) {
	ebus.Publish("subscribe.replay", 42)
	waitForLast(t, "subscribe.replay", 42)

	ch := ebus.Subscribe("subscribe.replay")
	defer ebus.Unsubscribe(ch)
	select {
	case v := <-ch:
		if v != 42 {
			t.Errorf("replayed %v, want 42", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no replay of cached value")
	}
}

func TestSubscribeFunc(t *testing.T) {
	got := make(chan float64, 1)
	unsub := ebus.SubscribeFunc("subscribefunc.basic", func(v float64) {
		select {
		case got <- v:
		default:
		}
	})
	defer unsub()

	ebus.Publish("subscribefunc.basic", 2.5)
	select {
	case v := <-got:
		if v != 2.5 {
			t.Errorf("SubscribeFunc() got %v, want 2.5", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("SubscribeFunc() timed out")
	}
}

func TestDuplicateValuesDropped(t *testing.T) {
	ch := ebus.Subscribe("dup.filter")
	defer ebus.Unsubscribe(ch)

	ebus.Publish("dup.filter", 7)
	ebus.Publish("dup.filter", 7)
	ebus.Publish("dup.filter", 8)

	var got []float64
	deadline := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case v := <-ch:
			got = append(got, v)
		case <-deadline:
			t.Fatalf("got %v before timeout, want [7 8]", got)
		}
	}
	if got[0] != 7 || got[1] != 8 {
		t.Errorf("got %v, want [7 8]", got)
	}
	select {
	case v := <-ch:
		t.Errorf("unexpected extra sample %v", v)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLast(t *testing.T) {
	if _, ok := ebus.Last("last.unknown"); ok {
		t.Error("Last() reported a value for an unseen topic")
	}
	ebus.Publish("last.known", 9.5)
	waitForLast(t, "last.known", 9.5)
}

func TestDeltaAggregator(t *testing.T) {
	ebus.RegisterAggregator(ebus.DeltaAggregator("delta.a", "delta.b", "delta.out"))

	ch := ebus.Subscribe("delta.out")
	defer ebus.Unsubscribe(ch)

	ebus.Publish("delta.a", 10)
	ebus.Publish("delta.b", 4)

	select {
	case v := <-ch:
		if v != -6 {
			t.Errorf("delta = %v, want -6", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no derived sample")
	}
}

func TestSmoothAggregator(t *testing.T) {
	ebus.RegisterAggregator(ebus.SmoothAggregator("smooth.in", "smooth.out", 0.5))

	ch := ebus.Subscribe("smooth.out")
	defer ebus.Unsubscribe(ch)

	ebus.Publish("smooth.in", 10)
	select {
	case v := <-ch:
		if v != 10 {
			t.Errorf("first smoothed sample = %v, want 10", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no smoothed sample")
	}

	ebus.Publish("smooth.in", 20)
	select {
	case v := <-ch:
		if v != 15 {
			t.Errorf("second smoothed sample = %v, want 15", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no smoothed sample")
	}
}

func waitForLast(t *testing.T, topic string, want float64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if v, ok := ebus.Last(topic); ok && v == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Last(%q) never reached %v", topic, want)
}
