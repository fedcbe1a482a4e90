package demo

import (
	"testing"
	"time"

	"github.com/heavyai/omni-component/pkg/ebus"
)

func TestFeederPublishes(t *testing.T) {
	f := Start()
	defer f.Close()

	deadline := time.Now().Add(2 * time.Second)
	for _, topic := range []string{TopicRPM, TopicLoad, TopicAmps} {
		for {
			if _, ok := ebus.Last(topic); ok {
				break
			}
			if time.Now().After(deadline) {
				t.Fatalf("no value on %s before deadline", topic)
			}
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func TestFeederCloseStops(t *testing.T) {
	f := Start()
	done := make(chan struct{})
	go func() {
		f.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}
}
