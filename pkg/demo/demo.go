// Package demo publishes synthetic telemetry so the lab has live data
// without anything real attached.
package demo

import (
	"context"
	"errors"
	"log"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heavyai/omni-component/pkg/ebus"
)

// Topics the feeder publishes on.
const (
	TopicRPM       = "demo.rpm"
	TopicRPMSmooth = "demo.rpm.smooth"
	TopicLoad      = "demo.load"
	TopicTemp      = "demo.temp"
	TopicAmps      = "demo.amps"
)

type Feeder struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Start launches the feeder goroutines. Call Close to stop them.
func Start() *Feeder {
	ctx, cancel := context.WithCancel(context.Background())
	f := &Feeder{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	ebus.RegisterAggregator(ebus.SmoothAggregator(TopicRPM, TopicRPMSmooth, 0.2))
	go f.run(ctx)
	return f
}

// Close stops the feeder and waits for the goroutines to exit.
func (f *Feeder) Close() {
	f.cancel()
	<-f.done
}

func (f *Feeder) run(ctx context.Context) {
	defer close(f.done)
	errg, gctx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		t := time.NewTicker(50 * time.Millisecond)
		defer t.Stop()
		var phase float64
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				phase += 0.04
				rpm := 900 + (math.Sin(phase)+1)*0.5*5300
				ebus.Publish(TopicRPM, math.Round(rpm))
			}
		}
	})

	errg.Go(func() error {
		t := time.NewTicker(100 * time.Millisecond)
		defer t.Stop()
		var x float64
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				x += 1.5
				ebus.Publish(TopicLoad, math.Mod(x, 100))
			}
		}
	})

	errg.Go(func() error {
		t := time.NewTicker(250 * time.Millisecond)
		defer t.Stop()
		temp := 21.0
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				// creep toward operating temperature with a little jitter
				temp += (92 - temp) * 0.02
				ebus.Publish(TopicTemp, math.Round((temp+rand.Float64()-0.5)*10)/10)
			}
		}
	})

	errg.Go(func() error {
		t := time.NewTicker(150 * time.Millisecond)
		defer t.Stop()
		amps := 12.0
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				amps += rand.Float64()*2 - 1
				if amps < 0 {
					amps = 0
				}
				if amps > 30 {
					amps = 30
				}
				ebus.Publish(TopicAmps, math.Round(amps*100)/100)
			}
		}
	})

	if err := errg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Println("demo feeder:", err)
	}
}
