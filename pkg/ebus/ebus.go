// Package ebus is the value bus components subscribe to for live data.
// Publishers push named float64 samples, subscribers get per topic or
// firehose channels. The last value of every topic is cached for a minute
// so late subscribers start with the current state instead of waiting for
// the next sample.
package ebus

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Message is a single named sample on the bus.
type Message struct {
	Topic string
	Value float64
}

var (
	// ErrBusFull is returned by Publish when the intake buffer is behind.
	ErrBusFull = errors.New("ebus: publish buffer full")

	subs      = make(map[string][]chan float64)
	subsMutex sync.Mutex

	subsAll      = make([]chan Message, 0)
	subsAllMutex sync.Mutex

	inChan       = make(chan Message, 100)
	unsubChan    = make(chan chan float64, 100)
	unsubAllChan = make(chan chan Message, 100)

	last *ttlcache.Cache[string, float64]

	aggregators     []*Aggregator
	aggregatorsLock sync.Mutex
)

func init() {
	last = ttlcache.New[string, float64](
		ttlcache.WithTTL[string, float64](1 * time.Minute),
	)
	go last.Start()
	go run()
}

func run() {
	for {
		select {
		case msg := <-inChan:
			if v := last.Get(msg.Topic); v != nil && v.Value() == msg.Value {
				continue
			}
			last.Set(msg.Topic, msg.Value, ttlcache.DefaultTTL)

			subsAllMutex.Lock()
			for _, sub := range subsAll {
				select {
				case sub <- msg:
				default:
				}
			}
			subsAllMutex.Unlock()

			subsMutex.Lock()
			for _, sub := range subs[msg.Topic] {
				select {
				case sub <- msg.Value:
				default:
				}
			}
			subsMutex.Unlock()

			aggregatorsLock.Lock()
			aggs := aggregators
			aggregatorsLock.Unlock()
			for _, agg := range aggs {
				agg.fun(msg.Topic, msg.Value)
			}

		case unsub := <-unsubAllChan:
			subsAllMutex.Lock()
			for i, sub := range subsAll {
				if sub == unsub {
					subsAll = append(subsAll[:i], subsAll[i+1:]...)
					close(sub)
					break
				}
			}
			subsAllMutex.Unlock()

		case unsub := <-unsubChan:
			subsMutex.Lock()
		outer:
			for topic, subz := range subs {
				for i, sub := range subz {
					if sub == unsub {
						subs[topic] = append(subz[:i], subz[i+1:]...)
						close(unsub)
						if len(subs[topic]) == 0 {
							delete(subs, topic)
						}
						break outer
					}
				}
			}
			subsMutex.Unlock()
		}
	}
}

// Publish puts a sample on the bus without blocking. Identical consecutive
// values per topic are dropped before fan-out.
func Publish(topic string, value float64) error {
	select {
	case inChan <- Message{Topic: topic, Value: value}:
		return nil
	default:
		return ErrBusFull
	}
}

// Last returns the cached value for topic, if a sample arrived within the
// cache window.
func Last(topic string) (float64, bool) {
	if itm := last.Get(topic); itm != nil {
		return itm.Value(), true
	}
	return 0, false
}

// Topics lists every topic with a live cache entry, for pickers and
// completion.
func Topics() []string {
	return last.Keys()
}

// SubscribeAll returns a channel that sees every message. The cached state
// is replayed onto it first.
func SubscribeAll() chan Message {
	respChan := make(chan Message, 100)
	subsAllMutex.Lock()
	subsAll = append(subsAll, respChan)
	subsAllMutex.Unlock()

	last.Range(func(item *ttlcache.Item[string, float64]) bool {
		respChan <- Message{Topic: item.Key(), Value: item.Value()}
		return true
	})
	return respChan
}

// SubscribeAllFunc runs f for every message until the returned unsubscribe
// is called.
func SubscribeAllFunc(f func(topic string, value float64)) func() {
	respChan := SubscribeAll()
	go func() {
		for v := range respChan {
			f(v.Topic, v.Value)
		}
	}()
	return func() {
		UnsubscribeAll(respChan)
	}
}

func UnsubscribeAll(channel chan Message) {
	unsubAllChan <- channel
}

// Subscribe returns a channel fed with samples for one topic, seeded with
// the cached value when there is one.
func Subscribe(topic string) chan float64 {
	log.Println("Subscribe", topic)
	respChan := make(chan float64, 100)
	subsMutex.Lock()
	subs[topic] = append(subs[topic], respChan)
	subsMutex.Unlock()
	if itm := last.Get(topic); itm != nil {
		respChan <- itm.Value()
	}
	return respChan
}

// SubscribeFunc runs f for every sample on topic until the returned
// unsubscribe is called. Components pair this with OnDestroy.
func SubscribeFunc(topic string, f func(float64)) func() {
	respChan := Subscribe(topic)
	go func() {
		for v := range respChan {
			f(v)
		}
	}()
	return func() {
		Unsubscribe(respChan)
	}
}

func Unsubscribe(channel chan float64) {
	unsubChan <- channel
}
