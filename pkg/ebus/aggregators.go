package ebus

// AggregatorFunc sees every message that clears the duplicate filter.
type AggregatorFunc func(topic string, value float64)

// Aggregator derives new topics from existing ones. Registered aggregators
// run on the bus goroutine, so they must not block.
type Aggregator struct {
	fun AggregatorFunc
}

// NewAggregator wraps f for registration.
func NewAggregator(f AggregatorFunc) *Aggregator {
	return &Aggregator{fun: f}
}

// RegisterAggregator adds aggregators to the bus, skipping ones already
// registered.
func RegisterAggregator(aggs ...*Aggregator) {
	aggregatorsLock.Lock()
	defer aggregatorsLock.Unlock()
outer:
	for _, agg := range aggs {
		if agg == nil {
			continue
		}
		for _, existing := range aggregators {
			if existing == agg {
				continue outer
			}
		}
		aggregators = append(aggregators, agg)
	}
}

// DeltaAggregator publishes b-a on out each time both inputs have produced
// a fresh sample.
func DeltaAggregator(a, b, out string) *Aggregator {
	var aSeen, bSeen bool
	var aVal, bVal float64
	return &Aggregator{
		fun: func(topic string, value float64) {
			if topic == a {
				aVal = value
				aSeen = true
			}
			if topic == b {
				bVal = value
				bSeen = true
			}
			if aSeen && bSeen {
				Publish(out, bVal-aVal)
				aSeen, bSeen = false, false
			}
		},
	}
}

// SmoothAggregator publishes an exponentially weighted average of in on
// out. The factor is clamped to (0,1], 1 passes values through unchanged.
func SmoothAggregator(in, out string, factor float64) *Aggregator {
	if factor <= 0 || factor > 1 {
		factor = 0.5
	}
	var primed bool
	var acc float64
	return &Aggregator{
		fun: func(topic string, value float64) {
			if topic != in {
				return
			}
			if !primed {
				acc = value
				primed = true
			} else {
				acc += factor * (value - acc)
			}
			Publish(out, acc)
		},
	}
}
