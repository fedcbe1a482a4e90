package component

import (
	"sync"

	"fyne.io/fyne/v2"
)

// Dispatcher hands work to the host application's UI loop. Do queues fn to run
// on the next loop turn and returns immediately, DoAndWait blocks until fn has
// run. The default dispatcher forwards to fyne.Do and fyne.DoAndWait.
type Dispatcher interface {
	Do(fn func())
	DoAndWait(fn func())
}

type fyneDispatcher struct{}

func (fyneDispatcher) Do(fn func())        { fyne.Do(fn) }
func (fyneDispatcher) DoAndWait(fn func()) { fyne.DoAndWait(fn) }

var (
	dispatchMu sync.RWMutex
	dispatcher Dispatcher = fyneDispatcher{}
)

// SetDispatcher replaces the UI loop dispatcher and returns the previous one
// so callers can restore it. Tests install a synchronous dispatcher here;
// everything else should leave the default alone.
func SetDispatcher(d Dispatcher) Dispatcher {
	dispatchMu.Lock()
	defer dispatchMu.Unlock()
	prev := dispatcher
	if d == nil {
		dispatcher = fyneDispatcher{}
	} else {
		dispatcher = d
	}
	return prev
}

// CurrentDispatcher returns the active dispatcher. Resolve it at every call
// site, a handle kept across calls goes stale when the dispatcher is swapped.
func CurrentDispatcher() Dispatcher {
	dispatchMu.RLock()
	defer dispatchMu.RUnlock()
	return dispatcher
}

// Dispatch queues fn on the current UI loop.
func Dispatch(fn func()) {
	CurrentDispatcher().Do(fn)
}
