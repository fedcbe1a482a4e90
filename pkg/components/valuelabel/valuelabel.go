// Package valuelabel renders the live value of a bus topic as formatted
// text. Samples arrive on the bus goroutine and repaints are debounced, a
// fast topic settles into a readable refresh rate instead of redrawing per
// sample.
package valuelabel

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/heavyai/omni-component/pkg/component"
	"github.com/heavyai/omni-component/pkg/ebus"
)

const repaintDelay = 100 * time.Millisecond

type ValueLabel struct {
	component.Component
	Topic     string
	Unit      string
	Precision int

	bits  atomic.Uint64
	title *widget.Label
	value *widget.Label
}

func New(topic, unit string, precision int) *ValueLabel {
	v := &ValueLabel{Topic: topic, Unit: unit, Precision: precision}
	v.ExtendBaseComponent(v)
	v.Render()
	return v
}

func (v *ValueLabel) Render() error {
	root := v.Root(component.HStack, component.RootConfig{})
	if v.value == nil {
		v.title = widget.NewLabel(v.Topic)
		v.value = widget.NewLabel("")
		v.value.TextStyle = fyne.TextStyle{Monospace: true}
		if v.Topic != "" {
			v.OnDestroy(ebus.SubscribeFunc(v.Topic, v.onSample))
		}
	}
	v.title.SetText(v.Topic)
	v.value.SetText(v.format())
	root.Add(v.title, v.value)
	return nil
}

// Value returns the last sample seen.
func (v *ValueLabel) Value() float64 {
	return math.Float64frombits(v.bits.Load())
}

func (v *ValueLabel) onSample(val float64) {
	v.bits.Store(math.Float64bits(val))
	v.UpdateDebounce(repaintDelay)
}

func (v *ValueLabel) format() string {
	if v.Unit != "" {
		return fmt.Sprintf("%.*f %s", v.Precision, v.Value(), v.Unit)
	}
	return fmt.Sprintf("%.*f", v.Precision, v.Value())
}
