// Package statusdot shows a small LED style indicator with a caption. Bound
// to a bus topic it turns on when the value reaches a threshold.
package statusdot

import (
	"image/color"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/heavyai/omni-component/pkg/component"
	"github.com/heavyai/omni-component/pkg/ebus"
)

var (
	colorOn  = color.RGBA{0x00, 0xFF, 0x00, 0xFF}
	colorOff = color.RGBA{0x80, 0x80, 0x80, 0xFF}
)

type StatusDot struct {
	component.Component
	Caption   string
	Topic     string
	Threshold float64

	dot   *canvas.Circle
	label *widget.Label
	state atomic.Bool
}

func New(caption, topic string, threshold float64) *StatusDot {
	s := &StatusDot{Caption: caption, Topic: topic, Threshold: threshold}
	s.ExtendBaseComponent(s)
	s.Render()
	return s
}

func (s *StatusDot) Render() error {
	root := s.Root(component.HStack, component.RootConfig{})
	if s.dot == nil {
		s.dot = &canvas.Circle{FillColor: colorOff}
		s.label = widget.NewLabel(s.Caption)
		if s.Topic != "" {
			s.OnDestroy(ebus.SubscribeFunc(s.Topic, s.onSample))
		}
	}
	s.label.SetText(s.Caption)
	root.Add(container.NewGridWrap(fyne.NewSize(14, 14), s.dot), s.label)
	return nil
}

// On and Off drive the dot directly for components not bound to a topic.
func (s *StatusDot) On()  { s.setState(true) }
func (s *StatusDot) Off() { s.setState(false) }

func (s *StatusDot) State() bool { return s.state.Load() }

func (s *StatusDot) onSample(v float64) {
	s.setState(v >= s.Threshold)
}

func (s *StatusDot) setState(state bool) {
	if s.state.Swap(state) == state {
		return
	}
	component.Dispatch(func() {
		if s.dot == nil {
			return
		}
		if state {
			s.dot.FillColor = colorOn
		} else {
			s.dot.FillColor = colorOff
		}
		s.dot.Refresh()
	})
}
