// Package sparkline draws a rolling trace of a bus topic into a small
// bitmap. The line color defaults to a stable per topic color so traces
// stay tellable apart without configuration.
package sparkline

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2/canvas"

	"github.com/heavyai/omni-component/pkg/colors"
	"github.com/heavyai/omni-component/pkg/component"
	"github.com/heavyai/omni-component/pkg/ebus"
)

const (
	defaultCapacity = 120
	defaultWidth    = 240
	defaultHeight   = 60

	repaintDelay = 150 * time.Millisecond
)

type Sparkline struct {
	component.Component
	Topic    string
	Capacity int
	Color    color.RGBA

	mu   sync.Mutex
	data []float64

	img *canvas.Image
}

func New(topic string) *Sparkline {
	s := &Sparkline{Topic: topic}
	s.ExtendBaseComponent(s)
	s.Render()
	return s
}

func (s *Sparkline) Render() error {
	root := s.Root(component.ZStack, component.RootConfig{})
	if s.img == nil {
		if s.Capacity <= 0 {
			s.Capacity = defaultCapacity
		}
		if s.Color == (color.RGBA{}) {
			s.Color = colors.ForTopic(s.Topic)
		}
		s.img = canvas.NewImageFromImage(s.plot())
		s.img.FillMode = canvas.ImageFillOriginal
		s.img.ScaleMode = canvas.ImageScaleFastest
		if s.Topic != "" {
			s.OnDestroy(ebus.SubscribeFunc(s.Topic, s.onSample))
		}
	} else {
		s.img.Image = s.plot()
		s.img.Refresh()
	}
	root.Add(s.img)
	return nil
}

// Push appends a sample directly, for traces not bound to a topic.
func (s *Sparkline) Push(v float64) {
	s.onSample(v)
}

// Values returns a copy of the buffered samples, oldest first.
func (s *Sparkline) Values() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]float64(nil), s.data...)
}

func (s *Sparkline) onSample(v float64) {
	s.mu.Lock()
	s.data = append(s.data, v)
	if limit := s.Capacity; limit > 0 && len(s.data) > limit {
		s.data = s.data[len(s.data)-limit:]
	}
	s.mu.Unlock()
	s.UpdateDebounce(repaintDelay)
}

func (s *Sparkline) size() (int, int) {
	w, h := int(s.Width), int(s.Height)
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (s *Sparkline) plot() image.Image {
	w, h := s.size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	data := s.Values()
	if len(data) < 2 {
		return img
	}

	lo, hi := minMax(data)
	span := hi - lo
	if span == 0 {
		span = 1
	}
	hh := h - 1
	heightFactor := float64(hh) / span
	widthFactor := float64(w-1) / float64(len(data)-1)

	for x := 1; x < len(data); x++ {
		x0 := int(float64(x-1) * widthFactor)
		y0 := hh - int((data[x-1]-lo)*heightFactor)
		x1 := int(float64(x) * widthFactor)
		y1 := hh - int((data[x]-lo)*heightFactor)
		line(img, x0, y0, x1, y1, s.Color)
	}

	drawString(img, 2, 11, fmt.Sprintf("%.1f", hi), labelColor)
	drawString(img, 2, h-3, fmt.Sprintf("%.1f", lo), labelColor)
	last := data[len(data)-1]
	lastText := fmt.Sprintf("%.1f", last)
	drawString(img, w-2-len(lastText)*7, h-3, lastText, colors.Gradient(lo, hi, last, colors.PaletteNormal))
	return img
}

func minMax(data []float64) (float64, float64) {
	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
