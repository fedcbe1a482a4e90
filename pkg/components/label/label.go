package label

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/heavyai/omni-component/pkg/component"
)

// Label is the smallest useful component, a single line of text.
type Label struct {
	component.Component
	Text string
	Bold bool
	Wrap bool

	label *widget.Label
}

func New(text string) *Label {
	l := &Label{Text: text}
	l.ExtendBaseComponent(l)
	l.Render()
	return l
}

func (l *Label) Render() error {
	root := l.Root(component.VStack, component.RootConfig{})
	if l.label == nil {
		l.label = widget.NewLabel(l.Text)
	}
	l.label.TextStyle = fyne.TextStyle{Bold: l.Bold}
	if l.Wrap {
		l.label.Wrapping = fyne.TextWrapWord
	} else {
		l.label.Wrapping = fyne.TextWrapOff
	}
	l.label.SetText(l.Text)
	root.Add(l.label)
	return nil
}

// SetText updates the text and schedules a repaint.
func (l *Label) SetText(text string) {
	l.Text = text
	l.Update()
}
