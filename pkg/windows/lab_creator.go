package windows

import (
	"errors"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	xwidget "fyne.io/x/fyne/widget"

	"github.com/heavyai/omni-component/pkg/components/numericentry"
	"github.com/heavyai/omni-component/pkg/ebus"
	"github.com/heavyai/omni-component/pkg/presets"
)

var _ fyne.Widget = (*ComponentCreator)(nil)

// ComponentCreator is the form behind the Add button. It assembles a
// preset spec from the entries and puts the built component on the board.
type ComponentCreator struct {
	widget.BaseWidget

	lw        *LabWindow
	form      *widget.Form
	entries   *creatorEntries
	container *fyne.Container
}

type creatorEntries struct {
	typ       *widget.Select
	topic     *xwidget.CompletionEntry
	text      *widget.Entry
	unit      *widget.SelectEntry
	precision *numericentry.Widget
	threshold *numericentry.Widget
	capacity  *numericentry.Widget
}

func NewComponentCreator(lw *LabWindow) *ComponentCreator {
	c := &ComponentCreator{
		lw:      lw,
		entries: &creatorEntries{},
	}
	c.ExtendBaseWidget(c)

	c.entries.text = widget.NewEntry()
	c.entries.unit = widget.NewSelectEntry([]string{"rpm", "°C", "%", "A", "V", "ms"})

	c.entries.precision = numericentry.New()
	c.entries.precision.SetText("1")
	c.entries.threshold = numericentry.New()
	c.entries.threshold.SetText("75")
	c.entries.capacity = numericentry.New()
	c.entries.capacity.SetText("120")

	c.newTopicTypeahead()

	c.entries.typ = widget.NewSelect(presets.Types(), func(s string) {
		c.entries.text.Enable()
		c.entries.topic.Enable()
		c.entries.unit.Enable()
		c.entries.precision.Enable()
		c.entries.threshold.Enable()
		c.entries.capacity.Enable()
		switch s {
		case "label":
			c.entries.topic.Disable()
			c.entries.unit.Disable()
			c.entries.precision.Disable()
			c.entries.threshold.Disable()
			c.entries.capacity.Disable()
		case "valuelabel":
			c.entries.text.Disable()
			c.entries.threshold.Disable()
			c.entries.capacity.Disable()
		case "sparkline":
			c.entries.text.Disable()
			c.entries.unit.Disable()
			c.entries.precision.Disable()
			c.entries.threshold.Disable()
		case "statusdot":
			c.entries.unit.Disable()
			c.entries.precision.Disable()
			c.entries.capacity.Disable()
		case "styleeditor":
			c.entries.topic.Disable()
			c.entries.unit.Disable()
			c.entries.precision.Disable()
			c.entries.threshold.Disable()
			c.entries.capacity.Disable()
		}
		c.form.Refresh()
	})

	typ := widget.NewFormItem("Type", c.entries.typ)
	typ.HintText = "Select the component type to add"

	topic := widget.NewFormItem("Topic", c.entries.topic)
	topic.HintText = "Bus topic the component follows"

	text := widget.NewFormItem("Text", c.entries.text)
	text.HintText = "Label text, dot caption or editor target"

	unit := widget.NewFormItem("Unit", c.entries.unit)
	precision := widget.NewFormItem("Precision", c.entries.precision)
	precision.HintText = "Number of decimals to display"

	threshold := widget.NewFormItem("Threshold", c.entries.threshold)
	threshold.HintText = "Value at which the dot lights up"

	capacity := widget.NewFormItem("Capacity", c.entries.capacity)
	capacity.HintText = "Number of samples the trace keeps"

	c.form = widget.NewForm(
		typ,
		topic,
		text,
		unit,
		precision,
		threshold,
		capacity,
	)

	c.container = container.NewBorder(
		nil,
		widget.NewButtonWithIcon("Create", theme.ContentAddIcon(), func() {
			c.onSubmit()
		}),
		nil,
		nil,
		c.form,
	)

	return c
}

// newTopicTypeahead completes topic names from whatever the bus has seen.
func (c *ComponentCreator) newTopicTypeahead() {
	c.entries.topic = xwidget.NewCompletionEntry([]string{})
	c.entries.topic.PlaceHolder = "Search for topic"
	c.entries.topic.OnChanged = func(s string) {
		if len(s) < 2 {
			c.entries.topic.HideCompletion()
			return
		}
		var results []string
		for _, topic := range ebus.Topics() {
			if strings.Contains(strings.ToLower(topic), strings.ToLower(s)) {
				results = append(results, topic)
			}
		}
		if len(results) == 0 {
			c.entries.topic.HideCompletion()
			return
		}
		sort.Strings(results)
		c.entries.topic.SetOptions(results)
		c.entries.topic.ShowCompletion()
	}
}

func (c *ComponentCreator) onSubmit() {
	var spec presets.Spec
	switch c.entries.typ.Selected {
	case "label":
		spec = presets.Spec{Type: "label", Props: map[string]any{
			"Text": c.entries.text.Text,
		}}
	case "valuelabel":
		spec = presets.Spec{Type: "valuelabel", Props: map[string]any{
			"Topic":     c.entries.topic.Text,
			"Unit":      c.entries.unit.Text,
			"Precision": c.entries.precision.Int(1),
		}}
	case "sparkline":
		spec = presets.Spec{Type: "sparkline", Props: map[string]any{
			"Topic":    c.entries.topic.Text,
			"Capacity": c.entries.capacity.Int(120),
		}}
	case "statusdot":
		spec = presets.Spec{Type: "statusdot", Props: map[string]any{
			"Caption":   c.entries.text.Text,
			"Topic":     c.entries.topic.Text,
			"Threshold": c.entries.threshold.Float64(75),
		}}
	case "styleeditor":
		spec = presets.Spec{Type: "styleeditor", Props: map[string]any{
			"Target": c.entries.text.Text,
		}}
	default:
		c.lw.Error(errors.New("select a component type"))
		return
	}
	c.lw.addSpec(spec)
	c.lw.Log("added " + spec.Type)
}

func (c *ComponentCreator) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.container)
}

func (lw *LabWindow) openCreator() {
	d := dialog.NewCustom("Add component", "Close", NewComponentCreator(lw), lw.Window)
	d.Resize(fyne.NewSize(420, 480))
	d.Show()
}
