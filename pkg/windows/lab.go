// Package windows holds the component lab, the demo application showing
// the kit's components wired to live data.
package windows

import (
	"fmt"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/heavyai/omni-component/pkg/component"
	"github.com/heavyai/omni-component/pkg/components/label"
	"github.com/heavyai/omni-component/pkg/components/sparkline"
	"github.com/heavyai/omni-component/pkg/components/statusdot"
	"github.com/heavyai/omni-component/pkg/components/styleeditor"
	"github.com/heavyai/omni-component/pkg/components/valuelabel"
	"github.com/heavyai/omni-component/pkg/debug"
	"github.com/heavyai/omni-component/pkg/demo"
	"github.com/heavyai/omni-component/pkg/ebus"
	"github.com/heavyai/omni-component/pkg/presets"
	"github.com/heavyai/omni-component/pkg/style"
)

const (
	prefsSelectedPreset = "selectedPreset"
)

type LabWindow struct {
	fyne.Window
	app fyne.App

	selects *labSelects
	buttons *labButtons

	editor *styleeditor.Editor
	board  *component.Root

	// objects and specs stay parallel, the board is always rebuildable
	// from specs alone.
	objects []component.Object
	specs   []presets.Spec

	feeder    *demo.Feeder
	stopWatch func() error

	statusText   *widget.Label
	counterLabel *widget.Label
	msgCount     atomic.Int64

	content *fyne.Container
	quit    chan struct{}
}

type labSelects struct {
	presetSelect *widget.Select
}

type labButtons struct {
	saveBtn   *widget.Button
	newBtn    *widget.Button
	exportBtn *widget.Button
	importBtn *widget.Button
	deleteBtn *widget.Button
	addBtn    *widget.Button
	clearBtn  *widget.Button
	editorBtn *widget.Button
}

func registerComponents() {
	presets.RegisterType("label", func() component.Object { return &label.Label{} })
	presets.RegisterType("valuelabel", func() component.Object { return &valuelabel.ValueLabel{} })
	presets.RegisterType("sparkline", func() component.Object { return &sparkline.Sparkline{} })
	presets.RegisterType("statusdot", func() component.Object { return &statusdot.StatusDot{} })
	presets.RegisterType("styleeditor", func() component.Object { return &styleeditor.Editor{} })
}

func NewLabWindow(app fyne.App) *LabWindow {
	lw := &LabWindow{
		Window:       app.NewWindow("omni component lab"),
		app:          app,
		selects:      &labSelects{},
		buttons:      &labButtons{},
		statusText:   widget.NewLabel("ready"),
		counterLabel: widget.NewLabel(""),
		quit:         make(chan struct{}),
	}

	registerComponents()
	if err := presets.Load(app); err != nil {
		lw.Error(err)
	}

	lw.board = component.Grid(2)(component.RootConfig{Padding: 4})

	lw.editor = styleeditor.New("Label", func(name string, _ *style.Style) {
		lw.Log("applied style " + name)
		lw.refreshBoard()
	})

	lw.feeder = demo.Start()

	lw.setupMenu()
	lw.createButtons()
	lw.createSelects()
	lw.startCounters()

	lw.render()

	lw.SetCloseIntercept(lw.closeIntercept)
	lw.SetPadded(true)
	lw.SetContent(lw.content)
	lw.Resize(fyne.NewSize(1000, 700))
	lw.CenterOnScreen()
	lw.SetMaster()

	lw.whatsNew()

	ctrlS := &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl}
	lw.Window.Canvas().AddShortcut(ctrlS, func(fyne.Shortcut) {
		lw.savePreset()
	})

	lw.selects.presetSelect.SetSelected(app.Preferences().StringWithFallback(prefsSelectedPreset, "Demo Dash"))

	return lw
}

func (lw *LabWindow) render() {
	lw.content = container.NewBorder(
		container.NewHBox(
			container.NewBorder(
				nil,
				nil,
				widget.NewLabel("Preset"),
				nil,
				lw.selects.presetSelect,
			),
			lw.buttons.saveBtn,
			lw.buttons.newBtn,
			lw.buttons.exportBtn,
			lw.buttons.importBtn,
			lw.buttons.deleteBtn,
			widget.NewSeparator(),
			lw.buttons.addBtn,
			lw.buttons.clearBtn,
			lw.buttons.editorBtn,
		),
		container.NewBorder(
			nil,
			nil,
			nil,
			lw.counterLabel,
			lw.statusText,
		),
		nil,
		container.NewVScroll(lw.editor.CanvasObject()),
		container.NewVScroll(lw.board),
	)
}

func (lw *LabWindow) Log(s string) {
	debug.Log(s)
	lw.statusText.SetText(s)
}

func (lw *LabWindow) Error(err error) {
	debug.Log("error:" + err.Error())
	lw.statusText.SetText(err.Error())
	dialog.ShowError(err, lw.Window)
}

// setBoard replaces the board content, destroying whatever was on it.
func (lw *LabWindow) setBoard(specs []presets.Spec, objs []component.Object) {
	for _, o := range lw.objects {
		o.Destroy()
	}
	lw.board.Clear()
	lw.specs = specs
	lw.objects = objs
	for _, o := range objs {
		lw.board.Add(o.CanvasObject())
	}
}

func (lw *LabWindow) loadPreset(name string) error {
	objs, err := presets.Build(name)
	if err != nil {
		return err
	}
	specs, err := presets.Get(name)
	if err != nil {
		return err
	}
	lw.setBoard(specs, objs)
	lw.Log("loaded preset " + name)
	return nil
}

// addSpec constructs one component and appends it to the board.
func (lw *LabWindow) addSpec(spec presets.Spec) {
	obj, err := presets.New(spec)
	if err != nil {
		lw.Error(err)
		return
	}
	lw.specs = append(lw.specs, spec)
	lw.objects = append(lw.objects, obj)
	lw.board.Add(obj.CanvasObject())
}

// refreshBoard re-renders every component so style changes take.
func (lw *LabWindow) refreshBoard() {
	for _, o := range lw.objects {
		if err := o.Render(); err != nil {
			lw.Error(err)
			return
		}
	}
}

func (lw *LabWindow) createButtons() {
	lw.buttons.saveBtn = widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), lw.savePreset)
	lw.buttons.newBtn = widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), lw.newPreset)
	lw.buttons.exportBtn = widget.NewButtonWithIcon("", theme.UploadIcon(), lw.exportPreset)
	lw.buttons.importBtn = widget.NewButtonWithIcon("", theme.DownloadIcon(), lw.importPreset)
	lw.buttons.deleteBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), lw.deletePreset)
	lw.buttons.addBtn = widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), lw.openCreator)
	lw.buttons.clearBtn = widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		lw.setBoard(nil, nil)
	})
	lw.buttons.editorBtn = widget.NewButton("Styles", lw.toggleEditor)
}

func (lw *LabWindow) toggleEditor() {
	if err := lw.editor.SetVisible(!lw.editor.Visible()); err != nil {
		lw.Error(err)
	}
}

// startCounters feeds the message rate label once a second from a bus
// wide subscription.
func (lw *LabWindow) startCounters() {
	unsub := ebus.SubscribeAllFunc(func(string, float64) {
		lw.msgCount.Add(1)
	})
	go func() {
		defer unsub()
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-lw.quit:
				return
			case <-t.C:
				n := lw.msgCount.Swap(0)
				topics := len(ebus.Topics())
				component.Dispatch(func() {
					lw.counterLabel.SetText(fmt.Sprintf("%d msg/s, %d topics", n, topics))
				})
			}
		}
	}()
}

func (lw *LabWindow) closeIntercept() {
	close(lw.quit)
	lw.feeder.Close()
	if lw.stopWatch != nil {
		if err := lw.stopWatch(); err != nil {
			debug.Log("error:" + err.Error())
		}
	}
	for _, o := range lw.objects {
		o.Destroy()
	}
	lw.editor.Destroy()
	debug.Close()
	lw.Window.Close()
}
