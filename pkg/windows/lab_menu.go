package windows

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/skratchdot/open-golang/open"

	"github.com/heavyai/omni-component/pkg/assets"
	"github.com/heavyai/omni-component/pkg/capture"
	"github.com/heavyai/omni-component/pkg/components"
	"github.com/heavyai/omni-component/pkg/sound"
	"github.com/heavyai/omni-component/pkg/stylewatch"
	"github.com/heavyai/omni-component/pkg/update"
)

func (lw *LabWindow) setupMenu() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("About", lw.showAbout),
		fyne.NewMenuItem("Import preset", lw.importPreset),
		fyne.NewMenuItem("Export preset", lw.exportPreset),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open capture folder", func() {
			dir, err := os.Getwd()
			if err != nil {
				lw.Error(err)
				return
			}
			if err := open.Run(dir); err != nil {
				lw.Error(fmt.Errorf("failed to open capture folder: %w", err))
			}
		}),
	)

	styleMenu := fyne.NewMenu("Style",
		fyne.NewMenuItem("Load stylesheet", lw.loadStylesheet),
		fyne.NewMenuItem("Watch stylesheet", lw.watchStylesheet),
		fyne.NewMenuItem("Stop watching", lw.stopWatching),
	)

	labMenu := fyne.NewMenu("Lab",
		fyne.NewMenuItem("Screenshot", lw.screenshot),
		fyne.NewMenuItem("Copy canvas", lw.copyCanvas),
		fyne.NewMenuItem("Sound check", func() {
			if err := sound.Notify(); err != nil {
				lw.Error(err)
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Check for updates", func() {
			go update.UpdateCheck(lw.app, lw.Window)
		}),
		fyne.NewMenuItem("Project page", func() {
			if err := open.Run(update.ProjectPage); err != nil {
				lw.Error(err)
			}
		}),
		fyne.NewMenuItem("What's new", lw.showWhatsNew),
	)

	lw.SetMainMenu(fyne.NewMainMenu(fileMenu, styleMenu, labMenu))
}

func (lw *LabWindow) showAbout() {
	logo := canvas.NewImageFromResource(fyne.NewStaticResource("logo.svg", assets.LogoBytes))
	logo.FillMode = canvas.ImageFillContain
	logo.SetMinSize(fyne.NewSize(96, 96))
	version := widget.NewLabel("omni component kit v" + lw.app.Metadata().Version)
	version.Alignment = fyne.TextAlignCenter
	dialog.ShowCustom("About", "Close", container.NewVBox(logo, version), lw.Window)
}

func (lw *LabWindow) loadStylesheet() {
	components.SelectFile(func(r fyne.URIReadCloser) {
		path := r.URI().Path()
		r.Close()
		if err := stylewatch.LoadFile(path); err != nil {
			lw.Error(err)
			return
		}
		lw.refreshBoard()
		lw.Log("loaded stylesheet " + path)
	}, "Stylesheet", "json")
}

func (lw *LabWindow) watchStylesheet() {
	components.SelectFile(func(r fyne.URIReadCloser) {
		path := r.URI().Path()
		r.Close()
		lw.stopWatching()
		stop, err := stylewatch.Watch(path, func() {
			lw.refreshBoard()
			lw.Log("stylesheet reloaded")
		})
		if err != nil {
			lw.Error(err)
			return
		}
		lw.stopWatch = stop
		lw.refreshBoard()
		lw.Log("watching " + path)
	}, "Stylesheet", "json")
}

func (lw *LabWindow) stopWatching() {
	if lw.stopWatch == nil {
		return
	}
	if err := lw.stopWatch(); err != nil {
		lw.Error(err)
	}
	lw.stopWatch = nil
	lw.Log("stopped watching stylesheet")
}

func (lw *LabWindow) screenshot() {
	filename, err := capture.Screenshot(lw.Canvas())
	if err != nil {
		lw.Error(err)
		return
	}
	lw.Log("saved " + filename)
}

func (lw *LabWindow) copyCanvas() {
	if err := capture.ToClipboard(lw.Canvas()); err != nil {
		lw.Error(err)
		return
	}
	lw.Log("canvas copied to clipboard")
}
