package windows

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/heavyai/omni-component/pkg/assets"
)

const lastVersionKey = "lastVersion"

// whatsNew pops the release notes once per version bump.
func (lw *LabWindow) whatsNew() {
	lastVersion := lw.app.Preferences().String(lastVersionKey)
	if lastVersion != lw.app.Metadata().Version {
		lw.showWhatsNew()
	}
	lw.app.Preferences().SetString(lastVersionKey, lw.app.Metadata().Version)
}

func (lw *LabWindow) showWhatsNew() {
	md := widget.NewRichTextFromMarkdown(assets.WhatsNew)
	md.Wrapping = fyne.TextWrapWord
	scroll := container.NewVScroll(md)
	scroll.SetMinSize(fyne.NewSize(560, 360))
	dialog.ShowCustom("What's new", "Close", scroll, lw.Window)
}
