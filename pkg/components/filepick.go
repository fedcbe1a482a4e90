// Package components collects the concrete components shipped with the kit
// and a few helpers they share.
package components

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	sdialog "github.com/sqweek/dialog"

	"github.com/heavyai/omni-component/pkg/component"
)

// SelectFolder opens the native folder picker off the UI loop and hands the
// chosen path back on it.
func SelectFolder(title string, cb func(dir string)) {
	go func() {
		dir, err := sdialog.Directory().Title(title).Browse()
		if err != nil {
			if err.Error() == "Cancelled" {
				return
			}
			log.Println(err)
			return
		}
		component.Dispatch(func() {
			cb(dir)
		})
	}()
}

// SelectFile opens the native file picker and hands back a reader for the
// chosen file.
func SelectFile(cb func(r fyne.URIReadCloser), desc string, exts ...string) {
	go func() {
		filename, err := sdialog.File().Filter(desc, exts...).Load()
		if err != nil {
			if err.Error() == "Cancelled" {
				return
			}
			fyne.LogError("Error selecting file", err)
			return
		}
		uri := storage.NewFileURI(filename)
		r, err := storage.Reader(uri)
		if err != nil {
			fyne.LogError("Error reading file", err)
			return
		}
		component.Dispatch(func() { cb(r) })
	}()
}

// SaveFile runs the native save dialog and hands back the chosen path.
func SaveFile(cb func(path string), desc string, ext string) {
	go func() {
		filename, err := sdialog.File().Filter(desc, ext).Save()
		if err != nil {
			if err.Error() == "Cancelled" {
				return
			}
			fyne.LogError("Error selecting file", err)
			return
		}
		component.Dispatch(func() {
			cb(filename)
		})
	}()
}
