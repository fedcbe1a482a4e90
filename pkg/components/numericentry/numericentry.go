// Package numericentry is an entry that only accepts numeric input.
package numericentry

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

type Widget struct {
	widget.Entry
}

func New() *Widget {
	entry := &Widget{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// Float64 parses the entry, falling back when the text is not a number.
func (e *Widget) Float64(fallback float64) float64 {
	f, err := strconv.ParseFloat(e.Text, 64)
	if err != nil {
		return fallback
	}
	return f
}

// Int parses the entry, falling back when the text is not a whole number.
func (e *Widget) Int(fallback int) int {
	i, err := strconv.Atoi(e.Text)
	if err != nil {
		return fallback
	}
	return i
}

func (e *Widget) TypedRune(r rune) {
	if (r >= '0' && r <= '9') || r == '.' || r == ',' {
		e.Entry.TypedRune(r)
	}
}

func (e *Widget) TypedShortcut(shortcut fyne.Shortcut) {
	paste, ok := shortcut.(*fyne.ShortcutPaste)
	if !ok {
		e.Entry.TypedShortcut(shortcut)
		return
	}

	content := paste.Clipboard.Content()
	if _, err := strconv.ParseFloat(content, 64); err == nil {
		e.Entry.TypedShortcut(shortcut)
	}
}
