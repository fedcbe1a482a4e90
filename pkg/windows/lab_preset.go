package windows

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/heavyai/omni-component/pkg/components"
	"github.com/heavyai/omni-component/pkg/presets"
)

const selectPreset = "Select preset"

func (lw *LabWindow) createSelects() {
	lw.selects.presetSelect = widget.NewSelect(append([]string{selectPreset}, presets.Names()...), func(s string) {
		if s == selectPreset {
			return
		}
		if err := lw.loadPreset(s); err != nil {
			lw.Error(err)
			return
		}
		lw.app.Preferences().SetString(prefsSelectedPreset, s)
	})
	lw.selects.presetSelect.Alignment = fyne.TextAlignLeading
	lw.selects.presetSelect.PlaceHolder = selectPreset
}

func (lw *LabWindow) reloadPresets() {
	lw.selects.presetSelect.SetOptions(append([]string{selectPreset}, presets.Names()...))
}

func (lw *LabWindow) savePreset() {
	if lw.selects.presetSelect.Selected == selectPreset || lw.selects.presetSelect.Selected == "" {
		lw.newPreset()
		return
	}
	if err := presets.Set(lw.selects.presetSelect.Selected, lw.specs); err != nil {
		lw.Error(err)
		return
	}
	if err := presets.Save(lw.app); err != nil {
		lw.Error(err)
		return
	}
	lw.Log("saved preset " + lw.selects.presetSelect.Selected)
}

func (lw *LabWindow) newPreset() {
	presetName := widget.NewEntry()
	dialog.NewForm("Create new preset         ", "Create", "Cancel", []*widget.FormItem{
		widget.NewFormItem("name", presetName),
	},
		func(create bool) {
			if create {
				if presetName.Text == "" {
					lw.Error(fmt.Errorf("name can't be empty"))
					return
				}
				if err := presets.Set(presetName.Text, lw.specs); err != nil {
					lw.Error(err)
					return
				}
				if err := presets.Save(lw.app); err != nil {
					lw.Error(err)
					return
				}
				lw.reloadPresets()
				lw.selects.presetSelect.SetSelected(presetName.Text)
			}
		},
		lw,
	).Show()
	lw.Window.Canvas().Focus(presetName)
}

func (lw *LabWindow) importPreset() {
	components.SelectFile(func(r fyne.URIReadCloser) {
		defer r.Close()
		b, err := io.ReadAll(r)
		if err != nil {
			lw.Error(err)
			return
		}
		var specs []presets.Spec
		if err := json.Unmarshal(b, &specs); err != nil {
			lw.Error(fmt.Errorf("failed to unmarshal preset file: %w", err))
			return
		}
		name := r.URI().Name()
		name = strings.TrimSuffix(name, filepath.Ext(name))
		if err := presets.Set(name, specs); err != nil {
			lw.Error(err)
			return
		}
		if err := presets.Save(lw.app); err != nil {
			lw.Error(err)
			return
		}
		lw.reloadPresets()
		lw.selects.presetSelect.SetSelected(name)
	}, "Preset file", "ocp", "json")
}

func (lw *LabWindow) exportPreset() {
	if len(lw.specs) == 0 {
		dialog.ShowInformation("Nothing to export", "The board is empty", lw)
		return
	}
	b, err := json.Marshal(lw.specs)
	if err != nil {
		lw.Error(fmt.Errorf("failed to marshal preset: %w", err))
		return
	}
	components.SaveFile(func(path string) {
		if !strings.HasSuffix(path, ".ocp") {
			path += ".ocp"
		}
		if err := os.WriteFile(path, b, 0644); err != nil {
			lw.Error(fmt.Errorf("failed to write preset file: %w", err))
			return
		}
		lw.Log("exported preset to " + path)
	}, "Preset file", "ocp")
}

func (lw *LabWindow) deletePreset() {
	if lw.selects.presetSelect.Selected == selectPreset || lw.selects.presetSelect.Selected == "" {
		dialog.ShowInformation("No preset selected", "Select a preset to delete", lw)
		return
	}

	dialog.ShowConfirm("Confirm preset delete", "Delete preset '"+lw.selects.presetSelect.Selected+"', are you sure?", func(b bool) {
		if b {
			if err := presets.Delete(lw.selects.presetSelect.Selected); err != nil {
				lw.Error(err)
				return
			}
			if err := presets.Save(lw.app); err != nil {
				lw.Error(err)
				return
			}
			lw.reloadPresets()
			lw.selects.presetSelect.SetSelected(selectPreset)
		}
	}, lw)
}
