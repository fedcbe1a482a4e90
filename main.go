package main

import (
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/heavyai/omni-component/pkg/component"
	"github.com/heavyai/omni-component/pkg/stylewatch"
	ktheme "github.com/heavyai/omni-component/pkg/theme"
	"github.com/heavyai/omni-component/pkg/update"
	"github.com/heavyai/omni-component/pkg/windows"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	a := app.NewWithID("com.heavyai.omnicomponent")
	a.Settings().SetTheme(&ktheme.KitTheme{})

	// a stylesheet on the command line is loaded before anything renders
	if len(os.Args) > 1 {
		filename := os.Args[1]
		if strings.HasSuffix(filename, ".json") {
			if err := stylewatch.LoadFile(filename); err != nil {
				log.Println("stylesheet:", err)
			}
		}
	}

	lw := windows.NewLabWindow(a)

	go updateCheck(a, lw)
	lw.ShowAndRun()
}

func updateCheck(a fyne.App, mw fyne.Window) {
	doUpdateCheck := true
	nextUpdateCheck := a.Preferences().String("nextUpdateCheck")
	ignoreVersion := a.Preferences().String("ignoreVersion")
	if nextUpdateCheck != "" {
		if nextCheckTime, err := time.Parse(time.RFC3339, nextUpdateCheck); err == nil {
			if time.Now().Before(nextCheckTime) {
				doUpdateCheck = false
			}
		}
	}
	if doUpdateCheck {
		if isLatest, latestVersion := update.IsLatest("v" + a.Metadata().Version); !isLatest {
			if ignoreVersion == latestVersion {
				return
			}
			u, err := url.Parse(update.ProjectPage)
			if err != nil {
				panic(err)
			}
			component.Dispatch(func() {
				link := widget.NewHyperlink("releases page", u)
				link.Alignment = fyne.TextAlignCenter
				link.TextStyle = fyne.TextStyle{Bold: true}
				dialog.ShowCustomConfirm(
					"Update available!",
					"Remind me", "Don't remind me",
					container.NewVBox(
						widget.NewLabel("There is a new version available"),
						link,
					),
					func(choice bool) {
						if !choice {
							a.Preferences().SetString("ignoreVersion", latestVersion)
						}
					},
					mw,
				)
			})
		}
		if tt, err := time.Now().Add(96 * time.Hour).MarshalText(); err == nil {
			a.Preferences().SetString("nextUpdateCheck", string(tt))
		}
	}
}
