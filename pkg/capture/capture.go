// Package capture grabs the rendered canvas as PNG, to disk or onto the
// system clipboard.
package capture

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"golang.design/x/clipboard"
)

// Screenshot writes the canvas to a timestamped PNG in the working
// directory and returns the filename.
func Screenshot(c fyne.Canvas) (string, error) {
	img := c.Capture()
	filename := fmt.Sprintf("capture-%s.png", time.Now().Format("2006-01-02-15-04-05"))
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	return filename, nil
}

var (
	clipOnce sync.Once
	clipErr  error
)

// ToClipboard puts the canvas on the system clipboard as a PNG image.
func ToClipboard(c fyne.Canvas) error {
	clipOnce.Do(func() {
		clipErr = clipboard.Init()
	})
	if clipErr != nil {
		return clipErr
	}
	buf := bytes.NewBuffer(nil)
	if err := png.Encode(buf, c.Capture()); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}
