// Package stylewatch hot reloads a stylesheet file. The watcher sits on
// the containing directory so editors that replace the file on save keep
// being seen, and bursts of events collapse into one reload.
package stylewatch

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/heavyai/omni-component/pkg/component"
	"github.com/heavyai/omni-component/pkg/style"
)

const debounceDuration = 150 * time.Millisecond

// LoadFile reads a stylesheet JSON file, a map of style name to style, and
// installs it as the active stylesheet.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var styles map[string]*style.Style
	if err := json.Unmarshal(data, &styles); err != nil {
		return fmt.Errorf("stylesheet %s: %w", path, err)
	}
	style.Reset(styles)
	return nil
}

// Watch loads path and keeps the stylesheet in sync with it. After every
// reload onReload runs on the UI loop. The returned stop function ends the
// watch.
func Watch(path string, onReload func()) (func() error, error) {
	if err := LoadFile(path); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	base := filepath.Base(path)
	go func() {
		var mu sync.Mutex
		var debounce *time.Timer

		reload := func() {
			mu.Lock()
			debounce = nil
			mu.Unlock()
			if err := LoadFile(path); err != nil {
				log.Println("stylewatch:", err)
				return
			}
			if onReload != nil {
				component.Dispatch(onReload)
			}
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				mu.Lock()
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDuration, reload)
				mu.Unlock()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Println("stylewatch:", err)
			}
		}
	}()

	return watcher.Close, nil
}
