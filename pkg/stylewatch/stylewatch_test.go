package stylewatch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/theme"

	"github.com/heavyai/omni-component/pkg/component"
	"github.com/heavyai/omni-component/pkg/style"
	"github.com/heavyai/omni-component/pkg/stylewatch"
)

type inlineDispatcher struct{}

func (inlineDispatcher) Do(fn func())        { fn() }
func (inlineDispatcher) DoAndWait(fn func()) { fn() }

const sheetV1 = `{"panel":{"colors":{"background":"#101010"}}}`
const sheetV2 = `{"panel":{"colors":{"background":"#fefefe"},"sizes":{"text":18}}}`

func TestLoadFile(t *testing.T) {
	t.Cleanup(func() { style.Reset(nil) })

	path := filepath.Join(t.TempDir(), "styles.json")
	if err := os.WriteFile(path, []byte(sheetV1), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := stylewatch.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if style.Lookup("panel") == nil {
		t.Fatal("Lookup() = nil after LoadFile")
	}

	if err := stylewatch.LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadFile() succeeded for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(bad, []byte("{nope"), 0o644)
	if err := stylewatch.LoadFile(bad); err == nil {
		t.Error("LoadFile() succeeded for invalid JSON")
	}
}

func TestWatchReloads(t *testing.T) {
	prev := component.SetDispatcher(inlineDispatcher{})
	t.Cleanup(func() { component.SetDispatcher(prev) })
	t.Cleanup(func() { style.Reset(nil) })

	dir := t.TempDir()
	path := filepath.Join(dir, "styles.json")
	if err := os.WriteFile(path, []byte(sheetV1), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan struct{}, 4)
	stop, err := stylewatch.Watch(path, func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}
	t.Cleanup(func() { stop() })

	if style.Lookup("panel") == nil {
		t.Fatal("initial load did not install stylesheet")
	}

	if err := os.WriteFile(path, []byte(sheetV2), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after file change")
	}

	s := style.Lookup("panel")
	if s == nil {
		t.Fatal("Lookup() = nil after reload")
	}
	if s.Sizes[theme.SizeNameText] != 18 {
		t.Errorf("text size = %v after reload, want 18", s.Sizes[theme.SizeNameText])
	}
}
