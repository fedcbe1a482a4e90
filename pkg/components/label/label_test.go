package label_test

import (
	"errors"
	"os"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/heavyai/omni-component/pkg/component"
	"github.com/heavyai/omni-component/pkg/components/label"
)

func TestMain(m *testing.M) {
	test.NewApp()
	os.Exit(m.Run())
}

type inlineDispatcher struct{}

func (inlineDispatcher) Do(fn func())        { fn() }
func (inlineDispatcher) DoAndWait(fn func()) { fn() }

func TestNew(t *testing.T) {
	l := label.New("hello")
	if !l.Rendered() {
		t.Fatal("New() did not render")
	}
	if !l.Visible() {
		t.Error("Visible() = false after New")
	}
}

func TestSetText(t *testing.T) {
	prev := component.SetDispatcher(inlineDispatcher{})
	t.Cleanup(func() { component.SetDispatcher(prev) })

	l := label.New("one")
	l.SetText("two")
	if l.Text != "two" {
		t.Errorf("Text = %q, want %q", l.Text, "two")
	}
}

func TestConstruct(t *testing.T) {
	tests := []struct {
		name string // description of this test case
		// Named input parameters for target function.
		props   map[string]any
		wantErr bool
	}{
		{
			name:  "declared props",
			props: map[string]any{"Text": "built", "Bold": true},
		},
		{
			name:    "undeclared prop",
			props:   map[string]any{"Texts": "typo"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &label.Label{}
			gotErr := component.Construct(l, tt.props)
			if tt.wantErr {
				if !errors.Is(gotErr, component.ErrPropNotDeclared) {
					t.Fatalf("Construct() error = %v, want ErrPropNotDeclared", gotErr)
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("Construct() failed: %v", gotErr)
			}
			if !l.Rendered() {
				t.Error("Construct() did not render")
			}
		})
	}
}
