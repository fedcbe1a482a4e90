// Package presets stores named component layouts as JSON. A preset is a
// list of specs, each naming a registered component type and the props to
// construct it with. User presets persist through fyne preferences, the
// built in ones are restored on every load.
package presets

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/heavyai/omni-component/pkg/component"
)

// Spec describes one component inside a preset.
type Spec struct {
	Type  string         `json:"type"`
	Props map[string]any `json:"props,omitempty"`
}

var (
	ErrNotFound    = errors.New("preset not found")
	ErrUnknownType = errors.New("unknown component type")
)

// Map holds the raw presets, name to JSON encoded []Spec. Access it from
// the UI loop only.
var Map = map[string]string{}

var factories = map[string]func() component.Object{}

// RegisterType makes a component type available to Build under the given
// name.
func RegisterType(name string, f func() component.Object) {
	if f == nil {
		delete(factories, name)
		return
	}
	factories[name] = f
}

// Types lists the registered component types.
func Types() []string {
	var names []string
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Names lists the stored presets.
func Names() []string {
	var names []string
	for name := range Map {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isSystem(name string) bool {
	return strings.EqualFold(name, "Demo Dash") || strings.EqualFold(name, "Welcome")
}

// Set stores specs under name. The built in presets cannot be replaced.
func Set(name string, specs []Spec) error {
	if isSystem(name) {
		return fmt.Errorf("cannot replace system presets")
	}
	data, err := json.Marshal(specs)
	if err != nil {
		return err
	}
	Map[name] = string(data)
	return nil
}

// Delete removes a stored preset. The built in presets cannot be deleted.
func Delete(name string) error {
	if isSystem(name) {
		return fmt.Errorf("cannot delete system presets")
	}
	delete(Map, name)
	return nil
}

// Get decodes the specs stored under name.
func Get(name string) ([]Spec, error) {
	data, ok := Map[name]
	if !ok {
		return nil, ErrNotFound
	}
	var specs []Spec
	if err := json.Unmarshal([]byte(data), &specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// New constructs a single component from its spec. Props are validated
// against the component's declared props through the dynamic path.
func New(spec Spec) (component.Object, error) {
	factory, ok := factories[spec.Type]
	if !ok {
		return nil, fmt.Errorf("%q: %w", spec.Type, ErrUnknownType)
	}
	obj := factory()
	if err := component.Construct(obj, spec.Props); err != nil {
		return nil, err
	}
	return obj, nil
}

// Build constructs every component in the named preset.
func Build(name string) ([]component.Object, error) {
	specs, err := Get(name)
	if err != nil {
		return nil, err
	}
	out := make([]component.Object, 0, len(specs))
	for i, spec := range specs {
		obj, err := New(spec)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		out = append(out, obj)
	}
	return out, nil
}

// Load restores presets from the app preferences and reinstates the built
// in ones.
func Load(app fyne.App) error {
	presets := app.Preferences().String("presets")
	if presets == "" {
		setDefaults()
		return nil
	}
	if err := json.Unmarshal([]byte(presets), &Map); err != nil {
		return err
	}
	setDefaults()
	return nil
}

func setDefaults() {
	Map["Welcome"] = `[{"type":"label","props":{"Text":"omni component kit","Bold":true}},{"type":"label","props":{"Text":"pick a preset to get started"}}]`
	Map["Demo Dash"] = `[{"type":"valuelabel","props":{"Topic":"demo.rpm","Unit":"rpm","Precision":0}},{"type":"valuelabel","props":{"Topic":"demo.temp","Unit":"°C","Precision":1}},{"type":"sparkline","props":{"Topic":"demo.rpm","Capacity":240}},{"type":"sparkline","props":{"Topic":"demo.load"}},{"type":"statusdot","props":{"Caption":"load high","Topic":"demo.load","Threshold":75}},{"type":"statusdot","props":{"Caption":"overheat","Topic":"demo.temp","Threshold":95}}]`
}

// Save writes the presets into the app preferences.
func Save(app fyne.App) error {
	presets, err := json.Marshal(Map)
	if err != nil {
		return err
	}
	app.Preferences().SetString("presets", string(presets))
	return nil
}
