package component

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Props are declared as exported struct fields on the component type.
// Embedding another component type pulls that type's fields into the set,
// so the declared props of a component are the union of its own fields and
// every ancestor's, with the outermost type winning on a name clash.
//
// The struct tag `prop` renames a field or, with "-", hides it:
//
//	type Gauge struct {
//		component.Component
//		Value float64 `prop:"value"`
//		dirty bool    // unexported, never a prop
//		Cache []byte  `prop:"-"`
//	}
const propTag = "prop"

type propField struct {
	name  string
	field reflect.StructField
}

func propFields(r Renderable) []propField {
	t := reflect.TypeOf(r)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var out []propField
	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || f.PkgPath != "" {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup(propTag); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		out = append(out, propField{name: name, field: f})
	}
	return out
}

// DeclaredProps reports every prop the component accepts, keyed by prop
// name. The set covers the full embedding chain of r's concrete type.
func DeclaredProps(r Renderable) map[string]reflect.Type {
	fields := propFields(r)
	out := make(map[string]reflect.Type, len(fields))
	for _, pf := range fields {
		out[pf.name] = pf.field.Type
	}
	return out
}

// PropNames returns the declared prop names in sorted order.
func PropNames(r Renderable) []string {
	fields := propFields(r)
	names := make([]string, 0, len(fields))
	for _, pf := range fields {
		names = append(names, pf.name)
	}
	sort.Strings(names)
	return names
}

// ApplyProps assigns the given values to r's declared props. Names match
// case-insensitively. The whole set is validated before anything is
// written, so a single bad name or type leaves r untouched and returns a
// *PropError wrapping ErrPropNotDeclared or the conversion failure.
func ApplyProps(r Renderable, props map[string]any) error {
	if len(props) == 0 {
		return nil
	}
	fields := propFields(r)
	byName := make(map[string]propField, len(fields))
	for _, pf := range fields {
		byName[strings.ToLower(pf.name)] = pf
	}

	v := reflect.ValueOf(r)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct || !v.CanSet() {
		return fmt.Errorf("component: cannot apply props to %T", r)
	}

	type pending struct {
		field reflect.Value
		value reflect.Value
		zero  bool
	}
	queue := make([]pending, 0, len(props))
	for name, val := range props {
		pf, ok := byName[strings.ToLower(name)]
		if !ok {
			return &PropError{Component: typeName(r), Name: name, Err: ErrPropNotDeclared}
		}
		fv, err := v.FieldByIndexErr(pf.field.Index)
		if err != nil {
			return &PropError{Component: typeName(r), Name: name, Err: err}
		}
		if val == nil {
			if !nilable(fv.Kind()) {
				return &PropError{
					Component: typeName(r),
					Name:      name,
					Err:       fmt.Errorf("cannot assign nil to %s", fv.Type()),
				}
			}
			queue = append(queue, pending{field: fv, zero: true})
			continue
		}
		cv, err := coerce(reflect.ValueOf(val), fv.Type())
		if err != nil {
			return &PropError{Component: typeName(r), Name: name, Err: err}
		}
		queue = append(queue, pending{field: fv, value: cv})
	}

	for _, p := range queue {
		if p.zero {
			p.field.Set(reflect.Zero(p.field.Type()))
			continue
		}
		p.field.Set(p.value)
	}
	return nil
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	}
	return false
}

// coerce converts val to the field type. Besides direct assignment it
// accepts numeric cross-conversions, which keeps JSON-decoded prop maps
// (where every number is a float64) usable against int and float32 fields.
func coerce(val reflect.Value, to reflect.Type) (reflect.Value, error) {
	if val.Type().AssignableTo(to) {
		return val, nil
	}
	if val.Type().ConvertibleTo(to) {
		sk, dk := val.Kind(), to.Kind()
		if sk == dk || (numericKind(sk) && numericKind(dk)) {
			return val.Convert(to), nil
		}
	}
	return reflect.Value{}, fmt.Errorf("cannot assign %s to %s", val.Type(), to)
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func typeName(r Renderable) string {
	t := reflect.TypeOf(r)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "component"
	}
	return t.Name()
}
