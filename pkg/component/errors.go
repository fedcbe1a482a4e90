package component

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRendered is returned when an operation needs the root container
	// but the component has never been rendered.
	ErrNotRendered = errors.New("component has not been rendered")

	// ErrRenderNotImplemented is returned by the base Render. A concrete
	// component must be bound with ExtendBaseComponent and provide its own
	// Render.
	ErrRenderNotImplemented = errors.New("render not implemented")

	// ErrPropNotDeclared is wrapped by PropError when construction is
	// attempted with a prop name no struct field declares.
	ErrPropNotDeclared = errors.New("prop not declared")

	// ErrNotExtended is returned when dynamic construction is attempted on a
	// component that was never bound via ExtendBaseComponent.
	ErrNotExtended = errors.New("component not extended")
)

// PropError describes a prop that could not be applied to a component, either
// because no field declares the name or because the supplied value cannot be
// assigned to the declared field.
type PropError struct {
	Component string
	Name      string
	Err       error
}

func (e *PropError) Error() string {
	return fmt.Sprintf("%s: prop %q: %v", e.Component, e.Name, e.Err)
}

func (e *PropError) Unwrap() error {
	return e.Err
}
