package cartesian

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatible is returned if a range cannot be mapped by a scale.
	ErrIncompatible = errors.New("cartesian: incompatible range and scale")

	// ErrReservedName is returned if an extra range uses the name "default".
	ErrReservedName = errors.New("cartesian: reserved range name")

	// ErrUnknownName is returned when a range or scale name is not found
	// in a Frame.
	ErrUnknownName = errors.New("cartesian: unknown range name")
)

// IncompatibleError reports a range which its axis' scale cannot map.
type IncompatibleError struct {
	Axis  string // "x" or "y"
	Name  string // name of the range
	Range Range
	Scale Scale
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("cartesian: %s-range %q: Range %s is incompatible with Scale %s",
		e.Axis, e.Name, e.Range.Type(), e.Scale.Type())
}

func (e *IncompatibleError) Unwrap() error { return ErrIncompatible }

// LookupError reports a range name missing from a Frame.
type LookupError struct {
	Axis string
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("cartesian: no %s-range named %q", e.Axis, e.Name)
}

func (e *LookupError) Unwrap() error { return ErrUnknownName }
