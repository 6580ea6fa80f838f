package view

import (
	"errors"
	"fmt"
)

// ErrUnsupportedValue is returned when a value has no displayable form.
var ErrUnsupportedValue = errors.New("view: unsupported value")

type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("%s of type %T", ErrUnsupportedValue, e.Value)
}

func (e *UnsupportedValueError) Is(target error) bool {
	return target == ErrUnsupportedValue
}
