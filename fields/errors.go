package fields

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrIllegalAccess       = errors.New("illegal field access")
	ErrUnknownEnumConstant = errors.New("unknown enum constant")
)

// FieldError records a failed field operation.
type FieldError struct {
	Type  reflect.Type
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("field %q: %v", e.Field, e.Err)
	}

	return fmt.Sprintf("field %s.%s: %v", e.Type, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func illegal(t reflect.Type, field, format string, args ...any) error {
	return &FieldError{
		Type:  t,
		Field: field,
		Err:   fmt.Errorf("%w: "+format, append([]any{ErrIllegalAccess}, args...)...),
	}
}
