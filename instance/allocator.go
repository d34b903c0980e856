package instance

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrNotAllocatable = errors.New("type cannot be allocated without a constructor")

// Allocator creates an instance of a type without running any constructor.
type Allocator interface {
	Allocate(t reflect.Type) (reflect.Value, error)
}

// AllocatorFunc adapts a function to the Allocator interface.
type AllocatorFunc func(t reflect.Type) (reflect.Value, error)

func (fn AllocatorFunc) Allocate(t reflect.Type) (reflect.Value, error) {
	return fn(t)
}

// ZeroAllocator allocates zero values. Pointer types get a pointer to a fresh
// zero element and map types get an empty map. Types whose zero value is not
// a usable instance are refused.
var ZeroAllocator Allocator = AllocatorFunc(allocateZero)

func allocateZero(t reflect.Type) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, fmt.Errorf("%w: nil type", ErrNotAllocatable)
	}

	switch t.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotAllocatable, t)
	case reflect.Ptr:
		return reflect.New(t.Elem()), nil
	case reflect.Map:
		return reflect.MakeMap(t), nil
	default:
		return reflect.New(t).Elem(), nil
	}
}
