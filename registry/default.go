package registry

import (
	"fmt"
	"reflect"
)

// Default is the process-wide registry used by package-level helpers and by
// the default instance factory.
var Default = New()

// Register registers T with the Default registry.
func Register[T any]() error {
	return Default.Register(reflect.TypeFor[T]())
}

// MustRegister is like Register but panics on error. It is meant for
// package initialization.
func MustRegister[T any]() {
	if err := Register[T](); err != nil {
		panic(err)
	}
}

// RegisterEnum registers the constants of the enumeration type E with the
// Default registry.
func RegisterEnum[E interface {
	comparable
	fmt.Stringer
}](values ...E) error {
	rvalues := make([]reflect.Value, 0, len(values))
	for _, v := range values {
		rvalues = append(rvalues, reflect.ValueOf(v))
	}

	return Default.RegisterEnum(reflect.TypeFor[E](), rvalues...)
}

// MustRegisterEnum is like RegisterEnum but panics on error.
func MustRegisterEnum[E interface {
	comparable
	fmt.Stringer
}](values ...E) {
	if err := RegisterEnum(values...); err != nil {
		panic(err)
	}
}

// Lookup resolves a type name with the Default registry.
func Lookup(name string) (reflect.Type, error) {
	return Default.Lookup(name)
}
