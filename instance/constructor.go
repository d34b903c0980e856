package instance

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	ErrNotAFunction        = errors.New("provided constructor is not a function")
	ErrNotAConstructor     = errors.New("provided function is not a recognizable constructor")
	ErrVariadicConstructor = errors.New("variadic functions cannot be registered as constructors")
	ErrNoConstructor       = errors.New("no constructor matches the argument types")
	ErrConstructorPanicked = errors.New("constructor panicked")
	ErrNilInstance         = errors.New("constructor returned a nil instance")
)

var errorType = reflect.TypeFor[error]()

// Constructor describes a function that produces instances of Out.
type Constructor struct {
	Fn     reflect.Value
	Params []reflect.Type
	Out    reflect.Type
	HasErr bool
}

// ParseConstructor inspects fn and returns a Constructor if it is a valid
// constructor function.
//
// Supports signatures:
//   - func(args...) T
//   - func(args...) (T, error)
func ParseConstructor(fn any) (Constructor, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		return Constructor{}, ErrNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.IsVariadic() {
		return Constructor{}, ErrVariadicConstructor
	}

	if fnType.NumOut() == 0 {
		return Constructor{}, ErrNotAConstructor
	}

	ctor := Constructor{
		Fn:     fnVal,
		Params: make([]reflect.Type, fnType.NumIn()),
		Out:    fnType.Out(0),
	}
	for i := range ctor.Params {
		ctor.Params[i] = fnType.In(i)
	}

	switch fnType.NumOut() {
	default:
		return Constructor{}, ErrNotAConstructor
	case 1:
		if ctor.Out == errorType {
			return Constructor{}, ErrNotAConstructor
		}
		return ctor, nil
	case 2:
		if fnType.Out(1) != errorType {
			return Constructor{}, ErrNotAConstructor
		}
		ctor.HasErr = true
		return ctor, nil
	}
}

// Matches reports whether the parameter types of c are exactly params, in
// order. Assignability, conversions and interface satisfaction are not
// considered.
func (c Constructor) Matches(params []reflect.Type) bool {
	if len(c.Params) != len(params) {
		return false
	}

	for i, p := range params {
		if p == nil || c.Params[i] != p {
			return false
		}
	}

	return true
}

// Call invokes the constructor. Panics raised by the constructor body are
// returned as errors.
func (c Constructor) Call(args ...any) (out reflect.Value, err error) {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = reflect.ValueOf(arg)
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = reflect.Value{}, fmt.Errorf("%w: %s: %v", ErrConstructorPanicked, c.Fn.Type(), r)
		}
	}()

	results := c.Fn.Call(in)
	if c.HasErr && !results[1].IsNil() {
		return reflect.Value{}, results[1].Interface().(error)
	}

	return results[0], nil
}

// String returns the signature of the constructor.
func (c Constructor) String() string {
	return c.Fn.Type().String()
}

// Constructors is a set of constructor functions indexed by the type they
// produce. It is safe for concurrent use.
type Constructors struct {
	mu    sync.RWMutex
	byOut map[reflect.Type][]Constructor
}

// NewConstructors creates an empty constructor set.
func NewConstructors() *Constructors {
	return &Constructors{byOut: make(map[reflect.Type][]Constructor)}
}

// Register adds constructor functions. A function with the same output and
// parameter types as an already registered one replaces it.
func (s *Constructors) Register(fns ...any) error {
	parsed := make([]Constructor, 0, len(fns))
	for _, fn := range fns {
		ctor, err := ParseConstructor(fn)
		if err != nil {
			return fmt.Errorf("register %T: %w", fn, err)
		}
		parsed = append(parsed, ctor)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ctor := range parsed {
		existing := s.byOut[ctor.Out]
		replaced := false
		for i := range existing {
			if existing[i].Matches(ctor.Params) {
				existing[i] = ctor
				replaced = true
				break
			}
		}

		if !replaced {
			s.byOut[ctor.Out] = append(existing, ctor)
		}
	}

	return nil
}

// Lookup returns the constructor producing exactly out whose parameter types
// are exactly params.
func (s *Constructors) Lookup(out reflect.Type, params []reflect.Type) (Constructor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ctor := range s.byOut[out] {
		if ctor.Matches(params) {
			return ctor, true
		}
	}

	return Constructor{}, false
}

// For returns the constructors registered for out.
func (s *Constructors) For(out reflect.Type) []Constructor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Constructor(nil), s.byOut[out]...)
}

// ParameterTypes returns the runtime types of args. A nil argument yields a
// nil type, which matches no constructor.
func ParameterTypes(args ...any) []reflect.Type {
	types := make([]reflect.Type, len(args))
	for i, arg := range args {
		types[i] = reflect.TypeOf(arg)
	}

	return types
}
