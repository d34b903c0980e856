// Package instance creates instances of runtime types.
//
// Construction tries two strategies in order. The direct strategy builds
// containers and arrays itself and otherwise calls a registered constructor
// whose parameter types equal the runtime types of the arguments. The bypass
// strategy allocates a zero value without running any constructor. A failed
// strategy is logged and the next one is tried; when both fail the result is
// absent.
package instance

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"reflectkit/category"
	"reflectkit/fields"
	"reflectkit/registry"
)

var ErrStrategyPanicked = errors.New("construction strategy panicked")

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger used for strategy failures.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Factory) { f.logger = logger }
}

// WithRegistry sets the registry used to resolve names and detect enums.
func WithRegistry(reg *registry.Registry) Option {
	return func(f *Factory) { f.registry = reg }
}

// WithConstructors sets the constructor set of the direct strategy.
func WithConstructors(ctors *Constructors) Option {
	return func(f *Factory) { f.ctors = ctors }
}

// WithAllocator replaces the bypass strategy.
func WithAllocator(alloc Allocator) Option {
	return func(f *Factory) { f.alloc = alloc }
}

// Factory constructs instances. It is safe for concurrent use when its
// registry, constructors and allocator are.
type Factory struct {
	logger   *zap.Logger
	registry *registry.Registry
	ctors    *Constructors
	alloc    Allocator
}

// NewFactory creates a Factory. Without options it uses registry.Default,
// DefaultConstructors, ZeroAllocator and the package logger.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		registry: registry.Default,
		ctors:    DefaultConstructors,
		alloc:    ZeroAllocator,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *Factory) log() *zap.Logger {
	if f.logger != nil {
		return f.logger
	}

	return defaultLogger.Get()
}

// Construct returns an instance of t built from args. The second result is
// false when no strategy could produce one.
func (f *Factory) Construct(t reflect.Type, args ...any) (reflect.Value, bool) {
	if t == nil {
		f.log().Info("nothing to construct for a nil type")
		return reflect.Value{}, false
	}

	v, err := attempt(func() (reflect.Value, error) { return f.direct(t, args) })
	if err == nil {
		return v, true
	}
	f.log().Info("direct construction failed",
		zap.Stringer("type", t), zap.Int("args", len(args)), zap.Error(err))

	v, err = attempt(func() (reflect.Value, error) { return f.bypass(t) })
	if err == nil {
		return v, true
	}
	f.log().Info("bypass construction failed", zap.Stringer("type", t), zap.Error(err))

	return reflect.Value{}, false
}

func attempt(strategy func() (reflect.Value, error)) (v reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = reflect.Value{}, fmt.Errorf("%w: %v", ErrStrategyPanicked, r)
		}
	}()

	return strategy()
}

func (f *Factory) direct(t reflect.Type, args []any) (reflect.Value, error) {
	c := category.OfIn(f.registry, t)

	switch {
	case c == category.Array:
		if t.Kind() == reflect.Slice {
			return reflect.MakeSlice(t, DefaultArrayLength, DefaultArrayLength), nil
		}
		return reflect.New(t).Elem(), nil
	case c == category.Map || c.IsCollection():
		if v, ok := newContainer(t, c); ok {
			return v, nil
		}
	}

	return f.viaConstructor(t, args)
}

// viaConstructor calls the constructor registered for t. A constructor of *T
// serves T by dereferencing its result and a constructor of T serves *T by
// copying its result into a new pointer.
func (f *Factory) viaConstructor(t reflect.Type, args []any) (reflect.Value, error) {
	params := ParameterTypes(args...)

	if ctor, ok := f.ctors.Lookup(t, params); ok {
		return call(ctor, args)
	}

	if t.Kind() != reflect.Ptr {
		if ctor, ok := f.ctors.Lookup(reflect.PointerTo(t), params); ok {
			v, err := call(ctor, args)
			if err != nil {
				return reflect.Value{}, err
			}
			return v.Elem(), nil
		}
	} else if ctor, ok := f.ctors.Lookup(t.Elem(), params); ok {
		v, err := call(ctor, args)
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(v)
		return p, nil
	}

	return reflect.Value{}, fmt.Errorf("%w: %s%v", ErrNoConstructor, t, params)
}

func call(ctor Constructor, args []any) (reflect.Value, error) {
	v, err := ctor.Call(args...)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%s: %w", ctor, err)
	}

	if isNil(v) {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNilInstance, ctor)
	}

	return v, nil
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

func (f *Factory) bypass(t reflect.Type) (reflect.Value, error) {
	v, err := f.alloc.Allocate(t)
	if err != nil {
		return reflect.Value{}, err
	}

	if !v.IsValid() || !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: allocator returned %v for %s", ErrNotAllocatable, v, t)
	}

	return v, nil
}

// ResolveType resolves a type name through the factory registry.
func (f *Factory) ResolveType(name string) (reflect.Type, error) {
	return f.registry.Lookup(name)
}

// NewByName constructs an instance of the type registered under name. An
// unresolvable name is absent and no construction is attempted.
func (f *Factory) NewByName(name string, args ...any) (any, bool) {
	t, err := f.ResolveType(name)
	if err != nil {
		f.log().Info("type name not resolved", zap.String("name", name), zap.Error(err))
		return nil, false
	}

	v, ok := f.Construct(t, args...)
	if !ok {
		return nil, false
	}

	return v.Interface(), true
}

// NewLike returns a new instance shaped like obj. Containers come back empty
// and of the same family, slices come back with the same length and zero
// elements. Anything else is constructed from the runtime type of obj.
func (f *Factory) NewLike(obj any, args ...any) (any, bool) {
	if obj == nil {
		return nil, false
	}

	t := reflect.TypeOf(obj)
	c := category.OfIn(f.registry, t)

	switch {
	case c == category.Array:
		if t.Kind() == reflect.Slice {
			n := reflect.ValueOf(obj).Len()
			return reflect.MakeSlice(t, n, n).Interface(), true
		}
		return reflect.New(t).Elem().Interface(), true
	case c == category.Map || c.IsCollection():
		if v, ok := newContainerLike(t, c); ok {
			return v.Interface(), true
		}
	}

	v, ok := f.Construct(t, args...)
	if !ok {
		return nil, false
	}

	return v.Interface(), true
}

var (
	defaultLogger = fields.NewCell(zap.NewNop())

	// DefaultConstructors is the constructor set of the default factory.
	DefaultConstructors = NewConstructors()

	// Default is the factory behind the package-level functions.
	Default = NewFactory()
)

// SetLogger replaces the logger of factories created without WithLogger and
// returns the previous one.
func SetLogger(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return defaultLogger.Swap(logger)
}

// RegisterConstructor adds constructor functions to DefaultConstructors.
func RegisterConstructor(fns ...any) error {
	return DefaultConstructors.Register(fns...)
}

// Construct calls Default.Construct.
func Construct(t reflect.Type, args ...any) (reflect.Value, bool) {
	return Default.Construct(t, args...)
}

// NewByName calls Default.NewByName.
func NewByName(name string, args ...any) (any, bool) {
	return Default.NewByName(name, args...)
}

// New constructs a T with the default factory.
func New[T any](args ...any) (T, bool) {
	var zero T

	v, ok := Default.Construct(reflect.TypeFor[T](), args...)
	if !ok {
		return zero, false
	}

	out, ok := v.Interface().(T)
	return out, ok
}

// NewLike calls Default.NewLike and keeps the static type of obj. When the
// container family of obj is unknown and its category default is not a T,
// the result is constructed from the runtime type of obj instead.
func NewLike[T any](obj T, args ...any) (T, bool) {
	var zero T

	v, ok := Default.NewLike(obj, args...)
	if !ok {
		return zero, false
	}

	if out, ok := v.(T); ok {
		return out, true
	}

	rv, ok := Default.Construct(reflect.TypeOf(obj), args...)
	if !ok {
		return zero, false
	}

	out, ok := rv.Interface().(T)
	return out, ok
}
