package fields

import (
	"fmt"
	"reflect"
	"unsafe"

	"reflectkit/arrays"
	"reflectkit/category"
	"reflectkit/registry"
)

// Outcome tells what CopyValue did with a field.
type Outcome int

const (
	Copied Outcome = iota + 1
	SkippedFinal
)

func (o Outcome) String() string {
	switch o {
	case Copied:
		return "copied"
	case SkippedFinal:
		return "skipped final"
	default:
		return "unknown"
	}
}

// Synchronizer copies field values between struct instances. Slices and
// arrays are copied, enum constants are looked up again by name and every
// other value is assigned as is. An enum value that is not a registered
// constant fails with ErrUnknownEnumConstant and the field is not written.
type Synchronizer struct {
	// AllowUnexported permits reading and writing unexported fields.
	AllowUnexported bool
	// Registry is used for enum detection, registry.Default when nil.
	Registry *registry.Registry
}

var defaultSynchronizer = &Synchronizer{}

func (s *Synchronizer) registry() *registry.Registry {
	if s.Registry != nil {
		return s.Registry
	}

	return registry.Default
}

// CopyValue copies the value of f from src to dst. A final field is read but
// not written and SkippedFinal is returned.
func (s *Synchronizer) CopyValue(src, dst any, f Field) (Outcome, error) {
	value, err := s.read(src, f)
	if err != nil {
		return 0, err
	}

	if f.Final {
		return SkippedFinal, nil
	}

	if err := s.write(dst, f, value); err != nil {
		return 0, err
	}

	return Copied, nil
}

// CopyValueByName copies the field called name from src to dst.
func (s *Synchronizer) CopyValueByName(src, dst any, name string) (Outcome, error) {
	f, err := Lookup(reflect.TypeOf(src), name)
	if err != nil {
		return 0, err
	}

	return s.CopyValue(src, dst, f)
}

// SetValue writes value into the field f of dst, which must be a pointer to
// a struct. The final flag of f is not checked.
func (s *Synchronizer) SetValue(dst any, f Field, value any) error {
	return s.write(dst, f, reflect.ValueOf(value))
}

// GetValue returns the value of the field called name.
func (s *Synchronizer) GetValue(src any, name string) (any, error) {
	if src == nil {
		return nil, illegal(nil, name, "nil instance")
	}

	f, err := Lookup(reflect.TypeOf(src), name)
	if err != nil {
		return nil, err
	}

	v, err := s.read(src, f)
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

// CopyOfEnumValue returns the constant of the enum type t that has the same
// name as value, or nil when t is not an enum or has no such constant.
func (s *Synchronizer) CopyOfEnumValue(value any, t reflect.Type) any {
	v, ok := s.enumValue(reflect.ValueOf(value), t)
	if !ok {
		return nil
	}

	return v.Interface()
}

// enumValue returns the constant of t named like v. A v of type t must
// itself be that constant, so Gender(7) is not taken for the constant its
// String method happens to name.
func (s *Synchronizer) enumValue(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	if !v.IsValid() || category.OfIn(s.registry(), t) != category.Enum {
		return reflect.Value{}, false
	}

	c, ok := s.registry().EnumConstant(t, registry.EnumName(v))
	if !ok {
		return reflect.Value{}, false
	}

	if v.Type() == t && !v.Equal(c) {
		return reflect.Value{}, false
	}

	return c, true
}

func (s *Synchronizer) read(src any, f Field) (reflect.Value, error) {
	rv, err := structValue(src, f, false)
	if err != nil {
		return reflect.Value{}, err
	}

	return s.field(rv, f)
}

func (s *Synchronizer) write(dst any, f Field, value reflect.Value) error {
	rv, err := structValue(dst, f, true)
	if err != nil {
		return err
	}

	fv, err := s.field(rv, f)
	if err != nil {
		return err
	}

	switch category.OfIn(s.registry(), f.Type) {
	case category.Array:
		if value.IsValid() {
			copied := arrays.CopyValue(value)
			if !copied.IsValid() {
				return illegal(rv.Type(), f.Name, "%s is not a slice or array", value.Type())
			}
			value = copied
		}
	case category.Enum:
		if value.IsValid() {
			c, ok := s.enumValue(value, f.Type)
			if !ok {
				return &FieldError{
					Type:  rv.Type(),
					Field: f.Name,
					Err:   fmt.Errorf("%w: %#v is not a constant of %s", ErrUnknownEnumConstant, value.Interface(), f.Type),
				}
			}
			value = c
		}
	}

	if !value.IsValid() {
		fv.Set(reflect.Zero(f.Type))
		return nil
	}

	if !value.Type().AssignableTo(f.Type) {
		return illegal(rv.Type(), f.Name, "cannot assign %s to %s", value.Type(), f.Type)
	}

	fv.Set(value)
	return nil
}

// structValue returns the addressable struct held in obj. Only pointers to
// structs can be written.
func structValue(obj any, f Field, write bool) (reflect.Value, error) {
	if obj == nil {
		return reflect.Value{}, illegal(nil, f.Name, "nil instance")
	}

	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, illegal(v.Type(), f.Name, "nil instance")
		}
		v = v.Elem()
	} else if write {
		return reflect.Value{}, illegal(v.Type(), f.Name, "%s is not a pointer", v.Type())
	}

	if v.Kind() != reflect.Struct {
		return reflect.Value{}, illegal(v.Type(), f.Name, "%s is not a struct", v.Type())
	}

	if !v.CanAddr() {
		tmp := reflect.New(v.Type()).Elem()
		tmp.Set(v)
		v = tmp
	}

	return v, nil
}

// field walks f.Index from the struct v, dereferencing embedded pointers.
func (s *Synchronizer) field(v reflect.Value, f Field) (reflect.Value, error) {
	if len(f.Index) == 0 {
		return reflect.Value{}, &FieldError{Type: v.Type(), Field: f.Name, Err: ErrNoSuchField}
	}

	cur := v
	var sf reflect.StructField
	for i, x := range f.Index {
		if i > 0 && cur.Kind() == reflect.Ptr {
			if cur.IsNil() {
				return reflect.Value{}, illegal(v.Type(), f.Name, "nil embedded %s", cur.Type())
			}
			cur = cur.Elem()
		}

		if cur.Kind() != reflect.Struct || x >= cur.NumField() {
			return reflect.Value{}, &FieldError{Type: v.Type(), Field: f.Name, Err: ErrNoSuchField}
		}

		sf = cur.Type().Field(x)
		cur = cur.Field(x)
	}

	if sf.Name != f.Name || sf.Type != f.Type {
		return reflect.Value{}, &FieldError{Type: v.Type(), Field: f.Name, Err: ErrNoSuchField}
	}

	if !cur.CanSet() {
		if !s.AllowUnexported {
			return reflect.Value{}, illegal(v.Type(), f.Name, "unexported field")
		}
		cur = reflect.NewAt(cur.Type(), unsafe.Pointer(cur.UnsafeAddr())).Elem()
	}

	return cur, nil
}

// CopyValue copies f from src to dst, refusing unexported fields.
func CopyValue(src, dst any, f Field) (Outcome, error) {
	return defaultSynchronizer.CopyValue(src, dst, f)
}

// CopyValueByName copies the field called name from src to dst.
func CopyValueByName(src, dst any, name string) (Outcome, error) {
	return defaultSynchronizer.CopyValueByName(src, dst, name)
}

// SetValue writes value into the field f of dst.
func SetValue(dst any, f Field, value any) error {
	return defaultSynchronizer.SetValue(dst, f, value)
}

// GetValue returns the value of the field called name.
func GetValue(src any, name string) (any, error) {
	return defaultSynchronizer.GetValue(src, name)
}

// CopyOfEnumValue returns the constant of t named like value, or nil.
func CopyOfEnumValue(value any, t reflect.Type) any {
	return defaultSynchronizer.CopyOfEnumValue(value, t)
}
