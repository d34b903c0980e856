// Package arrays copies and allocates slices and arrays of any element type.
//
// Copies are shallow: a slice of plain-old-data elements (booleans, numbers,
// or fixed arrays of those) is copied by value into new backing storage,
// while a slice of reference elements gets new element slots that point to
// the same element values as the source.
package arrays

import (
	"reflect"
)

// CopyOf returns a copy of the slice or array held in src. It returns nil
// when src is not a slice or an array.
func CopyOf(src any) any {
	if src == nil {
		return nil
	}

	v := reflect.ValueOf(src)
	switch v.Kind() {
	case reflect.Slice:
		return copySlice(v).Interface()
	case reflect.Array:
		return copyArray(v).Interface()
	default:
		return nil
	}
}

// CopyValue is the reflect.Value form of CopyOf. The returned value is
// invalid when v is not a slice or an array.
func CopyValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		return copySlice(v)
	case reflect.Array:
		return copyArray(v)
	default:
		return reflect.Value{}
	}
}

// Copy returns a copy of src with new backing storage. A nil slice stays nil.
func Copy[S ~[]E, E any](src S) S {
	if src == nil {
		return nil
	}

	dst := make(S, len(src))
	copy(dst, src)
	return dst
}

func copySlice(src reflect.Value) reflect.Value {
	t := src.Type()
	if src.IsNil() {
		return reflect.Zero(t)
	}

	n := src.Len()
	dst := reflect.MakeSlice(t, n, n)

	if IsPlainOldData(t.Elem()) {
		reflect.Copy(dst, src)
		return dst
	}

	for i := 0; i < n; i++ {
		dst.Index(i).Set(src.Index(i))
	}
	return dst
}

func copyArray(src reflect.Value) reflect.Value {
	dst := reflect.New(src.Type()).Elem()

	for i := 0; i < src.Len(); i++ {
		dst.Index(i).Set(src.Index(i))
	}
	return dst
}

// IsPlainOldData reports whether values of t hold no references.
func IsPlainOldData(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return IsPlainOldData(t.Elem())
	default:
		return false
	}
}

// NewArray allocates a value of the slice or array type t. Slices get length
// zero elements, arrays are zero values of their fixed length. It returns
// nil when t is not a slice or array type or length is negative.
func NewArray(t reflect.Type, length int) any {
	v := NewArrayValue(t, length)
	if !v.IsValid() {
		return nil
	}

	return v.Interface()
}

// NewArrayValue is the reflect.Value form of NewArray.
func NewArrayValue(t reflect.Type, length int) reflect.Value {
	if t == nil || length < 0 {
		return reflect.Value{}
	}

	switch t.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(t, length, length)
	case reflect.Array:
		return reflect.New(t).Elem()
	default:
		return reflect.Value{}
	}
}

// NewArrayOf allocates a slice of length zero values of E.
func NewArrayOf[E any](length int) []E {
	return make([]E, length)
}

// NewEmptyArrayOf returns an empty, non-nil slice of the same type as src.
func NewEmptyArrayOf[S ~[]E, E any](src S) S {
	return make(S, 0)
}
