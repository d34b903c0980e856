// Package category classifies runtime types into a small closed set of
// structural categories: maps, sets, lists, queues, arrays, enums,
// primitives and plain values.
package category

import (
	"container/list"
	"reflect"

	"github.com/emirpasic/gods/lists"
	"github.com/emirpasic/gods/maps"
	"github.com/emirpasic/gods/queues"
	"github.com/emirpasic/gods/sets"

	"reflectkit/registry"
)

//go:generate go tool stringer -type=Category -linecomment -output=category_string.go

type Category int

const (
	Plain     Category = iota // PLAIN
	Primitive                 // PRIMITIVE
	Enum                      // ENUM
	Array                     // ARRAY
	Map                       // MAP
	Set                       // COLLECTION_SET
	List                      // COLLECTION_LIST
	Queue                     // COLLECTION_QUEUE

	// Total is the number of categories defined
	Total = int(iota)
)

var (
	mapType       = reflect.TypeFor[maps.Map]()
	setType       = reflect.TypeFor[sets.Set]()
	listType      = reflect.TypeFor[lists.List]()
	queueType     = reflect.TypeFor[queues.Queue]()
	linkedListPtr = reflect.TypeFor[*list.List]()
)

// IsCollection reports whether c is one of the set, list or queue categories.
func (c Category) IsCollection() bool {
	switch c {
	default:
		return false
	case Set, List, Queue:
		return true
	}
}

// IsContainer reports whether c holds elements: maps, collections and arrays.
func (c Category) IsContainer() bool {
	return c == Map || c == Array || c.IsCollection()
}

// Of classifies t using the Default registry for enum detection.
func Of(t reflect.Type) Category {
	return OfIn(registry.Default, t)
}

// OfValue classifies the runtime type of v.
func OfValue(v any) Category {
	return Of(reflect.TypeOf(v))
}

// OfIn classifies t. The first matching rule wins:
// arrays and slices, registered enums, scalars, maps, sets, queues, lists.
// Everything else, including a nil type, is Plain.
func OfIn(reg *registry.Registry, t reflect.Type) Category {
	if t == nil {
		return Plain
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return Array
	}

	if reg != nil && reg.IsEnum(t) {
		return Enum
	}

	if isScalar(t.Kind()) {
		return Primitive
	}

	switch {
	case t.Kind() == reflect.Map || t.Implements(mapType):
		return Map
	case t.Implements(setType):
		return Set
	case t == linkedListPtr || t.Implements(queueType):
		return Queue
	case t.Implements(listType):
		return List
	}

	return Plain
}

func isScalar(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	}
}
