package instance

import (
	"cmp"
	"container/list"
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"reflectkit/category"
)

// DefaultArrayLength is the length of slices created without an explicit length.
const DefaultArrayLength = 3

type containerFactory func() any

// concreteContainers maps the known concrete container types to their own
// constructor.
var concreteContainers = map[reflect.Type]containerFactory{
	reflect.TypeFor[*hashmap.Map]():           func() any { return hashmap.New() },
	reflect.TypeFor[*linkedhashmap.Map]():     func() any { return linkedhashmap.New() },
	reflect.TypeFor[*treemap.Map]():           func() any { return treemap.NewWith(NaturalOrder) },
	reflect.TypeFor[*hashset.Set]():           func() any { return hashset.New() },
	reflect.TypeFor[*linkedhashset.Set]():     func() any { return linkedhashset.New() },
	reflect.TypeFor[*treeset.Set]():           func() any { return treeset.NewWith(NaturalOrder) },
	reflect.TypeFor[*arraylist.List]():        func() any { return arraylist.New() },
	reflect.TypeFor[*doublylinkedlist.List](): func() any { return doublylinkedlist.New() },
	reflect.TypeFor[*singlylinkedlist.List](): func() any { return singlylinkedlist.New() },
	reflect.TypeFor[*linkedlistqueue.Queue](): func() any { return linkedlistqueue.New() },
	reflect.TypeFor[*arrayqueue.Queue]():      func() any { return arrayqueue.New() },
	reflect.TypeFor[*list.List]():             func() any { return list.New() },
}

// defaultContainers holds the implementation used for each category when the
// requested type is abstract or unknown.
var defaultContainers = map[category.Category]containerFactory{
	category.Map:   func() any { return hashmap.New() },
	category.Set:   func() any { return hashset.New() },
	category.List:  func() any { return arraylist.New() },
	category.Queue: func() any { return linkedlistqueue.New() },
}

// newContainer returns an empty container of type t. Go maps are made
// directly, known concrete containers use their own constructor, anything
// else gets the category default when that is assignable to t.
func newContainer(t reflect.Type, c category.Category) (reflect.Value, bool) {
	if t.Kind() == reflect.Map {
		return reflect.MakeMap(t), true
	}

	if fn, ok := concreteContainers[t]; ok {
		return reflect.ValueOf(fn()), true
	}

	fn, ok := defaultContainers[c]
	if !ok {
		return reflect.Value{}, false
	}

	v := reflect.ValueOf(fn())
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}

	return v, true
}

// newContainerLike returns an empty container of the same family as t. Unlike
// newContainer, the category default is used even when it is not assignable
// to t.
func newContainerLike(t reflect.Type, c category.Category) (reflect.Value, bool) {
	if t.Kind() == reflect.Map {
		return reflect.MakeMap(t), true
	}

	if fn, ok := concreteContainers[t]; ok {
		return reflect.ValueOf(fn()), true
	}

	if fn, ok := defaultContainers[c]; ok {
		return reflect.ValueOf(fn()), true
	}

	return reflect.Value{}, false
}

// NaturalOrder compares keys of ordered kinds by value. Keys of different
// kinds are ordered by their type name.
var NaturalOrder utils.Comparator = naturalOrder

func naturalOrder(a, b interface{}) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return cmp.Compare(boolRank(va.IsValid()), boolRank(vb.IsValid()))
	}

	if ka, kb := kindClass(va.Kind()), kindClass(vb.Kind()); ka != kb {
		return cmp.Compare(va.Type().String(), vb.Type().String())
	}

	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float())
	case reflect.String:
		return cmp.Compare(va.String(), vb.String())
	case reflect.Bool:
		return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

// kindClass groups kinds that compare with each other.
func kindClass(k reflect.Kind) reflect.Kind {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.Int
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return reflect.Uint
	case reflect.Float32, reflect.Float64:
		return reflect.Float64
	default:
		return k
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
