package category_test

import (
	"container/list"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/emirpasic/gods/lists"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/maps"
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/queues"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/stretchr/testify/assert"

	"reflectkit/category"
	"reflectkit/internal/fixture"
	"reflectkit/registry"
)

type Celsius float64

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  reflect.Type
		want category.Category
	}{
		{"nil type", nil, category.Plain},
		{"slice", reflect.TypeFor[[]int](), category.Array},
		{"array", reflect.TypeFor[[4]string](), category.Array},
		{"slice of enums", reflect.TypeFor[[]fixture.Gender](), category.Array},
		{"int enum", reflect.TypeFor[fixture.Gender](), category.Enum},
		{"string enum", reflect.TypeFor[fixture.Status](), category.Enum},
		{"int", reflect.TypeFor[int](), category.Primitive},
		{"named float", reflect.TypeFor[Celsius](), category.Primitive},
		{"string", reflect.TypeFor[string](), category.Primitive},
		{"complex", reflect.TypeFor[complex64](), category.Primitive},
		{"duration", reflect.TypeFor[time.Duration](), category.Primitive},
		{"go map", reflect.TypeFor[map[string]int](), category.Map},
		{"go map as set", reflect.TypeFor[map[string]struct{}](), category.Map},
		{"map interface", reflect.TypeFor[maps.Map](), category.Map},
		{"hash map", reflect.TypeFor[*hashmap.Map](), category.Map},
		{"linked hash map", reflect.TypeFor[*linkedhashmap.Map](), category.Map},
		{"tree map", reflect.TypeFor[*treemap.Map](), category.Map},
		{"set interface", reflect.TypeFor[sets.Set](), category.Set},
		{"hash set", reflect.TypeFor[*hashset.Set](), category.Set},
		{"linked hash set", reflect.TypeFor[*linkedhashset.Set](), category.Set},
		{"queue interface", reflect.TypeFor[queues.Queue](), category.Queue},
		{"linked list queue", reflect.TypeFor[*linkedlistqueue.Queue](), category.Queue},
		{"container list", reflect.TypeFor[*list.List](), category.Queue},
		{"list interface", reflect.TypeFor[lists.List](), category.List},
		{"array list", reflect.TypeFor[*arraylist.List](), category.List},
		{"doubly linked list", reflect.TypeFor[*doublylinkedlist.List](), category.List},
		{"struct", reflect.TypeFor[fixture.Person](), category.Plain},
		{"struct pointer", reflect.TypeFor[*fixture.Person](), category.Plain},
		{"time", reflect.TypeFor[time.Time](), category.Plain},
		{"empty interface", reflect.TypeFor[any](), category.Plain},
		{"container list value", reflect.TypeFor[list.List](), category.Plain},
		{"pointer to map", reflect.TypeFor[*map[string]int](), category.Plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, category.Of(tt.typ))
		})
	}
}

func TestOfIn_UnregisteredEnumIsPrimitive(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	assert.Equal(t, category.Primitive, category.OfIn(reg, reflect.TypeFor[fixture.Gender]()))
	assert.Equal(t, category.Primitive, category.OfIn(nil, reflect.TypeFor[fixture.Gender]()))
	assert.Equal(t, category.Array, category.OfIn(nil, reflect.TypeFor[[]fixture.Gender]()))
}

func TestOfValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, category.Map, category.OfValue(hashmap.New()))
	assert.Equal(t, category.Enum, category.OfValue(fixture.Female))
	assert.Equal(t, category.Plain, category.OfValue(nil))
	assert.Equal(t, category.Array, category.OfValue([]bool{true}))
}

func TestCategory_Predicates(t *testing.T) {
	t.Parallel()

	for c := category.Category(0); int(c) < category.Total; c++ {
		switch c {
		case category.Set, category.List, category.Queue:
			assert.True(t, c.IsCollection(), c.String())
			assert.True(t, c.IsContainer(), c.String())
		case category.Map, category.Array:
			assert.False(t, c.IsCollection(), c.String())
			assert.True(t, c.IsContainer(), c.String())
		default:
			assert.False(t, c.IsCollection(), c.String())
			assert.False(t, c.IsContainer(), c.String())
		}
	}
}

func ExampleOf() {
	fmt.Println(category.Of(reflect.TypeFor[[]byte]()))
	fmt.Println(category.Of(reflect.TypeFor[fixture.Gender]()))
	fmt.Println(category.Of(reflect.TypeFor[uint16]()))
	fmt.Println(category.Of(reflect.TypeFor[map[int]bool]()))
	fmt.Println(category.Of(reflect.TypeFor[*hashset.Set]()))
	fmt.Println(category.Of(reflect.TypeFor[*arraylist.List]()))
	fmt.Println(category.Of(reflect.TypeFor[*list.List]()))
	fmt.Println(category.Of(reflect.TypeFor[fixture.Person]()))
	fmt.Println(category.Category(42))
	// Output:
	// ARRAY
	// ENUM
	// PRIMITIVE
	// MAP
	// COLLECTION_SET
	// COLLECTION_LIST
	// COLLECTION_QUEUE
	// PLAIN
	// Category(42)
}
