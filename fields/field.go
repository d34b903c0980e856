// Package fields lists the fields of struct types and copies field values
// between struct instances.
//
// Embedded struct fields are treated as ancestors: they are not listed as
// fields of their own, instead their fields follow those of the embedding
// type. Blank fields are never listed.
package fields

import (
	"errors"
	"reflect"
	"slices"
	"strings"
)

var ErrNoSuchField = errors.New("no such field")

// TagKey is the struct tag key holding field options.
const TagKey = "field"

// DefaultIgnoreFieldNames holds the names of fields added by code generators.
var DefaultIgnoreFieldNames = []string{
	"XXX_NoUnkeyedLiteral",
	"XXX_unrecognized",
	"XXX_sizecache",
}

// DefaultIgnore returns a copy of DefaultIgnoreFieldNames that callers may
// extend.
func DefaultIgnore() []string {
	return slices.Clone(DefaultIgnoreFieldNames)
}

// Field describes a struct field.
type Field struct {
	Name     string
	Type     reflect.Type
	Tag      reflect.StructTag
	Final    bool         // tagged field:"final", never written by the synchronizer
	Exported bool
	Owner    reflect.Type // struct type declaring the field
	Index    []int        // path from the introspected type, see reflect.Value.FieldByIndex
}

func (f Field) String() string {
	if f.Owner == nil {
		return f.Name
	}

	return f.Owner.Name() + "." + f.Name
}

func newField(owner reflect.Type, sf reflect.StructField, index []int) Field {
	return Field{
		Name:     sf.Name,
		Type:     sf.Type,
		Tag:      sf.Tag,
		Final:    IsFinal(sf.Tag),
		Exported: sf.IsExported(),
		Owner:    owner,
		Index:    index,
	}
}

// IsFinal reports whether tag marks its field as final.
func IsFinal(tag reflect.StructTag) bool {
	return hasOption(tag, "final")
}

// Options returns the options of the field tag, e.g. [final] for
// `field:"final"`.
func (f Field) Options() []string {
	return TagOptions(f.Tag)
}

// TagOptions splits the field tag value of tag into its options. Empty
// options are dropped.
func TagOptions(tag reflect.StructTag) []string {
	value, ok := tag.Lookup(TagKey)
	if !ok {
		return nil
	}

	var options []string
	for _, o := range strings.Split(value, ",") {
		if o = strings.TrimSpace(o); o != "" {
			options = append(options, o)
		}
	}

	return options
}

func hasOption(tag reflect.StructTag, option string) bool {
	return slices.Contains(TagOptions(tag), option)
}

// structType dereferences pointer types and reports whether the result is a
// struct type.
func structType(t reflect.Type) (reflect.Type, bool) {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t, t != nil && t.Kind() == reflect.Struct
}

// ancestor returns the struct type of an embedded struct field.
func ancestor(sf reflect.StructField) (reflect.Type, bool) {
	if !sf.Anonymous {
		return nil, false
	}

	return structType(sf.Type)
}

// Declared returns the fields declared directly by t in declaration order,
// without the ignored names.
func Declared(t reflect.Type, ignore ...string) []Field {
	return DeclaredIn(t, ignore)
}

// DeclaredIn is Declared with the ignore set passed as a slice.
func DeclaredIn(t reflect.Type, ignore []string) []Field {
	st, ok := structType(t)
	if !ok {
		return nil
	}

	return declared(st, nil, ignore, nil)
}

func declared(st reflect.Type, path []int, ignore []string, out []Field) []Field {
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		if sf.Name == "_" || slices.Contains(ignore, sf.Name) {
			continue
		}

		if _, ok := ancestor(sf); ok {
			continue
		}

		out = append(out, newField(st, sf, appendIndex(path, i)))
	}

	return out
}

func appendIndex(path []int, i int) []int {
	index := make([]int, len(path)+1)
	copy(index, path)
	index[len(path)] = i

	return index
}

// AllDeclared returns the fields of t followed by the fields of its embedded
// ancestors, breadth first in declaration order. Fields shadowed by a field
// of the same name in a nearer type are kept.
func AllDeclared(t reflect.Type, ignore ...string) []Field {
	return AllDeclaredIn(t, ignore)
}

// AllDeclaredIn is AllDeclared with the ignore set passed as a slice.
func AllDeclaredIn(t reflect.Type, ignore []string) []Field {
	root, ok := structType(t)
	if !ok {
		return nil
	}

	type node struct {
		t    reflect.Type
		path []int
	}

	var out []Field
	seen := map[reflect.Type]bool{root: true}
	queue := []node{{t: root}}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		out = declared(n.t, n.path, ignore, out)

		for i := 0; i < n.t.NumField(); i++ {
			sf := n.t.Field(i)
			if sf.Name == "_" || slices.Contains(ignore, sf.Name) {
				continue
			}

			at, ok := ancestor(sf)
			if !ok || seen[at] {
				continue
			}

			seen[at] = true
			queue = append(queue, node{t: at, path: appendIndex(n.path, i)})
		}
	}

	return out
}

// Names returns the names of the fields declared directly by t.
func Names(t reflect.Type, ignore ...string) []string {
	return names(DeclaredIn(t, ignore))
}

// AllNames returns the names of the fields of t and its ancestors.
func AllNames(t reflect.Type, ignore ...string) []string {
	return names(AllDeclaredIn(t, ignore))
}

func names(fields []Field) []string {
	if len(fields) == 0 {
		return nil
	}

	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}

	return out
}

// MethodNames returns the names of the exported methods callable on a
// pointer to t, sorted.
func MethodNames(t reflect.Type) []string {
	if t == nil {
		return nil
	}

	if t.Kind() != reflect.Ptr && t.Kind() != reflect.Interface {
		t = reflect.PointerTo(t)
	}

	out := make([]string, t.NumMethod())
	for i := range out {
		out[i] = t.Method(i).Name
	}

	return out
}

// Lookup returns the field of t with the given name. Fields declared by t are
// found first, then fields promoted from embedded structs.
func Lookup(t reflect.Type, name string) (Field, error) {
	st, ok := structType(t)
	if !ok || name == "" || name == "_" {
		return Field{}, &FieldError{Type: t, Field: name, Err: ErrNoSuchField}
	}

	for i := 0; i < st.NumField(); i++ {
		if sf := st.Field(i); sf.Name == name {
			return newField(st, sf, []int{i}), nil
		}
	}

	sf, ok := st.FieldByName(name)
	if !ok {
		return Field{}, &FieldError{Type: st, Field: name, Err: ErrNoSuchField}
	}

	return newField(ownerOf(st, sf.Index), sf, sf.Index), nil
}

// ownerOf returns the struct type holding the last step of index.
func ownerOf(t reflect.Type, index []int) reflect.Type {
	owner := t
	for _, i := range index[:len(index)-1] {
		owner, _ = structType(owner.Field(i).Type)
	}

	return owner
}
