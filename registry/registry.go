package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

var (
	ErrTypeNotFound    = errors.New("type not found")
	ErrUnnamedType     = errors.New("only named types can be registered")
	ErrConflictingType = errors.New("name is already registered for another type")
	ErrNotAnEnum       = errors.New("enum constants must be named types of integer or string kind")
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "reflectkit/internal/fixture"
	Name    string // e.g., "Person"
}

// String returns the fully qualified name of the type.
func (id TypeID) String() string {
	if id.PkgPath == "" {
		return id.Name
	}

	return id.PkgPath + "." + id.Name
}

// IDOf returns the TypeID of the nearest named type, dereferencing pointers.
// The zero TypeID is returned for unnamed types.
func IDOf(t reflect.Type) TypeID {
	for t != nil && t.Kind() == reflect.Ptr && t.Name() == "" {
		t = t.Elem()
	}

	if t == nil || t.Name() == "" {
		return TypeID{}
	}

	return TypeID{PkgPath: t.PkgPath(), Name: t.Name()}
}

// Entry is a single (name, type) association in a Registry snapshot.
type Entry struct {
	ID   TypeID
	Type reflect.Type
}

// Registry maps fully qualified type names to types and keeps the constants
// of enumeration types. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[TypeID]reflect.Type
	enums map[reflect.Type]map[string]reflect.Value
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		types: make(map[TypeID]reflect.Type),
		enums: make(map[reflect.Type]map[string]reflect.Value),
	}
}

// Register associates every type with its fully qualified name.
// Registering the same type twice is a no-op. When any type is rejected none
// of them is registered.
func (r *Registry) Register(types ...reflect.Type) error {
	ids := make([]TypeID, len(types))
	for i, t := range types {
		ids[i] = IDOf(t)
		if ids[i].Name == "" {
			return fmt.Errorf("%w: %v", ErrUnnamedType, t)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make(map[TypeID]reflect.Type, len(types))
	for i, t := range types {
		prev, ok := pending[ids[i]]
		if !ok {
			prev, ok = r.types[ids[i]]
		}

		if ok && prev != t {
			// *T and T share an ID, the named one wins
			switch {
			case prev.Kind() == reflect.Ptr && prev.Elem() == t:
			case t.Kind() == reflect.Ptr && t.Elem() == prev:
				t = prev
			default:
				return fmt.Errorf("%w: %s", ErrConflictingType, ids[i])
			}
		}

		pending[ids[i]] = t
	}

	for id, t := range pending {
		r.types[id] = t
	}

	return nil
}

// Lookup resolves a type name. The name is matched exactly first
// ("reflectkit/internal/fixture.Person"), then as a unique suffix
// ("fixture.Person").
func (r *Registry) Lookup(name string) (reflect.Type, error) {
	lastDot := strings.LastIndex(name, ".")
	if name == "" || lastDot == len(name)-1 {
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, name)
	}

	id := TypeID{Name: name}
	if lastDot >= 0 {
		id = TypeID{PkgPath: name[:lastDot], Name: name[lastDot+1:]}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.types[id]; ok {
		return t, nil
	}

	var found reflect.Type
	for candidate, t := range r.types {
		if candidate.Name != id.Name {
			continue
		}

		if id.PkgPath != "" && !strings.HasSuffix(candidate.PkgPath, "/"+id.PkgPath) {
			continue
		}

		if found != nil {
			return nil, fmt.Errorf("%w: %q is ambiguous", ErrTypeNotFound, name)
		}
		found = t
	}

	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, name)
	}

	return found, nil
}

// RegisterEnum records the constants of an enumeration type. Constants are
// keyed by their String() value. The type is registered by name as well.
func (r *Registry) RegisterEnum(t reflect.Type, values ...reflect.Value) error {
	if t == nil || t.Name() == "" || t.PkgPath() == "" || !isEnumKind(t.Kind()) {
		return fmt.Errorf("%w: %v", ErrNotAnEnum, t)
	}

	constants := make(map[string]reflect.Value, len(values))
	for _, v := range values {
		if v.Type() != t {
			return fmt.Errorf("%w: constant of type %s given for %s", ErrNotAnEnum, v.Type(), t)
		}

		constants[nameOf(v)] = v
	}

	if err := r.Register(t); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.enums[t]; ok {
		for name, v := range constants {
			existing[name] = v
		}
		return nil
	}

	r.enums[t] = constants
	return nil
}

// IsEnum reports whether constants were registered for t.
func (r *Registry) IsEnum(t reflect.Type) bool {
	if t == nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.enums[t]
	return ok
}

// EnumConstant returns the registered constant of t with the given name.
func (r *Registry) EnumConstant(t reflect.Type, name string) (reflect.Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.enums[t][name]
	return v, ok
}

// EnumName returns the name of an enum constant.
func EnumName(v reflect.Value) string {
	return nameOf(v)
}

// Entries returns a snapshot of the registered types ordered by name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	entries := make([]Entry, 0, len(r.types))
	for id, t := range r.types {
		entries = append(entries, Entry{ID: id, Type: t})
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID.String() < entries[j].ID.String()
	})

	return entries
}

// Count returns the number of registered types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.types)
}

// Reset clears all registered types and enums.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.types = make(map[TypeID]reflect.Type)
	r.enums = make(map[reflect.Type]map[string]reflect.Value)
}

func isEnumKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String:
		return true
	default:
		return false
	}
}

func nameOf(v reflect.Value) string {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	if v.Kind() == reflect.String {
		return v.String()
	}

	return fmt.Sprint(v.Interface())
}
