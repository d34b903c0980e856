package analyze

import (
	"go/types"
	"reflect"
	"slices"
	"strings"

	"reflectkit/accessor"
	"reflectkit/internal/common"
	"reflectkit/registry"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID = registry.TypeID

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map type
	TypeKindInterface          // interface type
	TypeKindAlias              // named type wrapping a non-struct type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindInterface:
		return "interface"
	case TypeKindAlias:
		return "alias"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID       // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind     // Kind of type
	Underlying *TypeInfo    // For named non-struct types, the underlying type
	ElemType   *TypeInfo    // For pointers, slices, arrays and maps, the element type
	KeyType    *TypeInfo    // For maps, the key type
	Len        int64        // For arrays, the length
	Fields     []FieldInfo  // For structs, the list of fields
	Methods    []MethodInfo // For named types, the exported methods callable on a pointer
	GoType     types.Type   // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// IsBlank reports whether the field is a blank (_) padding field.
func (f *FieldInfo) IsBlank() bool {
	return f.Name == "_"
}

// Ancestor returns the struct type of an embedded struct field, or nil.
func (f *FieldInfo) Ancestor() *TypeInfo {
	if !f.Embedded {
		return nil
	}

	t := f.Type
	for t != nil && t.Kind == TypeKindPointer {
		t = t.ElemType
	}

	if t == nil || t.Kind != TypeKindStruct {
		return nil
	}

	return t
}

// MethodInfo describes a method.
type MethodInfo struct {
	Name    string
	NumIn   int      // parameters, receiver excluded
	Results []string // result types, package qualified by alias
}

// Signature converts m for the accessor predicates.
func (m MethodInfo) Signature() accessor.Signature {
	return accessor.Signature{Name: m.Name, NumIn: m.NumIn, Out: m.Results}
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Find returns the IDs of the named types called name, ordered by package
// path.
func (g *TypeGraph) Find(name string) []TypeID {
	var ids []TypeID
	for id := range g.Types {
		if id.Name == name {
			ids = append(ids, id)
		}
	}

	slices.SortFunc(ids, func(a, b TypeID) int {
		return strings.Compare(a.PkgPath, b.PkgPath)
	})

	return ids
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
