package analyze

import (
	"fmt"
	"strings"

	"reflectkit/internal/common"
)

// TypePath builds a readable path string for a field reached through
// embedding.
// Examples:
//   - "Member" for the root struct
//   - "Member.Name" for a field declared by the root
//   - "PremiumMember.*Member.Person.Name" for a field promoted through an
//     embedded pointer and an embedded value
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Pointer marks the last element of the path as a pointer.
func (p *TypePath) Pointer() *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{"*"}}
	}
	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] = "*" + newParts[len(newParts)-1]
	return &TypePath{parts: newParts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeString returns t written the way reflect.Type.String writes it, with
// named types qualified by their package alias.
func TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	if t.IsNamed() {
		return common.Qualify(t.ID.PkgPath, t.ID.Name)
	}

	switch t.Kind {
	case TypeKindPointer:
		return "*" + TypeString(t.ElemType)
	case TypeKindSlice:
		return "[]" + TypeString(t.ElemType)
	case TypeKindArray:
		return fmt.Sprintf("[%d]%s", t.Len, TypeString(t.ElemType))
	case TypeKindMap:
		return "map[" + TypeString(t.KeyType) + "]" + TypeString(t.ElemType)
	case TypeKindStruct:
		return "struct{...}"
	default:
		return t.GoType.String()
	}
}
