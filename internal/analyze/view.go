package analyze

import (
	"errors"
	"fmt"
	"slices"

	"reflectkit/accessor"
	"reflectkit/fields"
	"reflectkit/registry"
)

var (
	ErrTypeNotFound = registry.ErrTypeNotFound
	ErrNotAStruct   = errors.New("type is not a struct")
)

// FieldView is a field as listed by the command line tool.
type FieldView struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Owner    string `yaml:"owner"`
	Path     string `yaml:"path"`
	Exported bool   `yaml:"exported"`
	Final    bool   `yaml:"final,omitempty"`
}

// Fields lists the fields of the struct id in the order of
// fields.AllDeclared: the fields declared by id first, then those of its
// embedded ancestors, breadth first. Without all only the fields declared by
// id are listed. Blank fields and ignored names are skipped.
func (a *Analyzer) Fields(id TypeID, all bool, ignore []string) ([]FieldView, error) {
	root, err := a.GetStruct(id.PkgPath, id.Name)
	if err != nil {
		return nil, err
	}

	type node struct {
		t    *TypeInfo
		path *TypePath
	}

	var out []FieldView
	seen := map[*TypeInfo]bool{root: true}
	queue := []node{{t: root, path: NewTypePath(id.Name)}}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		var ancestors []node
		for i := range n.t.Fields {
			f := &n.t.Fields[i]
			if f.IsBlank() || slices.Contains(ignore, f.Name) {
				continue
			}

			if at := f.Ancestor(); at != nil {
				if all && !seen[at] {
					seen[at] = true
					path := n.path.Field(f.Name)
					if f.Type.Kind == TypeKindPointer {
						path = path.Pointer()
					}
					ancestors = append(ancestors, node{t: at, path: path})
				}
				continue
			}

			out = append(out, FieldView{
				Name:     f.Name,
				Type:     TypeString(f.Type),
				Owner:    TypeString(n.t),
				Path:     n.path.Field(f.Name).String(),
				Exported: f.Exported,
				Final:    fields.IsFinal(f.Tag),
			})
		}

		queue = append(queue, ancestors...)
	}

	return out, nil
}

// AccessorView is a method classified by the accessor predicates.
type AccessorView struct {
	Method   string `yaml:"method"`
	Kind     string `yaml:"kind"`
	Property string `yaml:"property"`
}

const (
	KindGetter        = "getter"
	KindBooleanGetter = "boolean getter"
	KindSetter        = "setter"
)

// Accessors lists the getters and setters of the named type id.
func (a *Analyzer) Accessors(id TypeID) ([]AccessorView, error) {
	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, id)
	}

	var out []AccessorView
	for _, m := range info.Methods {
		sig := m.Signature()

		var kind string
		switch {
		case accessor.IsGetterMethod(sig):
			kind = KindGetter
		case accessor.IsBooleanGetterMethod(sig):
			kind = KindBooleanGetter
		case accessor.IsSetter(sig):
			kind = KindSetter
		default:
			continue
		}

		property, _ := accessor.Property(sig)
		out = append(out, AccessorView{Method: m.Name, Kind: kind, Property: property})
	}

	return out, nil
}
