// Package accessor recognizes getter and setter methods by their name and
// signature.
//
// A getter takes no parameters, returns at least one value and is named
// Get<Property>. A boolean getter takes no parameters, returns a bool and is
// named Is<Property>. A setter takes exactly one parameter and is named
// Set<Property>. The property name must start with an upper case letter.
package accessor

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	GetPrefix = "Get"
	IsPrefix  = "Is"
	SetPrefix = "Set"
)

// Signature is the part of a method the predicates look at. Out holds the
// result types as written in Go source, e.g. "bool" or "*fixture.Person".
type Signature struct {
	Name  string
	NumIn int
	Out   []string
}

// FromMethod builds the Signature of m. The receiver is not counted.
func FromMethod(m reflect.Method) Signature {
	numIn := m.Type.NumIn()
	if m.Func.IsValid() {
		numIn--
	}

	out := make([]string, m.Type.NumOut())
	for i := range out {
		out[i] = m.Type.Out(i).String()
	}

	return Signature{Name: m.Name, NumIn: numIn, Out: out}
}

// Methods returns the signatures of the methods callable on a pointer to t,
// sorted by name.
func Methods(t reflect.Type) []Signature {
	if t == nil {
		return nil
	}

	if t.Kind() != reflect.Ptr && t.Kind() != reflect.Interface {
		t = reflect.PointerTo(t)
	}

	sigs := make([]Signature, t.NumMethod())
	for i := range sigs {
		sigs[i] = FromMethod(t.Method(i))
	}

	return sigs
}

// IsGetter reports whether sig is a getter or a boolean getter.
func IsGetter(sig Signature) bool {
	return IsGetterMethod(sig) || IsBooleanGetterMethod(sig)
}

func IsGetterMethod(sig Signature) bool {
	return sig.NumIn == 0 && len(sig.Out) > 0 && hasPropertyPrefix(sig.Name, GetPrefix)
}

func IsBooleanGetterMethod(sig Signature) bool {
	return sig.NumIn == 0 && len(sig.Out) == 1 && sig.Out[0] == "bool" &&
		hasPropertyPrefix(sig.Name, IsPrefix)
}

func IsSetter(sig Signature) bool {
	return sig.NumIn == 1 && hasPropertyPrefix(sig.Name, SetPrefix)
}

// hasPropertyPrefix reports whether name is prefix followed by an upper case
// letter.
func hasPropertyPrefix(name, prefix string) bool {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok || rest == "" {
		return false
	}

	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r)
}

// Getters returns the names of the getters of t, sorted.
func Getters(t reflect.Type) []string {
	return filter(Methods(t), IsGetter)
}

// Setters returns the names of the setters of t, sorted.
func Setters(t reflect.Type) []string {
	return filter(Methods(t), IsSetter)
}

func filter(sigs []Signature, keep func(Signature) bool) []string {
	var names []string
	for _, sig := range sigs {
		if keep(sig) {
			names = append(names, sig.Name)
		}
	}

	return names
}

// Property returns the property an accessor reads or writes, e.g. "Name" for
// GetName. It returns false when sig is not an accessor.
func Property(sig Signature) (string, bool) {
	switch {
	case IsGetterMethod(sig):
		return strings.TrimPrefix(sig.Name, GetPrefix), true
	case IsBooleanGetterMethod(sig):
		return strings.TrimPrefix(sig.Name, IsPrefix), true
	case IsSetter(sig):
		return strings.TrimPrefix(sig.Name, SetPrefix), true
	default:
		return "", false
	}
}
