package accessor

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FirstCharacterToUpperCase returns s with its first character in upper case.
func FirstCharacterToUpperCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// MethodNames maps each field name to prefix followed by the capitalized
// field name, e.g. "name" to "GetName" for the prefix "Get".
func MethodNames(fieldNames []string, prefix string) map[string]string {
	names := make(map[string]string, len(fieldNames))
	for _, name := range fieldNames {
		names[name] = prefix + FirstCharacterToUpperCase(name)
	}

	return names
}

// Binding links a field to the accessors of its property.
type Binding struct {
	Field  string
	Getter string
	Setter string
}

// Bind pairs every field with the getter and setter whose property matches
// the field name. Names are compared after normalization, so the field
// "userID" is read by GetUserId. Fields without accessors are kept with empty
// method names.
func Bind(fieldNames []string, sigs []Signature) []Binding {
	getters := make(map[string]string)
	setters := make(map[string]string)

	for _, sig := range sigs {
		property, ok := Property(sig)
		if !ok {
			continue
		}

		key := NormalizeIdent(property)
		if IsSetter(sig) {
			setters[key] = sig.Name
		} else if _, taken := getters[key]; !taken {
			getters[key] = sig.Name
		}
	}

	bindings := make([]Binding, len(fieldNames))
	for i, name := range fieldNames {
		key := NormalizeIdent(name)
		bindings[i] = Binding{Field: name, Getter: getters[key], Setter: setters[key]}
	}

	return bindings
}

// NormalizeIdent folds an identifier for comparison: CamelCase is split into
// tokens, separators are dropped and the result is lower case.
//   - "OrderID" -> "orderid"
//   - "order_id" -> "orderid"
//   - "getHTTPResponse" -> "gethttpresponse"
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lower case tokens.
//   - "XMLParser" -> ["xml", "parser"]
//   - "customerName" -> ["customer", "name"]
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}
	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsToken reports whether runes[i] begins a new CamelCase token: a lower
// to upper transition, or the last capital of an acronym followed by a lower
// case letter ("XMLParser" splits before 'P').
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
