// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build a canonical in-memory model of structs, their fields and their
// method sets, without running the code.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/array/map)
//   - FieldInfo: describes field name, type, tags, and embedding
//   - FieldView, AccessorView: the listings printed by the command line tool
package analyze
