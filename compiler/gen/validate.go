package gen

import (
	"go/token"

	"github.com/syssam/keystring/compiler/load"
)

// Validate walks the forest exactly once, pre-order in declaration
// order, and returns the first rule violation found. Nothing may be
// emitted for a forest that fails validation.
func Validate(f load.Forest) error {
	var firstErr error
	f.Walk(func(path string, n *load.Node) bool {
		switch {
		case n.Name == ReservedName:
			firstErr = NewReservedNameError(path)
		case !validIdent(n.Name):
			firstErr = NewIdentifierError(path)
		default:
			return true
		}
		return false
	})
	return firstErr
}

// validIdent reports whether name is a legal Go identifier: a letter or
// underscore followed by letters, digits, or underscores, and not a
// keyword. Keywords matter here because segment names become declared
// names in the generated file.
func validIdent(name string) bool {
	return token.IsIdentifier(name)
}
