package gen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/keystring/compiler/load"
)

// groupPrefix starts every synthetic struct type name. Grouping types
// carry the full path of their node joined with underscores, so sibling
// uniqueness makes them unique in the common case.
const groupPrefix = "group"

// structLit renders keyed composite literals one field per line, keeping
// first-seen order instead of jen.Dict's alphabetical sorting.
var structLit = jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}

// Emit renders a validated forest as Go source. Go has no nested
// constant namespaces, so each grouping becomes an unexported struct
// type whose fields carry the verbatim segment names, with the reserved
// self-path member first; top-level groupings are materialized as a
// package-level var and top-level terminals as a true const. Identical
// forests render to byte-identical output.
func Emit(f load.Forest, cfg *Config) ([]byte, error) {
	file := jen.NewFile(cfg.pkg())
	file.HeaderComment(cfg.Header)
	if !cfg.Warnings {
		// Names come verbatim from the catalogue, so unused and
		// casing lints do not apply to the generated file.
		file.HeaderComment("//nolint:unused // declarations mirror the key catalogue verbatim")
		file.HeaderComment("//nolint:revive,stylecheck // identifier casing follows the key catalogue")
	}

	e := &emitter{
		file:   file,
		sep:    cfg.Separator,
		taken:  make(map[string]bool),
		tnames: make(map[*load.Node]string),
	}
	// Top-level declarations share the package scope with the synthetic
	// type names, so reserve them up front.
	for _, n := range f {
		e.taken[n.Name] = true
	}
	for _, n := range f {
		e.topLevel(n)
	}

	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		return nil, fmt.Errorf("keystring: render generated code: %w", err)
	}
	return buf.Bytes(), nil
}

type emitter struct {
	file   *jen.File
	sep    string
	taken  map[string]bool       // package-scope names already in use
	tnames map[*load.Node]string // synthetic type name per grouping node
}

// topLevel emits one declaration block for a top-level forest node.
func (e *emitter) topLevel(n *load.Node) {
	if len(n.Children) == 0 {
		e.file.Const().Id(n.Name).Op("=").Lit(n.Name)
		return
	}
	e.assign(n, e.unique(groupPrefix+"_"+n.Name))
	e.structType(n)
	e.file.Var().Id(n.Name).Op("=").Add(e.literal(n, n.Name))
}

// assign picks the synthetic type name for every grouping in the
// subtree, parents before children, so emission order never influences
// collision suffixes.
func (e *emitter) assign(n *load.Node, tname string) {
	e.tnames[n] = tname
	for _, c := range n.Children {
		if len(c.Children) > 0 {
			e.assign(c, e.unique(tname+"_"+c.Name))
		}
	}
}

// unique claims base, suffixing a counter when segment names containing
// underscores make two paths collapse to the same joined name.
func (e *emitter) unique(base string) string {
	name := base
	for i := 2; e.taken[name]; i++ {
		name = fmt.Sprintf("%s_%d", base, i)
	}
	e.taken[name] = true
	return name
}

// structType declares the struct type of a grouping node, then those of
// its grouping children in insertion order.
func (e *emitter) structType(n *load.Node) {
	fields := []jen.Code{jen.Id(ReservedName).String()}
	for _, c := range n.Children {
		if len(c.Children) == 0 {
			fields = append(fields, jen.Id(c.Name).String())
		} else {
			fields = append(fields, jen.Id(c.Name).Id(e.tnames[c]))
		}
	}
	e.file.Type().Id(e.tnames[n]).Struct(fields...)
	for _, c := range n.Children {
		if len(c.Children) > 0 {
			e.structType(c)
		}
	}
}

// literal builds the composite literal filling a grouping subtree with
// its full path values.
func (e *emitter) literal(n *load.Node, path string) *jen.Statement {
	values := []jen.Code{jen.Id(ReservedName).Op(":").Lit(path)}
	for _, c := range n.Children {
		cp := path + e.sep + c.Name
		if len(c.Children) == 0 {
			values = append(values, jen.Id(c.Name).Op(":").Lit(cp))
		} else {
			values = append(values, jen.Id(c.Name).Op(":").Add(e.literal(c, cp)))
		}
	}
	return jen.Id(e.tnames[n]).Custom(structLit, values...)
}
