// Package gen renders a parsed key forest as Go source.
//
// The pipeline is strictly one-way and batch-oriented:
//
//	catalogue text (load.Parse)
//	        ↓
//	   load.Forest
//	        ↓
//	   Validate (fail-fast, first violation wins)
//	        ↓
//	   Emit (deterministic Go source, fully in memory)
//	        ↓
//	   Writer (single WriteFile per target)
//
// Every grouping in the forest becomes an unexported struct type with
// the reserved self-path member first; terminals become plain string
// declarations holding their full dotted path. Declaration names are
// taken verbatim from the input, which is why the generated file opens
// with lint-suppression directives unless warnings are enabled.
//
// A run either fully succeeds or fully fails. Validation errors carry
// the offending full path and match their sentinels through errors.Is:
//
//	err := gen.Generate(ctx, cfg, "app.keys")
//	if errors.Is(err, gen.ErrInvalidIdentifier) {
//		// report the bad key
//	}
package gen
