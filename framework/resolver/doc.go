// Package resolver decorates an option schema with casts applied before
// validation and an opt-in filter for undeclared keys.
//
// # Overview
//
// A Resolver wraps a Schema (usually *options.Schema). Resolve runs three
// steps in a fixed order:
//
//  1. drop keys the schema does not declare (only when asked to)
//  2. apply the registered casts
//  3. hand the result to Schema.Resolve for defaults and validation
//
// Casting is best-effort: a value that does not parse is passed through
// unchanged and left for the schema to reject. The schema is the only source
// of validation errors, and Resolve reports all of them as *ResolutionError.
//
// # Basic Usage
//
//	s := options.New()
//	_ = s.SetRequired("page")
//	_ = s.SetAllowedTypes("page", options.TypeInt)
//
//	r := resolver.New(s)
//	_ = r.SetCast("page", resolver.Int)
//
//	resolved, err := r.Resolve(map[string]any{"page": " 10 ", "utm_source": "x"}, true)
//	// resolved == map[string]any{"page": 10}
//
// # Casts
//
//   - int   base-10 integer, optional sign, surrounding whitespace ignored
//   - float decimal number with optional exponent; integers are widened
//   - bool  1/true/on/yes and 0/false/off/no/"" (case-insensitive)
//   - func  any func of one required argument and one result, e.g.
//     func(v any) any or func(s string) int
//
// "10.0" is not an int and "1.0" is not a bool. Numbers are compared in their
// shortest form, so float64(1) casts to int 1 and bool true.
//
// # Lifecycle
//
// Remove and Clear call the schema first and only drop casts after it
// succeeds, so a locked schema keeps its casts too.
package resolver
