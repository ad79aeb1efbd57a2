// Package options provides a declarative option schema modelled on Symfony's
// OptionsResolver component.
//
// # Overview
//
// A Schema lists the option names a caller accepts, which of them are
// required, their defaults, and the types and values they may take.
// Resolve checks a candidate map against it and returns a new map with
// defaults merged in.
//
// # Basic Usage
//
//	s := options.New()
//	_ = s.SetRequired("host")
//	_ = s.SetDefault("port", 8080)
//	_ = s.SetAllowedTypes("port", options.TypeInt)
//	_ = s.SetDefault("env", "local")
//	_ = s.SetAllowedValues("env", "local", "production", "testing")
//
//	resolved, err := s.Resolve(map[string]any{"host": "example.com"})
//	// resolved == map[string]any{"host": "example.com", "port": 8080, "env": "local"}
//
// # Type Names
//
//   - int    any Go integer kind
//   - float  any Go float kind
//   - bool   any Go bool kind
//   - string any Go string kind
//   - array  slices and arrays
//   - map
//   - null   untyped nil
//   - mixed  anything
//
// Any other name is matched against reflect.Type.String(), e.g. "time.Duration".
// A named scalar type is reported (in type errors) by its Go name and
// satisfies both that name and its underlying kind: time.Second passes
// "time.Duration" and "int".
//
// # Errors
//
// Every error is marked with one of ErrUndefinedOptions, ErrMissingOptions,
// ErrInvalidOptions or ErrAccess and carries a Symfony-style message:
//
//	The option "option2" does not exist. Defined options are: "option1".
//	The required option "host" is missing.
//	The option "port" with value "80a" is expected to be of type "int", but is of type "string".
//
// # Locking
//
// The first successful Resolve locks the schema. Later calls to SetDefined,
// SetRequired, SetDefault, SetAllowedTypes, SetAllowedValues, SetNormalizer,
// Remove and Clear fail with ErrAccess.
package options
