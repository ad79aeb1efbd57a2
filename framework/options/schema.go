package options

import (
	"maps"
	"slices"
	"sort"
	"sync/atomic"
)

// Values is a resolved (or partially resolved) option map, handed to normalizers.
type Values map[string]any

// Normalizer rewrites a validated option value, mirroring Symfony's
// setNormalizer($option, fn(Options $options, $value) => ...).
type Normalizer func(values Values, value any) (any, error)

// Schema declares the accepted options and resolves candidate maps against them.
// It mirrors Symfony's OptionsResolver.
//
// The schema is locked after the first successful Resolve; every mutator
// fails with ErrAccess from then on. A Schema is not safe for concurrent
// mutation; once locked it may be shared for Resolve calls.
type Schema struct {
	// declaration order
	defined []string

	definedSet    map[string]bool
	required      map[string]bool
	defaults      map[string]any
	allowedTypes  map[string][]string
	allowedValues map[string][]any
	normalizers   map[string]Normalizer

	// set once by the first successful Resolve, read by concurrent Resolves after
	locked atomic.Bool
}

// New creates an empty schema.
func New() *Schema {
	s := &Schema{}
	s.reset()
	return s
}

func (s *Schema) reset() {
	s.defined = nil
	s.definedSet = make(map[string]bool)
	s.required = make(map[string]bool)
	s.defaults = make(map[string]any)
	s.allowedTypes = make(map[string][]string)
	s.allowedValues = make(map[string][]any)
	s.normalizers = make(map[string]Normalizer)
}

// ── Declaration ──────────────────────────────────────────────────────────────

// SetDefined declares options without a default value.
//
//	// Symfony: $resolver->setDefined(['port', 'host'])
//	s.SetDefined("port", "host")
func (s *Schema) SetDefined(names ...string) error {
	if s.locked.Load() {
		return accessError("defined in")
	}
	for _, name := range names {
		s.define(name)
	}
	return nil
}

// SetRequired declares options that must be present (or carry a default).
func (s *Schema) SetRequired(names ...string) error {
	if s.locked.Load() {
		return accessError("made required in")
	}
	for _, name := range names {
		s.define(name)
		s.required[name] = true
	}
	return nil
}

// SetDefault declares name (if needed) and sets its default value.
func (s *Schema) SetDefault(name string, value any) error {
	if s.locked.Load() {
		return accessError("given defaults in")
	}
	s.define(name)
	s.defaults[name] = value
	return nil
}

// SetAllowedTypes replaces the allowed type names of a declared option.
//
//	s.SetAllowedTypes("port", options.TypeInt)
//	s.SetAllowedTypes("timeout", "time.Duration", options.TypeNull)
func (s *Schema) SetAllowedTypes(name string, types ...string) error {
	if err := s.checkMutable(name, "given allowed types in"); err != nil {
		return err
	}
	s.allowedTypes[name] = slices.Clone(types)
	return nil
}

// AddAllowedTypes appends allowed type names to a declared option.
func (s *Schema) AddAllowedTypes(name string, types ...string) error {
	if err := s.checkMutable(name, "given allowed types in"); err != nil {
		return err
	}
	s.allowedTypes[name] = append(s.allowedTypes[name], types...)
	return nil
}

// SetAllowedValues replaces the allowed values of a declared option.
// A value of type func(any) bool acts as a predicate.
//
//	s.SetAllowedValues("env", "local", "production", "testing")
//	s.SetAllowedValues("port", func(v any) bool { p, ok := v.(int); return ok && p > 0 })
func (s *Schema) SetAllowedValues(name string, values ...any) error {
	if err := s.checkMutable(name, "given allowed values in"); err != nil {
		return err
	}
	s.allowedValues[name] = slices.Clone(values)
	return nil
}

// AddAllowedValues appends allowed values to a declared option.
func (s *Schema) AddAllowedValues(name string, values ...any) error {
	if err := s.checkMutable(name, "given allowed values in"); err != nil {
		return err
	}
	s.allowedValues[name] = append(s.allowedValues[name], values...)
	return nil
}

// SetNormalizer registers the normalizer of a declared option.
func (s *Schema) SetNormalizer(name string, fn Normalizer) error {
	if err := s.checkMutable(name, "given normalizers in"); err != nil {
		return err
	}
	s.normalizers[name] = fn
	return nil
}

func (s *Schema) define(name string) {
	if s.definedSet[name] {
		return
	}
	s.definedSet[name] = true
	s.defined = append(s.defined, name)
}

func (s *Schema) checkMutable(name, verb string) error {
	if s.locked.Load() {
		return accessError(verb)
	}
	if !s.definedSet[name] {
		return undefinedError([]string{name}, s.defined)
	}
	return nil
}

// ── Queries ──────────────────────────────────────────────────────────────────

// IsDefined reports whether name has been declared.
func (s *Schema) IsDefined(name string) bool { return s.definedSet[name] }

// IsRequired reports whether name is required.
func (s *Schema) IsRequired(name string) bool { return s.required[name] }

// HasDefault reports whether name has a default value.
func (s *Schema) HasDefault(name string) bool {
	_, ok := s.defaults[name]
	return ok
}

// IsMissing reports whether name is required and has no default.
func (s *Schema) IsMissing(name string) bool {
	return s.required[name] && !s.HasDefault(name)
}

// DefinedOptions returns the declared names in declaration order.
func (s *Schema) DefinedOptions() []string { return slices.Clone(s.defined) }

// RequiredOptions returns the required names in declaration order.
func (s *Schema) RequiredOptions() []string {
	return s.filterDefined(s.IsRequired)
}

// MissingOptions returns the required names that have no default.
func (s *Schema) MissingOptions() []string {
	return s.filterDefined(s.IsMissing)
}

// Locked reports whether the schema has been locked by a successful Resolve.
func (s *Schema) Locked() bool { return s.locked.Load() }

func (s *Schema) filterDefined(keep func(string) bool) []string {
	out := make([]string, 0, len(s.defined))
	for _, name := range s.defined {
		if keep(name) {
			out = append(out, name)
		}
	}
	return out
}

// ── Lifecycle ────────────────────────────────────────────────────────────────

// Remove undeclares options together with everything attached to them.
// Unknown names are ignored.
func (s *Schema) Remove(names ...string) error {
	if s.locked.Load() {
		return accessError("removed from")
	}
	for _, name := range names {
		if !s.definedSet[name] {
			continue
		}
		delete(s.definedSet, name)
		delete(s.required, name)
		delete(s.defaults, name)
		delete(s.allowedTypes, name)
		delete(s.allowedValues, name)
		delete(s.normalizers, name)
		s.defined = slices.DeleteFunc(s.defined, func(n string) bool { return n == name })
	}
	return nil
}

// Clear removes every declaration.
func (s *Schema) Clear() error {
	if s.locked.Load() {
		return accessError("cleared from")
	}
	s.reset()
	return nil
}

// ── Resolution ───────────────────────────────────────────────────────────────

// Resolve validates opts against the schema and returns a fresh map with
// defaults merged in and normalizers applied.
//
// Checks run in this order, the first failure wins:
//  1. undefined keys             → ErrUndefinedOptions
//  2. missing required options   → ErrMissingOptions
//  3. allowed types, then values → ErrInvalidOptions
//  4. normalizers                → ErrInvalidOptions
func (s *Schema) Resolve(opts map[string]any) (map[string]any, error) {
	var undefined []string
	for name := range opts {
		if !s.definedSet[name] {
			undefined = append(undefined, name)
		}
	}
	if len(undefined) > 0 {
		sort.Strings(undefined)
		return nil, undefinedError(undefined, s.defined)
	}

	var missing []string
	for _, name := range s.defined {
		if _, given := opts[name]; !given && s.IsMissing(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, missingError(missing)
	}

	resolved := make(map[string]any, len(s.defaults)+len(opts))
	maps.Copy(resolved, s.defaults)
	maps.Copy(resolved, opts)

	for _, name := range s.defined {
		value, present := resolved[name]
		if !present {
			continue
		}
		if types := s.allowedTypes[name]; len(types) > 0 && !matchesAnyType(value, types) {
			return nil, invalidTypeError(name, value, types)
		}
		if values := s.allowedValues[name]; len(values) > 0 && !valueAllowed(value, values) {
			return nil, invalidValueError(name, value, values)
		}
	}

	for _, name := range s.defined {
		fn, ok := s.normalizers[name]
		if !ok {
			continue
		}
		value, present := resolved[name]
		if !present {
			continue
		}
		normalized, err := fn(Values(maps.Clone(resolved)), value)
		if err != nil {
			return nil, normalizerError(name, err)
		}
		resolved[name] = normalized
	}

	s.locked.CompareAndSwap(false, true)
	return resolved, nil
}
