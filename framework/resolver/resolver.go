package resolver

import (
	"maps"
	"reflect"
)

//go:generate mockgen -destination=mock_schema_test.go -package=resolver_test github.com/km-arc/go-options/framework/resolver Schema

// Schema is the option schema a Resolver decorates. *options.Schema implements it.
type Schema interface {
	IsDefined(name string) bool
	DefinedOptions() []string
	Remove(names ...string) error
	Clear() error
	Resolve(opts map[string]any) (map[string]any, error)
}

// Resolver adds per-option casts and undefined-key filtering on top of a Schema.
//
// Configure it (SetCast, Remove, Clear) from one goroutine; after the first
// successful Resolve locks the schema it may be shared for Resolve and IsCast.
type Resolver struct {
	schema Schema
	casts  map[string]Cast
}

// New wraps schema.
//
//	s := options.New()
//	_ = s.SetDefined("port")
//	r := resolver.New(s)
//	_ = r.SetCast("port", resolver.Int)
func New(schema Schema) *Resolver {
	return &Resolver{
		schema: schema,
		casts:  make(map[string]Cast),
	}
}

// Schema returns the decorated schema.
func (r *Resolver) Schema() Schema { return r.schema }

// ── Casts ────────────────────────────────────────────────────────────────────

// SetCast registers how name is coerced before validation, replacing any
// previous cast. directive is a CastType (or its string form), a Cast, or a
// function of exactly one required argument.
//
//	r.SetCast("port", resolver.Int)
//	r.SetCast("debug", "bool")
//	r.SetCast("tags", func(v string) []string { return strings.Split(v, ",") })
func (r *Resolver) SetCast(name string, directive any) error {
	if !r.schema.IsDefined(name) {
		return &UndefinedOptionError{Option: name, Defined: r.schema.DefinedOptions()}
	}

	cast, err := toCast(directive)
	if err != nil {
		return err
	}
	r.casts[name] = cast
	return nil
}

// MustSetCast is SetCast for setup code: it panics on error and returns r so
// calls can be chained.
func (r *Resolver) MustSetCast(name string, directive any) *Resolver {
	if err := r.SetCast(name, directive); err != nil {
		panic(err)
	}
	return r
}

// IsCast reports whether name has a registered cast.
func (r *Resolver) IsCast(name string) bool {
	_, ok := r.casts[name]
	return ok
}

func toCast(directive any) (Cast, error) {
	switch d := directive.(type) {
	case Cast:
		switch d.kind {
		case typeCast:
			return checkTag(d.tag)
		case funcCast:
			return d, nil
		}
		return Cast{}, &InvalidDirectiveError{Directive: directive, reason: emptyCastMessage}
	case CastType:
		return checkTag(d)
	case string:
		return checkTag(CastType(d))
	}

	if directive != nil && reflect.TypeOf(directive).Kind() == reflect.Func {
		return FuncCast(directive)
	}
	return Cast{}, &InvalidDirectiveError{Directive: directive, Supported: SupportedCasts()}
}

func checkTag(t CastType) (Cast, error) {
	if !t.valid() {
		return Cast{}, &InvalidDirectiveError{Directive: t, Supported: SupportedCasts()}
	}
	return TypeCast(t), nil
}

// ── Lifecycle ────────────────────────────────────────────────────────────────

// Remove undeclares names in the schema, then drops their casts. A schema
// error (e.g. locked) is returned unchanged and the casts are kept.
func (r *Resolver) Remove(names ...string) error {
	if err := r.schema.Remove(names...); err != nil {
		return err
	}
	for _, name := range names {
		delete(r.casts, name)
	}
	return nil
}

// Clear resets the schema, then drops every cast. A schema error is returned
// unchanged and the casts are kept.
func (r *Resolver) Clear() error {
	if err := r.schema.Clear(); err != nil {
		return err
	}
	r.casts = make(map[string]Cast)
	return nil
}

// ── Resolution ───────────────────────────────────────────────────────────────

// Resolve filters, casts and validates opts. Pass true to silently drop keys
// the schema does not declare; by default they are reported by the schema.
// Every schema failure is returned as a *ResolutionError. opts is not modified.
//
//	resolved, err := r.Resolve(req.Options(), true)
func (r *Resolver) Resolve(opts map[string]any, allowUndefinedOptions ...bool) (map[string]any, error) {
	allowUndefined := len(allowUndefinedOptions) > 0 && allowUndefinedOptions[0]

	filtered := r.clearUndefinedOptions(opts, allowUndefined)
	casted := r.resolveCasts(filtered)

	resolved, err := r.schema.Resolve(casted)
	if err != nil {
		return nil, newResolutionError(err)
	}
	return resolved, nil
}

// clearUndefinedOptions drops the keys the schema does not declare when
// allowed; otherwise opts is returned as-is.
func (r *Resolver) clearUndefinedOptions(opts map[string]any, allowed bool) map[string]any {
	if !allowed {
		return opts
	}
	defined := make(map[string]bool)
	for _, name := range r.schema.DefinedOptions() {
		defined[name] = true
	}
	out := make(map[string]any, len(opts))
	for name, value := range opts {
		if defined[name] {
			out[name] = value
		}
	}
	return out
}

// resolveCasts returns a copy of opts with every registered cast applied.
func (r *Resolver) resolveCasts(opts map[string]any) map[string]any {
	out := maps.Clone(opts)
	if out == nil {
		out = make(map[string]any)
	}
	for name, value := range opts {
		if cast, ok := r.casts[name]; ok {
			out[name] = cast.Apply(value)
		}
	}
	return out
}
