package resolver

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ── Types ────────────────────────────────────────────────────────────────────

// CastType is a fixed coercion target.
type CastType string

const (
	Int   CastType = "int"
	Float CastType = "float"
	Bool  CastType = "bool"
)

var supportedCasts = []CastType{Int, Float, Bool}

// SupportedCasts returns the fixed cast targets in registration order.
func SupportedCasts() []CastType { return slices.Clone(supportedCasts) }

func (t CastType) valid() bool { return slices.Contains(supportedCasts, t) }

type castKind int

const (
	typeCast castKind = iota + 1
	funcCast
)

// Cast is a registered coercion: either a fixed CastType or a function of one
// argument. Build one with TypeCast or FuncCast, or hand SetCast the raw tag
// or function.
type Cast struct {
	kind castKind
	tag  CastType
	fn   reflect.Value
}

// TypeCast returns a fixed-type directive. Validity is checked by SetCast.
func TypeCast(t CastType) Cast { return Cast{kind: typeCast, tag: t} }

// FuncCast wraps fn, which must be a func with exactly one non-variadic
// parameter and one result.
//
//	resolver.FuncCast(func(v any) any { return strings.ToLower(v.(string)) })
//	resolver.FuncCast(strconv.Quote)
func FuncCast(fn any) (Cast, error) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return Cast{}, &InvalidDirectiveError{Directive: fn, reason: arityMessage}
	}
	ft := rv.Type()
	if ft.NumIn() != 1 || ft.IsVariadic() || ft.NumOut() != 1 {
		return Cast{}, &InvalidDirectiveError{Directive: fn, reason: arityMessage}
	}
	return Cast{kind: funcCast, fn: rv}, nil
}

// Type returns the fixed target, or "" for function casts.
func (c Cast) Type() CastType { return c.tag }

// IsFunc reports whether c wraps a function.
func (c Cast) IsFunc() bool { return c.kind == funcCast }

// Apply coerces value. Function results are returned as-is; fixed types fall
// back to the input value when it cannot be parsed.
func (c Cast) Apply(value any) any {
	switch c.kind {
	case funcCast:
		return callCast(c.fn, value)
	case typeCast:
		return castToType(value, c.tag)
	}
	return value
}

// callCast calls fn with value. A value that fn's parameter cannot accept is
// returned unchanged; nil is passed as the parameter's zero value.
func callCast(fn reflect.Value, value any) any {
	in := fn.Type().In(0)

	var arg reflect.Value
	switch {
	case value == nil:
		arg = reflect.Zero(in)
	case reflect.TypeOf(value).AssignableTo(in):
		arg = reflect.ValueOf(value)
	default:
		return value
	}

	out := fn.Call([]reflect.Value{arg})[0]
	if (out.Kind() == reflect.Interface || out.Kind() == reflect.Pointer ||
		out.Kind() == reflect.Map || out.Kind() == reflect.Slice) && out.IsNil() {
		return nil
	}
	return out.Interface()
}

// ── Coercion ─────────────────────────────────────────────────────────────────

var (
	intPattern   = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)$`)
	floatPattern = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

	truthy = []string{"1", "true", "on", "yes"}
	falsy  = []string{"0", "false", "off", "no", ""}
)

// castToType applies a fixed cast, returning value untouched when it does not
// parse. It never fails.
func castToType(value any, t CastType) any {
	s, ok := scalarString(value)
	if !ok {
		return value
	}

	switch t {
	case Int:
		if n, ok := parseInt(s); ok {
			return n
		}
	case Float:
		if f, ok := parseFloat(s); ok {
			return f
		}
	case Bool:
		if b, ok := parseBool(s); ok {
			return b
		}
	}
	return value
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if !intPattern.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !floatPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseBool(s string) (bool, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case slices.Contains(truthy, s):
		return true, true
	case slices.Contains(falsy, s):
		return false, true
	}
	return false, false
}

// scalarString renders a scalar the way a form or env value would arrive:
// integers in base 10, floats in shortest form (1.0 → "1"), true → "1",
// false → "". Non-scalars report false.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case []byte:
		return string(v), true
	case bool:
		if v {
			return "1", true
		}
		return "", true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, rv.Type().Bits()), true
	case reflect.String:
		return rv.String(), true
	}
	return "", false
}
