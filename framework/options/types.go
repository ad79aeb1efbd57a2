package options

import (
	"reflect"
)

// Type names accepted by SetAllowedTypes. They follow PHP's gettype() vocabulary
// (int, float, bool, string, array, null) with "map" added for Go maps.
// Any other name is compared against reflect.Type.String(), e.g. "time.Duration".
const (
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeBool   = "bool"
	TypeString = "string"
	TypeArray  = "array"
	TypeMap    = "map"
	TypeNull   = "null"
	TypeMixed  = "mixed"
)

// kindName maps a basic kind onto its schema type name, or "" for other kinds.
func kindName(k reflect.Kind) string {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInt
	case reflect.Float32, reflect.Float64:
		return TypeFloat
	case reflect.Bool:
		return TypeBool
	case reflect.String:
		return TypeString
	}
	return ""
}

// typeName returns the schema type name of v. Named scalar types
// (time.Duration, a custom string type) report their Go name.
func typeName(v any) string {
	if v == nil {
		return TypeNull
	}
	t := reflect.TypeOf(v)
	if name := kindName(t.Kind()); name != "" {
		if t.PkgPath() != "" {
			return t.String()
		}
		return name
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return TypeArray
	case reflect.Map:
		return TypeMap
	}
	return t.String()
}

// isOfType reports whether v satisfies the named type.
// Named scalar types also satisfy their underlying kind.
func isOfType(v any, name string) bool {
	if name == TypeMixed {
		return true
	}
	if typeName(v) == name {
		return true
	}
	if v == nil {
		return false
	}
	return kindName(reflect.TypeOf(v).Kind()) == name
}

// matchesAnyType reports whether v satisfies at least one of the names.
func matchesAnyType(v any, names []string) bool {
	for _, n := range names {
		if isOfType(v, n) {
			return true
		}
	}
	return false
}

// valueAllowed reports whether v equals one of allowed, or satisfies an
// allowed predicate. Uncomparable values only match through predicates
// or reflect.DeepEqual.
func valueAllowed(v any, allowed []any) bool {
	for _, a := range allowed {
		if pred, ok := a.(func(any) bool); ok {
			if pred(v) {
				return true
			}
			continue
		}
		if reflect.DeepEqual(a, v) {
			return true
		}
	}
	return false
}
