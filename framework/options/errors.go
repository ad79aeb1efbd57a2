package options

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ── Sentinels ────────────────────────────────────────────────────────────────

// Error kinds returned by the schema. Concrete errors carry a Symfony-style
// message and are marked with one of these, so callers test with errors.Is.
var (
	// ErrUndefinedOptions is Symfony's UndefinedOptionsException.
	ErrUndefinedOptions = errors.New("undefined options")

	// ErrMissingOptions is Symfony's MissingOptionsException.
	ErrMissingOptions = errors.New("missing options")

	// ErrInvalidOptions is Symfony's InvalidOptionsException.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrAccess is Symfony's AccessException. Returned when a locked schema is mutated.
	ErrAccess = errors.New("access to a locked schema")
)

// ── Constructors ─────────────────────────────────────────────────────────────

// undefinedError builds the "does not exist" message for one or more names.
func undefinedError(names, defined []string) error {
	var msg string
	if len(names) == 1 {
		msg = fmt.Sprintf("The option %s does not exist. Defined options are: %s.",
			quoteList(names), quoteList(defined))
	} else {
		msg = fmt.Sprintf("The options %s do not exist. Defined options are: %s.",
			quoteList(names), quoteList(defined))
	}
	return errors.Mark(errors.New(msg), ErrUndefinedOptions)
}

func missingError(names []string) error {
	var msg string
	if len(names) == 1 {
		msg = fmt.Sprintf("The required option %s is missing.", quoteList(names))
	} else {
		msg = fmt.Sprintf("The required options %s are missing.", quoteList(names))
	}
	return errors.Mark(errors.New(msg), ErrMissingOptions)
}

func invalidTypeError(name string, value any, allowed []string) error {
	return errors.Mark(errors.Newf(
		"The option %q with value %s is expected to be of type %s, but is of type %q.",
		name, formatValue(value), strings.Join(quoteEach(allowed), " or "), typeName(value),
	), ErrInvalidOptions)
}

func invalidValueError(name string, value any, allowed []any) error {
	printable := make([]string, 0, len(allowed))
	for _, a := range allowed {
		if _, isPredicate := a.(func(any) bool); isPredicate {
			continue
		}
		printable = append(printable, formatValue(a))
	}
	msg := fmt.Sprintf("The option %q with value %s is invalid.", name, formatValue(value))
	if len(printable) > 0 {
		msg += " Accepted values are: " + strings.Join(printable, ", ") + "."
	}
	return errors.Mark(errors.New(msg), ErrInvalidOptions)
}

func normalizerError(name string, cause error) error {
	return errors.Mark(
		errors.Wrapf(cause, "The option %q could not be normalized", name),
		ErrInvalidOptions,
	)
}

// accessError reports a mutation of a locked schema, e.g.
// accessError("removed from") → "Options cannot be removed from a locked resolver."
func accessError(verb string) error {
	return errors.Mark(errors.Newf("Options cannot be %s a locked resolver.", verb), ErrAccess)
}

// ── Formatting helpers ───────────────────────────────────────────────────────

// quoteList renders names as `"a", "b"`.
func quoteList(names []string) string {
	return strings.Join(quoteEach(names), ", ")
}

func quoteEach(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = `"` + n + `"`
	}
	return out
}

// formatValue renders a value for a diagnostic the way Symfony does:
// strings quoted, scalars literal, containers by kind.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	}
	switch typeName(v) {
	case TypeArray:
		return "array"
	case TypeMap:
		return "map"
	}
	return fmt.Sprint(v)
}
