package resolver

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Error kinds. Every concrete error below reports errors.Is against its sentinel.
var (
	ErrUndefinedOption  = errors.New("undefined option")
	ErrInvalidDirective = errors.New("invalid cast directive")
	ErrResolution       = errors.New("options resolution failed")
)

// UndefinedOptionError is returned by SetCast for an option the schema never declared.
type UndefinedOptionError struct {
	Option  string
	Defined []string
}

func (e *UndefinedOptionError) Error() string {
	return fmt.Sprintf(`The option "%s" does not exist. Defined options are: "%s".`,
		e.Option, strings.Join(e.Defined, `", "`))
}

func (e *UndefinedOptionError) Is(target error) bool { return target == ErrUndefinedOption }

// InvalidDirectiveError is returned by SetCast for an unsupported type tag or a
// function that does not take exactly one required argument.
type InvalidDirectiveError struct {
	Directive any
	// Supported is set for type tag errors only.
	Supported []CastType
	reason    string
}

func (e *InvalidDirectiveError) Error() string {
	if e.reason != "" {
		return e.reason
	}
	names := make([]string, len(e.Supported))
	for i, s := range e.Supported {
		names[i] = string(s)
	}
	return fmt.Sprintf(`The type cast "%v" does not exist. Defined type casts are: "%s".`,
		e.Directive, strings.Join(names, `", "`))
}

func (e *InvalidDirectiveError) Is(target error) bool { return target == ErrInvalidDirective }

// ResolutionError is the single error kind returned by Resolver.Resolve.
// Message carries the schema's diagnostic verbatim.
type ResolutionError struct {
	Message string
	cause   error
}

func newResolutionError(cause error) *ResolutionError {
	return &ResolutionError{Message: cause.Error(), cause: cause}
}

func (e *ResolutionError) Error() string {
	return "An error occurred while resolving the options: " + e.Message
}

// Unwrap exposes the schema error, e.g. for errors.Is(err, options.ErrMissingOptions).
func (e *ResolutionError) Unwrap() error { return e.cause }

func (e *ResolutionError) Is(target error) bool { return target == ErrResolution }

const arityMessage = "The given function must accept exactly one required value parameter (the value to cast)."

const emptyCastMessage = "The given cast is empty. Build it with TypeCast or FuncCast."
