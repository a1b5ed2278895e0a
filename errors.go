package httpservice

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrAmbiguousAlias indicates that both the value and url aliases of a
	// declaration were set to different, non-empty values.
	ErrAmbiguousAlias = errors.New("ambiguous url alias")

	// ErrMissingRequiredArgument indicates that a required parameter was
	// passed an absent (nil) argument.
	ErrMissingRequiredArgument = errors.New("missing required argument")

	// ErrConflictingBodyBinding indicates that more than one argument attempted
	// to set the request body for the same invocation.
	ErrConflictingBodyBinding = errors.New("conflicting body binding")

	// ErrUnresolvableArgument indicates that no resolver in a chain claimed an argument.
	ErrUnresolvableArgument = errors.New("unresolvable argument")

	// ErrNilExchanger is returned by an Invoker that has no Exchanger.
	ErrNilExchanger = errors.New("an Exchanger is required")
)

// AmbiguousAliasError is returned when a declaration sets both Value and URL
// to different values.  Equal values are not a conflict.
type AmbiguousAliasError struct {
	// Operation is the name of the declaration, which may be empty.
	Operation string

	Value string
	URL   string
}

// Error describes both aliases.
func (aae *AmbiguousAliasError) Error() string {
	var o strings.Builder
	o.WriteString("ambiguous url alias")
	if len(aae.Operation) > 0 {
		o.WriteString(" in [")
		o.WriteString(aae.Operation)
		o.WriteString("]")
	}

	o.WriteString(": value=")
	o.WriteString(strconv.Quote(aae.Value))
	o.WriteString(" url=")
	o.WriteString(strconv.Quote(aae.URL))
	return o.String()
}

// Is allows errors.Is(err, ErrAmbiguousAlias).
func (aae *AmbiguousAliasError) Is(target error) bool {
	return target == ErrAmbiguousAlias
}

// InvalidDeclarationError indicates that a Declaration could not be turned
// into a Descriptor for some reason other than an alias conflict.
type InvalidDeclarationError struct {
	Operation string
	Err       error
}

// Error describes the declaration and the underlying problem.
func (ide *InvalidDeclarationError) Error() string {
	var o strings.Builder
	o.WriteString("invalid declaration")
	if len(ide.Operation) > 0 {
		o.WriteString(" [")
		o.WriteString(ide.Operation)
		o.WriteString("]")
	}

	o.WriteString(": ")
	o.WriteString(ide.Err.Error())
	return o.String()
}

// Unwrap returns the underlying cause.
func (ide *InvalidDeclarationError) Unwrap() error {
	return ide.Err
}

// ArgumentError locates a failure to resolve a single argument.  Err is
// always one of the kind sentinels in this package or an error returned by
// a resolver, so errors.Is can be used to classify an ArgumentError.
type ArgumentError struct {
	// Operation is the name of the operation being invoked.
	Operation string

	// Parameter is the declared name of the parameter.
	Parameter string

	// Position is the ordinal of the parameter in its declaration.
	Position int

	Err error
}

// Error reports the operation, parameter and position.
func (ae *ArgumentError) Error() string {
	var o strings.Builder
	o.WriteString(ae.Err.Error())
	o.WriteString(": parameter [")
	o.WriteString(ae.Parameter)
	o.WriteString("] at position ")
	o.WriteString(strconv.Itoa(ae.Position))
	if len(ae.Operation) > 0 {
		o.WriteString(" of [")
		o.WriteString(ae.Operation)
		o.WriteString("]")
	}

	return o.String()
}

// Unwrap returns the kind of failure.
func (ae *ArgumentError) Unwrap() error {
	return ae.Err
}

// ArgumentCountError is returned when the number of runtime values does not
// match the number of parameters declared for an operation.
type ArgumentCountError struct {
	Operation string
	Expected  int
	Actual    int
}

func (ace *ArgumentCountError) Error() string {
	var o strings.Builder
	o.WriteString("operation [")
	o.WriteString(ace.Operation)
	o.WriteString("] expects ")
	o.WriteString(strconv.Itoa(ace.Expected))
	o.WriteString(" argument(s), got ")
	o.WriteString(strconv.Itoa(ace.Actual))
	return o.String()
}
