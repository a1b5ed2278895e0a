package httpservice

import (
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// InvalidParameterError describes a parameter declaration that can never be bound.
type InvalidParameterError struct {
	Operation string
	Position  int
	Reason    string
}

func (ipe *InvalidParameterError) Error() string {
	var o strings.Builder
	o.WriteString("invalid parameter at position ")
	o.WriteString(strconv.Itoa(ipe.Position))
	if len(ipe.Operation) > 0 {
		o.WriteString(" of [")
		o.WriteString(ipe.Operation)
		o.WriteString("]")
	}

	o.WriteString(": ")
	o.WriteString(ipe.Reason)
	return o.String()
}

// Operation is a declared HTTP operation: a Descriptor together with the
// ordered parameters that its arguments are bound to.  An Operation is
// immutable and safe for concurrent use.
type Operation struct {
	descriptor Descriptor
	parameters []Parameter
}

// NewOperation resolves a declaration and associates it with parameters.  Each
// parameter's Position is set to its index.
//
// All parameter problems are reported, not just the first, as an aggregate
// error that can be inspected with go.uber.org/multierr.
func NewOperation(d Declarer, params ...Parameter) (*Operation, error) {
	desc, err := NewDescriptor(d)
	if err != nil {
		return nil, err
	}

	return newOperation(desc, params)
}

// MustOperation is like NewOperation, but panics on any error.
func MustOperation(d Declarer, params ...Parameter) *Operation {
	op, err := NewOperation(d, params...)
	if err != nil {
		panic(err)
	}

	return op
}

func newOperation(desc Descriptor, params []Parameter) (op *Operation, err error) {
	var (
		body     bool
		pathVars = make(map[string]bool)
	)

	op = &Operation{
		descriptor: desc,
		parameters: make([]Parameter, len(params)),
	}

	for i, p := range params {
		p.Position = i
		op.parameters[i] = p

		if len(p.Name) == 0 {
			err = multierr.Append(err, &InvalidParameterError{
				Operation: desc.Name(),
				Position:  i,
				Reason:    "a name is required",
			})

			continue
		}

		switch p.Kind {
		case KindPathVariable:
			if pathVars[p.WireName()] {
				err = multierr.Append(err, &InvalidParameterError{
					Operation: desc.Name(),
					Position:  i,
					Reason:    "duplicate path variable [" + p.WireName() + "]",
				})
			}

			pathVars[p.WireName()] = true

		case KindBody:
			if body {
				err = multierr.Append(err, &ArgumentError{
					Operation: desc.Name(),
					Parameter: p.Name,
					Position:  i,
					Err:       ErrConflictingBodyBinding,
				})
			}

			body = true
		}
	}

	if err != nil {
		op = nil
	}

	return
}

// Descriptor returns the resolved metadata for this operation.
func (op *Operation) Descriptor() Descriptor {
	return op.descriptor
}

// Name is the operation identity.
func (op *Operation) Name() string {
	return op.descriptor.Name()
}

// Parameters returns a copy of the declared parameters, in order.
func (op *Operation) Parameters() []Parameter {
	return append([]Parameter(nil), op.parameters...)
}

// Arguments pairs runtime values with this operation's parameters.  The
// number of values must equal the number of parameters.
func (op *Operation) Arguments(values ...any) ([]Argument, error) {
	if len(values) != len(op.parameters) {
		return nil, &ArgumentCountError{
			Operation: op.Name(),
			Expected:  len(op.parameters),
			Actual:    len(values),
		}
	}

	args := make([]Argument, len(values))
	for i, v := range values {
		args[i] = Argument{
			Value:     v,
			Parameter: op.parameters[i],
		}
	}

	return args, nil
}
