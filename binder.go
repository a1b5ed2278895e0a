package httpservice

import (
	"go.uber.org/zap"
)

// Binder turns an operation's arguments into a RequestDefinition using an
// ordered chain of resolvers.
//
// A Binder is immutable once created and may be shared by any number of
// concurrent invocations.
type Binder struct {
	resolvers Resolvers
	logger    *zap.Logger
}

// NewBinder creates a Binder.  With no options, DefaultResolvers() is the
// chain and logging is disabled.
func NewBinder(opts ...Option[Binder]) (*Binder, error) {
	b := new(Binder)
	if err := Options[Binder](opts).Apply(b); err != nil {
		return nil, err
	}

	if len(b.resolvers) == 0 {
		b.resolvers = DefaultResolvers()
	}

	if b.logger == nil {
		b.logger = zap.NewNop()
	}

	return b, nil
}

// Resolvers returns a copy of this binder's chain.
func (b *Binder) Resolvers() Resolvers {
	return b.resolvers.Append()
}

// BindArguments creates a new RequestDefinition for the descriptor and offers
// each argument, in order, to the resolver chain.  The first resolver to claim an
// argument is the only one that acts on it.
//
// Resolution stops at the first failure, and the partially built definition is
// discarded.  Every failure is an *ArgumentError.  An argument that no resolver
// claims fails with ErrUnresolvableArgument; arguments are never dropped silently.
func (b *Binder) BindArguments(d Descriptor, args ...Argument) (*RequestDefinition, error) {
	def := NewRequestDefinition(d)
	for _, arg := range args {
		claimed, err := b.resolvers.Resolve(arg.Value, arg.Parameter, def)
		if err == nil && !claimed {
			err = ErrUnresolvableArgument
		}

		if err != nil {
			b.logger.Debug(
				"argument resolution failed",
				zap.String("operation", d.Name()),
				zap.String("parameter", arg.Parameter.Name),
				zap.Int("position", arg.Parameter.Position),
				zap.Error(err),
			)

			return nil, &ArgumentError{
				Operation: d.Name(),
				Parameter: arg.Parameter.Name,
				Position:  arg.Parameter.Position,
				Err:       err,
			}
		}
	}

	b.logger.Debug(
		"arguments bound",
		zap.String("operation", d.Name()),
		zap.Stringer("method", d.Method()),
		zap.Int("arguments", len(args)),
	)

	return def, nil
}

// Bind pairs runtime values with the operation's parameters and binds them.
func (b *Binder) Bind(op *Operation, values ...any) (*RequestDefinition, error) {
	args, err := op.Arguments(values...)
	if err != nil {
		return nil, err
	}

	return b.BindArguments(op.Descriptor(), args...)
}
