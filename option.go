package httpservice

import (
	"errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrNilResolver is returned by WithResolvers when any resolver is nil.
var ErrNilResolver = errors.New("an ArgumentResolver cannot be nil")

// Option represents something that can modify a target object.
type Option[T any] interface {
	Apply(*T) error
}

// OptionFunc is a closure type that can act as an Option.
type OptionFunc[T any] func(*T) error

func (of OptionFunc[T]) Apply(t *T) error {
	return of(t)
}

// Options is an aggregate Option that allows several options to
// be grouped together.
type Options[T any] []Option[T]

// Apply applies all the options in this slice, returning an
// aggregate error if any errors occurred.  Every option is applied,
// even after an error.
func (o Options[T]) Apply(t *T) (err error) {
	for _, opt := range o {
		err = multierr.Append(err, opt.Apply(t))
	}

	return
}

// InvalidOption returns an Option that returns the given error.
// Useful instead of nil or a panic to indicate that something in the setup
// of an Option went wrong.
func InvalidOption[T any](err error) Option[T] {
	return OptionFunc[T](func(_ *T) error {
		return err
	})
}

// WithResolvers sets the resolver chain for a Binder, replacing any
// previous chain.  To extend the built-in chain, pass DefaultResolvers().Prepend(...)
// or DefaultResolvers().Append(...).
func WithResolvers(rs ...ArgumentResolver) Option[Binder] {
	for _, r := range rs {
		if r == nil {
			return InvalidOption[Binder](ErrNilResolver)
		}
	}

	chain := Resolvers(rs).Append()
	return OptionFunc[Binder](func(b *Binder) error {
		b.resolvers = chain
		return nil
	})
}

// WithLogger sets the zap logger for a Binder.  A nil logger is ignored.
func WithLogger(l *zap.Logger) Option[Binder] {
	return OptionFunc[Binder](func(b *Binder) error {
		if l != nil {
			b.logger = l
		}

		return nil
	})
}
