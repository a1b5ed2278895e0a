package httpservice

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ServiceIn is the set of dependencies required to unmarshal a Service.
type ServiceIn struct {
	fx.In

	// Unmarshaler is the required strategy for reading configuration.
	// ForViper supplies this component.
	Unmarshaler Unmarshaler

	// Printer is the optional fx.Printer for informational output.
	Printer fx.Printer `optional:"true"`
}

// ProvideService unmarshals a ServiceConfig from the given configuration key
// and emits the resulting *Service as a component named with that key.
func ProvideService(key string) fx.Option {
	return fx.Provide(
		fx.Annotated{
			Name: key,
			Target: func(in ServiceIn) (*Service, error) {
				var sc ServiceConfig
				if err := in.Unmarshaler.UnmarshalKey(key, &sc); err != nil {
					return nil, err
				}

				s, err := sc.NewService()
				if err == nil {
					NewModulePrinter(Module, in.Printer).Printf(
						"SERVICE\t[%s] => %d operation(s)", key, len(s.operations),
					)
				}

				return s, err
			},
		},
	)
}

// BinderIn is the set of optional dependencies for a Binder.
type BinderIn struct {
	fx.In

	// Resolvers is the optional resolver chain.  Order matters, which is why
	// this is a single component rather than a value group.  If not supplied,
	// DefaultResolvers() is used.
	Resolvers Resolvers `optional:"true"`

	// Logger is the optional zap logger for binding diagnostics.
	Logger *zap.Logger `optional:"true"`
}

// ProvideBinder emits a global, unnamed *Binder component.
func ProvideBinder() fx.Option {
	return fx.Provide(
		func(in BinderIn) (*Binder, error) {
			var opts []Option[Binder]
			if len(in.Resolvers) > 0 {
				opts = append(opts, WithResolvers(in.Resolvers...))
			}

			opts = append(opts, WithLogger(in.Logger))
			return NewBinder(opts...)
		},
	)
}

// InvokerIn is the set of dependencies for an Invoker.
type InvokerIn struct {
	fx.In

	// Binder is the optional Binder.  ProvideBinder supplies this component.
	Binder *Binder `optional:"true"`

	// Exchanger is the required HTTP execution strategy.
	Exchanger Exchanger
}

// ProvideInvoker emits a global, unnamed *Invoker component that uses
// the unnamed Exchanger in the enclosing fx.App.
func ProvideInvoker() fx.Option {
	return fx.Provide(
		func(in InvokerIn) *Invoker {
			return NewInvoker(in.Binder, in.Exchanger)
		},
	)
}
