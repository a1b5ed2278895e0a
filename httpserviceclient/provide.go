package httpserviceclient

import (
	"github.com/xmidt-org/httpservice"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// MiddlewareGroup is the fx value group that ProvideClient and Provide
// consult for RoundTripperConstructor middleware.  Value groups are unordered,
// so middleware whose order matters should be passed as options instead.
const MiddlewareGroup = "httpservice.middleware"

// ClientIn is the set of dependencies for unmarshaling a Client.
type ClientIn struct {
	fx.In

	// Unmarshaler is the required configuration strategy.
	Unmarshaler httpservice.Unmarshaler

	// Middleware is the optional group of decorators for every client.
	Middleware []RoundTripperConstructor `group:"httpservice.middleware"`

	// Logger is the optional zap logger for clients.
	Logger *zap.Logger `optional:"true"`

	// Printer is the optional fx.Printer for informational output.
	Printer fx.Printer `optional:"true"`
}

func newClient(key string, in ClientIn, opts []Option) (*Client, error) {
	var cc ClientConfig
	if err := in.Unmarshaler.UnmarshalKey(key, &cc); err != nil {
		return nil, err
	}

	all := make([]Option, 0, 2+len(opts))
	all = append(all, WithLogger(in.Logger), WithMiddleware(in.Middleware...))
	all = append(all, opts...)
	c, err := cc.NewClient(all...)
	if err == nil {
		httpservice.NewModulePrinter(httpservice.Module, in.Printer).Printf(
			"CLIENT\t[%s] => %s", key, c.base,
		)
	}

	return c, err
}

// ProvideClient unmarshals a ClientConfig from the given key and emits
// a *Client component with the same name as the key.
func ProvideClient(key string, opts ...Option) fx.Option {
	return fx.Provide(
		fx.Annotated{
			Name: key,
			Target: func(in ClientIn) (*Client, error) {
				return newClient(key, in, opts)
			},
		},
	)
}

// Provide is like ProvideClient, but emits the *Client as a global, unnamed
// component along with an unnamed httpservice.Exchanger for httpservice.ProvideInvoker.
func Provide(key string, opts ...Option) fx.Option {
	return fx.Provide(
		func(in ClientIn) (*Client, error) {
			return newClient(key, in, opts)
		},
		func(c *Client) httpservice.Exchanger {
			return c
		},
	)
}
