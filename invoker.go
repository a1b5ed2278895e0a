package httpservice

import (
	"context"
	"net/http"
)

// Exchanger is the HTTP execution strategy.  It turns a fully bound
// RequestDefinition into a network call.  The httpserviceclient package
// supplies the standard implementation.
type Exchanger interface {
	Exchange(context.Context, *RequestDefinition) (*http.Response, error)
}

// ExchangerFunc is a closure type that implements Exchanger.
type ExchangerFunc func(context.Context, *RequestDefinition) (*http.Response, error)

func (ef ExchangerFunc) Exchange(ctx context.Context, def *RequestDefinition) (*http.Response, error) {
	return ef(ctx, def)
}

// Invoker is the orchestrator that binds an operation's arguments and hands
// the result to an Exchanger.  An Invoker is safe for concurrent use as long
// as its Exchanger is.
type Invoker struct {
	binder    *Binder
	exchanger Exchanger
}

// NewInvoker creates an Invoker.  If b is nil, a Binder with the default
// resolvers is used.  A nil Exchanger is allowed here, but every Invoke
// will then fail with ErrNilExchanger.
func NewInvoker(b *Binder, e Exchanger) *Invoker {
	if b == nil {
		b, _ = NewBinder()
	}

	return &Invoker{
		binder:    b,
		exchanger: e,
	}
}

// Invoke binds values to the operation's parameters and, only if every argument
// was resolved, exchanges the resulting definition.  A binding failure is
// returned without the Exchanger ever being called.
func (inv *Invoker) Invoke(ctx context.Context, op *Operation, values ...any) (*http.Response, error) {
	if inv.exchanger == nil {
		return nil, ErrNilExchanger
	}

	def, err := inv.binder.Bind(op, values...)
	if err != nil {
		return nil, err
	}

	return inv.exchanger.Exchange(ctx, def)
}
