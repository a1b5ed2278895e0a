package httpservice

// ArgumentResolver is a strategy for binding one argument into a RequestDefinition.
//
// A resolver that does not recognize the parameter must return false and a nil
// error, and it must not modify the definition.  A resolver that claims the
// argument returns true and makes exactly one contribution to the definition,
// unless the argument is absent and its parameter is optional, in which case
// nothing is contributed.
//
// An absent argument for a required parameter results in ErrMissingRequiredArgument.
//
// Resolvers are shared across invocations and goroutines.  Implementations must
// take all per-call state from their parameters.
type ArgumentResolver interface {
	Resolve(value any, p Parameter, def *RequestDefinition) (claimed bool, err error)
}

// ArgumentResolverFunc is a closure type that implements ArgumentResolver.
type ArgumentResolverFunc func(any, Parameter, *RequestDefinition) (bool, error)

func (arf ArgumentResolverFunc) Resolve(value any, p Parameter, def *RequestDefinition) (bool, error) {
	return arf(value, p, def)
}

// Resolvers is an ordered chain of ArgumentResolver strategies.  Registration
// order is significant: the first resolver to claim an argument wins, and no
// later resolver sees that argument.  Placing a resolver earlier in the chain is
// how a built-in resolver is overridden.
//
// The Append and Prepend methods never modify the receiver, so a Resolvers
// can be shared safely once built.
type Resolvers []ArgumentResolver

// Resolve offers the argument to each resolver in order, stopping at the first
// claim or the first error.  If no resolver claims the argument, this method
// returns false and a nil error.
func (rs Resolvers) Resolve(value any, p Parameter, def *RequestDefinition) (claimed bool, err error) {
	for i := 0; !claimed && err == nil && i < len(rs); i++ {
		claimed, err = rs[i].Resolve(value, p, def)
	}

	return
}

// Append returns a new chain with more resolvers after the ones in this chain.
func (rs Resolvers) Append(more ...ArgumentResolver) Resolvers {
	return append(
		append(make(Resolvers, 0, len(rs)+len(more)), rs...),
		more...,
	)
}

// Prepend returns a new chain with more resolvers ahead of the ones in this chain.
// The prepended resolvers take precedence.
func (rs Resolvers) Prepend(more ...ArgumentResolver) Resolvers {
	return append(
		append(make(Resolvers, 0, len(rs)+len(more)), more...),
		rs...,
	)
}

// DefaultResolvers returns the built-in resolvers, in the order a Binder
// uses when no resolvers are configured.
func DefaultResolvers() Resolvers {
	return Resolvers{
		URLResolver{},
		MethodResolver{},
		PathVariableResolver{},
		QueryParamResolver{},
		HeaderResolver{},
		CookieResolver{},
		BodyResolver{},
	}
}
