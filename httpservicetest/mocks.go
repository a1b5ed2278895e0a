package httpservicetest

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/httpservice"
)

// MockArgumentResolver is a mocked httpservice.ArgumentResolver.
type MockArgumentResolver struct {
	mock.Mock
}

var _ httpservice.ArgumentResolver = (*MockArgumentResolver)(nil)

// Resolve executes the appropriate mocked call.
func (m *MockArgumentResolver) Resolve(value any, p httpservice.Parameter, def *httpservice.RequestDefinition) (bool, error) {
	args := m.Called(value, p, def)
	return args.Bool(0), args.Error(1)
}

// ExpectResolve sets an expectation for a value and a parameter name.  Use
// Return(claimed, err) on the result, optionally with Run to modify the definition.
func (m *MockArgumentResolver) ExpectResolve(value any, name string) *mock.Call {
	return m.On(
		"Resolve",
		value,
		mock.MatchedBy(func(p httpservice.Parameter) bool { return p.Name == name }),
		mock.AnythingOfType("*httpservice.RequestDefinition"),
	)
}

// MockExchanger is a mocked httpservice.Exchanger.
type MockExchanger struct {
	mock.Mock
}

var _ httpservice.Exchanger = (*MockExchanger)(nil)

// Exchange executes the appropriate mocked call.
func (m *MockExchanger) Exchange(ctx context.Context, def *httpservice.RequestDefinition) (*http.Response, error) {
	args := m.Called(ctx, def)
	response, _ := args.Get(0).(*http.Response)
	return response, args.Error(1)
}

// ExpectExchange sets an expectation for any context and a definition that
// satisfies the predicate.
func (m *MockExchanger) ExpectExchange(p func(*httpservice.RequestDefinition) bool) *mock.Call {
	return m.On("Exchange", mock.Anything, mock.MatchedBy(p))
}
