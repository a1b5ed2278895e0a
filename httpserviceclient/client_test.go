package httpserviceclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/httpaux/httpmock"
	"github.com/xmidt-org/httpaux/roundtrip"
	"github.com/xmidt-org/httpservice"
	"github.com/xmidt-org/httpservice/httpservicetest"
	"go.uber.org/zap/zaptest"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ClientSuite struct {
	suite.Suite

	server *httptest.Server
	items  map[string]item
}

func (suite *ClientSuite) SetupSuite() {
	suite.items = map[string]item{
		"42": {ID: "42", Name: "widget"},
	}

	router := mux.NewRouter()
	router.HandleFunc("/v1/items/{id}", suite.getItem).Methods(http.MethodGet)
	router.HandleFunc("/v1/items", suite.createItem).Methods(http.MethodPost)
	suite.server = httptest.NewServer(router)
}

func (suite *ClientSuite) TearDownSuite() {
	suite.server.Close()
}

func (suite *ClientSuite) getItem(response http.ResponseWriter, request *http.Request) {
	if request.Header.Get("Accept") != "application/json" {
		response.WriteHeader(http.StatusNotAcceptable)
		return
	}

	i, ok := suite.items[mux.Vars(request)["id"]]
	if !ok {
		http.Error(response, "no such item", http.StatusNotFound)
		return
	}

	response.Header().Set("Content-Type", "application/json")
	response.Header().Set("X-Echo-Client", request.Header.Get("X-Client"))
	json.NewEncoder(response).Encode(i)
}

func (suite *ClientSuite) createItem(response http.ResponseWriter, request *http.Request) {
	var i item
	if request.Header.Get("Content-Type") != MediaTypeJSON {
		response.WriteHeader(http.StatusUnsupportedMediaType)
		return
	}

	if err := json.NewDecoder(request.Body).Decode(&i); err != nil {
		response.WriteHeader(http.StatusBadRequest)
		return
	}

	i.ID = "new"
	response.WriteHeader(http.StatusCreated)
	json.NewEncoder(response).Encode(i)
}

func (suite *ClientSuite) newClient(opts ...Option) *Client {
	c, err := ClientConfig{
		BaseURL: suite.server.URL + "/v1",
		Header:  http.Header{"X-Client": {"test"}},
	}.NewClient(
		append([]Option{WithLogger(zaptest.NewLogger(suite.T()))}, opts...)...,
	)

	suite.Require().NoError(err)
	suite.Require().NotNil(c)
	return c
}

func (suite *ClientSuite) getItemOperation() *httpservice.Operation {
	return httpservice.MustOperation(
		httpservice.GetRequest{
			Name:   "getItem",
			Value:  "/items/{id}",
			Accept: []string{"application/json"},
		},
		httpservice.PathVariable("id"),
	)
}

func (suite *ClientSuite) TestGetItem() {
	var (
		c       = suite.newClient()
		invoker = httpservice.NewInvoker(nil, c)
	)

	response, err := invoker.Invoke(context.Background(), suite.getItemOperation(), 42)
	suite.Require().NoError(err)
	suite.Equal("test", response.Header.Get("X-Echo-Client"))

	var actual item
	suite.Require().NoError(DecodeJSON(response, &actual))
	suite.Equal(item{ID: "42", Name: "widget"}, actual)
}

func (suite *ClientSuite) TestNotFound() {
	invoker := httpservice.NewInvoker(nil, suite.newClient())
	response, err := invoker.Invoke(context.Background(), suite.getItemOperation(), "missing")
	suite.Require().NoError(err)

	var se *StatusError
	suite.Require().ErrorAs(DecodeJSON(response, new(item)), &se)
	suite.Equal(http.StatusNotFound, se.StatusCode)
	suite.Equal("no such item\n", string(se.Body))
}

func (suite *ClientSuite) TestCreateItem() {
	var (
		invoker = httpservice.NewInvoker(nil, suite.newClient())
		create  = httpservice.MustOperation(
			httpservice.PostRequest{Name: "createItem", URL: "items"},
			httpservice.Body("item"),
		)
	)

	response, err := invoker.Invoke(context.Background(), create, item{Name: "gadget"})
	suite.Require().NoError(err)
	suite.Equal(http.StatusCreated, response.StatusCode)

	var actual item
	suite.Require().NoError(DecodeJSON(response, &actual))
	suite.Equal(item{ID: "new", Name: "gadget"}, actual)
}

func (suite *ClientSuite) TestMiddlewareOrder() {
	var order []string
	record := func(name string) RoundTripperConstructor {
		return func(next http.RoundTripper) http.RoundTripper {
			return roundtrip.Func(func(request *http.Request) (*http.Response, error) {
				order = append(order, name)
				suite.Equal("test", request.Header.Get("X-Client"))
				return next.RoundTrip(request)
			})
		}
	}

	c := suite.newClient(
		WithMiddleware(record("first"), record("second")),
		WithMiddleware(record("third")),
	)

	response, err := c.Exchange(
		context.Background(),
		suite.bind(suite.getItemOperation(), 42),
	)

	suite.Require().NoError(err)
	response.Body.Close()
	suite.Equal([]string{"first", "second", "third"}, order)
}

func (suite *ClientSuite) TestMockTransport() {
	var (
		transport = new(httpservicetest.MockRoundTripper)
		c         = suite.newClient(WithTransport(transport))
		matcher   = new(httpservicetest.RequestMatcher).
				Method(http.MethodGet).
				Path("/v1/items/42").
				Header("Accept", "application/json").
				Header("X-Client", "test")
	)

	transport.ExpectMatch(matcher).Response(&http.Response{
		StatusCode: 299,
		Body:       io.NopCloser(strings.NewReader("")),
	}).Once()

	response, err := c.Exchange(context.Background(), suite.bind(suite.getItemOperation(), 42))
	suite.Require().NoError(err)
	suite.Equal(299, response.StatusCode)
	transport.AssertExpectations(suite.T())
}

func (suite *ClientSuite) TestHTTPMock() {
	var (
		transport = httpmock.NewRoundTripperSuite(suite)
		c         = suite.newClient(WithTransport(transport))
	)

	transport.OnMatchAll(httpmock.RequestMatcherFunc(
		func(candidate *http.Request) bool {
			return candidate.URL.Query().Get("q") == "widgets"
		},
	)).Return(&http.Response{
		StatusCode: 299,
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil).Once()

	search := httpservice.MustOperation(
		httpservice.GetRequest{Name: "search", URL: "/search"},
		httpservice.QueryParam("q"),
	)

	response, err := c.Exchange(context.Background(), suite.bind(search, "widgets"))
	suite.Require().NoError(err)
	suite.Equal(299, response.StatusCode)
	transport.AssertExpectations()
}

func (suite *ClientSuite) TestTransportError() {
	var (
		expected  = errors.New("expected")
		transport = new(httpservicetest.MockRoundTripper)
		c         = suite.newClient(WithTransport(transport))
	)

	transport.ExpectMatch(new(httpservicetest.RequestMatcher)).Error(expected).Once()
	_, err := c.Exchange(context.Background(), suite.bind(suite.getItemOperation(), 42))
	suite.ErrorIs(err, expected)
	transport.AssertExpectations(suite.T())
}

func (suite *ClientSuite) TestRequestError() {
	var (
		c   = suite.newClient()
		def = suite.bind(httpservice.MustOperation(httpservice.GetRequest{URL: "/items/{id}"}))
	)

	response, err := c.Exchange(context.Background(), def)
	suite.Nil(response)

	var upve *UnboundPathVariableError
	suite.ErrorAs(err, &upve)
}

func (suite *ClientSuite) TestAccessors() {
	c := suite.newClient()
	suite.Equal(suite.server.URL+"/v1", c.BaseURL().String())
	suite.NotNil(c.HTTPClient())

	c.BaseURL().Path = "/changed"
	suite.Equal(suite.server.URL+"/v1", c.BaseURL().String())
}

func (suite *ClientSuite) TestInvalidConfig() {
	_, err := ClientConfig{BaseURL: "not a url"}.NewClient()
	suite.Error(err)

	_, err = ClientConfig{}.NewClient(WithTransport(nil))
	suite.ErrorIs(err, ErrNilTransport)
}

func (suite *ClientSuite) TestNewClient() {
	c, err := NewClient(suite.server.URL + "/v1")
	suite.Require().NoError(err)

	response, err := c.Exchange(context.Background(), suite.bind(suite.getItemOperation(), 42))
	suite.Require().NoError(err)
	suite.Require().NoError(DecodeJSON(response, new(item)))
}

func (suite *ClientSuite) bind(op *httpservice.Operation, values ...any) *httpservice.RequestDefinition {
	b, err := httpservice.NewBinder()
	suite.Require().NoError(err)

	def, err := b.Bind(op, values...)
	suite.Require().NoError(err)
	return def
}

func TestClient(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}
