package httpserviceclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/httpservice"
)

func TestExpandPath(t *testing.T) {
	testData := []struct {
		template string
		vars     map[string]string
		expected string
	}{
		{"", nil, ""},
		{"/items", nil, "/items"},
		{"/items/{id}", map[string]string{"id": "42"}, "/items/42"},
		{"/a/{x}/b/{y}", map[string]string{"x": "1", "y": "2"}, "/a/1/b/2"},
		{"/items/{id}", map[string]string{"id": "a b/c"}, "/items/a%20b%2Fc"},
		{"/broken/{id", nil, "/broken/{id"},
	}

	for _, record := range testData {
		t.Run(record.template, func(t *testing.T) {
			var (
				assert  = assert.New(t)
				require = require.New(t)
			)

			actual, err := ExpandPath(record.template, record.vars)
			require.NoError(err)
			assert.Equal(record.expected, actual)
		})
	}

	t.Run("Unused", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
		)

		_, err := ExpandPath("/items/{id}", map[string]string{"id": "1", "b": "2", "a": "3"})

		var upve *UnusedPathVariableError
		require.ErrorAs(err, &upve)
		assert.Equal("a", upve.Name)
		assert.Empty(upve.Operation)
	})

	t.Run("RepeatedPlaceholder", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
		)

		actual, err := ExpandPath("/{id}/copy/{id}", map[string]string{"id": "1"})
		require.NoError(err)
		assert.Equal("/1/copy/1", actual)
	})

	t.Run("Unbound", func(t *testing.T) {
		assert := assert.New(t)
		_, err := ExpandPath("/items/{id}", map[string]string{"other": "x"})

		var upve *UnboundPathVariableError
		assert.ErrorAs(err, &upve)
		assert.Equal("id", upve.Name)
	})
}

type NewRequestSuite struct {
	suite.Suite

	base *url.URL
}

func (suite *NewRequestSuite) SetupTest() {
	var err error
	suite.base, err = url.Parse("https://api.example.com/v1/")
	suite.Require().NoError(err)
}

func (suite *NewRequestSuite) bind(op *httpservice.Operation, values ...any) *httpservice.RequestDefinition {
	b, err := httpservice.NewBinder()
	suite.Require().NoError(err)

	def, err := b.Bind(op, values...)
	suite.Require().NoError(err)
	return def
}

func (suite *NewRequestSuite) TestGetItem() {
	def := suite.bind(
		httpservice.MustOperation(
			httpservice.GetRequest{
				Name:    "getItem",
				Value:   "/items/{id}",
				Accept:  []string{"application/json", "text/plain"},
				Headers: []string{"X-Static=1"},
			},
			httpservice.PathVariable("id"),
			httpservice.QueryParam("expand"),
			httpservice.Cookie("session"),
		),
		42, []string{"a", "b"}, "s1",
	)

	request, err := NewRequest(context.Background(), suite.base, def, nil)
	suite.Require().NoError(err)
	suite.Equal(http.MethodGet, request.Method)
	suite.Equal("https://api.example.com/v1/items/42?expand=a&expand=b", request.URL.String())
	suite.Equal("application/json, text/plain", request.Header.Get("Accept"))
	suite.Equal("1", request.Header.Get("X-Static"))
	suite.Empty(request.Header.Get("Content-Type"))
	suite.Nil(request.Body)

	cookie, err := request.Cookie("session")
	suite.Require().NoError(err)
	suite.Equal("s1", cookie.Value)
}

func (suite *NewRequestSuite) TestTemplateQuery() {
	def := suite.bind(
		httpservice.MustOperation(
			httpservice.GetRequest{URL: "/search?fixed=1"},
			httpservice.QueryParam("q"),
		),
		"x",
	)

	request, err := NewRequest(context.Background(), suite.base, def, nil)
	suite.Require().NoError(err)
	suite.Equal("/v1/search", request.URL.Path)
	suite.Equal(url.Values{"fixed": {"1"}, "q": {"x"}}, request.URL.Query())
}

func (suite *NewRequestSuite) TestEscapedPathVariable() {
	def := suite.bind(
		httpservice.MustOperation(
			httpservice.GetRequest{URL: "/files/{name}"},
			httpservice.PathVariable("name"),
		),
		"a/b c",
	)

	request, err := NewRequest(context.Background(), suite.base, def, nil)
	suite.Require().NoError(err)
	suite.Equal("/v1/files/a%2Fb%20c", request.URL.EscapedPath())
}

func (suite *NewRequestSuite) TestAbsoluteURL() {
	def := suite.bind(
		httpservice.MustOperation(httpservice.GetRequest{URL: "http://elsewhere.example.com/health"}),
	)

	request, err := NewRequest(context.Background(), suite.base, def, nil)
	suite.Require().NoError(err)
	suite.Equal("http://elsewhere.example.com/health", request.URL.String())
}

func (suite *NewRequestSuite) testURIOverride(target, expected string) {
	uri, err := url.Parse(target)
	suite.Require().NoError(err)

	def := suite.bind(
		httpservice.MustOperation(
			httpservice.DeleteRequest{URL: "/items/{id}"},
			httpservice.URLParam("target"),
			httpservice.PathVariable("id"),
		),
		uri, "x",
	)

	request, err := NewRequest(context.Background(), suite.base, def, nil)
	suite.Require().NoError(err)
	suite.Equal(http.MethodDelete, request.Method)
	suite.Equal(expected, request.URL.String())
}

func (suite *NewRequestSuite) TestURIOverride() {
	suite.Run("Absolute", func() {
		suite.testURIOverride("https://override.example.com/v2", "https://override.example.com/v2/items/x")
	})

	suite.Run("RootRelative", func() {
		suite.testURIOverride("/v2", "https://api.example.com/v2/items/x")
	})

	suite.Run("PathRelative", func() {
		suite.testURIOverride("beta", "https://api.example.com/v1/beta/items/x")
	})

	suite.Run("NoBaseURL", func() {
		uri, err := url.Parse("/v2")
		suite.Require().NoError(err)

		def := suite.bind(
			httpservice.MustOperation(
				httpservice.GetRequest{URL: "/items"},
				httpservice.URLParam("target"),
			),
			uri,
		)

		request, err := NewRequest(context.Background(), nil, def, nil)
		suite.Require().NoError(err)
		suite.Equal("/v2/items", request.URL.String())
	})
}

func (suite *NewRequestSuite) TestNoBaseURL() {
	def := suite.bind(httpservice.MustOperation(httpservice.GetRequest{URL: "/items"}))
	request, err := NewRequest(context.Background(), nil, def, nil)
	suite.Require().NoError(err)
	suite.Equal("/items", request.URL.String())
}

func (suite *NewRequestSuite) TestUnboundPathVariable() {
	def := suite.bind(httpservice.MustOperation(httpservice.GetRequest{Name: "getItem", URL: "/items/{id}"}))
	_, err := NewRequest(context.Background(), suite.base, def, nil)

	var upve *UnboundPathVariableError
	suite.Require().ErrorAs(err, &upve)
	suite.Equal("getItem", upve.Operation)
	suite.Equal("no value bound to path variable {id} in [getItem]", upve.Error())
}

func (suite *NewRequestSuite) TestUnusedPathVariable() {
	def := suite.bind(
		httpservice.MustOperation(
			httpservice.GetRequest{Name: "listItems", URL: "/items"},
			httpservice.PathVariable("id"),
		),
		42,
	)

	_, err := NewRequest(context.Background(), suite.base, def, nil)

	var upve *UnusedPathVariableError
	suite.Require().ErrorAs(err, &upve)
	suite.Equal("id", upve.Name)
	suite.Equal("path variable [id] has no placeholder in [listItems]", upve.Error())
}

func (suite *NewRequestSuite) TestBodies() {
	type item struct {
		Name string `json:"name" query:"name"`
	}

	testData := []struct {
		name                string
		contentType         string
		body                any
		expectedBody        string
		expectedContentType string
	}{
		{"JSONDefault", "", item{Name: "widget"}, `{"name":"widget"}`, MediaTypeJSON},
		{"JSONExplicit", "application/json; charset=utf-8", item{Name: "widget"}, `{"name":"widget"}`, "application/json; charset=utf-8"},
		{"Form", MediaTypeForm, item{Name: "widget"}, "name=widget", MediaTypeForm},
		{"Bytes", "application/octet-stream", []byte("raw"), "raw", "application/octet-stream"},
		{"String", "text/plain", "hello", "hello", "text/plain"},
		{"Reader", "", bytes.NewBufferString("stream"), "stream", ""},
	}

	for _, record := range testData {
		suite.Run(record.name, func() {
			def := suite.bind(
				httpservice.MustOperation(
					httpservice.PostRequest{URL: "/items", ContentType: record.contentType},
					httpservice.Body("item"),
				),
				record.body,
			)

			request, err := NewRequest(context.Background(), suite.base, def, nil)
			suite.Require().NoError(err)
			suite.Require().NotNil(request.Body)
			suite.Equal(record.expectedContentType, request.Header.Get("Content-Type"))

			actual, err := io.ReadAll(request.Body)
			suite.Require().NoError(err)
			suite.Equal(record.expectedBody, string(actual))
		})
	}
}

func (suite *NewRequestSuite) TestUnsupportedContentType() {
	def := suite.bind(
		httpservice.MustOperation(
			httpservice.PostRequest{URL: "/items", ContentType: "application/xml"},
			httpservice.Body("item"),
		),
		struct{ A int }{A: 1},
	)

	_, err := NewRequest(context.Background(), suite.base, def, nil)
	var umte *UnsupportedMediaTypeError
	suite.ErrorAs(err, &umte)
}

func (suite *NewRequestSuite) TestHeaderArgumentOverridesAccept() {
	def := suite.bind(
		httpservice.MustOperation(
			httpservice.GetRequest{URL: "/items", Accept: []string{"application/json"}},
			httpservice.Header("Accept"),
		),
		"text/csv",
	)

	request, err := NewRequest(context.Background(), suite.base, def, nil)
	suite.Require().NoError(err)
	suite.Equal([]string{"text/csv"}, request.Header.Values("Accept"))
}

func TestNewRequest(t *testing.T) {
	suite.Run(t, new(NewRequestSuite))
}
