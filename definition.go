package httpservice

import (
	"net/http"
	"net/url"
)

// RequestDefinition accumulates the parts of one outgoing request while
// arguments are resolved.  It starts out with the method, url, accept types,
// content type, and static headers of a Descriptor.
//
// A RequestDefinition belongs to exactly one invocation.  It is not safe for
// concurrent use and must not be reused once it has been exchanged.
type RequestDefinition struct {
	operation   string
	method      Method
	url         string
	uri         *url.URL
	accept      []string
	contentType string

	pathVariables map[string]string
	query         url.Values
	header        http.Header
	cookies       url.Values

	body    any
	hasBody bool
}

// NewRequestDefinition creates an empty accumulator seeded from a descriptor.
func NewRequestDefinition(d Descriptor) *RequestDefinition {
	return &RequestDefinition{
		operation:     d.name,
		method:        d.method,
		url:           d.url,
		accept:        d.Accept(),
		contentType:   d.contentType,
		pathVariables: make(map[string]string),
		query:         make(url.Values),
		header:        d.Header(),
		cookies:       make(url.Values),
	}
}

// Operation is the name of the operation this definition was created for.
func (rd *RequestDefinition) Operation() string {
	return rd.operation
}

// Method is the HTTP verb for this request.
func (rd *RequestDefinition) Method() Method {
	return rd.method
}

// SetMethod overrides the verb inherited from the descriptor.
func (rd *RequestDefinition) SetMethod(m Method) {
	rd.method = m
}

// URL is the path template inherited from the descriptor.
func (rd *RequestDefinition) URL() string {
	return rd.url
}

// URI is the absolute or relative URI supplied by an argument, which overrides
// the client's base url.  This method returns nil if no such argument was bound.
func (rd *RequestDefinition) URI() *url.URL {
	if rd.uri == nil {
		return nil
	}

	clone := *rd.uri
	return &clone
}

// SetURI sets the URI used in place of the client's base url.
func (rd *RequestDefinition) SetURI(u *url.URL) {
	clone := *u
	rd.uri = &clone
}

// Accept returns a copy of the accepted media types.
func (rd *RequestDefinition) Accept() []string {
	return append([]string(nil), rd.accept...)
}

// ContentType is the media type of the body, if any.
func (rd *RequestDefinition) ContentType() string {
	return rd.contentType
}

// AddPathVariable binds a value to a placeholder in the url template.  Names
// are unique, so binding the same name twice replaces the earlier value.
func (rd *RequestDefinition) AddPathVariable(name, value string) {
	rd.pathVariables[name] = value
}

// PathVariables returns a copy of the bound path variables.
func (rd *RequestDefinition) PathVariables() map[string]string {
	clone := make(map[string]string, len(rd.pathVariables))
	for k, v := range rd.pathVariables {
		clone[k] = v
	}

	return clone
}

// AddQuery appends values to a query parameter.  Repeated names are allowed
// and all values are kept in order.
func (rd *RequestDefinition) AddQuery(name string, values ...string) {
	rd.query[name] = append(rd.query[name], values...)
}

// Query returns a copy of the query parameters.
func (rd *RequestDefinition) Query() url.Values {
	return cloneValues(rd.query)
}

// AddHeader appends values to a request header.  The name is canonicalized.
func (rd *RequestDefinition) AddHeader(name string, values ...string) {
	key := http.CanonicalHeaderKey(name)
	rd.header[key] = append(rd.header[key], values...)
}

// Header returns a copy of the request headers, including any static headers
// from the descriptor.
func (rd *RequestDefinition) Header() http.Header {
	return rd.header.Clone()
}

// AddCookie appends values to a cookie.
func (rd *RequestDefinition) AddCookie(name string, values ...string) {
	rd.cookies[name] = append(rd.cookies[name], values...)
}

// Cookies returns a copy of the cookies, keyed by name.
func (rd *RequestDefinition) Cookies() url.Values {
	return cloneValues(rd.cookies)
}

// SetBody sets the request body.  A definition has at most one body, so
// this method returns ErrConflictingBodyBinding if a body was already set,
// leaving the existing body untouched.
func (rd *RequestDefinition) SetBody(v any) error {
	if rd.hasBody {
		return ErrConflictingBodyBinding
	}

	rd.body = v
	rd.hasBody = true
	return nil
}

// Body returns the body, if one was set.
func (rd *RequestDefinition) Body() (any, bool) {
	return rd.body, rd.hasBody
}

func cloneValues(src url.Values) url.Values {
	clone := make(url.Values, len(src))
	for k, v := range src {
		clone[k] = append([]string(nil), v...)
	}

	return clone
}
