package httpservice

import (
	"net/http"
	"net/url"
	"reflect"
	"strings"
)

var (
	urlType    = reflect.TypeOf((*url.URL)(nil))
	methodType = reflect.TypeOf(Method(""))
)

// claimsByType tests if a parameter without a marker has the given declared
// or runtime type.  Parameters with an explicit Kind are never claimed by type.
func claimsByType(value any, p Parameter, types ...reflect.Type) bool {
	if p.Kind != KindNone {
		return false
	}

	t := p.Type
	if t == nil && value != nil {
		t = reflect.TypeOf(value)
	}

	for _, candidate := range types {
		if t == candidate {
			return true
		}
	}

	return false
}

// checkAbsent implements the common absent-value policy for resolvers that
// have already claimed an argument.  The first return is true if the value is
// absent and the resolver should contribute nothing.
func checkAbsent(value any, p Parameter) (bool, error) {
	switch {
	case !IsAbsent(value):
		return false, nil

	case p.Optional:
		return true, nil

	default:
		return true, ErrMissingRequiredArgument
	}
}

// PathVariableResolver binds KindPathVariable arguments to url placeholders.
// Slices are joined with commas.
type PathVariableResolver struct{}

func (PathVariableResolver) Resolve(value any, p Parameter, def *RequestDefinition) (bool, error) {
	if p.Kind != KindPathVariable {
		return false, nil
	}

	if absent, err := checkAbsent(value, p); absent {
		return true, err
	}

	values, err := FormatValue(value)
	if err != nil {
		return true, err
	}

	def.AddPathVariable(p.WireName(), strings.Join(values, ","))
	return true, nil
}

// QueryParamResolver binds KindQuery arguments.  Slices produce repeated
// parameters.  Structs and maps are expanded into one parameter per field
// or key, in which case the parameter's own name is not used.
type QueryParamResolver struct{}

func (QueryParamResolver) Resolve(value any, p Parameter, def *RequestDefinition) (bool, error) {
	if p.Kind != KindQuery {
		return false, nil
	}

	if absent, err := checkAbsent(value, p); absent {
		return true, err
	}

	expanded := make(url.Values)
	if ok, err := EncodeValues(value, expanded); ok {
		if err != nil {
			return true, err
		}

		for name, values := range expanded {
			def.AddQuery(name, values...)
		}

		return true, nil
	}

	values, err := FormatValue(value)
	if err != nil {
		return true, err
	}

	def.AddQuery(p.WireName(), values...)
	return true, nil
}

// HeaderResolver binds KindHeader arguments.  An http.Header or map argument
// contributes each of its entries as a separate header.
type HeaderResolver struct{}

func (HeaderResolver) Resolve(value any, p Parameter, def *RequestDefinition) (bool, error) {
	if p.Kind != KindHeader {
		return false, nil
	}

	if absent, err := checkAbsent(value, p); absent {
		return true, err
	}

	if h, ok := value.(http.Header); ok {
		for name, values := range h {
			def.AddHeader(name, values...)
		}

		return true, nil
	}

	if reflect.ValueOf(value).Kind() == reflect.Map {
		expanded := make(url.Values)
		if _, err := EncodeValues(value, expanded); err != nil {
			return true, err
		}

		for name, values := range expanded {
			def.AddHeader(name, values...)
		}

		return true, nil
	}

	values, err := FormatValue(value)
	if err != nil {
		return true, err
	}

	def.AddHeader(p.WireName(), values...)
	return true, nil
}

// CookieResolver binds KindCookie arguments.
type CookieResolver struct{}

func (CookieResolver) Resolve(value any, p Parameter, def *RequestDefinition) (bool, error) {
	if p.Kind != KindCookie {
		return false, nil
	}

	if absent, err := checkAbsent(value, p); absent {
		return true, err
	}

	values, err := FormatValue(value)
	if err != nil {
		return true, err
	}

	def.AddCookie(p.WireName(), values...)
	return true, nil
}

// BodyResolver binds a KindBody argument as the request body.  The value is
// stored as is.  Encoding is left to the HTTP client.
type BodyResolver struct{}

func (BodyResolver) Resolve(value any, p Parameter, def *RequestDefinition) (bool, error) {
	if p.Kind != KindBody {
		return false, nil
	}

	if absent, err := checkAbsent(value, p); absent {
		return true, err
	}

	return true, def.SetBody(value)
}

// URLResolver binds the request URI.  It claims KindURL parameters and
// unmarked parameters of type *url.URL.  A KindURL argument may also be
// a string, which is parsed.
type URLResolver struct{}

func (URLResolver) Resolve(value any, p Parameter, def *RequestDefinition) (bool, error) {
	if p.Kind != KindURL && !claimsByType(value, p, urlType) {
		return false, nil
	}

	if absent, err := checkAbsent(value, p); absent {
		return true, err
	}

	switch v := value.(type) {
	case *url.URL:
		def.SetURI(v)

	case url.URL:
		def.SetURI(&v)

	default:
		s, err := FormatScalar(value)
		if err != nil {
			return true, err
		}

		u, err := url.Parse(s)
		if err != nil {
			return true, err
		}

		def.SetURI(u)
	}

	return true, nil
}

// MethodResolver binds the HTTP verb.  It claims KindMethod parameters and
// unmarked parameters of type Method.
type MethodResolver struct{}

func (MethodResolver) Resolve(value any, p Parameter, def *RequestDefinition) (bool, error) {
	if p.Kind != KindMethod && !claimsByType(value, p, methodType) {
		return false, nil
	}

	if absent, err := checkAbsent(value, p); absent {
		return true, err
	}

	s, err := FormatScalar(value)
	if err != nil {
		return true, err
	}

	var m Method
	if err := m.UnmarshalText([]byte(s)); err != nil {
		return true, err
	}

	def.SetMethod(m)
	return true, nil
}
