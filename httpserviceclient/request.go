package httpserviceclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/xmidt-org/httpservice"
)

// UnboundPathVariableError indicates a {name} placeholder in an operation's
// url for which no argument supplied a value.
type UnboundPathVariableError struct {
	Operation string
	Name      string
}

func (upve *UnboundPathVariableError) Error() string {
	var o strings.Builder
	o.WriteString("no value bound to path variable {")
	o.WriteString(upve.Name)
	o.WriteString("}")
	if len(upve.Operation) > 0 {
		o.WriteString(" in [")
		o.WriteString(upve.Operation)
		o.WriteString("]")
	}

	return o.String()
}

// UnusedPathVariableError indicates a bound path variable that has no
// {name} placeholder in an operation's url.
type UnusedPathVariableError struct {
	Operation string
	Name      string
}

func (upve *UnusedPathVariableError) Error() string {
	var o strings.Builder
	o.WriteString("path variable [")
	o.WriteString(upve.Name)
	o.WriteString("] has no placeholder")
	if len(upve.Operation) > 0 {
		o.WriteString(" in [")
		o.WriteString(upve.Operation)
		o.WriteString("]")
	}

	return o.String()
}

// ExpandPath replaces each {name} placeholder in template with the path-escaped
// value of the corresponding variable.  A brace without a matching close is
// left as is.
//
// Every variable must be used by at least one placeholder.  The first unused
// variable, in name order, is reported as an *UnusedPathVariableError.
func ExpandPath(template string, vars map[string]string) (string, error) {
	var (
		o    strings.Builder
		used = make(map[string]bool, len(vars))
	)

	for {
		open := strings.IndexByte(template, '{')
		if open < 0 {
			break
		}

		end := strings.IndexByte(template[open:], '}')
		if end < 0 {
			break
		}

		name := template[open+1 : open+end]
		value, ok := vars[name]
		if !ok {
			return "", &UnboundPathVariableError{Name: name}
		}

		used[name] = true
		o.WriteString(template[:open])
		o.WriteString(url.PathEscape(value))
		template = template[open+end+1:]
	}

	if len(used) < len(vars) {
		names := make([]string, 0, len(vars))
		for name := range vars {
			if !used[name] {
				names = append(names, name)
			}
		}

		sort.Strings(names)
		return "", &UnusedPathVariableError{Name: names[0]}
	}

	o.WriteString(template)
	return o.String(), nil
}

// resolveTarget computes the request url from a base and an expanded path.
// An absolute path replaces the base entirely.
func resolveTarget(base *url.URL, path string) (*url.URL, error) {
	target := *base
	if len(path) == 0 {
		return &target, nil
	}

	rel, err := url.Parse(path)
	if err != nil {
		return nil, err
	}

	if rel.IsAbs() {
		return rel, nil
	}

	joined, err := url.Parse(
		strings.TrimSuffix(base.EscapedPath(), "/") + "/" + strings.TrimPrefix(rel.EscapedPath(), "/"),
	)

	if err != nil {
		return nil, err
	}

	target.Path = joined.Path
	target.RawPath = joined.RawPath
	if len(rel.RawQuery) > 0 {
		if len(target.RawQuery) > 0 {
			target.RawQuery += "&" + rel.RawQuery
		} else {
			target.RawQuery = rel.RawQuery
		}
	}

	return &target, nil
}

// NewRequest converts a bound definition into an *http.Request.
//
// The url is base, resolved against the definition's URI if one was bound.
// An absolute URI replaces base entirely.  The
// definition's path template is expanded and joined to that url.  Query
// parameters, headers, cookies, and the Accept header are copied over.
//
// Bodies that are an io.Reader, a []byte, or a string are sent as is.  Any
// other body is encoded according to the definition's content type, using
// MediaTypeJSON when there is none.
func NewRequest(ctx context.Context, base *url.URL, def *httpservice.RequestDefinition, encoders Encoders) (*http.Request, error) {
	switch uri := def.URI(); {
	case uri != nil && base != nil:
		base = base.ResolveReference(uri)

	case uri != nil:
		base = uri

	case base == nil:
		base = new(url.URL)
	}

	path, err := ExpandPath(def.URL(), def.PathVariables())
	switch e := err.(type) {
	case nil:

	case *UnboundPathVariableError:
		e.Operation = def.Operation()
		return nil, e

	case *UnusedPathVariableError:
		e.Operation = def.Operation()
		return nil, e

	default:
		return nil, err
	}

	target, err := resolveTarget(base, path)
	if err != nil {
		return nil, err
	}

	if query := def.Query(); len(query) > 0 {
		merged := target.Query()
		for name, values := range query {
			merged[name] = append(merged[name], values...)
		}

		target.RawQuery = merged.Encode()
	}

	body, contentType, err := newBody(def, encoders)
	if err != nil {
		return nil, err
	}

	method := def.Method().String()
	if len(method) == 0 {
		method = http.MethodGet
	}

	request, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, err
	}

	request.Header = def.Header()
	if accept := def.Accept(); len(accept) > 0 && len(request.Header.Get("Accept")) == 0 {
		request.Header.Set("Accept", strings.Join(accept, ", "))
	}

	if len(contentType) > 0 && len(request.Header.Get("Content-Type")) == 0 {
		request.Header.Set("Content-Type", contentType)
	}

	cookies := def.Cookies()
	names := make([]string, 0, len(cookies))
	for name := range cookies {
		names = append(names, name)
	}

	sort.Strings(names)
	for _, name := range names {
		for _, value := range cookies[name] {
			request.AddCookie(&http.Cookie{Name: name, Value: value})
		}
	}

	return request, nil
}

// newBody produces the request body and its content type.
func newBody(def *httpservice.RequestDefinition, encoders Encoders) (io.Reader, string, error) {
	v, ok := def.Body()
	if !ok {
		return nil, "", nil
	}

	contentType := def.ContentType()
	switch b := v.(type) {
	case io.Reader:
		return b, contentType, nil

	case []byte:
		return bytes.NewReader(b), contentType, nil

	case string:
		return strings.NewReader(b), contentType, nil
	}

	if len(contentType) == 0 {
		contentType = MediaTypeJSON
	}

	if encoders == nil {
		encoders = DefaultEncoders()
	}

	enc, err := encoders.Get(contentType)
	if err != nil {
		return nil, "", err
	}

	body, err := enc(v)
	return body, contentType, err
}
