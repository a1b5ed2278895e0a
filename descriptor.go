package httpservice

import (
	"net/http"
	"strings"
)

// ResolveURL reconciles the Value and URL aliases of a declaration:
//
//   - if exactly one is non-empty, it is the effective url
//   - if both are empty, the effective url is empty
//   - if both are non-empty and equal, that value is the effective url
//   - if both are non-empty and differ, an *AmbiguousAliasError is returned
func ResolveURL(value, url string) (string, error) {
	switch {
	case len(value) == 0:
		return url, nil

	case len(url) == 0 || value == url:
		return value, nil

	default:
		return "", &AmbiguousAliasError{
			Value: value,
			URL:   url,
		}
	}
}

// Descriptor is the resolved, immutable metadata for one declared HTTP operation.
// The zero value is not useful.  Use NewDescriptor to create one.
//
// A Descriptor may be shared across goroutines without synchronization.
type Descriptor struct {
	name        string
	method      Method
	url         string
	accept      []string
	contentType string
	header      http.Header
}

// NewDescriptor resolves a declaration into a Descriptor.  This function is pure:
// the same declaration always yields the same descriptor or the same error.
func NewDescriptor(d Declarer) (Descriptor, error) {
	decl := d.Declare()
	url, err := ResolveURL(decl.Value, decl.URL)
	if err != nil {
		aae := err.(*AmbiguousAliasError)
		aae.Operation = decl.Name
		return Descriptor{}, aae
	}

	if err := validate.Struct(decl); err != nil {
		return Descriptor{}, &InvalidDeclarationError{
			Operation: decl.Name,
			Err:       err,
		}
	}

	desc := Descriptor{
		name:        decl.Name,
		method:      decl.Method,
		url:         url,
		accept:      distinct(decl.Accept),
		contentType: decl.ContentType,
	}

	if len(decl.Headers) > 0 {
		desc.header = make(http.Header, len(decl.Headers))
		for _, pair := range decl.Headers {
			name, values, _ := splitHeaderPair(pair)
			for _, v := range values {
				desc.header.Add(name, v)
			}
		}
	}

	return desc, nil
}

// MustDescriptor is like NewDescriptor, but panics on any error.  Useful
// for package-level declarations.
func MustDescriptor(d Declarer) Descriptor {
	desc, err := NewDescriptor(d)
	if err != nil {
		panic(err)
	}

	return desc
}

// Name is the operation identity, which may be empty.
func (d Descriptor) Name() string {
	return d.name
}

// Method is the HTTP verb.
func (d Descriptor) Method() Method {
	return d.method
}

// URL is the resolved path template.  An empty value means the base url
// of the client is used.
func (d Descriptor) URL() string {
	return d.url
}

// Accept returns a copy of the media types for the Accept header, in declaration order.
func (d Descriptor) Accept() []string {
	return append([]string(nil), d.accept...)
}

// ContentType is the media type of any request body.
func (d Descriptor) ContentType() string {
	return d.contentType
}

// Header returns a deep copy of the static headers for this operation.
// The returned header is never nil.
func (d Descriptor) Header() http.Header {
	if d.header == nil {
		return http.Header{}
	}

	return d.header.Clone()
}

// Within returns a new Descriptor nested under a parent, typically the
// descriptor for an entire service.  This descriptor is not modified.
//
// The url of the result is the parent's url joined with this descriptor's url.
// Accept, content type, and name fall back to the parent's when empty here.
// Static headers are the parent's followed by this descriptor's.
func (d Descriptor) Within(parent Descriptor) Descriptor {
	nested := Descriptor{
		name:        d.name,
		method:      d.method,
		url:         joinURL(parent.url, d.url),
		accept:      d.Accept(),
		contentType: d.contentType,
	}

	if len(nested.name) == 0 {
		nested.name = parent.name
	}

	if len(nested.accept) == 0 {
		nested.accept = parent.Accept()
	}

	if len(nested.contentType) == 0 {
		nested.contentType = parent.contentType
	}

	if len(parent.header) > 0 || len(d.header) > 0 {
		nested.header = parent.Header()
		for name, values := range d.header {
			nested.header[name] = append(nested.header[name], values...)
		}
	}

	return nested
}

func joinURL(base, path string) string {
	switch {
	case len(base) == 0:
		return path

	case len(path) == 0:
		return base

	default:
		return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
	}
}

// distinct removes duplicates while preserving order.  A nil slice is
// returned for empty input.
func distinct(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}

	return result
}
