package httpservice

import (
	"mime"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Declaration is the canonical, unresolved description of an HTTP operation.
// It is usually produced by one of the verb-specific types in this package, e.g.
// GetRequest, or unmarshaled from configuration.
//
// Value and URL are aliases for the same thing.  At most one of them should be
// set, although setting both to the same value is tolerated.
type Declaration struct {
	// Name identifies the operation in errors and log output.
	Name string

	// Method is the required HTTP verb.
	Method Method `validate:"method"`

	// Value is an alias for URL.
	Value string

	// URL is the path template for this operation, e.g. /items/{id}.  An empty
	// url means the base url supplied by the HTTP client is used as is.
	URL string

	// Accept is the optional, ordered set of media types sent in the Accept header.
	Accept []string `validate:"dive,mediatype"`

	// ContentType is the optional media type of any request body.
	ContentType string `validate:"omitempty,mediatype"`

	// Headers are static headers sent with every request, each in the
	// form name=value or name=value1,value2.
	Headers []string `validate:"dive,headerpair"`
}

// Declarer is implemented by anything that can produce a Declaration.
type Declarer interface {
	Declare() Declaration
}

// Declare allows a Declaration to be used directly as a Declarer.
func (d Declaration) Declare() Declaration {
	return d
}

// GetRequest declares a GET operation.
type GetRequest struct {
	Name    string
	Value   string
	URL     string
	Accept  []string
	Headers []string
}

func (gr GetRequest) Declare() Declaration {
	return Declaration{
		Name:    gr.Name,
		Method:  MethodGet,
		Value:   gr.Value,
		URL:     gr.URL,
		Accept:  gr.Accept,
		Headers: gr.Headers,
	}
}

// DeleteRequest declares a DELETE operation.
type DeleteRequest struct {
	Name    string
	Value   string
	URL     string
	Accept  []string
	Headers []string
}

func (dr DeleteRequest) Declare() Declaration {
	return Declaration{
		Name:    dr.Name,
		Method:  MethodDelete,
		Value:   dr.Value,
		URL:     dr.URL,
		Accept:  dr.Accept,
		Headers: dr.Headers,
	}
}

// PostRequest declares a POST operation.
type PostRequest struct {
	Name        string
	Value       string
	URL         string
	Accept      []string
	ContentType string
	Headers     []string
}

func (pr PostRequest) Declare() Declaration {
	return Declaration{
		Name:        pr.Name,
		Method:      MethodPost,
		Value:       pr.Value,
		URL:         pr.URL,
		Accept:      pr.Accept,
		ContentType: pr.ContentType,
		Headers:     pr.Headers,
	}
}

// PutRequest declares a PUT operation.
type PutRequest struct {
	Name        string
	Value       string
	URL         string
	Accept      []string
	ContentType string
	Headers     []string
}

func (pr PutRequest) Declare() Declaration {
	return Declaration{
		Name:        pr.Name,
		Method:      MethodPut,
		Value:       pr.Value,
		URL:         pr.URL,
		Accept:      pr.Accept,
		ContentType: pr.ContentType,
		Headers:     pr.Headers,
	}
}

// PatchRequest declares a PATCH operation.
type PatchRequest struct {
	Name        string
	Value       string
	URL         string
	Accept      []string
	ContentType string
	Headers     []string
}

func (pr PatchRequest) Declare() Declaration {
	return Declaration{
		Name:        pr.Name,
		Method:      MethodPatch,
		Value:       pr.Value,
		URL:         pr.URL,
		Accept:      pr.Accept,
		ContentType: pr.ContentType,
		Headers:     pr.Headers,
	}
}

// validate is the shared validator for declarations.  A *validator.Validate
// caches struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("method", func(fl validator.FieldLevel) bool {
		m, ok := fl.Field().Interface().(Method)
		return ok && m.Valid()
	})

	v.RegisterValidation("mediatype", func(fl validator.FieldLevel) bool {
		_, _, err := mime.ParseMediaType(fl.Field().String())
		return err == nil
	})

	v.RegisterValidation("headerpair", func(fl validator.FieldLevel) bool {
		name, _, ok := splitHeaderPair(fl.Field().String())
		return ok && len(name) > 0
	})

	return v
}

// splitHeaderPair parses name=value1,value2.  Whitespace around
// the name and each value is discarded.
func splitHeaderPair(pair string) (name string, values []string, ok bool) {
	var rest string
	name, rest, ok = strings.Cut(pair, "=")
	if !ok {
		return
	}

	name = strings.TrimSpace(name)
	for _, v := range strings.Split(rest, ",") {
		values = append(values, strings.TrimSpace(v))
	}

	return
}
