package httpservice

import (
	"net/http"
	"sort"

	"go.uber.org/multierr"
)

// ParameterConfig is the unmarshaled form of a Parameter.
type ParameterConfig struct {
	// Name is the required parameter name.
	Name string

	// Kind is the parameter marker, e.g. path, query, header.
	Kind Kind

	// Key is the optional wire name.
	Key string

	// Optional allows absent arguments.
	Optional bool
}

// Parameter converts this configuration into a Parameter.
func (pc ParameterConfig) Parameter() Parameter {
	return Parameter{
		Name:     pc.Name,
		Kind:     pc.Kind,
		Key:      pc.Key,
		Optional: pc.Optional,
	}
}

// OperationConfig is the unmarshaled form of an Operation.
type OperationConfig struct {
	Declaration `mapstructure:",squash"`

	// Parameters are the ordered parameters for this operation.
	Parameters []ParameterConfig
}

// ServiceConfig is the unmarshaled form of a Service: type-level settings that
// every operation inherits, plus the operations themselves.  For example:
//
//	items:
//	  name: items
//	  url: https://api.example.com/v1
//	  accept: ["application/json"]
//	  operations:
//	    get:
//	      method: GET
//	      value: /items/{id}
//	      parameters:
//	        - name: id
//	          kind: path
type ServiceConfig struct {
	Name        string
	URL         string
	Accept      []string `validate:"dive,mediatype"`
	ContentType string   `validate:"omitempty,mediatype"`
	Headers     []string `validate:"dive,headerpair"`

	// Operations are keyed by name.  An operation without an explicit name
	// takes its key as its name.
	Operations map[string]OperationConfig `validate:"-"`
}

// NewService builds the Service described by this configuration.  Every
// invalid operation is reported in an aggregate error.
func (sc ServiceConfig) NewService() (*Service, error) {
	if err := validate.Struct(sc); err != nil {
		return nil, &InvalidDeclarationError{
			Operation: sc.Name,
			Err:       err,
		}
	}

	s := &Service{
		descriptor: Descriptor{
			name:        sc.Name,
			url:         sc.URL,
			accept:      distinct(sc.Accept),
			contentType: sc.ContentType,
		},
		operations: make(map[string]*Operation, len(sc.Operations)),
	}

	if len(sc.Headers) > 0 {
		s.descriptor.header = make(http.Header, len(sc.Headers))
		for _, pair := range sc.Headers {
			name, values, _ := splitHeaderPair(pair)
			for _, v := range values {
				s.descriptor.header.Add(name, v)
			}
		}
	}

	var err error
	for _, key := range sortedKeys(sc.Operations) {
		oc := sc.Operations[key]
		if len(oc.Name) == 0 {
			oc.Name = key
		}

		desc, descErr := NewDescriptor(oc.Declaration)
		if descErr != nil {
			err = multierr.Append(err, descErr)
			continue
		}

		params := make([]Parameter, 0, len(oc.Parameters))
		for _, pc := range oc.Parameters {
			params = append(params, pc.Parameter())
		}

		op, opErr := newOperation(desc.Within(s.descriptor), params)
		if opErr != nil {
			err = multierr.Append(err, opErr)
			continue
		}

		s.operations[key] = op
	}

	if err != nil {
		return nil, err
	}

	return s, nil
}

// Service is a named set of operations that share type-level metadata.
type Service struct {
	descriptor Descriptor
	operations map[string]*Operation
}

// Descriptor returns the type-level metadata.  Its Method is always empty.
func (s *Service) Descriptor() Descriptor {
	return s.descriptor
}

// Operation looks up an operation by its key.
func (s *Service) Operation(key string) (op *Operation, ok bool) {
	op, ok = s.operations[key]
	return
}

// Keys returns the sorted operation keys.
func (s *Service) Keys() []string {
	return sortedKeys(s.operations)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}
