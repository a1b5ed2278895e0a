package httpservice

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrInvalidMethod indicates that a Method is not one of the known HTTP verbs.
	ErrInvalidMethod = errors.New("invalid HTTP method")
)

// Method is an HTTP verb.  The zero value is not a valid Method.
type Method string

const (
	MethodGet     Method = http.MethodGet
	MethodHead    Method = http.MethodHead
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodPatch   Method = http.MethodPatch
	MethodDelete  Method = http.MethodDelete
	MethodOptions Method = http.MethodOptions
	MethodTrace   Method = http.MethodTrace
)

// Valid tests if this Method is one of the known verbs.
func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodHead, MethodPost, MethodPut, MethodPatch, MethodDelete, MethodOptions, MethodTrace:
		return true

	default:
		return false
	}
}

// String returns the verb as it appears on the wire.
func (m Method) String() string {
	return string(m)
}

// UnmarshalText allows a Method to be decoded from configuration.  Case
// is ignored, so "get" and "GET" are the same verb.
func (m *Method) UnmarshalText(text []byte) error {
	candidate := Method(strings.ToUpper(strings.TrimSpace(string(text))))
	if !candidate.Valid() {
		return &InvalidMethodError{Method: string(text)}
	}

	*m = candidate
	return nil
}

// InvalidMethodError describes a verb that could not be parsed.
type InvalidMethodError struct {
	Method string
}

// Error describes the bad verb.
func (ime *InvalidMethodError) Error() string {
	var o strings.Builder
	o.WriteString("invalid HTTP method [")
	o.WriteString(ime.Method)
	o.WriteString("]")
	return o.String()
}

// Is allows errors.Is(err, ErrInvalidMethod).
func (ime *InvalidMethodError) Is(target error) bool {
	return target == ErrInvalidMethod
}
