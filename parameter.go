package httpservice

import (
	"reflect"
	"strings"
)

// Kind is the marker on a parameter that tells resolvers which part of the
// request an argument belongs to.  The zero value, KindNone, carries no marker,
// in which case only resolvers that claim by type will act on the argument.
type Kind uint8

const (
	KindNone Kind = iota
	KindPathVariable
	KindQuery
	KindHeader
	KindCookie
	KindBody
	KindURL
	KindMethod
)

var kindNames = map[Kind]string{
	KindNone:         "none",
	KindPathVariable: "path",
	KindQuery:        "query",
	KindHeader:       "header",
	KindCookie:       "cookie",
	KindBody:         "body",
	KindURL:          "url",
	KindMethod:       "method",
}

// String returns the configuration name for this Kind.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}

	return "unknown"
}

// UnmarshalText decodes a Kind from its configuration name.  Case is ignored,
// and an empty string is KindNone.
func (k *Kind) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	if len(name) == 0 {
		*k = KindNone
		return nil
	}

	for candidate, n := range kindNames {
		if n == name {
			*k = candidate
			return nil
		}
	}

	return &UnknownKindError{Kind: string(text)}
}

// UnknownKindError indicates a parameter kind that could not be parsed.
type UnknownKindError struct {
	Kind string
}

func (uke *UnknownKindError) Error() string {
	return "unknown parameter kind [" + uke.Kind + "]"
}

// Parameter is the declared metadata for one operation parameter.
type Parameter struct {
	// Name is the declared name of the parameter.
	Name string

	// Type is the declared type, if known.  Resolvers that claim by type
	// consult this field before the runtime type of the argument.
	Type reflect.Type

	// Position is the ordinal of this parameter within its operation.
	Position int

	// Kind is the marker that resolvers use to claim arguments.
	Kind Kind

	// Key is the name used on the wire, e.g. the header name.  If unset, Name is used.
	Key string

	// Optional allows an absent argument.  Parameters are required by default.
	Optional bool
}

// WireName returns Key if set, Name otherwise.
func (p Parameter) WireName() string {
	if len(p.Key) > 0 {
		return p.Key
	}

	return p.Name
}

// Required is the inverse of Optional.
func (p Parameter) Required() bool {
	return !p.Optional
}

// String returns a human readable form of this parameter.
func (p Parameter) String() string {
	var o strings.Builder
	o.WriteString(p.Kind.String())
	o.WriteRune(' ')
	o.WriteString(p.Name)
	if p.Type != nil {
		o.WriteRune(' ')
		o.WriteString(p.Type.String())
	}

	return o.String()
}

// PathVariable declares a parameter bound to a {name} placeholder in the url.
func PathVariable(name string) Parameter {
	return Parameter{Name: name, Kind: KindPathVariable}
}

// QueryParam declares a query parameter.  Struct and map arguments are
// expanded into several query parameters.
func QueryParam(name string) Parameter {
	return Parameter{Name: name, Kind: KindQuery}
}

// Header declares a request header.  The name is used as the header key unless Key is set.
func Header(name string) Parameter {
	return Parameter{Name: name, Kind: KindHeader}
}

// Cookie declares a request cookie.
func Cookie(name string) Parameter {
	return Parameter{Name: name, Kind: KindCookie}
}

// Body declares the request body.
func Body(name string) Parameter {
	return Parameter{Name: name, Kind: KindBody}
}

// URLParam declares an argument that supplies the request URI, overriding
// the client's base url.
func URLParam(name string) Parameter {
	return Parameter{Name: name, Kind: KindURL}
}

// MethodParam declares an argument that supplies the HTTP verb.
func MethodParam(name string) Parameter {
	return Parameter{Name: name, Kind: KindMethod}
}

// ParameterOf sets the declared type of a parameter to T.
func ParameterOf[T any](p Parameter) Parameter {
	p.Type = reflect.TypeOf((*T)(nil)).Elem()
	return p
}

// Argument pairs a runtime value with its declared parameter.
type Argument struct {
	Value     any
	Parameter Parameter
}

// IsAbsent tests if a value is missing.  Untyped nil and nil pointers, maps,
// slices, interfaces, channels, and funcs are all absent.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()

	default:
		return false
	}
}
