package httpserviceclient

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/url"
	"reflect"
	"strings"

	"github.com/xmidt-org/httpservice"
)

const (
	// MediaTypeJSON is the default media type for bodies that are not already raw bytes.
	MediaTypeJSON = "application/json"

	// MediaTypeForm is the media type for url-encoded form bodies.
	MediaTypeForm = "application/x-www-form-urlencoded"
)

// Encoder converts a body value into bytes on the wire.
type Encoder func(any) (io.Reader, error)

// Encoders maps media types, without parameters, onto Encoder strategies.
type Encoders map[string]Encoder

// DefaultEncoders returns the built-in encoders for MediaTypeJSON and MediaTypeForm.
func DefaultEncoders() Encoders {
	return Encoders{
		MediaTypeJSON: EncodeJSON,
		MediaTypeForm: EncodeForm,
	}
}

// Get returns the Encoder for the given content type.  Any media type parameters,
// such as charset, are ignored.
func (e Encoders) Get(contentType string) (Encoder, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, err
	}

	if enc, ok := e[mediaType]; ok {
		return enc, nil
	}

	return nil, &UnsupportedMediaTypeError{MediaType: mediaType}
}

// UnsupportedMediaTypeError indicates that no Encoder exists for a body's content type.
type UnsupportedMediaTypeError struct {
	MediaType string
}

func (umte *UnsupportedMediaTypeError) Error() string {
	return "no body encoder for media type [" + umte.MediaType + "]"
}

// EncodeJSON is the Encoder for MediaTypeJSON.
func EncodeJSON(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// EncodeForm is the Encoder for MediaTypeForm.  Structs use the same
// field tags as query parameters.  Maps and url.Values are also supported.
func EncodeForm(v any) (io.Reader, error) {
	if values, ok := v.(url.Values); ok {
		return strings.NewReader(values.Encode()), nil
	}

	values := make(url.Values)
	ok, err := httpservice.EncodeValues(v, values)
	switch {
	case err != nil:
		return nil, err

	case !ok:
		return nil, &UnsupportedBodyError{
			MediaType: MediaTypeForm,
			Type:      reflect.TypeOf(v),
		}

	default:
		return strings.NewReader(values.Encode()), nil
	}
}

// UnsupportedBodyError indicates a body value that an Encoder cannot handle.
type UnsupportedBodyError struct {
	MediaType string
	Type      reflect.Type
}

func (ube *UnsupportedBodyError) Error() string {
	var o strings.Builder
	o.WriteString("cannot encode ")
	if ube.Type != nil {
		o.WriteString(ube.Type.String())
	} else {
		o.WriteString("<nil>")
	}

	o.WriteString(" as ")
	o.WriteString(ube.MediaType)
	return o.String()
}
