package httpserviceclient

import (
	"net/http"

	"github.com/xmidt-org/httpaux/roundtrip"
)

// emptyHeader is an internal singleton representing a blank Header
var emptyHeader = Header{}

// Header is an immutable set of HTTP headers sent with every request
// from a Client.
//
// The zero value of this type is an immutable, empty Header.
type Header struct {
	h http.Header
}

// NewHeader makes a deep copy of the given source with each
// key filtered through http.CanonicalHeaderKey.
//
// If src is empty or nil, an empty Header is returned.
func NewHeader(src http.Header) Header {
	if len(src) > 0 {
		cleaned := make(http.Header, len(src))
		for key, values := range src {
			if len(key) > 0 && len(values) > 0 {
				key = http.CanonicalHeaderKey(key)
				cleaned[key] = append(cleaned[key], values...)
			}
		}

		if len(cleaned) > 0 {
			return Header{h: cleaned}
		}
	}

	return emptyHeader
}

// Len returns the count of keys in this header
func (h Header) Len() int {
	return len(h.h)
}

// AddTo adds each of this Header's keys to dst, but only for keys that dst
// does not already have.  Headers bound from operation arguments therefore
// take precedence over client defaults.
func (h Header) AddTo(dst http.Header) {
	for key, values := range h.h {
		if _, exists := dst[key]; !exists {
			dst[key] = append([]string{}, values...)
		}
	}
}

// AddRequest is a RoundTripperConstructor that adds all headers to
// the request.  If this Header is empty, no decoration is performed.
func (h Header) AddRequest(next http.RoundTripper) http.RoundTripper {
	if h.Len() == 0 {
		return next
	}

	return roundtrip.Func(func(request *http.Request) (*http.Response, error) {
		request = request.Clone(request.Context())
		if request.Header == nil {
			request.Header = make(http.Header, h.Len())
		}

		h.AddTo(request.Header)
		return next.RoundTrip(request)
	})
}
