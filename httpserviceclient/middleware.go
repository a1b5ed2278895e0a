package httpserviceclient

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/xmidt-org/httpaux/roundtrip"
	"go.uber.org/zap"
)

// DefaultRequestIDHeader is the header RequestID uses when none is given.
const DefaultRequestIDHeader = "X-Request-Id"

// RequestID returns middleware that sets a random UUID in the given header of
// each request that doesn't already have one.
func RequestID(header string) RoundTripperConstructor {
	if len(header) == 0 {
		header = DefaultRequestIDHeader
	}

	header = http.CanonicalHeaderKey(header)
	return func(next http.RoundTripper) http.RoundTripper {
		return roundtrip.Func(func(request *http.Request) (*http.Response, error) {
			if len(request.Header.Get(header)) == 0 {
				request = request.Clone(request.Context())
				if request.Header == nil {
					request.Header = make(http.Header)
				}

				request.Header.Set(header, uuid.NewString())
			}

			return next.RoundTrip(request)
		})
	}
}

// Logging returns middleware that logs each exchange at debug level and
// each transport failure at error level.
func Logging(l *zap.Logger) RoundTripperConstructor {
	if l == nil {
		l = zap.NewNop()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return roundtrip.Func(func(request *http.Request) (*http.Response, error) {
			start := time.Now()
			response, err := next.RoundTrip(request)
			fields := []zap.Field{
				zap.String("method", request.Method),
				zap.Stringer("url", request.URL),
				zap.Duration("duration", time.Since(start)),
			}

			if err != nil {
				l.Error("exchange failed", append(fields, zap.Error(err))...)
			} else {
				l.Debug("exchange", append(fields, zap.Int("status", response.StatusCode))...)
			}

			return response, err
		})
	}
}
