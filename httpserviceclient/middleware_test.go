package httpserviceclient

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/httpaux/roundtrip"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	t.Run("Generated", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)

			actual  string
			request = httptest.NewRequest("GET", "/", nil)
			rt      = RequestID("")(roundtrip.Func(func(r *http.Request) (*http.Response, error) {
				actual = r.Header.Get(DefaultRequestIDHeader)
				return &http.Response{StatusCode: http.StatusOK}, nil
			}))
		)

		_, err := rt.RoundTrip(request)
		require.NoError(err)

		_, err = uuid.Parse(actual)
		assert.NoError(err)
		assert.Empty(request.Header.Get(DefaultRequestIDHeader))
	})

	t.Run("Existing", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)

			actual  string
			request = httptest.NewRequest("GET", "/", nil)
			rt      = RequestID("x-correlation-id")(roundtrip.Func(func(r *http.Request) (*http.Response, error) {
				actual = r.Header.Get("X-Correlation-Id")
				return &http.Response{StatusCode: http.StatusOK}, nil
			}))
		)

		request.Header.Set("X-Correlation-Id", "fixed")
		_, err := rt.RoundTrip(request)
		require.NoError(err)
		assert.Equal("fixed", actual)
	})
}

func TestLogging(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)

			core, logs = observer.New(zapcore.DebugLevel)
			rt         = Logging(zap.New(core))(roundtrip.Func(func(*http.Request) (*http.Response, error) {
				return &http.Response{StatusCode: 299}, nil
			}))
		)

		response, err := rt.RoundTrip(httptest.NewRequest("GET", "/test", nil))
		require.NoError(err)
		assert.Equal(299, response.StatusCode)

		entries := logs.FilterMessage("exchange").All()
		require.Len(entries, 1)
		assert.Equal(int64(299), entries[0].ContextMap()["status"])
		assert.Equal("GET", entries[0].ContextMap()["method"])
	})

	t.Run("Error", func(t *testing.T) {
		var (
			assert   = assert.New(t)
			expected = errors.New("expected")

			core, logs = observer.New(zapcore.DebugLevel)
			rt         = Logging(zap.New(core))(roundtrip.Func(func(*http.Request) (*http.Response, error) {
				return nil, expected
			}))
		)

		_, err := rt.RoundTrip(httptest.NewRequest("GET", "/test", nil))
		assert.Same(expected, err)
		assert.Equal(1, logs.FilterMessage("exchange failed").Len())
	})

	t.Run("NilLogger", func(t *testing.T) {
		assert := assert.New(t)
		assert.NotNil(Logging(nil))
	})
}
