package httpserviceclient

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// TransportConfig holds the unmarshaled configuration for an *http.Transport.
type TransportConfig struct {
	TLSHandshakeTimeout    time.Duration
	DisableKeepAlives      bool
	DisableCompression     bool
	MaxIdleConns           int `validate:"gte=0"`
	MaxIdleConnsPerHost    int `validate:"gte=0"`
	MaxConnsPerHost        int `validate:"gte=0"`
	IdleConnTimeout        time.Duration
	ResponseHeaderTimeout  time.Duration
	ExpectContinueTimeout  time.Duration
	ProxyConnectHeader     http.Header
	MaxResponseHeaderBytes int64
	WriteBufferSize        int
	ReadBufferSize         int
	ForceAttemptHTTP2      bool
}

// NewTransport creates an *http.Transport from this configuration.
func (tc TransportConfig) NewTransport() *http.Transport {
	return &http.Transport{
		Proxy:                  http.ProxyFromEnvironment,
		TLSHandshakeTimeout:    tc.TLSHandshakeTimeout,
		DisableKeepAlives:      tc.DisableKeepAlives,
		DisableCompression:     tc.DisableCompression,
		MaxIdleConns:           tc.MaxIdleConns,
		MaxIdleConnsPerHost:    tc.MaxIdleConnsPerHost,
		MaxConnsPerHost:        tc.MaxConnsPerHost,
		IdleConnTimeout:        tc.IdleConnTimeout,
		ResponseHeaderTimeout:  tc.ResponseHeaderTimeout,
		ExpectContinueTimeout:  tc.ExpectContinueTimeout,
		ProxyConnectHeader:     tc.ProxyConnectHeader,
		MaxResponseHeaderBytes: tc.MaxResponseHeaderBytes,
		WriteBufferSize:        tc.WriteBufferSize,
		ReadBufferSize:         tc.ReadBufferSize,
		ForceAttemptHTTP2:      tc.ForceAttemptHTTP2,
	}
}

// ClientConfig holds the unmarshaled configuration for a Client.
type ClientConfig struct {
	// BaseURL is the url that operation urls are relative to.  It can be
	// empty if every operation uses absolute urls or supplies its own URI.
	BaseURL string `validate:"omitempty,url"`

	// Timeout is the overall request timeout.  Zero means no timeout.
	Timeout time.Duration `validate:"gte=0"`

	// Transport configures the underlying *http.Transport.
	Transport TransportConfig

	// Header is sent with every request, in addition to any operation headers.
	Header http.Header
}

// NewClient creates a Client from this configuration.  Options are applied
// after the configuration, so they can replace the transport.
func (cc ClientConfig) NewClient(opts ...Option) (*Client, error) {
	if err := validate.Struct(cc); err != nil {
		return nil, err
	}

	c := &Client{
		base:      new(url.URL),
		transport: cc.Transport.NewTransport(),
		header:    NewHeader(cc.Header),
		timeout:   cc.Timeout,
		encoders:  DefaultEncoders(),
	}

	if len(cc.BaseURL) > 0 {
		var err error
		if c.base, err = url.Parse(cc.BaseURL); err != nil {
			return nil, err
		}
	}

	return c.apply(opts)
}
