package httpserviceclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/xmidt-org/httpservice"
	"go.uber.org/zap"
)

// ErrNilTransport is returned by WithTransport when the transport is nil.
var ErrNilTransport = errors.New("the http.RoundTripper cannot be nil")

// Option is a configurable option for a Client.
type Option = httpservice.Option[Client]

// Client is the standard httpservice.Exchanger.  A Client is immutable once
// created and is safe for concurrent use.
type Client struct {
	base       *url.URL
	transport  http.RoundTripper
	header     Header
	timeout    time.Duration
	middleware RoundTripperChain
	encoders   Encoders
	logger     *zap.Logger

	client *http.Client
}

var _ httpservice.Exchanger = (*Client)(nil)

func (c *Client) apply(opts []Option) (*Client, error) {
	if err := httpservice.Options[Client](opts).Apply(c); err != nil {
		return nil, err
	}

	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	c.client = &http.Client{
		Timeout: c.timeout,
		Transport: NewRoundTripperChain(c.header.AddRequest).
			Extend(c.middleware).
			Then(c.transport),
	}

	return c, nil
}

// NewClient creates a Client with the given base url and the default
// transport, suitable for simple cases and tests.
func NewClient(base string, opts ...Option) (*Client, error) {
	return ClientConfig{BaseURL: base}.NewClient(opts...)
}

// BaseURL returns a copy of the url that operation urls are relative to.
func (c *Client) BaseURL() *url.URL {
	clone := *c.base
	return &clone
}

// HTTPClient returns the decorated *http.Client used by this Client.
func (c *Client) HTTPClient() *http.Client {
	return c.client
}

// NewRequest converts a definition into an *http.Request using this
// client's base url and encoders.
func (c *Client) NewRequest(ctx context.Context, def *httpservice.RequestDefinition) (*http.Request, error) {
	return NewRequest(ctx, c.base, def, c.encoders)
}

// Exchange implements httpservice.Exchanger.  The caller is responsible for
// closing the response body.
func (c *Client) Exchange(ctx context.Context, def *httpservice.RequestDefinition) (*http.Response, error) {
	request, err := c.NewRequest(ctx, def)
	if err != nil {
		c.logger.Error(
			"unable to create request",
			zap.String("operation", def.Operation()),
			zap.Error(err),
		)

		return nil, err
	}

	return c.client.Do(request)
}

// WithTransport replaces the http.RoundTripper that the middleware decorates.
func WithTransport(rt http.RoundTripper) Option {
	if rt == nil {
		return httpservice.InvalidOption[Client](ErrNilTransport)
	}

	return httpservice.OptionFunc[Client](func(c *Client) error {
		c.transport = rt
		return nil
	})
}

// WithMiddleware appends constructors to the client's middleware.  Middleware
// executes in the order supplied, after any default headers are added.
func WithMiddleware(ctors ...RoundTripperConstructor) Option {
	return httpservice.OptionFunc[Client](func(c *Client) error {
		c.middleware = c.middleware.Append(ctors...)
		return nil
	})
}

// WithEncoder registers a body Encoder for a media type, replacing any
// existing Encoder for that type.
func WithEncoder(mediaType string, e Encoder) Option {
	return httpservice.OptionFunc[Client](func(c *Client) error {
		encoders := make(Encoders, len(c.encoders)+1)
		for k, v := range c.encoders {
			encoders[k] = v
		}

		encoders[mediaType] = e
		c.encoders = encoders
		return nil
	})
}

// WithLogger sets the zap logger for a Client.  A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return httpservice.OptionFunc[Client](func(c *Client) error {
		if l != nil {
			c.logger = l
		}

		return nil
	})
}
