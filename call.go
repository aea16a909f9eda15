package calcom

import (
	"context"
	"io"
	"net/http"
	"time"
)

// CallOption overrides client settings for a single call.
type CallOption func(*callOptions)

type callOptions struct {
	timeout     *Timeout
	header      http.Header
	auth        []Credential
	authSet     bool
	contentType string
	hostIndex   int
}

func newCallOptions(opts []CallOption) *callOptions {
	co := &callOptions{header: make(http.Header)}
	for _, opt := range opts {
		opt(co)
	}
	return co
}

// WithTimeout caps the whole call at d.
func WithTimeout(d time.Duration) CallOption {
	return func(co *callOptions) {
		t := Scalar(d)
		co.timeout = &t
	}
}

// WithConnectReadTimeout sets separate connect and read limits for the call.
func WithConnectReadTimeout(connect, read time.Duration) CallOption {
	return func(co *callOptions) {
		t := Pair(connect, read)
		co.timeout = &t
	}
}

// WithCallTimeout replaces the configured Timeout for the call.
func WithCallTimeout(t Timeout) CallOption {
	return func(co *callOptions) {
		co.timeout = &t
	}
}

// WithHeader sets a request header, replacing any value the client or the
// operation would send.
func WithHeader(key, value string) CallOption {
	return func(co *callOptions) {
		co.header.Set(key, value)
	}
}

// WithAuth replaces the credentials resolved from the configuration. Passing
// no credentials sends the call unauthenticated.
func WithAuth(creds ...Credential) CallOption {
	return func(co *callOptions) {
		co.auth = creds
		co.authSet = true
	}
}

// WithAPIKey sends key in place of Config.APIKey for the call.
func WithAPIKey(key string) CallOption {
	return WithAuth(QueryCredential("apiKey", key))
}

// WithContentType encodes the request body with a different media type.
func WithContentType(contentType string) CallOption {
	return func(co *callOptions) {
		co.contentType = contentType
	}
}

// WithHostIndex selects Config.Hosts[i] for the call.
func WithHostIndex(i int) CallOption {
	return func(co *callOptions) {
		co.hostIndex = i
	}
}

// Call executes op and returns the decoded body. Every failure is one of
// *ValidationError, *TransportError, *APIError or *DecodeError.
func Call[T any](ctx context.Context, c *Client, op *Operation, args *Args, opts ...CallOption) (T, error) {
	resp, err := CallWithInfo[T](ctx, c, op, args, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return resp.Data, nil
}

// CallWithInfo executes op and returns the decoded body with the status code
// and headers.
func CallWithInfo[T any](ctx context.Context, c *Client, op *Operation, args *Args, opts ...CallOption) (*Response[T], error) {
	resp, stop, err := c.send(ctx, op, args, newCallOptions(opts))
	if err != nil {
		return nil, err
	}
	defer stop()
	return decodeResponse[T](c, op, resp)
}

// CallRaw executes op and returns the response unprocessed. The status code
// is not inspected. The caller must close the body, which also releases the
// call's timers.
func CallRaw(ctx context.Context, c *Client, op *Operation, args *Args, opts ...CallOption) (*http.Response, error) {
	resp, stop, err := c.send(ctx, op, args, newCallOptions(opts))
	if err != nil {
		return nil, err
	}
	resp.Body = &releasingBody{ReadCloser: resp.Body, release: stop}
	return resp, nil
}

// send builds and dispatches one call.
func (c *Client) send(ctx context.Context, op *Operation, args *Args, co *callOptions) (*http.Response, func(), error) {
	d, err := op.build(c.cfg, c.codecs, args, co.contentType)
	if err != nil {
		return nil, nil, err
	}
	return c.dispatch(ctx, d, co)
}

// releasingBody runs release once the body is closed.
type releasingBody struct {
	io.ReadCloser
	release func()
	closed  bool
}

func (b *releasingBody) Close() error {
	err := b.ReadCloser.Close()
	if !b.closed {
		b.closed = true
		b.release()
	}
	return err
}
