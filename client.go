package calcom

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// Client executes catalog operations against the API. It owns one Config for
// its lifetime and is safe for concurrent use.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	middleware []Middleware
	codecs     *codecRegistry
	schemes    map[string]SecurityScheme
	logger     *slog.Logger

	userCodecs []Codec

	// Services grouping the catalog endpoints by resource.
	Availability         *AvailabilityService
	BookingReferences    *BookingReferencesService
	Bookings             *BookingsService
	DestinationCalendars *DestinationCalendarsService
	Memberships          *MembershipsService
	Schedules            *SchedulesService
	Users                *UsersService
	Webhooks             *WebhooksService
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the underlying HTTP client. Its Transport is wrapped by
// the client middleware; the value passed in is not modified.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for client diagnostics.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithMiddleware adds transport middleware. Middleware is applied in the
// order added, the first being the outermost.
func WithMiddleware(mw ...Middleware) ClientOption {
	return func(c *Client) {
		c.middleware = append(c.middleware, mw...)
	}
}

// WithCodec registers an additional body codec. It takes precedence over the
// built-in codecs for its content type.
func WithCodec(codec Codec) ClientOption {
	return func(c *Client) {
		c.userCodecs = append(c.userCodecs, codec)
	}
}

// WithSecurityScheme registers or replaces a named auth scheme.
func WithSecurityScheme(name string, scheme SecurityScheme) ClientOption {
	return func(c *Client) {
		c.schemes[name] = scheme
	}
}

// New creates a Client. A nil cfg uses NewConfig. The configuration is
// copied and validated.
func New(cfg *Config, opts ...ClientOption) (*Client, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:     cfg.clone(),
		schemes: defaultSecuritySchemes(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.codecs = newCodecRegistry(c.userCodecs)

	base := http.DefaultTransport
	hc := &http.Client{}
	if c.httpClient != nil {
		*hc = *c.httpClient
		if hc.Transport != nil {
			base = hc.Transport
		}
	}
	hc.Transport = chain(base, c.middleware)
	c.httpClient = hc

	c.initServices()
	return c, nil
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return *c.cfg.clone()
}

// dispatch sends a built descriptor and returns the raw response together
// with the func that releases the call's timers. On error the timers are
// already released.
func (c *Client) dispatch(ctx context.Context, d *RequestDescriptor, co *callOptions) (*http.Response, func(), error) {
	host, err := c.cfg.Host(co.hostIndex)
	if err != nil {
		return nil, nil, err
	}

	d = d.clone()
	if co.authSet {
		applyAuth(d, co.auth)
	} else {
		applyAuth(d, c.resolveAuth(d.Security))
	}

	u, err := d.URL(host)
	if err != nil {
		return nil, nil, &TransportError{Op: d.OperationID, Method: d.Method, URL: host + d.Path, Err: err}
	}

	timeout := c.cfg.Timeout
	if co.timeout != nil {
		timeout = *co.timeout
	}
	callCtx, stop := timeout.begin(ctx)

	var body io.Reader
	if d.Body != nil {
		body = bytes.NewReader(d.Body)
	}
	req, err := http.NewRequestWithContext(callCtx, d.Method, u.String(), body)
	if err != nil {
		stop()
		return nil, nil, &TransportError{Op: d.OperationID, Method: d.Method, URL: redactURL(u), Err: err}
	}

	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	for k, v := range c.cfg.DefaultHeaders {
		req.Header.Set(k, v)
	}
	for k, vs := range d.Header {
		req.Header[k] = vs
	}
	for k, vs := range co.header {
		req.Header[k] = vs
	}

	c.logger.DebugContext(ctx, "dispatch",
		slog.String("operation", d.OperationID),
		slog.String("method", d.Method),
		slog.String("url", redactURL(u)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		cause := timeoutCause(callCtx)
		stop()
		if errors.Is(err, ErrResponseTooLarge) {
			return nil, nil, &DecodeError{Op: d.OperationID, Err: ErrResponseTooLarge}
		}
		return nil, nil, transportError(d.OperationID, d.Method, u, err, cause)
	}
	return resp, stop, nil
}

// transportError wraps a network failure, attaching the timeout that caused
// it and removing credentials from the URL.
func transportError(op, method string, u *url.URL, err, cause error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = redactURL(u)
	}
	if cause != nil {
		err = errors.Join(cause, err)
	}
	return &TransportError{Op: op, Method: method, URL: redactURL(u), Err: err}
}
