package calcom

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Middleware wraps the transport used by a Client. It has the same shape as
// every http.RoundTripper decorator in the Go ecosystem.
type Middleware func(next http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// chain wraps base with middleware. The first middleware is the outermost.
func chain(base http.RoundTripper, mw []Middleware) http.RoundTripper {
	rt := base
	for i := len(mw) - 1; i >= 0; i-- {
		rt = mw[i](rt)
	}
	return rt
}

// Recovery returns middleware that turns a panic in the wrapped transport
// into an error.
func Recovery() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (resp *http.Response, err error) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("panic recovered",
						"panic", rec,
						"stack", string(debug.Stack()),
						"method", r.Method,
						"url", redactURL(r.URL),
					)
					resp, err = nil, fmt.Errorf("calcom: panic in transport: %v", rec)
				}
			}()
			return next.RoundTrip(r)
		})
	}
}
