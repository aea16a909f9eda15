package calcom

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestID is the context value carrying the ID of one request.
type requestID string

// RequestIDConfig configures the RequestID middleware.
type RequestIDConfig struct {
	Header    string        // default: "X-Request-ID"
	Generator func() string // default: random UUID
}

// RequestID returns middleware that tags each request with an ID. The ID is
// taken from the context (see ContextWithRequestID), then from the request
// header, and generated otherwise.
func RequestID(cfg ...RequestIDConfig) Middleware {
	c := RequestIDConfig{
		Header:    "X-Request-ID",
		Generator: uuid.NewString,
	}
	if len(cfg) > 0 {
		if cfg[0].Header != "" {
			c.Header = cfg[0].Header
		}
		if cfg[0].Generator != nil {
			c.Generator = cfg[0].Generator
		}
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			v, _ := ValueFrom[requestID](r.Context())
			id := string(v)
			if id == "" {
				id = r.Header.Get(c.Header)
			}
			if id == "" {
				id = c.Generator()
			}

			// RoundTrippers must not modify the caller's request.
			r = r.Clone(ContextWithValue(r.Context(), requestID(id)))
			r.Header.Set(c.Header, id)
			return next.RoundTrip(r)
		})
	}
}

// ContextWithRequestID pins the ID the RequestID middleware sends.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return ContextWithValue(ctx, requestID(id))
}

// GetRequestID returns the request ID attached to r by the RequestID
// middleware or pinned with ContextWithRequestID, falling back to the
// X-Request-ID header.
func GetRequestID(r *http.Request) string {
	if id, ok := ValueFrom[requestID](r.Context()); ok && id != "" {
		return string(id)
	}
	return r.Header.Get("X-Request-ID")
}
