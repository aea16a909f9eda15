package calcom

import (
	"log/slog"
	"net/http"
	"time"
)

// Logger returns middleware that logs each request using the provided
// slog.Logger. Credentials in the query string are redacted.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("url", redactURL(r.URL)),
				slog.Duration("latency", time.Since(start)),
			}
			if id := GetRequestID(r); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}

			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				logger.LogAttrs(r.Context(), slog.LevelWarn, "request failed", attrs...)
				return nil, err
			}

			attrs = append(attrs,
				slog.Int("status", resp.StatusCode),
				slog.Int64("size", resp.ContentLength),
			)
			logger.LogAttrs(r.Context(), slog.LevelInfo, "request", attrs...)
			return resp, nil
		})
	}
}
