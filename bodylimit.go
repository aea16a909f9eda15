package calcom

import (
	"fmt"
	"io"
	"net/http"
)

// BodyLimit returns middleware that limits the size of response bodies.
// Reading past maxBytes fails with ErrResponseTooLarge.
func BodyLimit(maxBytes int64) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(r)
			if err != nil {
				return nil, err
			}
			if resp.ContentLength > maxBytes {
				resp.Body.Close()
				return nil, fmt.Errorf("%w: content length %d exceeds %d", ErrResponseTooLarge, resp.ContentLength, maxBytes)
			}
			resp.Body = &limitedBody{rc: resp.Body, remaining: maxBytes}
			return resp, nil
		})
	}
}

// limitedBody errors once more than its budget has been read.
type limitedBody struct {
	rc        io.ReadCloser
	remaining int64
}

func (b *limitedBody) Read(p []byte) (int, error) {
	if b.remaining < 0 {
		return 0, ErrResponseTooLarge
	}
	if int64(len(p)) > b.remaining+1 {
		p = p[:b.remaining+1]
	}
	n, err := b.rc.Read(p)
	b.remaining -= int64(n)
	if b.remaining < 0 {
		return n + int(b.remaining), ErrResponseTooLarge
	}
	return n, err
}

func (b *limitedBody) Close() error { return b.rc.Close() }
