package calcom

import (
	"context"
	"errors"
	"net/http/httptrace"
	"sync"
	"time"
)

// timeoutError is the cancellation cause recorded when a call deadline fires.
type timeoutError string

func (e timeoutError) Error() string { return string(e) }

func (timeoutError) Timeout() bool { return true }

var (
	errCallTimeout    error = timeoutError("call timed out")
	errConnectTimeout error = timeoutError("connect timed out")
	errReadTimeout    error = timeoutError("read timed out")
)

// Scalar returns a Timeout that caps the whole call at d.
func Scalar(d time.Duration) Timeout {
	return Timeout{Total: d}
}

// Pair returns a Timeout with separate connect and read limits.
func Pair(connect, read time.Duration) Timeout {
	return Timeout{Connect: connect, Read: read}
}

// IsZero reports whether no limit is set.
func (t Timeout) IsZero() bool {
	return t.Total == 0 && t.Connect == 0 && t.Read == 0
}

// begin derives the call context. The returned stop func must be called once
// the response has been consumed; it releases every timer.
func (t Timeout) begin(parent context.Context) (context.Context, func()) {
	ctx := parent
	var stops []func()

	if t.Total > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, t.Total, errCallTimeout)
		stops = append(stops, cancel)
	}

	if t.Connect > 0 || t.Read > 0 {
		var cancel context.CancelCauseFunc
		ctx, cancel = context.WithCancelCause(ctx)
		pt := &phaseTimer{cancel: cancel, read: t.Read}
		if t.Connect > 0 {
			pt.timer = time.AfterFunc(t.Connect, func() { cancel(errConnectTimeout) })
		}
		ctx = httptrace.WithClientTrace(ctx, &httptrace.ClientTrace{
			GotConn: func(httptrace.GotConnInfo) { pt.gotConn() },
		})
		stops = append(stops, func() {
			pt.stop()
			cancel(nil)
		})
	}

	return ctx, func() {
		for i := len(stops) - 1; i >= 0; i-- {
			stops[i]()
		}
	}
}

// phaseTimer switches from the connect limit to the read limit once a
// connection is handed to the request.
type phaseTimer struct {
	mu      sync.Mutex
	cancel  context.CancelCauseFunc
	read    time.Duration
	timer   *time.Timer
	stopped bool
}

func (p *phaseTimer) gotConn() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	if p.read > 0 {
		p.timer = time.AfterFunc(p.read, func() { p.cancel(errReadTimeout) })
	}
}

func (p *phaseTimer) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopped = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// timeoutCause returns the deadline that ended ctx, if any.
func timeoutCause(ctx context.Context) error {
	if ctx.Err() == nil {
		return nil
	}
	cause := context.Cause(ctx)
	var te timeoutError
	if errors.As(cause, &te) {
		return cause
	}
	return nil
}
