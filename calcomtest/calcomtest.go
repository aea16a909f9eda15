// Package calcomtest provides a fake API server for testing code that uses
// the calcom client.
package calcomtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/bjaus/calcom"
)

// APIKey is the key configured on clients returned by Server.Client.
const APIKey = "test-api-key"

// Request is a request received by the fake server.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// RawQuery keeps the order in which the client sent query pairs.
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Reply is a canned response.
type Reply struct {
	Status int
	Header http.Header
	// Body is written as is when it is a []byte or string and encoded as
	// JSON otherwise. A nil Body writes nothing.
	Body any
	// Delay holds the response back, or until the client gives up.
	Delay time.Duration
}

// JSON returns a Reply that encodes body as JSON with the given status.
func JSON(status int, body any) Reply {
	return Reply{
		Status: status,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   body,
	}
}

// Status returns a Reply with no body.
func Status(status int) Reply {
	return Reply{Status: status}
}

// Server is a fake API that records every request and answers with replies
// registered per method and path. Unregistered routes answer 404.
type Server struct {
	URL string

	srv *httptest.Server

	mu       sync.Mutex
	replies  map[string]Reply
	requests []Request
}

// NewServer starts a fake server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{replies: make(map[string]Reply)}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	s.URL = s.srv.URL
	t.Cleanup(s.srv.Close)
	return s
}

// Handle registers the reply for method and path. A later call for the same
// route replaces the reply.
func (s *Server) Handle(method, path string, reply Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[method+" "+path] = reply
}

// Requests returns the requests received so far, oldest first.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request. It fails the test when none
// has been received.
func (s *Server) LastRequest(t testing.TB) Request {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatalf("calcomtest: no request received")
	}
	return reqs[len(reqs)-1]
}

// Config returns a client configuration pointing at the fake server.
func (s *Server) Config() *calcom.Config {
	cfg := calcom.NewConfig()
	cfg.Hosts = []string{s.URL}
	cfg.APIKey = APIKey
	return cfg
}

// Client returns a calcom client pointing at the fake server.
func (s *Server) Client(t testing.TB, opts ...calcom.ClientOption) *calcom.Client {
	t.Helper()
	c, err := calcom.New(s.Config(), opts...)
	if err != nil {
		t.Fatalf("calcomtest: create client: %v", err)
	}
	return c
}

// DecodeBody decodes the JSON body of a recorded request.
func DecodeBody[T any](t testing.TB, r Request) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(r.Body, &v); err != nil {
		t.Fatalf("calcomtest: decode request body: %v", err)
	}
	return v
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		Query:    r.URL.Query(),
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	reply, ok := s.replies[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if reply.Delay > 0 {
		select {
		case <-time.After(reply.Delay):
		case <-r.Context().Done():
			return
		}
	}

	for k, vs := range reply.Header {
		w.Header()[k] = vs
	}
	status := reply.Status
	if status == 0 {
		status = http.StatusOK
	}

	var payload []byte
	switch b := reply.Body.(type) {
	case nil:
	case []byte:
		payload = b
	case string:
		payload = []byte(b)
	default:
		var err error
		if payload, err = json.Marshal(b); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}
	}

	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort after WriteHeader
	w.Write(payload)
}
