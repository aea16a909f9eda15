package calcom_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/calcom"
	"github.com/bjaus/calcom/calcomtest"
)

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := calcom.New(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{calcom.DefaultHost}, c.Config().Hosts)
	assert.NotNil(t, c.Users)
	assert.NotNil(t, c.Memberships)

	_, err = calcom.New(&calcom.Config{})
	assert.ErrorIs(t, err, calcom.ErrNoHost)
}

func TestNew_copies_config(t *testing.T) {
	t.Parallel()

	cfg := calcom.NewConfig()
	cfg.DefaultHeaders = map[string]string{"X-Team": "a"}
	c, err := calcom.New(cfg)
	require.NoError(t, err)

	cfg.DefaultHeaders["X-Team"] = "b"
	cfg.Hosts[0] = "https://example.com"

	got := c.Config()
	assert.Equal(t, "a", got.DefaultHeaders["X-Team"])
	assert.Equal(t, calcom.DefaultHost, got.Hosts[0])
}

func TestCall_success(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/availability", calcomtest.JSON(http.StatusOK, map[string]any{"foo": "bar"}))
	c := srv.Client(t)

	got, err := c.Availability.User.Do(context.Background(), calcom.UserAvailabilityParams{
		Username: calcom.Some("alice"),
		DateFrom: calcom.Some(calcom.NewDate(2024, time.January, 15)),
	})
	require.NoError(t, err)
	assert.Equal(t, calcom.Object{"foo": "bar"}, got)

	req := srv.LastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "apiKey="+calcomtest.APIKey+"&username=alice&dateFrom=2024-01-15", req.RawQuery)
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "calcom-go/1.0", req.Header.Get("User-Agent"))
}

func TestCall_not_found(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	c := srv.Client(t)

	_, err := c.Webhooks.Get.Do(context.Background(), calcom.ByID{ID: 99})

	var apiErr *calcom.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Nil(t, apiErr.Payload)
	assert.Equal(t, "getWebhookById", apiErr.Op)
	assert.Equal(t, http.StatusNotFound, calcom.ErrorStatus(err))
}

func TestCall_error_payload(t *testing.T) {
	t.Parallel()

	op := calcom.NewOperation("strict", http.MethodGet, "/strict",
		calcom.WithResponse[calcom.Object](http.StatusOK, "OK"),
		calcom.WithResponse[calcom.Object](http.StatusBadRequest, "Bad request"),
	)

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/strict", calcomtest.JSON(http.StatusBadRequest, map[string]any{"message": "invalid"}))
	c := srv.Client(t)

	_, err := calcom.Call[calcom.Object](context.Background(), c, op, nil)

	var apiErr *calcom.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, calcom.Object{"message": "invalid"}, apiErr.Payload)
}

func TestCall_unmapped_success_is_empty(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/webhooks", calcomtest.JSON(http.StatusAccepted, map[string]any{"queued": true}))
	c := srv.Client(t)

	resp, err := c.Webhooks.List.DoWithInfo(context.Background(), calcom.NoParams{})
	require.NoError(t, err)
	assert.Nil(t, resp.Data)
	assert.Equal(t, http.StatusAccepted, resp.Status)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestCall_decode_error(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/users/1", calcomtest.Reply{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   `{"user":`,
	})
	c := srv.Client(t)

	_, err := c.Users.Get.Do(context.Background(), calcom.ByID{ID: 1})

	var de *calcom.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, http.StatusOK, de.Status)
	assert.Equal(t, `{"user":`, string(de.Body))
}

func TestCall_strict_body(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		body    string
		wantErr bool
	}{
		"empty body":             {body: "", wantErr: true},
		"whitespace only":        {body: " \n", wantErr: true},
		"trailing garbage":       {body: `{"foo":"bar"} garbage`, wantErr: true},
		"concatenated objects":   {body: `{"a":1}{"b":2}`, wantErr: true},
		"trailing newline":       {body: "{\"a\":1}\n"},
		"surrounding whitespace": {body: " {\"a\":1} "},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := calcomtest.NewServer(t)
			srv.Handle(http.MethodGet, "/webhooks", calcomtest.Reply{
				Status: http.StatusOK,
				Header: http.Header{"Content-Type": []string{"application/json"}},
				Body:   tc.body,
			})

			got, err := srv.Client(t).Webhooks.List.Do(context.Background(), calcom.NoParams{})
			if !tc.wantErr {
				require.NoError(t, err)
				assert.Equal(t, calcom.Object{"a": float64(1)}, got)
				return
			}

			var de *calcom.DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, http.StatusOK, de.Status)
			assert.Equal(t, tc.body, string(de.Body))
		})
	}
}

func TestCall_strict_model_body(t *testing.T) {
	t.Parallel()

	op := calcom.NewOperation("getSchedule", http.MethodGet, "/schedule",
		calcom.WithResponse[calcom.ScheduleCreate](http.StatusOK, "OK"),
	)

	tests := map[string]string{
		"empty body":       "",
		"trailing garbage": `{"name":"Office hours","timeZone":"Europe/Paris"} x`,
		"two objects":      `{"name":"a","timeZone":"UTC"}{"name":"b","timeZone":"UTC"}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := calcomtest.NewServer(t)
			srv.Handle(http.MethodGet, "/schedule", calcomtest.Reply{
				Status: http.StatusOK,
				Header: http.Header{"Content-Type": []string{"application/json"}},
				Body:   body,
			})

			_, err := calcom.Call[calcom.ScheduleCreate](context.Background(), srv.Client(t), op, nil)

			var de *calcom.DecodeError
			assert.ErrorAs(t, err, &de)
		})
	}
}

func TestCall_model_response(t *testing.T) {
	t.Parallel()

	op := calcom.NewOperation("getSchedule", http.MethodGet, "/schedule",
		calcom.WithResponse[calcom.ScheduleCreate](http.StatusOK, "OK"),
	)

	srv := calcomtest.NewServer(t)
	c := srv.Client(t)

	srv.Handle(http.MethodGet, "/schedule", calcomtest.JSON(http.StatusOK, map[string]any{
		"name":     "Office hours",
		"timeZone": "Europe/Paris",
	}))
	got, err := calcom.Call[calcom.ScheduleCreate](context.Background(), c, op, nil)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", got.TimeZone.Value())

	srv.Handle(http.MethodGet, "/schedule", calcomtest.JSON(http.StatusOK, map[string]any{"name": "Office hours"}))
	_, err = calcom.Call[calcom.ScheduleCreate](context.Background(), c, op, nil)

	var de *calcom.DecodeError
	require.ErrorAs(t, err, &de)
	assert.ErrorIs(t, err, calcom.ErrMissingField)
}

func TestCall_validation_error_sends_nothing(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	c := srv.Client(t)

	_, err := c.Schedules.Create.Do(context.Background(), calcom.Create[calcom.ScheduleCreate]{})

	var ve *calcom.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, srv.Requests())
}

func TestCall_body(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodPatch, "/webhooks/3", calcomtest.JSON(http.StatusOK, map[string]any{"webhook": map[string]any{"id": 3}}))
	c := srv.Client(t)

	_, err := c.Webhooks.Edit.Do(context.Background(), calcom.Edit[calcom.WebhookEdit]{
		ID: 3,
		Body: calcom.WebhookEdit{
			EventTriggers: calcom.Some(calcom.TriggerMeetingEnded),
			Secret:        calcom.Null[string](),
		},
	})
	require.NoError(t, err)

	req := srv.LastRequest(t)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"eventTriggers":"MEETING_ENDED","secret":null}`, string(req.Body))

	got := calcomtest.DecodeBody[map[string]any](t, req)
	assert.Len(t, got, 2)
}

func TestCall_timeout(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/webhooks", calcomtest.Reply{Status: http.StatusOK, Delay: 2 * time.Second})
	c := srv.Client(t)

	tests := map[string]struct {
		opt       calcom.CallOption
		wantCause error
	}{
		"total": {
			opt:       calcom.WithTimeout(50 * time.Millisecond),
			wantCause: calcom.ErrCallTimeout,
		},
		"read": {
			opt:       calcom.WithConnectReadTimeout(time.Second, 50*time.Millisecond),
			wantCause: calcom.ErrReadTimeout,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			start := time.Now()
			_, err := c.Webhooks.List.Do(context.Background(), calcom.NoParams{}, tc.opt)
			assert.Less(t, time.Since(start), time.Second)

			var te *calcom.TransportError
			require.ErrorAs(t, err, &te)
			assert.True(t, te.Timeout())
			assert.ErrorIs(t, err, tc.wantCause)
			assert.NotContains(t, te.Error(), calcomtest.APIKey)
		})
	}
}

func TestCall_transport_error(t *testing.T) {
	t.Parallel()

	cfg := calcom.NewConfig()
	cfg.Hosts = []string{"http://127.0.0.1:1"}
	cfg.APIKey = "secret"
	c, err := calcom.New(cfg)
	require.NoError(t, err)

	_, err = c.Webhooks.List.Do(context.Background(), calcom.NoParams{})

	var te *calcom.TransportError
	require.ErrorAs(t, err, &te)
	assert.False(t, te.Timeout())
	assert.NotContains(t, err.Error(), "secret")
	assert.Contains(t, te.URL, "apiKey=REDACTED")
}

func TestCall_query_credentials_first(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/bookings", calcomtest.JSON(http.StatusOK, map[string]any{}))
	c := srv.Client(t)

	_, err := c.Bookings.List.Do(context.Background(),
		calcom.ListBookingsParams{UserIDs: []int64{1, 2}},
		calcom.WithAuth(
			calcom.HeaderCredential("X-Team", "scheduling"),
			calcom.QueryCredential("apiKey", "override"),
		),
	)
	require.NoError(t, err)

	req := srv.LastRequest(t)
	assert.Equal(t, "apiKey=override&userId=1&userId=2", req.RawQuery)
	assert.Equal(t, "scheduling", req.Header.Get("X-Team"))
}

func TestCall_cancelled_context(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	c := srv.Client(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Webhooks.List.Do(ctx, calcom.NoParams{})

	var te *calcom.TransportError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCall_auth(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		clientOpts []calcom.ClientOption
		callOpts   []calcom.CallOption
		wantQuery  string
		wantHeader string
	}{
		"configured key": {
			wantQuery: calcomtest.APIKey,
		},
		"per-call key": {
			callOpts:  []calcom.CallOption{calcom.WithAPIKey("other")},
			wantQuery: "other",
		},
		"explicitly unauthenticated": {
			callOpts: []calcom.CallOption{calcom.WithAuth()},
		},
		"header scheme": {
			clientOpts: []calcom.ClientOption{calcom.WithSecurityScheme(calcom.APIKeyAuth, calcom.SecurityScheme{
				Type: "apiKey",
				In:   "header",
				Name: "X-Cal-Key",
			})},
			wantHeader: calcomtest.APIKey,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := calcomtest.NewServer(t)
			srv.Handle(http.MethodGet, "/webhooks", calcomtest.JSON(http.StatusOK, map[string]any{}))
			c := srv.Client(t, tc.clientOpts...)

			_, err := c.Webhooks.List.Do(context.Background(), calcom.NoParams{}, tc.callOpts...)
			require.NoError(t, err)

			req := srv.LastRequest(t)
			assert.Equal(t, tc.wantQuery, req.Query.Get("apiKey"))
			assert.Equal(t, tc.wantHeader, req.Header.Get("X-Cal-Key"))
		})
	}
}

func TestCall_bearer_scheme(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/webhooks", calcomtest.JSON(http.StatusOK, map[string]any{}))
	c := srv.Client(t, calcom.WithSecurityScheme(calcom.APIKeyAuth, calcom.SecurityScheme{
		Type:   "http",
		Scheme: "bearer",
	}))

	_, err := c.Webhooks.List.Do(context.Background(), calcom.NoParams{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+calcomtest.APIKey, srv.LastRequest(t).Header.Get("Authorization"))
}

func TestCall_api_key_prefix(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/webhooks", calcomtest.JSON(http.StatusOK, map[string]any{}))

	cfg := srv.Config()
	cfg.APIKeyPrefix = "cal"
	c, err := calcom.New(cfg)
	require.NoError(t, err)

	_, err = c.Webhooks.List.Do(context.Background(), calcom.NoParams{})
	require.NoError(t, err)
	assert.Equal(t, "cal "+calcomtest.APIKey, srv.LastRequest(t).Query.Get("apiKey"))
}

func TestCall_no_key_sends_no_auth(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/webhooks", calcomtest.JSON(http.StatusOK, map[string]any{}))

	cfg := srv.Config()
	cfg.APIKey = ""
	c, err := calcom.New(cfg)
	require.NoError(t, err)

	_, err = c.Webhooks.List.Do(context.Background(), calcom.NoParams{})
	require.NoError(t, err)
	assert.Empty(t, srv.LastRequest(t).RawQuery)
}

func TestCall_headers(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/webhooks", calcomtest.JSON(http.StatusOK, map[string]any{}))

	cfg := srv.Config()
	cfg.DefaultHeaders = map[string]string{"X-Team": "default", "X-Env": "test"}
	c, err := calcom.New(cfg)
	require.NoError(t, err)

	_, err = c.Webhooks.List.Do(context.Background(), calcom.NoParams{},
		calcom.WithHeader("X-Team", "override"),
		calcom.WithHeader("Accept", "application/problem+json"),
	)
	require.NoError(t, err)

	req := srv.LastRequest(t)
	assert.Equal(t, "override", req.Header.Get("X-Team"))
	assert.Equal(t, "test", req.Header.Get("X-Env"))
	assert.Equal(t, "application/problem+json", req.Header.Get("Accept"))
}

func TestCall_host_index(t *testing.T) {
	t.Parallel()

	primary := calcomtest.NewServer(t)
	secondary := calcomtest.NewServer(t)
	secondary.Handle(http.MethodGet, "/webhooks", calcomtest.JSON(http.StatusOK, map[string]any{}))

	cfg := primary.Config()
	cfg.Hosts = append(cfg.Hosts, secondary.URL)
	c, err := calcom.New(cfg)
	require.NoError(t, err)

	_, err = c.Webhooks.List.Do(context.Background(), calcom.NoParams{}, calcom.WithHostIndex(1))
	require.NoError(t, err)
	assert.Empty(t, primary.Requests())
	assert.Len(t, secondary.Requests(), 1)

	_, err = c.Webhooks.List.Do(context.Background(), calcom.NoParams{}, calcom.WithHostIndex(5))
	assert.ErrorIs(t, err, calcom.ErrNoHost)
}

func TestCallRaw(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/users/1", calcomtest.Reply{Status: http.StatusTeapot, Body: "short and stout"})
	c := srv.Client(t)

	resp, err := c.Users.Get.DoRaw(context.Background(), calcom.ByID{ID: 1})
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "short and stout", string(body))
}

func TestCall_max_response_bytes(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/webhooks", calcomtest.JSON(http.StatusOK, map[string]any{"padding": "0123456789012345678901234567890123456789"}))

	cfg := srv.Config()
	cfg.MaxResponseBytes = 16
	c, err := calcom.New(cfg)
	require.NoError(t, err)

	_, err = c.Webhooks.List.Do(context.Background(), calcom.NoParams{})

	var de *calcom.DecodeError
	require.ErrorAs(t, err, &de)
	assert.ErrorIs(t, err, calcom.ErrResponseTooLarge)
}

func TestCall_custom_http_client(t *testing.T) {
	t.Parallel()

	var seen int
	hc := &http.Client{Transport: calcom.RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seen++
		return http.DefaultTransport.RoundTrip(r)
	})}

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/webhooks", calcomtest.JSON(http.StatusOK, map[string]any{}))
	c := srv.Client(t, calcom.WithHTTPClient(hc))

	_, err := c.Webhooks.List.Do(context.Background(), calcom.NoParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, seen)
}

func TestEndpoint_Build(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	c := srv.Client(t)

	d, err := c.Memberships.Edit.Build(calcom.EditMembership{
		MembershipKey: calcom.MembershipKey{UserID: 3, TeamID: 4},
		Body:          calcom.Object{"role": "ADMIN"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/memberships/3_4", d.Path)
	assert.Equal(t, http.MethodPatch, d.Method)
	assert.JSONEq(t, `{"role":"ADMIN"}`, string(d.Body))
	assert.Same(t, calcom.OpEditMembership, c.Memberships.Edit.Operation())
	assert.Empty(t, srv.Requests())
}
