package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/calcom/calcomtest"
)

// run executes the root command against srv and returns stdout.
func run(t *testing.T, srv *calcomtest.Server, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if srv != nil {
		args = append([]string{"--host", srv.URL, "--api-key", calcomtest.APIKey}, args...)
	}
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAvailabilityUser(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/availability", calcomtest.JSON(http.StatusOK, map[string]any{"busy": []any{}}))

	out, err := run(t, srv, "availability", "user", "--username", "alice", "--date-from", "2024-01-15", "--event-type-id", "3")
	require.NoError(t, err)
	assert.JSONEq(t, `{"busy":[]}`, out)

	req := srv.LastRequest(t)
	assert.Equal(t, "alice", req.Query.Get("username"))
	assert.Equal(t, "2024-01-15", req.Query.Get("dateFrom"))
	assert.Equal(t, "3", req.Query.Get("eventTypeId"))
	assert.NotContains(t, req.Query, "userId")
	assert.NotContains(t, req.Query, "dateTo")
}

func TestAvailabilityTeam(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/teams/42/availability", calcomtest.JSON(http.StatusOK, map[string]any{}))

	_, err := run(t, srv, "availability", "team", "42", "--date-to", "2024-01-22")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-22", srv.LastRequest(t).Query.Get("dateTo"))
}

func TestAvailability_bad_input(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"bad date":    {"availability", "user", "--date-from", "15/01/2024"},
		"bad team id": {"availability", "team", "abc"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := calcomtest.NewServer(t)
			_, err := run(t, srv, args...)
			require.Error(t, err)
			assert.Empty(t, srv.Requests())
		})
	}
}

func TestUsersEdit(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodPatch, "/users/7", calcomtest.JSON(http.StatusOK, map[string]any{"user": map[string]any{"id": 7}}))

	_, err := run(t, srv, "users", "edit", "7", "--time-zone", "Europe/Paris", "--week-start", "MONDAY", "--theme", "null", "--hide-branding")
	require.NoError(t, err)

	assert.JSONEq(t, `{"timeZone":"Europe/Paris","weekStart":"MONDAY","theme":null,"hideBranding":true}`,
		string(srv.LastRequest(t).Body))
}

func TestUsersEdit_invalid_enum(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	_, err := run(t, srv, "users", "edit", "7", "--time-format", "24h")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeFormat")
	assert.Empty(t, srv.Requests())
}

func TestUsersGet_not_found(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	_, err := run(t, srv, "users", "get", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestWebhooks(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/webhooks", calcomtest.JSON(http.StatusOK, map[string]any{"webhooks": []any{}}))
	srv.Handle(http.MethodPost, "/webhooks", calcomtest.JSON(http.StatusCreated, map[string]any{}))
	srv.Handle(http.MethodPatch, "/webhooks/3", calcomtest.JSON(http.StatusOK, map[string]any{}))
	srv.Handle(http.MethodDelete, "/webhooks/3", calcomtest.JSON(http.StatusOK, map[string]any{}))

	_, err := run(t, srv, "webhooks", "list")
	require.NoError(t, err)

	_, err = run(t, srv, "webhooks", "create", "--subscriber-url", "https://example.com/hook", "--trigger", "MEETING_ENDED")
	require.NoError(t, err)
	assert.JSONEq(t, `{"subscriberUrl":"https://example.com/hook","eventTriggers":"MEETING_ENDED","active":true}`,
		string(srv.LastRequest(t).Body))

	_, err = run(t, srv, "webhooks", "edit", "3", "--active=false", "--secret", "null")
	require.NoError(t, err)
	assert.JSONEq(t, `{"active":false,"secret":null}`, string(srv.LastRequest(t).Body))

	_, err = run(t, srv, "webhooks", "delete", "3")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, srv.LastRequest(t).Method)
}

func TestBookingReferencesEdit(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodPatch, "/bookings/references/9", calcomtest.JSON(http.StatusOK, map[string]any{}))

	_, err := run(t, srv, "refs", "edit", "9", "--meeting-id", "abc", "--deleted", "--credential-id", "5")
	require.NoError(t, err)
	assert.JSONEq(t, `{"meetingId":"abc","deleted":true,"credentialId":5}`, string(srv.LastRequest(t).Body))
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/webhooks", calcomtest.JSON(http.StatusOK, map[string]any{}))

	path := filepath.Join(t.TempDir(), "calcom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hosts: [\""+srv.URL+"\"]\napiKey: from-file\n"), 0o600))

	_, err := run(t, nil, "--config", path, "webhooks", "list")
	require.NoError(t, err)
	assert.Equal(t, "from-file", srv.LastRequest(t).Query.Get("apiKey"))
}

func TestAvailability_configured_date_format(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/teams/42/availability", calcomtest.JSON(http.StatusOK, map[string]any{}))

	path := filepath.Join(t.TempDir(), "calcom.yaml")
	config := "hosts: [\"" + srv.URL + "\"]\napiKey: k\ndateFormat: DD/MM/YYYY\n"
	require.NoError(t, os.WriteFile(path, []byte(config), 0o600))

	_, err := run(t, nil, "--config", path, "availability", "team", "42", "--date-from", "15/01/2024")
	require.NoError(t, err)
	assert.Equal(t, "15/01/2024", srv.LastRequest(t).Query.Get("dateFrom"))

	_, err = run(t, nil, "--config", path, "availability", "team", "42", "--date-from", "2024-01-15")
	require.Error(t, err)
	assert.Len(t, srv.Requests(), 1)
}

func TestSpecCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, nil, "spec")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "3.1.0", doc["openapi"])

	path := filepath.Join(t.TempDir(), "openapi.yaml")
	_, err = run(t, nil, "spec", "--yaml", "-o", path)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(b, &doc))
	assert.Contains(t, doc, "paths")
}

func TestDocsMux(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(docsMux())
	t.Cleanup(srv.Close)

	tests := map[string]struct {
		path        string
		contentType string
	}{
		"json spec": {path: "/openapi.json", contentType: "application/json"},
		"yaml spec": {path: "/openapi.yaml", contentType: "application/yaml"},
		"docs page": {path: "/docs", contentType: "text/html; charset=utf-8"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+tc.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer func() { require.NoError(t, resp.Body.Close()) }()

			_, err = io.Copy(io.Discard, resp.Body)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tc.contentType, resp.Header.Get("Content-Type"))
		})
	}
}

func TestServeDocs_shutdown(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveDocs(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newLogger(&buf, "json", 0).Info("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, "json", 1).Info("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
