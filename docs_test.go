package calcom_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/calcom"
)

func getDocs(t *testing.T, h http.Handler) (*http.Response, string) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/docs", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestDocsHandler_defaults(t *testing.T) {
	t.Parallel()

	resp, body := getDocs(t, calcom.Operations.DocsHandler())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "Cal.com API")
	assert.Contains(t, body, "elements-api")
	assert.Contains(t, body, "stoplight")
	assert.Contains(t, body, `apiDescriptionUrl="/openapi.json"`)
}

func TestDocsHandler_options(t *testing.T) {
	t.Parallel()

	_, body := getDocs(t, calcom.Operations.DocsHandler(
		calcom.WithDocsTitle("Scheduling API"),
		calcom.WithDocsSpecURL("/spec.json"),
	))

	assert.Contains(t, body, "<title>Scheduling API</title>")
	assert.Contains(t, body, `apiDescriptionUrl="/spec.json"`)
}
