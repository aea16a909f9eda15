package calcom_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/calcom"
	"github.com/bjaus/calcom/calcomtest"
)

func TestTimeout_constructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, calcom.Timeout{Total: time.Second}, calcom.Scalar(time.Second))
	assert.Equal(t, calcom.Timeout{Connect: time.Second, Read: 2 * time.Second}, calcom.Pair(time.Second, 2*time.Second))
	assert.True(t, calcom.Timeout{}.IsZero())
	assert.False(t, calcom.Scalar(time.Second).IsZero())
}

func TestTimeout_from_config(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/webhooks", calcomtest.Reply{Status: http.StatusOK, Delay: 2 * time.Second})

	cfg := srv.Config()
	cfg.Timeout = calcom.Scalar(50 * time.Millisecond)
	c, err := calcom.New(cfg)
	require.NoError(t, err)

	_, err = c.Webhooks.List.Do(context.Background(), calcom.NoParams{})

	var te *calcom.TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, te.Timeout())
}

func TestTimeout_per_call_overrides_config(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/webhooks", calcomtest.Reply{
		Status: http.StatusOK,
		Body:   map[string]any{},
		Delay:  100 * time.Millisecond,
	})

	cfg := srv.Config()
	cfg.Timeout = calcom.Scalar(20 * time.Millisecond)
	c, err := calcom.New(cfg)
	require.NoError(t, err)

	_, err = c.Webhooks.List.Do(context.Background(), calcom.NoParams{}, calcom.WithCallTimeout(calcom.Scalar(5*time.Second)))
	assert.NoError(t, err)
}

func TestTimeout_fast_response(t *testing.T) {
	t.Parallel()

	srv := calcomtest.NewServer(t)
	srv.Handle(http.MethodGet, "/webhooks", calcomtest.JSON(http.StatusOK, map[string]any{"webhooks": []any{}}))
	c := srv.Client(t)

	got, err := c.Webhooks.List.Do(context.Background(), calcom.NoParams{},
		calcom.WithConnectReadTimeout(time.Second, time.Second))
	require.NoError(t, err)
	assert.Contains(t, got, "webhooks")
}
