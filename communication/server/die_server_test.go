package server

import (
	"context"
	"errors"
	"ludo/communication/client"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) Roll(ctx context.Context) (int, error) {
	return 0, errors.New("exhausted")
}

func TestDieServerFeedsHTTPSource(t *testing.T) {
	srv := httptest.NewServer(NewDieServer(client.NewLocalRandomSource(3)))
	defer srv.Close()

	source := client.NewHTTPRandomSource(srv.URL+IntegersPath+"?num=1&min=1&max=6", "test-agent", time.Second)
	for i := 0; i < 20; i++ {
		value, err := source.Roll(context.Background())
		require.NoError(t, err)
		require.GreaterOrEqual(t, value, 1)
		require.LessOrEqual(t, value, 6)
	}
}

func TestDieServerSourceFailure(t *testing.T) {
	srv := httptest.NewServer(NewDieServer(failingSource{}))
	defer srv.Close()

	source := client.NewHTTPRandomSource(srv.URL+IntegersPath, "", time.Second)
	_, err := source.Roll(context.Background())
	require.ErrorIs(t, err, client.ErrBadStatus)
}

func TestDieServerRejectsPost(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, IntegersPath, nil)

	NewDieServer(client.NewLocalRandomSource(1)).ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestDieServerStartStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewDieServer(client.NewLocalRandomSource(1)).Start(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
