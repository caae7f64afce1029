package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-nextbirthday/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	s := New(Config{})

	assert.Equal(t, config.DefaultHost, s.host)
	assert.Equal(t, config.DefaultPort, s.port)
	assert.Equal(t, []string{config.DefaultCORSOrigin}, s.origins)
	assert.NotNil(t, s.clock)
	assert.NotNil(t, s.bundle)
	assert.NotNil(t, s.router)
}

func TestStart_RejectsInvalidPort(t *testing.T) {
	s := New(Config{Port: -1})

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrPortRange)
}

// TestRecoverer verifies that a panic below the router surfaces as the
// service's JSON 500 shape rather than a plain-text error page.
func TestRecoverer(t *testing.T) {
	s := New(Config{})
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/nextbirthday?dob=2000-01-01", nil)
	w := httptest.NewRecorder()
	s.recoverer(panicking).ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, config.HTTPMsgInternalErr, resp.Error)
	assert.Equal(t, config.ExampleUsage, resp.Example)
}

// TestServer_Lifecycle spins up the actual TCP listener to verify
// network binding and graceful shutdown.
func TestServer_Lifecycle(t *testing.T) {
	const port = 18099

	s := New(Config{Host: "127.0.0.1", Port: port})
	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)

	go func() {
		errChan <- s.Start(ctx)
	}()

	url := "http://127.0.0.1:18099" + config.RouteHealth

	// Wait for the server to be responsive (TCP bind takes a moment).
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}, 2*time.Second, 50*time.Millisecond, "Server failed to bind/listen in time")

	resp, err := http.Get(url)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	// Graceful shutdown on context cancellation.
	cancel()
	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
