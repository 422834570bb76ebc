package httpclient

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"shipment-custody/internal/core/logger"
	"shipment-custody/internal/core/proxy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggingRoundTripper verifies that requests go through the logging transport.
func TestLoggingRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	logger.Init("development", "debug")

	client := NewClient(1*time.Second, proxy.Settings{})
	resp, err := client.Post(ts.URL, "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

// TestLoggingRoundTripper_Error verifies that failed requests are returned.
func TestLoggingRoundTripper_Error(t *testing.T) {
	logger.Init("development", "debug")

	client := NewClient(1*time.Second, proxy.Settings{})
	_, err := client.Get("http://invalid-url-that-does-not-exist.local")
	require.Error(t, err)
}

// TestNewClient_UsesProxy verifies that requests are sent to the configured proxy.
func TestNewClient_UsesProxy(t *testing.T) {
	var proxied bool
	px := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied = r.Host == "hooks.example.com"
		w.WriteHeader(http.StatusOK)
	}))
	defer px.Close()

	host, port := splitHostPort(t, px.Listener.Addr().String())

	client := NewClient(1*time.Second, proxy.Settings{Enabled: true, Hostname: host, Port: port})
	resp, err := client.Get("http://hooks.example.com/custody")
	require.NoError(t, err)
	resp.Body.Close()

	assert.True(t, proxied)
}

func splitHostPort(t *testing.T, addr string) (string, int) {
	t.Helper()
	host, portStr, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return host, port
}
