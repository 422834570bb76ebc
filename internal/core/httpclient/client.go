package httpclient

import (
	"net/http"
	"time"

	"shipment-custody/internal/core/logger"
	"shipment-custody/internal/core/proxy"

	"go.uber.org/zap"
)

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	l := logger.Get()

	resp, err := lrt.Proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		l.Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Redacted()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	l.Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware routed through the given proxy.
func NewClient(timeout time.Duration, p proxy.Settings) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = p.Func()

	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: transport,
		},
		Timeout: timeout,
	}
}
