package shared

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// NewHTTPClient creates an HTTP client with connection pooling and explicit
// timeouts. The monitor makes a single upstream request per run, so there is
// no client cache and no retry policy here; the fetch contract is one attempt.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,

			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,

			DisableCompression: false,
		},
	}

	logrus.WithFields(logrus.Fields{
		"component": "HTTPClient",
		"timeout":   timeout,
	}).Debug("Created HTTP client")

	return client
}
