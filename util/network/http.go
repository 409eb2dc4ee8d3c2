package network

import (
	"crypto/tls"
	"net/http"
	"time"
)

// userAgentTransport represents round tripper setting User-Agent header on every request which has none
type userAgentTransport struct {
	userAgent string
	next      http.RoundTripper
}

// RoundTrip is used to satisfy http.RoundTripper interface
func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.next.RoundTrip(req)
}

// NewHttpClient returns new HTTP client.
//
// <timeout> is a time limit for requests made by returned client.
//
// <userAgent> is sent with every request if not empty. Some public sites (e.g. Wikipedia) reject the default one.
func NewHttpClient(timeout time.Duration, userAgent string) *http.Client {
	tlsCfg := &tls.Config{
		InsecureSkipVerify: true,
	}
	client := &http.Client{
		Timeout: timeout,
		Transport: userAgentTransport{
			userAgent: userAgent,
			next: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				TLSClientConfig: tlsCfg,
			},
		},
	}
	return client
}
