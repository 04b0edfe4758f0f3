package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc builds the transport's proxy selector. Explicit proxy
// settings win over the environment; hosts matching the no-proxy list
// connect directly. With nothing configured, the standard environment
// variables apply.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if bypassProxy(req.URL.Hostname(), noProxy) {
			return nil, nil
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

// bypassProxy reports whether host matches an entry in the
// comma-separated no-proxy list. An entry matches itself and, with or
// without a leading dot, any subdomain.
func bypassProxy(host, noProxy string) bool {
	host = strings.ToLower(host)
	for _, entry := range strings.Split(noProxy, ",") {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		bare := strings.TrimPrefix(entry, ".")
		if host == bare || strings.HasSuffix(host, "."+bare) {
			return true
		}
	}
	return false
}
