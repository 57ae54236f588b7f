package tenant

import (
	"net"
	"net/http"
	"regexp"
	"strings"
)

// Public is the sentinel subdomain meaning "no tenant".
const Public = "public"

const loopbackHost = "localhost"

// Labels that front shared services and never name a tenant.
var reservedLabels = map[string]bool{
	"api": true,
	"www": true,
}

var dnsLabelPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// ResolveSubdomain derives the tenant subdomain from a Host header value.
//
//	acme.localhost:5173   -> acme
//	localhost:5173        -> public
//	api.acme.example.com  -> acme
//	example.com           -> public
//
// Malformed input resolves to Public.
func ResolveSubdomain(host string) string {
	hostname := stripPort(strings.ToLower(strings.TrimSpace(host)))
	hostname = strings.TrimSuffix(hostname, ".")
	if hostname == "" || net.ParseIP(hostname) != nil {
		return Public
	}

	labels := strings.Split(hostname, ".")
	for len(labels) > 1 && reservedLabels[labels[0]] {
		labels = labels[1:]
	}

	for _, label := range labels {
		if !dnsLabelPattern.MatchString(label) {
			return Public
		}
	}

	first := labels[0]
	if first == loopbackHost {
		return Public
	}

	// Development: tenant.localhost
	if labels[len(labels)-1] == loopbackHost && len(labels) == 2 {
		return first
	}

	// Production: tenant.domain.tld
	if len(labels) > 2 {
		return first
	}

	return Public
}

// HostFromRequest returns the host used for subdomain routing, preferring the
// X-Original-Host header set by the reverse proxy.
func HostFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	if original := r.Header.Get("X-Original-Host"); original != "" {
		return original
	}
	return r.Host
}

// ResolveRequest is ResolveSubdomain applied to HostFromRequest.
func ResolveRequest(r *http.Request) string {
	return ResolveSubdomain(HostFromRequest(r))
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return strings.Trim(h, "[]")
	}
	if i := strings.IndexByte(host, ':'); i >= 0 && strings.Count(host, ":") == 1 {
		return host[:i]
	}
	return strings.Trim(host, "[]")
}
