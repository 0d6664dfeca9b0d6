// Package useragent summarises who is on the other end of a request, for
// connection logs.
package useragent

import (
	"net"
	"net/http"
	"strings"
)

// match order matters: Edge and Chrome both claim Safari, Edge also
// claims Chrome
var browsers = []struct{ token, name string }{
	{"Edg/", "Edge"},
	{"Firefox/", "Firefox"},
	{"Chrome/", "Chrome"},
	{"Safari/", "Safari"},
}

var systems = []struct{ token, name string }{
	{"Android", "Android"},
	{"iPhone", "iOS"},
	{"iPad", "iOS"},
	{"Windows", "Windows"},
	{"Mac OS X", "macOS"},
	{"Linux", "Linux"},
}

// Describe returns e.g. "Firefox 128 on Linux".
func Describe(r *http.Request) string {
	ua := r.Header.Get("User-Agent")
	if ua == "" {
		return "unknown client"
	}

	browser, version := "unknown browser", ""
	for _, b := range browsers {
		if idx := strings.Index(ua, b.token); idx != -1 {
			browser = b.name
			version = majorVersion(ua[idx+len(b.token):])
			break
		}
	}

	system := "unknown OS"
	for _, s := range systems {
		if strings.Contains(ua, s.token) {
			system = s.name
			break
		}
	}

	if version != "" {
		browser += " " + version
	}
	return browser + " on " + system
}

// majorVersion reads the leading digits of s.
func majorVersion(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

// ClientIP prefers proxy headers over the socket address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
