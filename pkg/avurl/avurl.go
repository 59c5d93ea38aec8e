// Package avurl parses the media URLs used as output destinations:
// rtmp://host:1935/app, udp://239.1.1.1:5000, s3ssl://bucket/prefix and so on.
//
// Parsing follows FFmpeg's av_url_split: scheme, optional "//", authority up to
// the first '/', '?' or '#', then path. Ports are kept as written.
package avurl

import (
	"errors"
	"fmt"
	"strconv"
)

type URL struct {
	Scheme   string `json:"scheme"`
	Userinfo string `json:"userinfo,omitempty"`
	Host     string `json:"host"`
	Port     string `json:"port,omitempty"`
	Path     string `json:"path,omitempty"`
}

var (
	ErrNoScheme = errors.New("missing scheme")
	ErrNoHost   = errors.New("missing host")
	ErrUserinfo = errors.New("credentials must not be embedded in the URL")
)

// Parse splits raw into components and validates host and port.
func Parse(raw string) (*URL, error) {
	p := split(raw)

	// split must be lossless; anything else is a parser bug.
	if raw != p.join() {
		return nil, errors.New("unable to parse URL")
	}
	if p.junk != "" {
		return nil, fmt.Errorf("unexpected %q after host", p.junk)
	}
	if p.hasAt {
		return nil, ErrUserinfo
	}

	if p.host != "" {
		if err := validateHost(p.host, p.brackets); err != nil {
			return nil, err
		}
	}
	if p.hasPort && !isPort(p.port) {
		return nil, fmt.Errorf("bad port: '%s'", p.port)
	}

	return &URL{
		Scheme:   p.scheme,
		Userinfo: p.userinfo,
		Host:     p.host,
		Port:     p.port,
		Path:     p.path,
	}, nil
}

// Validate accepts destination URLs: a scheme and a host are required, and
// credentials go in the destination's Username/PasswordParam fields instead.
func Validate(raw string) error {
	u, err := Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" {
		return ErrNoScheme
	}
	if u.Host == "" {
		return ErrNoHost
	}
	return nil
}

// isPort checks if s is a port number (0-65535) without leading zeros.
func isPort(s string) bool {
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return port >= 0 && port <= 65535
}
