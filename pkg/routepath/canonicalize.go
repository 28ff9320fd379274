// Package routepath normalizes page paths so that registration, server
// render and live handshakes agree on which page a path names.
package routepath

import (
	"errors"
	"strings"
)

// Canonicalization errors.
var (
	ErrBackslash     = errors.New("path contains backslash")
	ErrNullByte      = errors.New("path contains null byte")
	ErrInvalidEscape = errors.New("invalid percent escape sequence")
	ErrEscapesRoot   = errors.New("path escapes root via ..")
	ErrAbsoluteURL   = errors.New("path is an absolute URL")
)

// Canonicalize returns the canonical form of a page path. The query string
// and fragment are dropped, slashes are collapsed, "." and ".." segments are
// resolved and a trailing slash is removed. The empty path is "/".
//
//	Canonicalize("/signup/")        // "/signup"
//	Canonicalize("blog//./post?x")  // "/blog/post"
func Canonicalize(input string) (string, error) {
	path, _, _ := strings.Cut(input, "#")
	path, _, _ = strings.Cut(path, "?")

	switch {
	case strings.HasPrefix(path, "//"), strings.Contains(path, "://"):
		return "", ErrAbsoluteURL
	case strings.Contains(path, `\`):
		return "", ErrBackslash
	case strings.Contains(path, "\x00"), strings.Contains(strings.ToUpper(path), "%00"):
		return "", ErrNullByte
	}
	if strings.Contains(path, "%") && !validEscapes(path) {
		return "", ErrInvalidEscape
	}

	var segments []string
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(segments) == 0 {
				return "", ErrEscapesRoot
			}
			segments = segments[:len(segments)-1]
		default:
			segments = append(segments, seg)
		}
	}
	return "/" + strings.Join(segments, "/"), nil
}

// MustCanonicalize is like Canonicalize but panics on error. It is meant for
// paths fixed at registration time.
func MustCanonicalize(path string) string {
	p, err := Canonicalize(path)
	if err != nil {
		panic("routepath: " + path + ": " + err.Error())
	}
	return p
}

func validEscapes(path string) bool {
	for i := 0; i < len(path); i++ {
		if path[i] != '%' {
			continue
		}
		if i+2 >= len(path) || !isHex(path[i+1]) || !isHex(path[i+2]) {
			return false
		}
		i += 2
	}
	return true
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
