package fetch

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNoHost is returned when a URL carries no usable host.
var ErrNoHost = errors.New("url has no host")

// Domain returns the host of a URL lowercased and with any leading www
// label stripped, the form profile and tier lookups key on.
func Domain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return "", fmt.Errorf("%w: %s", ErrNoHost, rawURL)
	}

	return host, nil
}
