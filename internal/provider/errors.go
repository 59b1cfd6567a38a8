package provider

import "errors"

var (
	// ErrNetwork wraps transport failures: connectivity, timeouts, non-2xx statuses.
	ErrNetwork = errors.New("network error")
	// ErrTransport wraps response bodies that are not JSON at all.
	ErrTransport = errors.New("malformed response")
)
