package lemlistdomain

import "errors"

var (
	// ErrInvalidCredentials means the platform rejected the Basic auth pair.
	ErrInvalidCredentials = errors.New("lemlist: invalid credentials")

	// ErrRateLimited means the platform answered 429.
	ErrRateLimited = errors.New("lemlist: rate limited")

	// ErrUpstreamServer means the platform answered with a 5xx.
	ErrUpstreamServer = errors.New("lemlist: upstream server error")
)
