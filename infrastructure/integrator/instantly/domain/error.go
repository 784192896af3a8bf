package instantlydomain

import "errors"

// Sentinel errors the client maps upstream responses onto. Handlers translate
// these into the caller-visible error taxonomy.
var (
	// ErrInvalidAPIKey means the platform rejected the tenant's key (401).
	ErrInvalidAPIKey = errors.New("instantly: invalid api key")

	// ErrRateLimited means a 429 survived every retry.
	ErrRateLimited = errors.New("instantly: rate limited")

	// ErrUpstreamServer means the platform answered with a 5xx.
	ErrUpstreamServer = errors.New("instantly: upstream server error")
)

// ErrorResponse is the error body the platform returns on failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
