package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes grouped by concern. The code travels to the client; the HTTP
// status is resolved through httpStatusMap.
const (
	// Authentication (AUTH_*)
	ErrInvalidCredentials    = "AUTH_001" // invalid login credentials
	ErrUserDisabled          = "AUTH_002" // user deactivated
	ErrUserNotFound          = "AUTH_003" // user not found
	ErrInvalidToken          = "AUTH_006" // invalid bearer token
	ErrExpiredToken          = "AUTH_007" // expired bearer token
	ErrInsufficientPrivilege = "AUTH_008" // role not allowed
	ErrUserAlreadyExists     = "AUTH_009" // duplicate user
	ErrTenantForbidden       = "AUTH_011" // caller not authorized for the tenant

	// Validation (VAL_*)
	ErrInvalidRequest      = "VAL_001" // malformed request
	ErrMissingRequiredData = "VAL_002" // required data missing
	ErrInvalidFormat       = "VAL_003" // bad data format
	ErrTenantNotFound      = "VAL_004" // unknown tenant subdomain

	// Tenant configuration (CFG_*)
	ErrMissingAPIKey = "CFG_001" // tenant has no API key for the platform

	// Upstream platforms (UPS_*)
	ErrUpstreamAuth    = "UPS_001" // platform rejected the tenant credentials
	ErrUpstreamBusy    = "UPS_002" // rate limited after retries
	ErrUpstreamServer  = "UPS_003" // platform 5xx
	ErrUpstreamTimeout = "UPS_004" // request deadline exceeded downstream

	// Server (SRV_*)
	ErrInternalServer    = "SRV_001" // internal error
	ErrDatabaseOperation = "SRV_002" // database failure
	ErrExternalService   = "SRV_003" // external service failure
	ErrCommunication     = "SRV_004" // communication failure
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrTenantForbidden:       http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrTenantNotFound:        http.StatusNotFound,
	ErrMissingAPIKey:         http.StatusBadRequest,
	ErrUpstreamAuth:          http.StatusUnauthorized,
	ErrUpstreamBusy:          http.StatusServiceUnavailable,
	ErrUpstreamServer:        http.StatusBadGateway,
	ErrUpstreamTimeout:       http.StatusGatewayTimeout,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError is the standard error body returned to clients.
type APIError struct {
	Code    string `json:"error"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor resolves the HTTP status for an error code.
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError writes the standardized error body and status to the response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status := StatusFor(code)

	apiErr := APIError{
		Code:    code,
		Message: message,
		Status:  status,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error into an APIError with the given code.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
		Status:  StatusFor(code),
	}
}
