package httpapi

import "net/http"

// apiError is a typed error carrying the HTTP status and §7 error code it
// maps to, so handlers can return a plain Go error and have one place
// translate it into the wire envelope.
type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string { return e.message }

func newAPIError(status int, code, message string) *apiError {
	return &apiError{status: status, code: code, message: message}
}

var (
	errMapNotFound = newAPIError(http.StatusNotFound, "mapNotFound", "map not found")
	errInvalidName = newAPIError(http.StatusBadRequest, "invalidArgument", "user name must not be empty")
	errInvalidToken = newAPIError(http.StatusUnauthorized, "invalidToken", "authorization header is missing or malformed")
	errUnknownToken = newAPIError(http.StatusUnauthorized, "unknownToken", "unknown bearer token")
	errInvalidContentType = newAPIError(http.StatusBadRequest, "invalidArgument", "expected application/json content type")
	errParse        = newAPIError(http.StatusBadRequest, "invalidArgument", "malformed request body")
	errRange        = newAPIError(http.StatusBadRequest, "invalidRequest", "maxItems must not exceed 100")
	errTickDisabled = newAPIError(http.StatusBadRequest, "invalidRequest", "manual tick is disabled while an internal ticker is running")
	errInternal     = newAPIError(http.StatusInternalServerError, "internalError", "internal error")
)
