package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrDecode indicates that a response body could not be decoded into the
// requested shape. Transport and HTTP-status failures are reported
// separately, as *StatusError or wrapped net/http errors.
var ErrDecode = errors.New("failed to decode response")

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Code int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d %s", e.Code, http.StatusText(e.Code))
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
