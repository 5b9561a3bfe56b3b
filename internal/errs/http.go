package errs

import "strings"

// HTTPError is the response shape for every failed request.
//
// Only Message is serialized:
//
//	{ "msg": "invalid data type" }
//
// Code and Status are kept for logging and for the error handler
// that writes the response.
type HTTPError struct {
	Code    string `json:"-"`
	Message string `json:"msg"`
	Status  int    `json:"-"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// This does NOT compare Code/Status/Message, it only checks the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable codes for logs.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
