package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure independently of the transport.
type Kind string

const (
	KindUnknownColumn        Kind = "UNKNOWN_COLUMN"
	KindInvalidSortDirection Kind = "INVALID_SORT_DIRECTION"
	KindEmptyBody            Kind = "EMPTY_BODY"
	KindMissingField         Kind = "MISSING_FIELD"
	KindInvalidType          Kind = "INVALID_TYPE"
	KindInvalidReference     Kind = "INVALID_REFERENCE"
	KindNotFound             Kind = "NOT_FOUND"
	KindNoMatch              Kind = "NO_MATCH"
	KindRouteNotFound        Kind = "ROUTE_NOT_FOUND"
	KindInternal             Kind = "INTERNAL"
)

// Error is the tagged failure passed between layers.
//
// Fields:
//   - Kind: what went wrong, used by Translate to pick status and message.
//   - Message: resource-specific wording (NotFound only).
//   - Value: the offending input (InvalidSortDirection only).
//   - Err: the underlying cause, logged but never sent to the client.
type Error struct {
	Kind    Kind
	Message string
	Value   string
	Err     error
}

func (e *Error) Error() string {
	msg := Translate(e).Message
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a failure of the given kind with no extra context.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Wrap creates a failure of the given kind that keeps err as its cause.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// NewNotFoundError creates a 404 failure with resource-specific wording,
// e.g. "review not found".
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewInvalidSortDirectionError keeps the literal order value for the message.
func NewInvalidSortDirectionError(value string) *Error {
	return &Error{Kind: KindInvalidSortDirection, Value: value}
}

// NewInternalServerError wraps an unexpected cause.
//
// The cause is only for logs: clients always see "internal server error".
func NewInternalServerError(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain,
// or KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Translate maps a failure to the response the client receives.
//
// This is the only place where kinds become status codes:
//
//	UnknownColumn        -> 400 "column doesn't exist"
//	InvalidSortDirection -> 400 "cannot order by <value>"
//	EmptyBody            -> 400 "body can't be empty"
//	MissingField         -> 400 "data missing from request body"
//	InvalidType          -> 400 "invalid data type"
//	InvalidReference     -> 400 "invalid identifier"
//	NotFound             -> 404 <resource-specific message>
//	NoMatch              -> 404 "no review associated with this category"
//	RouteNotFound        -> 404 "Route not found"
//	anything else        -> 500 "internal server error"
func Translate(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var e *Error
	if !errors.As(err, &e) {
		return internalServerError()
	}

	switch e.Kind {
	case KindUnknownColumn:
		return badRequest(e.Kind, "column doesn't exist")
	case KindInvalidSortDirection:
		return badRequest(e.Kind, fmt.Sprintf("cannot order by %s", e.Value))
	case KindEmptyBody:
		return badRequest(e.Kind, "body can't be empty")
	case KindMissingField:
		return badRequest(e.Kind, "data missing from request body")
	case KindInvalidType:
		return badRequest(e.Kind, "invalid data type")
	case KindInvalidReference:
		return badRequest(e.Kind, "invalid identifier")
	case KindNotFound:
		message := e.Message
		if message == "" {
			message = "resource not found"
		}
		return notFound(e.Kind, message)
	case KindNoMatch:
		return notFound(e.Kind, "no review associated with this category")
	case KindRouteNotFound:
		return notFound(e.Kind, "Route not found")
	default:
		return internalServerError()
	}
}

func badRequest(kind Kind, message string) *HTTPError {
	return &HTTPError{
		Code:    string(kind),
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

func notFound(kind Kind, message string) *HTTPError {
	return &HTTPError{
		Code:    string(kind),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// internalServerError is the generic 500: clients don't need the real cause.
func internalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
	}
}
