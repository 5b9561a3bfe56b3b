// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, CORS, tracing, panic
// recovery and the review listing's query validation. It also
// holds the global error handler that turns failures into
// {"msg": "..."} responses.
package middleware
