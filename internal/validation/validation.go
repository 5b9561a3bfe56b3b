// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules defined in
// struct tags, and gates the review listing's sort parameters
// against an allow-list before they can reach a query.
package validation
