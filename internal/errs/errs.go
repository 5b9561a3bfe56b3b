// Package errs define the failure types shared by every layer.
//
// Its purpose is to give each failure a stable kind (e.g. NotFound,
// InvalidType) close to where it happens, and to translate that kind
// in one place into the status code and `{ "msg": ... }` body the
// client receives.
package errs
