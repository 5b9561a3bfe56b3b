// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and
// converts them into tagged failures (e.g., converting a
// "foreign key violation" into an "invalid identifier" failure)
// right after the store call, so upper layers never look at
// SQLSTATE codes themselves.
package sqlerr

import "fmt"

// Code is our own classification of a Postgres SQLSTATE.
type Code string

const (
	Other                     Code = "other"
	NotNullViolation          Code = "not_null_violation"
	ForeignKeyViolation       Code = "foreign_key_violation"
	UniqueViolation           Code = "unique_violation"
	CheckViolation            Code = "check_violation"
	InvalidTextRepresentation Code = "invalid_text_representation"
	NumericValueOutOfRange    Code = "numeric_value_out_of_range"
	UndefinedColumn           Code = "undefined_column"
)

// Severity mirrors the severity field Postgres attaches to every error.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// SQLSTATE codes we care about.
// Reference: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	sqlstateNotNullViolation          = "23502"
	sqlstateForeignKeyViolation       = "23503"
	sqlstateUniqueViolation           = "23505"
	sqlstateCheckViolation            = "23514"
	sqlstateInvalidTextRepresentation = "22P02"
	sqlstateNumericValueOutOfRange    = "22003"
	sqlstateUndefinedColumn           = "42703"
)

// Error is the structured form of a Postgres error.
//
// It keeps the original SQLSTATE and the table/column/constraint metadata
// so logs stay useful after the error has been classified.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (SQLSTATE %s): %s", e.Code, e.DatabaseCode, e.Message)
}

// Unwrap returns the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a raw SQLSTATE to a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case sqlstateNotNullViolation:
		return NotNullViolation
	case sqlstateForeignKeyViolation:
		return ForeignKeyViolation
	case sqlstateUniqueViolation:
		return UniqueViolation
	case sqlstateCheckViolation:
		return CheckViolation
	case sqlstateInvalidTextRepresentation:
		return InvalidTextRepresentation
	case sqlstateNumericValueOutOfRange:
		return NumericValueOutOfRange
	case sqlstateUndefinedColumn:
		return UndefinedColumn
	default:
		return Other
	}
}

// MapSeverity maps the severity string reported by Postgres.
// Unknown values fall back to SeverityError.
func MapSeverity(severity string) Severity {
	switch s := Severity(severity); s {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return s
	default:
		return SeverityError
	}
}
