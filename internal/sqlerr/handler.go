package sqlerr

import (
	"database/sql"
	"errors"

	"github.com/deppfellow/game-reviews/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrCode reports the mapped sqlerr.Code for a given error.
//
// Behavior:
//   - If err can be unwrapped into *sqlerr.Error, return its Code.
//   - If err can be unwrapped into *pgconn.PgError, map its SQLSTATE.
//   - Otherwise return sqlerr.Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our custom sqlerr.Error.
//
// pgconn.PgError contains Postgres-specific fields like:
//   - Code (SQLSTATE)
//   - Severity
//   - TableName/ColumnName/ConstraintName etc.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// HandleError converts a low-level database error into a tagged failure.
//
// Output:
//   - If already *errs.Error: returned unchanged
//   - Foreign key / not-null violation: errs.KindInvalidReference
//   - Invalid text representation / out of range: errs.KindInvalidType
//   - ErrNoRows: errs.KindNotFound with generic wording
//   - Otherwise: errs.KindInternal keeping err as the cause
//
// Repositories call this right after a store call fails.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	// Already classified, don't re-wrap it.
	var tagged *errs.Error
	if errors.As(err, &tagged) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		switch sqlErr.Code {
		case ForeignKeyViolation, NotNullViolation:
			// e.g. a comment whose author or review_id does not exist.
			return errs.Wrap(errs.KindInvalidReference, sqlErr)

		case InvalidTextRepresentation, NumericValueOutOfRange:
			// e.g. "abc" compared against an integer column.
			return errs.Wrap(errs.KindInvalidType, sqlErr)

		default:
			// Unknown/other DB errors should not leak details to clients.
			return errs.NewInternalServerError(sqlErr)
		}
	}

	// Both pgx and database/sql define ErrNoRows.
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return &errs.Error{Kind: errs.KindNotFound, Message: "resource not found", Err: err}
	}

	return errs.NewInternalServerError(err)
}
