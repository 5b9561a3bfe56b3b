package validation

import (
	"errors"

	"github.com/deppfellow/game-reviews/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required"`)
//   - Implement Validate() error that calls Check with the kind each field reports
//   - Return a *errs.Error so the global error handler can translate it
type Validatable interface {
	Validate() error
}

// validate is shared: validator caches struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldKinds picks the failure kind reported when a struct field fails its rules.
// Keys are Go struct field names. Fields not listed report errs.KindMissingField.
type FieldKinds map[string]errs.Kind

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from path params, query (GET/DELETE) and body.
//  2. payload.Validate() applies validation rules.
//
// Any bind failure (malformed JSON, "abc" for a numeric id, wrong JSON type)
// is reported as errs.KindInvalidType.
//
// NOTE: c.Bind expects a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.Wrap(errs.KindInvalidType, err)
	}

	return payload.Validate()
}

// Check runs the validator tags on v and converts the first failing field
// into the tagged failure chosen for it in kinds.
func Check(v any, kinds FieldKinds) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		// InvalidValidationError: v was not a struct. A programming error.
		return errs.NewInternalServerError(err)
	}

	first := fieldErrors[0]
	kind, ok := kinds[first.StructField()]
	if !ok {
		kind = errs.KindMissingField
	}

	return errs.Wrap(kind, first)
}
