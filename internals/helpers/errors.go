package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"coachku_backend/internals/apperr"
)

/* ===============================
   apperr → HTTP mapping
=================================*/

// JsonAppError translates the service error taxonomy to transport codes.
// Controllers call this instead of branching on error kinds themselves.
func JsonAppError(c *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return JsonError(c, fiber.StatusBadRequest, err.Error())
	case apperr.KindNotFound:
		return JsonError(c, fiber.StatusNotFound, err.Error())
	case apperr.KindConflict:
		return JsonError(c, fiber.StatusConflict, err.Error())
	default:
		return JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

/* ===============================
   validator.v10 → field errors
=================================*/

func JsonValidatorError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
	}
	return JsonValidationError(c, fields)
}

/* ===============================
   Postgres error mapping
=================================*/

// pgSQLErr is satisfied by pgconn.PgError without importing the driver here.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// MapPGError folds Postgres SQLSTATEs into the error taxonomy:
// 23505 unique_violation, 23503 foreign_key_violation, 23P01 exclusion_violation.
func MapPGError(err error, conflictMsg string) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505", "23P01":
			return apperr.Conflict(conflictMsg)
		case "23503":
			return apperr.Validation("Referenced record not found")
		}
	}
	return apperr.Storage("storage failure", err)
}
