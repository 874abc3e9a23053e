// file: internals/helpers/response.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"medicku_backend/internals/helpers/errs"
	"medicku_backend/internals/helpers/logger"
)

// Success response without custom code (default 200)
func JsonSuccess(c *fiber.Ctx, message string, data interface{}) error {
	return JsonSuccessWithCode(c, fiber.StatusOK, message, data)
}

// Success response with custom code (e.g. 201 for created)
func JsonSuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return JsonSuccessWithCode(c, fiber.StatusCreated, message, data)
}

func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

func JsonErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  details,
	})
}

// FromAppError maps a service-layer error to a JSON response. Typed errors
// keep their kind-specific status; anything else becomes an opaque 500 so
// internals never leak to the client.
func FromAppError(c *fiber.Ctx, err error) error {
	if ae, ok := errs.As(err); ok {
		if ae.Kind == errs.KindInternal {
			logger.WithField("error", ae.Error()).Error("internal error")
			return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.Status(ae.HTTPStatus()).JSON(fiber.Map{
			"code":    ae.HTTPStatus(),
			"status":  "error",
			"error":   ae.Code,
			"message": ae.Message,
		})
	}
	logger.WithField("error", err.Error()).Error("unhandled error")
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}

// JsonValidationError renders validator.v10 field errors as a map.
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", fields)
}
