package helper

import (
	"errors"
	"log"

	"classroom_backend/internals/helpers/apperr"

	"github.com/gofiber/fiber/v2"
)

// JsonOK writes {"message", "data"} with the given status.
func JsonOK(c *fiber.Ctx, status int, message string, data any) error {
	body := fiber.Map{"message": message}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// JsonError writes {"error": {"code", "message"}} and, for validation
// failures, the offending fields.
func JsonError(c *fiber.Ctx, status int, message string, fields map[string]string) error {
	e := fiber.Map{
		"code":    statusToErrorCode(status),
		"message": message,
	}
	if len(fields) > 0 {
		e["fields"] = fields
	}
	return c.Status(status).JSON(fiber.Map{"error": e})
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		return "UNPROCESSABLE_ENTITY"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	case fiber.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// ErrorHandler is the fiber.Config ErrorHandler. fiber errors keep their
// code; apperr sentinels go through apperr.HTTPStatus; anything else is a 500
// whose detail stays in the log.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message, nil)
	}

	status := apperr.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
		return JsonError(c, status, "internal server error", nil)
	}

	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return JsonError(c, status, "validation failed", ve.Fields)
	}
	return JsonError(c, status, err.Error(), nil)
}
