package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON body for every non-2xx reply.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ErrorHandlerMiddleware converts returned errors into JSON error bodies.
// HttpError keeps its status and detail; fiber.Error keeps its status but
// the message is not echoed for 5xx; anything else becomes a generic 500
// so internal error text never leaks to clients.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var httpErr *HttpError
		if errors.As(err, &httpErr) {
			return ctx.Status(httpErr.Code).JSON(ErrorResponse{Detail: httpErr.Detail})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			detail := fiberErr.Message
			if fiberErr.Code >= fiber.StatusInternalServerError {
				detail = "internal server error"
			}
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse{Detail: detail})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Detail: "internal server error"})
	}
}
