package serverutils

import "github.com/gofiber/fiber/v2"

// HttpError carries a status code and a client-safe detail message.
// Controllers and services return it so the error middleware can render
// the wire shape {"detail": "..."} with the right status.
type HttpError struct {
	Code   int    `json:"-"`
	Detail string `json:"detail"`
}

func (e *HttpError) Error() string {
	return e.Detail
}

func NewHttpError(code int, detail string) *HttpError {
	return &HttpError{Code: code, Detail: detail}
}

func NewBadRequestError(detail string) *HttpError {
	return NewHttpError(fiber.StatusBadRequest, detail)
}

func NewNotFoundError(detail string) *HttpError {
	return NewHttpError(fiber.StatusNotFound, detail)
}

func NewInternalError(detail string) *HttpError {
	return NewHttpError(fiber.StatusInternalServerError, detail)
}
