package common

import (
	"errors"
	"reflect"

	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Decimals are validated by their numeric value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// ErrorJSON writes a failure body with the given status.
func ErrorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{Success: false, Error: msg})
}

// DomainErrorJSON writes err with the status ErrorToStatusCode picks.
// Client errors carry err's message; server errors carry msg so backend
// details stay in the logs.
func DomainErrorJSON(c *fiber.Ctx, err error, msg string) error {
	status := ErrorToStatusCode(err)
	if status < fiber.StatusInternalServerError {
		msg = err.Error()
	}
	return ErrorJSON(c, status, msg)
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// On failure it writes a 400 response and returns a non-nil error; the
// handler should then return nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		_ = ErrorJSON(c, fiber.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		_ = ErrorJSON(c, fiber.StatusBadRequest, "validation failed: "+err.Error())
		return nil, err
	}
	return &input, nil
}

// ErrorHandler renders errors that escape handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return ErrorJSON(c, ErrorToStatusCode(err), err.Error())
}
