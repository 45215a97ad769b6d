package middleware

import (
	"errors"
	"log"

	"career-canvas/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError carries the user-facing message for a failed operation. The error
// middleware renders it into the uniform envelope; the cause stays in logs.
type AppError struct {
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(message string, cause error) *AppError {
	return &AppError{Message: message, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if m != nil && m.logger != nil {
					m.logger.Printf("http | panic recovered: %v", r)
				}
				err = response.Fail(c, response.MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		msg := normalizeError(err)
		if m != nil && m.logger != nil {
			m.logger.Printf("http | request failed: %v", err)
		}
		return response.Fail(c, msg)
	}
}

func normalizeError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < 500 && fiberErr.Message != "" {
		return fiberErr.Message
	}

	return response.MessageInternalServerError
}
