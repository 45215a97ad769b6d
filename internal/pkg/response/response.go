// Package response renders the API's uniform envelope. Domain-level outcomes,
// including failures, are always HTTP 200; the success field is the signal.
package response

import "github.com/gofiber/fiber/v3"

type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	MessageOK                  = "ok"
	MessageUnauthorized        = "unauthorized"
	MessageInternalServerError = "internal server error"
)

func Success(c fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: true, Message: message, Data: data})
}

func Fail(c fiber.Ctx, message string) error {
	if message == "" {
		message = MessageInternalServerError
	}
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: false, Message: message})
}
