package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// ErrorHandlerMiddleware converts any error escaping a handler into a JSON
// envelope. Internal error detail is never forwarded to the client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "internal server error"
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}
		return ctx.Status(code).JSON(Envelope{Success: false, Message: message})
	}
}
