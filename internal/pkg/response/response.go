package response

import (
	"github.com/francolab/franco-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"

	"github.com/sirupsen/logrus"
)

// Response is the error envelope: {"success": false, "error": ...}.
// Success payloads have endpoint-specific shapes and are sent directly by
// the handlers.
type Response struct {
	StatusCode int  `json:"-"`
	Success    bool `json:"success"`
	Error      any  `json:"error,omitempty"`
}

func NewInternalServerError() *Response {
	return &Response{
		Success:    false,
		Error:      "Internal Server Error",
		StatusCode: fiber.StatusInternalServerError,
	}
}

func NewFailed(err error, logger *logrus.Logger) *Response {
	res := &Response{
		Success:    false,
		StatusCode: fiber.StatusInternalServerError,
	}

	if e, ok := err.(*fiber.Error); ok {
		res.StatusCode = e.Code
		if e.Message != "" {
			res.Error = e.Message
		}
	} else if fields, ok := err.(*validate.FieldsError); ok {
		res.StatusCode = fiber.StatusBadRequest
		res.Error = fields.Fields
	} else if err != nil {
		res.Error = err.Error()
	}

	if logger != nil && res.StatusCode >= fiber.StatusInternalServerError {
		logger.Error(err)
	}

	return res
}

func (r *Response) Send(ctx *fiber.Ctx) error {
	return ctx.Status(r.StatusCode).JSON(r)
}
