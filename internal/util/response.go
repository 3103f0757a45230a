package util

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/config"
	"github.com/intervue/platform-api/internal/response"
)

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Data       any
	Pagination *response.Pagination
	Meta       any
}

type OrderedSuccessResponse struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Meta       any                  `json:"meta,omitempty"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
	Data       any                  `json:"data,omitempty"`
}

type OrderedErrorResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Code       string            `json:"code,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	Meta       map[string]string `json:"meta,omitempty"`
	DevMessage string            `json:"dev_message,omitempty"`
	Trace      string            `json:"trace,omitempty"`
}

// SuccessResponse mengirim response JSON standar untuk sukses
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	if params.Code == 0 {
		params.Code = fiber.StatusOK
	}
	return c.Status(params.Code).JSON(OrderedSuccessResponse{
		Success:    true,
		Message:    params.Message,
		Data:       params.Data,
		Pagination: params.Pagination,
		Meta:       params.Meta,
	})
}

// ErrorHandler is the app-level fiber error handler. Coded application
// errors keep their taxonomy, status and redirect hints; anything else
// becomes a bare 500 (or a fiber error's own status).
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := apperror.As(err); ok {
		resp := OrderedErrorResponse{
			Success: false,
			Message: appErr.Message,
			Code:    string(appErr.Code),
			Fields:  appErr.Fields,
			Meta:    appErr.Meta,
		}
		if config.LoadAppConfig().Env != "production" {
			resp.DevMessage = appErr.Error()
		}
		return c.Status(appErr.HTTPStatus()).JSON(resp)
	}

	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	resp := OrderedErrorResponse{
		Success: false,
		Message: "Internal Server Error",
	}
	if config.LoadAppConfig().Env != "production" {
		resp.DevMessage = err.Error()
		resp.Trace = string(debug.Stack())
	}
	return c.Status(code).JSON(resp)
}
