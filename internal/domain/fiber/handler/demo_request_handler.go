package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/usecase"
	"github.com/intervue/platform-api/internal/util"
)

// DemoRequestHandler serves the public demo request form. No gate applies.
type DemoRequestHandler struct {
	uc *usecase.DemoRequestUsecase
}

func NewDemoRequestHandler(uc *usecase.DemoRequestUsecase) *DemoRequestHandler {
	return &DemoRequestHandler{uc: uc}
}

func (h *DemoRequestHandler) Register(r fiber.Router) {
	r.Post("/", h.Submit)
}

func (h *DemoRequestHandler) Submit(c *fiber.Ctx) error {
	var req dto.DemoRequestInput
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	d, err := h.uc.Submit(c.UserContext(), req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Demo request received",
		Data:    d,
	})
}
