package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/usecase"
	"github.com/intervue/platform-api/internal/util"
)

type InterviewHandler struct {
	uc *usecase.InterviewUsecase
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/schedule", h.Schedule)
	r.Get("/:id", h.Get)
	r.Patch("/:id/status", h.UpdateStatus)
	r.Post("/:id/feedback", h.SubmitFeedback)
}

func (h *InterviewHandler) List(c *fiber.Ctx) error {
	ivs, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interviews",
		Data:    ivs,
	})
}

func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	iv, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interview",
		Data:    iv,
	})
}

func (h *InterviewHandler) Schedule(c *fiber.Ctx) error {
	var req dto.ScheduleInterviewRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	iv, err := h.uc.Schedule(c.UserContext(), req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Interview scheduled",
		Data:    iv,
	})
}

func (h *InterviewHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateInterviewStatusRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	iv, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), model.InterviewStatus(req.Status))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interview status updated",
		Data:    iv,
	})
}

func (h *InterviewHandler) SubmitFeedback(c *fiber.Ctx) error {
	var req dto.SubmitFeedbackRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	iv, err := h.uc.SubmitFeedback(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Feedback submitted",
		Data:    iv,
	})
}
