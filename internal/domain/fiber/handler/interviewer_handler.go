package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/usecase"
	"github.com/intervue/platform-api/internal/util"
)

type InterviewerHandler struct {
	uc *usecase.InterviewerUsecase
}

func NewInterviewerHandler(uc *usecase.InterviewerUsecase) *InterviewerHandler {
	return &InterviewerHandler{uc: uc}
}

func (h *InterviewerHandler) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/stats", h.Stats)
	r.Get("/:id", h.Get)
	r.Patch("/:id", h.Update)
	r.Delete("/:id", h.Delete)
	r.Get("/:id/availability", h.Availability)
}

func (h *InterviewerHandler) List(c *fiber.Ctx) error {
	ivs, err := h.uc.List(c.UserContext(), c.Query("organization_id"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interviewers",
		Data:    ivs,
	})
}

func (h *InterviewerHandler) Get(c *fiber.Ctx) error {
	iv, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interviewer",
		Data:    iv,
	})
}

func (h *InterviewerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInterviewerRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	iv, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Interviewer registered",
		Data:    iv,
	})
}

func (h *InterviewerHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateInterviewerRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	iv, err := h.uc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interviewer updated",
		Data:    iv,
	})
}

func (h *InterviewerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interviewer removed",
	})
}

func (h *InterviewerHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.UserContext(), c.QueryInt("new_within_days"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interviewer stats",
		Data:    stats,
	})
}

func (h *InterviewerHandler) Availability(c *fiber.Ctx) error {
	window := time.Duration(c.QueryInt("window_minutes")) * time.Minute
	avail, err := h.uc.Availability(c.UserContext(), c.Params("id"), window)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interviewer availability",
		Data:    avail,
	})
}
