package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/usecase"
	"github.com/intervue/platform-api/internal/util"
)

type CandidateHandler struct {
	uc *usecase.CandidateUsecase
}

func NewCandidateHandler(uc *usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Patch("/:id/status", h.UpdateStatus)
}

func (h *CandidateHandler) List(c *fiber.Ctx) error {
	cs, err := h.uc.List(c.UserContext(), c.Query("requirement_id"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Candidates",
		Data:    cs,
	})
}

func (h *CandidateHandler) Get(c *fiber.Ctx) error {
	cand, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Candidate",
		Data:    cand,
	})
}

func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCandidateRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	cand, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Candidate added",
		Data:    cand,
	})
}

func (h *CandidateHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateCandidateStatusRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	cand, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), model.CandidateStatus(req.Status))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Candidate status updated",
		Data:    cand,
	})
}
