package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/usecase"
	"github.com/intervue/platform-api/internal/util"
)

type SkillHandler struct {
	uc *usecase.SkillUsecase
}

func NewSkillHandler(uc *usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Patch("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *SkillHandler) List(c *fiber.Ctx) error {
	skills, err := h.uc.List(c.UserContext(), c.Query("search"), c.Query("category"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Skills",
		Data:    skills,
	})
}

func (h *SkillHandler) Get(c *fiber.Ctx) error {
	s, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Skill",
		Data:    s,
	})
}

func (h *SkillHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSkillRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	s, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Skill added",
		Data:    s,
	})
}

func (h *SkillHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSkillRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	s, err := h.uc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Skill updated",
		Data:    s,
	})
}

func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Skill deleted",
	})
}
