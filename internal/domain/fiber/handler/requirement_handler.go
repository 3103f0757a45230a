package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/middleware"
	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/usecase"
	"github.com/intervue/platform-api/internal/util"
)

type RequirementHandler struct {
	uc *usecase.RequirementUsecase
}

func NewRequirementHandler(uc *usecase.RequirementUsecase) *RequirementHandler {
	return &RequirementHandler{uc: uc}
}

func (h *RequirementHandler) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Patch("/:id", h.Update)
	r.Delete("/:id", middleware.RequireRoles(model.RoleAdmin, model.RoleSuperCoordinator), h.Delete)
	r.Post("/:id/approve", middleware.RequireRoles(model.RoleAdmin, model.RoleSuperCoordinator), h.Approve)
	r.Post("/:id/close", h.Close)
}

func (h *RequirementHandler) List(c *fiber.Ctx) error {
	rs, err := h.uc.List(c.UserContext(), c.Query("status"), c.Query("organization_id"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Requirements",
		Data:    rs,
	})
}

func (h *RequirementHandler) Get(c *fiber.Ctx) error {
	r, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Requirement",
		Data:    r,
	})
}

func (h *RequirementHandler) Create(c *fiber.Ctx) error {
	actor, ok := middleware.ActorFromCtx(c)
	if !ok {
		return apperror.AuthenticationRequired(c.OriginalURL())
	}

	var req dto.CreateRequirementRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	r, err := h.uc.Create(c.UserContext(), actor.ID, req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Requirement created",
		Data:    r,
	})
}

func (h *RequirementHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateRequirementRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	r, err := h.uc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Requirement updated",
		Data:    r,
	})
}

func (h *RequirementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Requirement deleted",
	})
}

func (h *RequirementHandler) Approve(c *fiber.Ctx) error {
	r, err := h.uc.Approve(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Requirement approved",
		Data:    r,
	})
}

func (h *RequirementHandler) Close(c *fiber.Ctx) error {
	var req dto.CloseRequirementRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	r, err := h.uc.Close(c.UserContext(), c.Params("id"), model.RequirementStatus(req.Status))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Requirement closed",
		Data:    r,
	})
}
