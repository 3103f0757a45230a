package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/usecase"
	"github.com/intervue/platform-api/internal/util"
)

type CompanyHandler struct {
	uc *usecase.OrganizationUsecase
}

func NewCompanyHandler(uc *usecase.OrganizationUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

func (h *CompanyHandler) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Patch("/:id", h.Update)
	r.Delete("/:id", h.Delete)
	r.Get("/:id/representatives", h.Representatives)
	r.Get("/:id/requirements", h.PendingRequirements)
	r.Get("/:id/analytics", h.Analytics)
}

func (h *CompanyHandler) List(c *fiber.Ctx) error {
	orgs, pagination, err := h.uc.ListPaged(c.UserContext(), c.Query("search"), c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Companies",
		Data:       orgs,
		Pagination: pagination,
	})
}

func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	org, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Company",
		Data:    org,
	})
}

func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	org, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Company created",
		Data:    org,
	})
}

func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCompanyRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	org, err := h.uc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Company updated",
		Data:    org,
	})
}

func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Company deleted",
	})
}

func (h *CompanyHandler) Representatives(c *fiber.Ctx) error {
	reps, err := h.uc.Representatives(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Company representatives",
		Data:    reps,
	})
}

func (h *CompanyHandler) Analytics(c *fiber.Ctx) error {
	summary, err := h.uc.Analytics(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Company analytics",
		Data:    summary,
	})
}

func (h *CompanyHandler) PendingRequirements(c *fiber.Ctx) error {
	rs, err := h.uc.PendingRequirements(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Pending requirements",
		Data:    rs,
	})
}
