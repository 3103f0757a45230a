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

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.Logout)
	auth.Get("/me", h.Me)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.uc.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Account created successfully",
		Data:    profile,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := util.ParseAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.uc.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Welcome back",
		Data:    resp,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("session_token").(string)
	if token == "" {
		return apperror.AuthenticationRequired(c.OriginalURL())
	}
	if err := h.uc.Logout(c.UserContext(), token); err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "You have been logged out",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	actor, ok := middleware.ActorFromCtx(c)
	if !ok {
		return apperror.AuthenticationRequired(c.OriginalURL())
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Profile",
		Data: dto.Profile{
			ID:             actor.ID,
			FullName:       actor.FullName,
			Email:          actor.Email,
			Role:           actor.Role,
			OrganizationID: actor.OrganizationID,
			DashboardPath:  model.DashboardPath(actor.Role),
		},
	})
}
