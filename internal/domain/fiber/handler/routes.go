package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intervue/platform-api/internal/middleware"
	"github.com/intervue/platform-api/internal/model"
)

// Handlers bundles everything MountRoutes needs.
type Handlers struct {
	Auth         *AuthHandler
	Interviews   *InterviewHandler
	Requirements *RequirementHandler
	Candidates   *CandidateHandler
	Companies    *CompanyHandler
	Interviewers *InterviewerHandler
	Skills       *SkillHandler
	DemoRequests *DemoRequestHandler
	Portal       *PortalHandler
}

// MountRoutes wires the route trees behind their gates. The trees mirror the
// product's navigation: a shared coordinator dashboard with a nested admin
// area, and one portal per member role. The gate is evaluated per request on
// every tree.
func MountRoutes(app *fiber.App, h Handlers) {
	h.Auth.RegisterRoutes(app)
	h.DemoRequests.Register(app.Group("/demo-requests"))

	dashboard := app.Group("/dashboard", middleware.RequireRoles(
		model.RoleAdmin,
		model.RoleClient,
		model.RoleClientCoordinator,
		model.RoleSuperCoordinator,
	))
	h.Requirements.Register(dashboard.Group("/requirements"))
	h.Interviews.Register(dashboard.Group("/interviews"))
	h.Candidates.Register(dashboard.Group("/candidates"))

	admin := dashboard.Group("/admin", middleware.RequireRoles(model.RoleAdmin, model.RoleSuperCoordinator))
	h.Companies.Register(admin.Group("/companies"))
	h.Interviewers.Register(admin.Group("/interviewers"))
	h.Skills.Register(admin.Group("/skills"))

	h.Portal.RegisterOrganization(app.Group("/organization", middleware.RequireRoles(model.RoleClient, model.RoleClientCoordinator)))
	h.Portal.RegisterInterviewer(app.Group("/interviewer", middleware.RequireRoles(model.RoleInterviewer)))

	h.Portal.RegisterCandidate(app.Group("/candidate", middleware.RequireRoles(model.RoleCandidate)))
	// Legacy alias kept for bookmarks from before the rename.
	h.Portal.RegisterCandidate(app.Group("/interviewee", middleware.RequireRoles(model.RoleCandidate)))
}
