package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/middleware"
	"github.com/intervue/platform-api/internal/usecase"
	"github.com/intervue/platform-api/internal/util"
)

// PortalHandler serves the member-facing trees. Requests arriving here have
// already passed the role gate; every view is scoped to the requesting actor,
// never to ids the client supplies.
type PortalHandler struct {
	portal       *usecase.PortalUsecase
	orgs         *usecase.OrganizationUsecase
	interviewers *usecase.InterviewerUsecase
	requirements *usecase.RequirementUsecase
}

func NewPortalHandler(
	portal *usecase.PortalUsecase,
	orgs *usecase.OrganizationUsecase,
	interviewers *usecase.InterviewerUsecase,
	requirements *usecase.RequirementUsecase,
) *PortalHandler {
	return &PortalHandler{portal: portal, orgs: orgs, interviewers: interviewers, requirements: requirements}
}

func (h *PortalHandler) RegisterOrganization(r fiber.Router) {
	r.Get("/interviews", h.OrgInterviews)
	r.Get("/interviewers", h.OrgInterviewers)
	r.Get("/positions", h.OrgPositions)
	r.Get("/analytics", h.OrgAnalytics)
}

func (h *PortalHandler) RegisterInterviewer(r fiber.Router) {
	r.Get("/interviews", h.AssignedInterviews)
	r.Get("/history", h.InterviewHistory)
	r.Get("/profile", h.InterviewerProfile)
}

func (h *PortalHandler) RegisterCandidate(r fiber.Router) {
	r.Get("/interviews", h.CandidateInterviews)
	r.Get("/profile", h.CandidateProfile)
}

func (h *PortalHandler) OrgInterviews(c *fiber.Ctx) error {
	orgID, err := actorOrganization(c)
	if err != nil {
		return err
	}
	ivs, err := h.portal.OrganizationInterviews(c.UserContext(), orgID)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Organization interviews",
		Data:    ivs,
	})
}

func (h *PortalHandler) OrgInterviewers(c *fiber.Ctx) error {
	orgID, err := actorOrganization(c)
	if err != nil {
		return err
	}
	ivs, err := h.interviewers.List(c.UserContext(), orgID)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Organization interviewers",
		Data:    ivs,
	})
}

func (h *PortalHandler) OrgPositions(c *fiber.Ctx) error {
	orgID, err := actorOrganization(c)
	if err != nil {
		return err
	}
	rs, err := h.requirements.List(c.UserContext(), c.Query("status"), orgID)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Organization positions",
		Data:    rs,
	})
}

func (h *PortalHandler) OrgAnalytics(c *fiber.Ctx) error {
	orgID, err := actorOrganization(c)
	if err != nil {
		return err
	}
	summary, err := h.orgs.Analytics(c.UserContext(), orgID)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Organization analytics",
		Data:    summary,
	})
}

func (h *PortalHandler) AssignedInterviews(c *fiber.Ctx) error {
	actor, _ := middleware.ActorFromCtx(c)
	ivs, err := h.portal.AssignedInterviews(c.UserContext(), actor.Email)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Assigned interviews",
		Data:    ivs,
	})
}

func (h *PortalHandler) InterviewHistory(c *fiber.Ctx) error {
	actor, _ := middleware.ActorFromCtx(c)
	ivs, err := h.portal.InterviewHistory(c.UserContext(), actor.Email)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interview history",
		Data:    ivs,
	})
}

func (h *PortalHandler) InterviewerProfile(c *fiber.Ctx) error {
	actor, _ := middleware.ActorFromCtx(c)
	iv, err := h.portal.InterviewerProfile(c.UserContext(), actor.Email)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interviewer profile",
		Data:    iv,
	})
}

func (h *PortalHandler) CandidateInterviews(c *fiber.Ctx) error {
	actor, _ := middleware.ActorFromCtx(c)
	ivs, err := h.portal.CandidateInterviews(c.UserContext(), actor.Email)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "My interviews",
		Data:    ivs,
	})
}

func (h *PortalHandler) CandidateProfile(c *fiber.Ctx) error {
	actor, _ := middleware.ActorFromCtx(c)
	cand, err := h.portal.CandidateProfile(c.UserContext(), actor.Email)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Candidate profile",
		Data:    cand,
	})
}

func actorOrganization(c *fiber.Ctx) (string, error) {
	actor, _ := middleware.ActorFromCtx(c)
	if actor.OrganizationID == nil {
		return "", apperror.Validation("actor is not affiliated with an organization", nil)
	}
	return actor.OrganizationID.String(), nil
}
