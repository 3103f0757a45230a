package usecase

import (
	"context"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/model"
)

type CandidateLookup interface {
	FindByEmail(ctx context.Context, email string) (*model.Candidate, error)
}

type InterviewerLookup interface {
	FindByEmail(ctx context.Context, email string) (*model.Interviewer, error)
}

type OrgInterviewLister interface {
	ListByOrganization(ctx context.Context, orgID string) ([]model.Interview, error)
}

// PortalUsecase backs the member-facing trees. An actor is matched to their
// interviewer or candidate record by email; the org view is scoped to the
// actor's organization.
type PortalUsecase struct {
	candidates    CandidateLookup
	interviewers  InterviewerLookup
	interviews    *InterviewUsecase
	orgInterviews OrgInterviewLister
}

func NewPortalUsecase(candidates CandidateLookup, interviewers InterviewerLookup, interviews *InterviewUsecase, orgInterviews OrgInterviewLister) *PortalUsecase {
	return &PortalUsecase{
		candidates:    candidates,
		interviewers:  interviewers,
		interviews:    interviews,
		orgInterviews: orgInterviews,
	}
}

func (uc *PortalUsecase) InterviewerProfile(ctx context.Context, email string) (*model.Interviewer, error) {
	iv, err := uc.interviewers.FindByEmail(ctx, email)
	if err != nil {
		return nil, refError("interviewer profile", email, err)
	}
	return iv, nil
}

func (uc *PortalUsecase) AssignedInterviews(ctx context.Context, email string) ([]model.Interview, error) {
	iv, err := uc.InterviewerProfile(ctx, email)
	if err != nil {
		return nil, err
	}
	return uc.interviews.ListAssigned(ctx, iv.ID.String())
}

func (uc *PortalUsecase) InterviewHistory(ctx context.Context, email string) ([]model.Interview, error) {
	iv, err := uc.InterviewerProfile(ctx, email)
	if err != nil {
		return nil, err
	}
	return uc.interviews.ListHistory(ctx, iv.ID.String())
}

func (uc *PortalUsecase) CandidateProfile(ctx context.Context, email string) (*model.Candidate, error) {
	cand, err := uc.candidates.FindByEmail(ctx, email)
	if err != nil {
		return nil, refError("candidate profile", email, err)
	}
	return cand, nil
}

func (uc *PortalUsecase) CandidateInterviews(ctx context.Context, email string) ([]model.Interview, error) {
	cand, err := uc.CandidateProfile(ctx, email)
	if err != nil {
		return nil, err
	}
	return uc.interviews.ListForCandidate(ctx, cand.ID.String())
}

func (uc *PortalUsecase) OrganizationInterviews(ctx context.Context, orgID string) ([]model.Interview, error) {
	ivs, err := uc.orgInterviews.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, apperror.RemoteUnavailable("interview store", err)
	}
	return ivs, nil
}
