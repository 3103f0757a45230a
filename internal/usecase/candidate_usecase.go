package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/service"
)

type CandidateStore interface {
	Create(ctx context.Context, c *model.Candidate) error
	Update(ctx context.Context, c *model.Candidate) error
	FindByID(ctx context.Context, id string) (*model.Candidate, error)
	List(ctx context.Context, requirementID string) ([]model.Candidate, error)
	UpdateStatus(ctx context.Context, id string, status model.CandidateStatus) error
}

type CandidateUsecase struct {
	candidates   CandidateStore
	requirements RequirementFinder
	notifier     service.Notifier
	log          *zap.Logger
}

func NewCandidateUsecase(candidates CandidateStore, requirements RequirementFinder, notifier service.Notifier, log *zap.Logger) *CandidateUsecase {
	return &CandidateUsecase{candidates: candidates, requirements: requirements, notifier: notifier, log: log}
}

func (uc *CandidateUsecase) Create(ctx context.Context, req dto.CreateCandidateRequest) (*model.Candidate, error) {
	var reqID *uuid.UUID
	if req.RequirementID != "" {
		r, err := uc.requirements.FindByID(ctx, req.RequirementID)
		if err != nil {
			return nil, refError("requirement", req.RequirementID, err)
		}
		reqID = &r.ID
	}

	c := &model.Candidate{
		ID:            uuid.New(),
		FullName:      req.FullName,
		Email:         req.Email,
		ResumeURL:     req.ResumeURL,
		Status:        model.CandidateNew,
		RequirementID: reqID,
	}
	if err := uc.candidates.Create(ctx, c); err != nil {
		uc.notifier.Notify("candidate.create", false, "Failed to add candidate")
		return nil, apperror.RemoteUnavailable("candidate store", err)
	}
	uc.notifier.Notify("candidate.create", true, "Candidate added")
	return c, nil
}

func (uc *CandidateUsecase) Get(ctx context.Context, id string) (*model.Candidate, error) {
	c, err := uc.candidates.FindByID(ctx, id)
	if err != nil {
		return nil, refError("candidate", id, err)
	}
	return c, nil
}

func (uc *CandidateUsecase) List(ctx context.Context, requirementID string) ([]model.Candidate, error) {
	cs, err := uc.candidates.List(ctx, requirementID)
	if err != nil {
		return nil, apperror.RemoteUnavailable("candidate store", err)
	}
	return cs, nil
}

func (uc *CandidateUsecase) UpdateStatus(ctx context.Context, id string, status model.CandidateStatus) (*model.Candidate, error) {
	c, err := uc.candidates.FindByID(ctx, id)
	if err != nil {
		return nil, refError("candidate", id, err)
	}
	if c.Status == status {
		return c, nil
	}

	if err := uc.candidates.UpdateStatus(ctx, id, status); err != nil {
		return nil, refError("candidate", id, err)
	}
	uc.notifier.Notify("candidate.status", true, "Candidate moved to "+string(status))
	c.Status = status
	return c, nil
}
